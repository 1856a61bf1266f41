package handlers

import (
	"net/http"

	"jobboard/internal/domain"
	"jobboard/internal/http/middleware"
	"jobboard/internal/repositories"
	"jobboard/internal/services"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	svc *services.JobService
}

func NewJobHandler(svc *services.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

func requireUserID(c *gin.Context) (int64, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		Fail(c, http.StatusUnauthorized, "unauthorized")
		return 0, false
	}
	return userID, true
}

// POST /api/job/post-job
func (h *JobHandler) PostJob(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var in services.PostJobInput
	if !BindJSONOrFail(c, &in) {
		return
	}

	job, err := h.svc.PostJob(c.Request.Context(), userID, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusCreated, "job created", job)
}

// GET /api/job/fetch-jobs
func (h *JobHandler) FetchJobs(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	sortBy, sortOrder := sortParams(c)
	jobs, pagination, err := h.svc.ListJobs(c.Request.Context(), services.JobQuery{
		Filter:    jobFilter(c),
		Page:      pageRequest(c),
		SortBy:    sortBy,
		SortOrder: sortOrder,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "jobs fetched", ListPayload{Data: jobs, Pagination: pagination})
}

// GET /api/job/fetch-job/:jobId
func (h *JobHandler) FetchJob(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	jobID, ok := pathID(c, "jobId")
	if !ok {
		Fail(c, http.StatusBadRequest, "invalid job id")
		return
	}

	job, err := h.svc.GetJob(c.Request.Context(), jobID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "job fetched", job)
}

// GET /api/job/fetch-job-by-user
func (h *JobHandler) FetchJobsByUser(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	sortBy, sortOrder := sortParams(c)
	jobs, pagination, err := h.svc.JobsByUser(c.Request.Context(), userID, pageRequest(c), sortBy, sortOrder)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "jobs fetched", ListPayload{Data: jobs, Pagination: pagination})
}

type updateJobRequest struct {
	Title              *string                 `json:"title"`
	Description        *string                 `json:"description"`
	Requirements       *string                 `json:"requirements"`
	Logo               *string                 `json:"logo"`
	EmploymentType     *domain.EmploymentType  `json:"employment_type"`
	WorkArrangement    *domain.WorkArrangement `json:"work_arrangement"`
	SalaryType         *domain.SalaryType      `json:"salary_type"`
	SalaryMin          *int64                  `json:"salary_min"`
	SalaryMax          *int64                  `json:"salary_max"`
	CompanyName        *string                 `json:"company_name"`
	CompanyWebsite     *string                 `json:"company_website"`
	CompanyDescription *string                 `json:"company_description"`
	CompanyLocation    *string                 `json:"company_location"`
	IsActive           *bool                   `json:"is_active"`
}

// PATCH /api/job/update-job/:jobId
func (h *JobHandler) UpdateJob(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	jobID, ok := pathID(c, "jobId")
	if !ok {
		Fail(c, http.StatusBadRequest, "invalid job id")
		return
	}

	var in updateJobRequest
	if !BindJSONOrFail(c, &in) {
		return
	}

	job, err := h.svc.UpdateJob(c.Request.Context(), userID, jobID, repositories.JobPatch{
		Title:              in.Title,
		Description:        in.Description,
		Requirements:       in.Requirements,
		Logo:               in.Logo,
		EmploymentType:     in.EmploymentType,
		WorkArrangement:    in.WorkArrangement,
		SalaryType:         in.SalaryType,
		SalaryMin:          in.SalaryMin,
		SalaryMax:          in.SalaryMax,
		CompanyName:        in.CompanyName,
		CompanyWebsite:     in.CompanyWebsite,
		CompanyDescription: in.CompanyDescription,
		CompanyLocation:    in.CompanyLocation,
		IsActive:           in.IsActive,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "job updated", job)
}

// PATCH /api/job/deactivate-job/:jobId
func (h *JobHandler) DeactivateJob(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	jobID, ok := pathID(c, "jobId")
	if !ok {
		Fail(c, http.StatusBadRequest, "invalid job id")
		return
	}

	job, err := h.svc.DeactivateJob(c.Request.Context(), userID, jobID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "job deactivated", job)
}

// DELETE /api/job/delete-job/:jobId
func (h *JobHandler) DeleteJob(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	jobID, ok := pathID(c, "jobId")
	if !ok {
		Fail(c, http.StatusBadRequest, "invalid job id")
		return
	}

	if err := h.svc.DeleteJob(c.Request.Context(), userID, jobID); err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "job deleted", nil)
}

// POST /api/job/job-application
func (h *JobHandler) Apply(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var in services.ApplyInput
	if !BindJSONOrFail(c, &in) {
		return
	}

	app, err := h.svc.ApplyForJob(c.Request.Context(), userID, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusCreated, "job applied", app)
}

// GET /api/job/my-applications
func (h *JobHandler) MyApplications(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	apps, pagination, err := h.svc.MyApplications(c.Request.Context(), userID, pageRequest(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "applications fetched", ListPayload{Data: apps, Pagination: pagination})
}

// GET /api/job/get-applications-for-job/:jobId
func (h *JobHandler) ApplicationsForJob(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	jobID, ok := pathID(c, "jobId")
	if !ok {
		Fail(c, http.StatusBadRequest, "invalid job id")
		return
	}

	apps, pagination, err := h.svc.ApplicationsForJob(c.Request.Context(), userID, jobID, pageRequest(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "job applications fetched", ListPayload{Data: apps, Pagination: pagination})
}

type updateApplicationRequest struct {
	ApplicationID int64  `json:"applicationId"`
	Status        string `json:"status"`
}

// PATCH /api/job/update-job-application
func (h *JobHandler) UpdateApplicationStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var in updateApplicationRequest
	if !BindJSONOrFail(c, &in) {
		return
	}
	if in.ApplicationID <= 0 {
		Fail(c, http.StatusBadRequest, "invalid application id")
		return
	}

	app, err := h.svc.UpdateApplicationStatus(c.Request.Context(), userID, in.ApplicationID, in.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "job application updated", app)
}
