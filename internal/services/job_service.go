package services

import (
	"context"
	"fmt"
	"strings"

	"jobboard/internal/domain"
	"jobboard/internal/repositories"
	"jobboard/internal/utils"
)

type JobService struct {
	jobs  JobStore
	users UserStore
	apps  ApplicationStore
}

func NewJobService(jobs JobStore, users UserStore, apps ApplicationStore) *JobService {
	return &JobService{jobs: jobs, users: users, apps: apps}
}

type PostJobInput struct {
	Title              string                 `json:"title"`
	Description        string                 `json:"description"`
	Requirements       string                 `json:"requirements"`
	Logo               string                 `json:"logo"`
	EmploymentType     domain.EmploymentType  `json:"employment_type"`
	WorkArrangement    domain.WorkArrangement `json:"work_arrangement"`
	SalaryType         domain.SalaryType      `json:"salary_type"`
	SalaryMin          int64                  `json:"salary_min"`
	SalaryMax          int64                  `json:"salary_max"`
	CompanyName        string                 `json:"company_name"`
	CompanyWebsite     string                 `json:"company_website"`
	CompanyDescription string                 `json:"company_description"`
	CompanyLocation    string                 `json:"company_location"`
	IsActive           *bool                  `json:"is_active"`
}

func (in PostJobInput) validate() error {
	switch {
	case strings.TrimSpace(in.Title) == "":
		return domain.ValidationError{Field: "title", Msg: "required"}
	case strings.TrimSpace(in.Description) == "":
		return domain.ValidationError{Field: "description", Msg: "required"}
	case strings.TrimSpace(in.CompanyName) == "":
		return domain.ValidationError{Field: "company_name", Msg: "required"}
	case strings.TrimSpace(in.CompanyLocation) == "":
		return domain.ValidationError{Field: "company_location", Msg: "required"}
	case !in.EmploymentType.Valid():
		return domain.ValidationError{Field: "employment_type", Msg: "unrecognized value"}
	case !in.WorkArrangement.Valid():
		return domain.ValidationError{Field: "work_arrangement", Msg: "unrecognized value"}
	case !in.SalaryType.Valid():
		return domain.ValidationError{Field: "salary_type", Msg: "unrecognized value"}
	case in.SalaryMin < 0 || in.SalaryMax < 0:
		return domain.ValidationError{Field: "salary_range", Msg: "must be non-negative"}
	case in.SalaryMin > in.SalaryMax:
		return domain.ValidationError{Field: "salary_range", Msg: "min must not exceed max"}
	}
	return nil
}

// PostJob creates a listing. Only users whose on-chain identity is Verified
// may post.
func (s *JobService) PostJob(ctx context.Context, userID int64, in PostJobInput) (domain.Job, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.Job{}, err
	}
	if !user.VerifiedOnchain {
		return domain.Job{}, domain.ForbiddenError{Msg: "on-chain identity not verified"}
	}

	if err := in.validate(); err != nil {
		return domain.Job{}, err
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	id, err := s.jobs.Create(ctx, domain.Job{
		CreatorID:          userID,
		Title:              strings.TrimSpace(in.Title),
		Description:        in.Description,
		Requirements:       in.Requirements,
		Logo:               in.Logo,
		EmploymentType:     in.EmploymentType,
		WorkArrangement:    in.WorkArrangement,
		SalaryType:         in.SalaryType,
		SalaryMin:          in.SalaryMin,
		SalaryMax:          in.SalaryMax,
		CompanyName:        strings.TrimSpace(in.CompanyName),
		CompanyWebsite:     in.CompanyWebsite,
		CompanyDescription: in.CompanyDescription,
		CompanyLocation:    strings.TrimSpace(in.CompanyLocation),
		IsActive:           active,
	})
	if err != nil {
		return domain.Job{}, err
	}

	utils.LogEvent("", "job", "post", fmt.Sprintf("job_id=%d creator_id=%d", id, userID))
	return s.jobs.GetByID(ctx, id)
}

func (s *JobService) GetJob(ctx context.Context, jobID int64) (domain.Job, error) {
	return s.jobs.GetByID(ctx, jobID)
}

// JobQuery bundles filter, window and sort for a listing request.
type JobQuery struct {
	Filter    repositories.JobFilter
	Page      repositories.PageRequest
	SortBy    string
	SortOrder string
}

// ListJobs returns active listings matching the filter.
func (s *JobService) ListJobs(ctx context.Context, q JobQuery) ([]domain.Job, repositories.Pagination, error) {
	q.Filter.ActiveOnly = true
	return s.jobs.List(ctx, q.Filter, q.Page, q.SortBy, q.SortOrder)
}

// JobsByUser lists everything the user posted, active or not.
func (s *JobService) JobsByUser(ctx context.Context, userID int64, page repositories.PageRequest, sortBy, sortOrder string) ([]domain.Job, repositories.Pagination, error) {
	f := repositories.JobFilter{CreatorID: &userID}
	return s.jobs.List(ctx, f, page, sortBy, sortOrder)
}

// UpdateJob applies a sparse patch. Only the creator may modify a listing.
func (s *JobService) UpdateJob(ctx context.Context, userID, jobID int64, patch repositories.JobPatch) (domain.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return domain.Job{}, err
	}
	if job.CreatorID != userID {
		return domain.Job{}, domain.ForbiddenError{Msg: "only the creator may modify this job"}
	}

	if err := validateJobPatch(job, patch); err != nil {
		return domain.Job{}, err
	}
	if err := s.jobs.Update(ctx, jobID, patch); err != nil {
		return domain.Job{}, err
	}
	return s.jobs.GetByID(ctx, jobID)
}

func validateJobPatch(existing domain.Job, p repositories.JobPatch) error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return domain.ValidationError{Field: "title", Msg: "cannot be empty"}
	}
	if p.EmploymentType != nil && !p.EmploymentType.Valid() {
		return domain.ValidationError{Field: "employment_type", Msg: "unrecognized value"}
	}
	if p.WorkArrangement != nil && !p.WorkArrangement.Valid() {
		return domain.ValidationError{Field: "work_arrangement", Msg: "unrecognized value"}
	}
	if p.SalaryType != nil && !p.SalaryType.Valid() {
		return domain.ValidationError{Field: "salary_type", Msg: "unrecognized value"}
	}

	min, max := existing.SalaryMin, existing.SalaryMax
	if p.SalaryMin != nil {
		min = *p.SalaryMin
	}
	if p.SalaryMax != nil {
		max = *p.SalaryMax
	}
	if min < 0 || max < 0 {
		return domain.ValidationError{Field: "salary_range", Msg: "must be non-negative"}
	}
	if min > max {
		return domain.ValidationError{Field: "salary_range", Msg: "min must not exceed max"}
	}
	return nil
}

// DeactivateJob closes a listing to new applications without removing it.
// Only the creator may deactivate.
func (s *JobService) DeactivateJob(ctx context.Context, userID, jobID int64) (domain.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return domain.Job{}, err
	}
	if job.CreatorID != userID {
		return domain.Job{}, domain.ForbiddenError{Msg: "only the creator may deactivate this job"}
	}
	if err := s.jobs.Deactivate(ctx, jobID); err != nil {
		return domain.Job{}, err
	}
	return s.jobs.GetByID(ctx, jobID)
}

// DeleteJob removes a listing permanently. Existing applications are kept;
// no cascade policy is defined for them.
func (s *JobService) DeleteJob(ctx context.Context, userID, jobID int64) error {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job.CreatorID != userID {
		return domain.ForbiddenError{Msg: "only the creator may delete this job"}
	}
	return s.jobs.Delete(ctx, jobID)
}

type ApplyInput struct {
	JobID           int64  `json:"jobId"`
	Resume          string `json:"resume"`
	FullName        string `json:"fullName"`
	ContactMethod   string `json:"contactMethod"`
	ContactHandle   string `json:"contactHandle"`
	CoverLetter     string `json:"coverLetter"`
	PortfolioLink   string `json:"portfolioLink"`
	LinkedInProfile string `json:"linkedInProfile"`
	XProfile        string `json:"xProfile"`
}

// ApplyForJob records an application. The job must exist and be active, and
// an applicant may apply to a given job at most once.
func (s *JobService) ApplyForJob(ctx context.Context, userID int64, in ApplyInput) (domain.JobApplication, error) {
	switch {
	case strings.TrimSpace(in.Resume) == "":
		return domain.JobApplication{}, domain.ValidationError{Field: "resume", Msg: "required"}
	case strings.TrimSpace(in.FullName) == "":
		return domain.JobApplication{}, domain.ValidationError{Field: "fullName", Msg: "required"}
	}

	job, err := s.jobs.GetByID(ctx, in.JobID)
	if err != nil {
		return domain.JobApplication{}, err
	}
	if !job.IsActive {
		return domain.JobApplication{}, domain.ValidationError{Field: "jobId", Msg: "job is no longer accepting applications"}
	}

	exists, err := s.apps.Exists(ctx, in.JobID, userID)
	if err != nil {
		return domain.JobApplication{}, err
	}
	if exists {
		return domain.JobApplication{}, domain.ConflictError{Resource: "application", Msg: "already applied to this job"}
	}

	id, err := s.apps.Create(ctx, domain.JobApplication{
		JobID:           in.JobID,
		ApplicantID:     userID,
		Resume:          strings.TrimSpace(in.Resume),
		FullName:        strings.TrimSpace(in.FullName),
		ContactMethod:   in.ContactMethod,
		ContactHandle:   in.ContactHandle,
		CoverLetter:     in.CoverLetter,
		PortfolioLink:   in.PortfolioLink,
		LinkedInProfile: in.LinkedInProfile,
		XProfile:        in.XProfile,
	})
	if err != nil {
		return domain.JobApplication{}, err
	}

	utils.LogEvent("", "job", "apply", fmt.Sprintf("job_id=%d applicant_id=%d", in.JobID, userID))
	return s.apps.GetByID(ctx, id)
}

// ApplicationsForJob lists applications for a posting; creator only.
func (s *JobService) ApplicationsForJob(ctx context.Context, userID, jobID int64, page repositories.PageRequest) ([]domain.JobApplication, repositories.Pagination, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, repositories.Pagination{}, err
	}
	if job.CreatorID != userID {
		return nil, repositories.Pagination{}, domain.ForbiddenError{Msg: "only the creator may view applications"}
	}
	return s.apps.ListByJob(ctx, jobID, page)
}

func (s *JobService) MyApplications(ctx context.Context, userID int64, page repositories.PageRequest) ([]domain.JobApplication, repositories.Pagination, error) {
	return s.apps.ListByApplicant(ctx, userID, page)
}

// UpdateApplicationStatus moves an application through its one-way status
// flow; only the job's creator may trigger transitions.
func (s *JobService) UpdateApplicationStatus(ctx context.Context, userID, applicationID int64, status string) (domain.JobApplication, error) {
	target, err := domain.ParseApplicationStatus(status)
	if err != nil {
		return domain.JobApplication{}, err
	}

	app, err := s.apps.GetByID(ctx, applicationID)
	if err != nil {
		return domain.JobApplication{}, err
	}

	job, err := s.jobs.GetByID(ctx, app.JobID)
	if err != nil {
		return domain.JobApplication{}, err
	}
	if job.CreatorID != userID {
		return domain.JobApplication{}, domain.ForbiddenError{Msg: "only the creator may update application status"}
	}

	if !app.Status.CanTransition(target) {
		return domain.JobApplication{}, domain.ValidationError{
			Field: "status",
			Msg:   fmt.Sprintf("cannot move from %s to %s", app.Status, target),
		}
	}

	if err := s.apps.UpdateStatus(ctx, applicationID, target); err != nil {
		return domain.JobApplication{}, err
	}
	app.Status = target
	return app, nil
}
