package handlers

import (
	"database/sql"
	"net/http"

	"jobboard/internal/services"

	"github.com/gin-gonic/gin"
)

type PublicHandler struct {
	svc *services.PublicService
	db  *sql.DB
}

func NewPublicHandler(svc *services.PublicService, db *sql.DB) *PublicHandler {
	return &PublicHandler{svc: svc, db: db}
}

// GET /api/public/jobs
func (h *PublicHandler) Jobs(c *gin.Context) {
	sortBy, sortOrder := sortParams(c)
	jobs, pagination, err := h.svc.Jobs(c.Request.Context(), services.PublicJobsQuery{
		CompanyName: queryString(c, "companyName"),
		Title:       queryString(c, "title"),
		Page:        pageRequest(c),
		SortBy:      sortBy,
		SortOrder:   sortOrder,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "jobs fetched", ListPayload{Data: jobs, Pagination: pagination})
}

// GET /api/public/users
func (h *PublicHandler) Users(c *gin.Context) {
	sortBy, sortOrder := sortParams(c)
	users, pagination, err := h.svc.Users(c.Request.Context(), services.PublicUsersQuery{
		Name:      queryString(c, "name"),
		Skill:     queryString(c, "skill"),
		JobSeeker: queryBool(c, "jobSeeker"),
		Page:      pageRequest(c),
		SortBy:    sortBy,
		SortOrder: sortOrder,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "users fetched", ListPayload{Data: users, Pagination: pagination})
}

// GET /api/health
func (h *PublicHandler) Health(c *gin.Context) {
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		Fail(c, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	Respond(c, http.StatusOK, "ok", nil)
}
