package handlers

import (
	"log"
	"net/http"

	"jobboard/internal/domain"
	"jobboard/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RespondDomainError is the single translator from domain errors to the
// response envelope. Unexpected errors are logged with detail server-side
// and surfaced as a generic message.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		Fail(c, http.StatusBadRequest, err.Error())
	case domain.IsUnauthorized(err):
		Fail(c, http.StatusUnauthorized, err.Error())
	case domain.IsForbidden(err):
		Fail(c, http.StatusForbidden, err.Error())
	case domain.IsNotFound(err):
		Fail(c, http.StatusNotFound, err.Error())
	case domain.IsConflict(err):
		Fail(c, http.StatusConflict, err.Error())
	case domain.IsUpstream(err):
		Fail(c, http.StatusBadGateway, "identity service unavailable, please try again")
	default:
		log.Printf("[ERROR] request_id=%s unexpected: %v", middleware.GetRequestID(c), err)
		Fail(c, http.StatusInternalServerError, "something went wrong")
	}
}
