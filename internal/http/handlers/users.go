package handlers

import (
	"net/http"

	"jobboard/internal/auth"
	"jobboard/internal/http/middleware"
	"jobboard/internal/repositories"
	"jobboard/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc           *services.UserService
	jwtSecret     []byte
	secureCookies bool
}

func NewUserHandler(svc *services.UserService, jwtSecret string, secureCookies bool) *UserHandler {
	return &UserHandler{svc: svc, jwtSecret: []byte(jwtSecret), secureCookies: secureCookies}
}

func (h *UserHandler) issueSession(c *gin.Context, userID int64, role string) bool {
	token, err := auth.Sign(h.jwtSecret, userID, role, auth.DefaultTTL)
	if err != nil {
		Fail(c, http.StatusInternalServerError, "failed to create session")
		return false
	}
	auth.SetCookie(c, token, h.secureCookies)
	return true
}

// POST /api/user/auth
// Provider login forwarded by the trusted gateway.
func (h *UserHandler) Auth(c *gin.Context) {
	var in services.ProviderLogin
	if !BindJSONOrFail(c, &in) {
		return
	}

	user, err := h.svc.LoginOrRegister(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !h.issueSession(c, user.ID, user.Role) {
		return
	}
	Respond(c, http.StatusOK, "login successful", user)
}

// POST /api/user/register
func (h *UserHandler) Register(c *gin.Context) {
	var in services.RegisterInput
	if !BindJSONOrFail(c, &in) {
		return
	}

	user, err := h.svc.Register(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !h.issueSession(c, user.ID, user.Role) {
		return
	}
	Respond(c, http.StatusCreated, "registration successful", user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/user/login
func (h *UserHandler) Login(c *gin.Context) {
	var in loginRequest
	if !BindJSONOrFail(c, &in) {
		return
	}

	user, err := h.svc.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !h.issueSession(c, user.ID, user.Role) {
		return
	}
	Respond(c, http.StatusOK, "login successful", user)
}

// GET /api/user/profile
func (h *UserHandler) Profile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		Fail(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.svc.Profile(c.Request.Context(), userID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "user profile fetched", user)
}

type updateProfileRequest struct {
	Name            *string   `json:"name"`
	About           *string   `json:"about"`
	Avatar          *string   `json:"avatar"`
	PhoneNumber     *string   `json:"phoneNumber"`
	Skills          *[]string `json:"skills"`
	LinkedInProfile *string   `json:"linkedInProfile"`
	XProfile        *string   `json:"xProfile"`
	GithubProfile   *string   `json:"githubProfile"`
	JobSeeker       *bool     `json:"jobSeeker"`
	Location        *string   `json:"location"`
	Gender          *string   `json:"gender"`
	Ethnicity       *string   `json:"ethnicity"`
	PrimaryLanguage *string   `json:"primaryLanguage"`
}

// PATCH /api/user/update-profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		Fail(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var in updateProfileRequest
	if !BindJSONOrFail(c, &in) {
		return
	}

	user, err := h.svc.UpdateProfile(c.Request.Context(), userID, repositories.UserPatch{
		Name:            in.Name,
		About:           in.About,
		Avatar:          in.Avatar,
		PhoneNumber:     in.PhoneNumber,
		Skills:          in.Skills,
		LinkedInProfile: in.LinkedInProfile,
		XProfile:        in.XProfile,
		GithubProfile:   in.GithubProfile,
		JobSeeker:       in.JobSeeker,
		Location:        in.Location,
		Gender:          in.Gender,
		Ethnicity:       in.Ethnicity,
		PrimaryLanguage: in.PrimaryLanguage,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "user updated", user)
}

// PATCH /api/user/connect-wallet/:address
func (h *UserHandler) ConnectWallet(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		Fail(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	status, err := h.svc.ConnectWallet(c.Request.Context(), userID, c.Param("address"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "wallet connect successful", gin.H{"status": status})
}

// POST /api/user/logout
func (h *UserHandler) Logout(c *gin.Context) {
	auth.ClearCookie(c, h.secureCookies)
	Respond(c, http.StatusOK, "logout successful", nil)
}
