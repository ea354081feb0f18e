package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-portal-api/internal/dto"
	"github.com/noah-isme/school-portal-api/internal/guard"
	"github.com/noah-isme/school-portal-api/internal/models"
	"github.com/noah-isme/school-portal-api/internal/service"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
	"github.com/noah-isme/school-portal-api/pkg/response"
)

// AuthHandler wires HTTP endpoints to the session manager.
type AuthHandler struct {
	service *service.AuthService
	metrics *service.MetricsService
}

// NewAuthHandler creates a new handler. metrics may be nil.
func NewAuthHandler(svc *service.AuthService, metrics *service.MetricsService) *AuthHandler {
	return &AuthHandler{service: svc, metrics: metrics}
}

// Login godoc
// @Summary Sign in
// @Description Validate credentials against the active school and issue a session token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body dto.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.metrics.RecordLogin(false)
		response.Error(c, err)
		return
	}

	h.metrics.RecordLogin(true)
	response.JSON(c, http.StatusOK, res)
}

// Logout godoc
// @Summary Sign out
// @Description Discard the persisted session
// @Tags Authentication
// @Produce json
// @Success 204 {object} response.Envelope
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Me godoc
// @Summary Get current user
// @Description Returns the signed-in identity, or 401 when no valid session exists
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	identity, err := h.service.CurrentUser(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if identity == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	response.JSON(c, http.StatusOK, identity)
}

// Guard godoc
// @Summary Check view access
// @Description Decide whether the current identity may enter a view guarded by the given roles
// @Tags Authentication
// @Produce json
// @Param roles query string false "Comma-separated required roles"
// @Success 200 {object} response.Envelope
// @Router /auth/guard [get]
func (h *AuthHandler) Guard(c *gin.Context) {
	identity, err := h.service.CurrentUser(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	var required []models.Role
	if raw := c.Query("roles"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			role := models.Role(strings.TrimSpace(part))
			if !models.ValidRole(role) {
				response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown role "+string(role)))
				return
			}
			required = append(required, role)
		}
	}

	decision := guard.Resolve(identity, required)
	response.JSON(c, http.StatusOK, decision)
}
