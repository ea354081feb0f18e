package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-portal-api/internal/dto"
	"github.com/noah-isme/school-portal-api/internal/service"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
	"github.com/noah-isme/school-portal-api/pkg/response"
)

// TenantHandler wires HTTP endpoints to the tenant registry.
type TenantHandler struct {
	service *service.TenantService
}

// NewTenantHandler creates a new handler.
func NewTenantHandler(svc *service.TenantService) *TenantHandler {
	return &TenantHandler{service: svc}
}

// List godoc
// @Summary List schools
// @Tags Schools
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /tenants [get]
func (h *TenantHandler) List(c *gin.Context) {
	tenants, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, tenants)
}

// Active godoc
// @Summary Get the active school
// @Tags Schools
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /tenants/active [get]
func (h *TenantHandler) Active(c *gin.Context) {
	tenant, err := h.service.Active(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, tenant)
}

// SetActive godoc
// @Summary Switch the active school
// @Tags Schools
// @Accept json
// @Produce json
// @Param payload body dto.SetActiveTenantRequest true "Switch payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /tenants/active [put]
func (h *TenantHandler) SetActive(c *gin.Context) {
	var req dto.SetActiveTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid switch payload"))
		return
	}
	tenant, err := h.service.SetActive(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, tenant)
}

// Create godoc
// @Summary Register a school
// @Tags Schools
// @Accept json
// @Produce json
// @Param payload body dto.TenantRequest true "School payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /tenants [post]
func (h *TenantHandler) Create(c *gin.Context) {
	var req dto.TenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid school payload"))
		return
	}
	tenant, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, tenant)
}

// Update godoc
// @Summary Update a school
// @Tags Schools
// @Accept json
// @Produce json
// @Param id path string true "School ID"
// @Param payload body dto.TenantRequest true "School payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /tenants/{id} [put]
func (h *TenantHandler) Update(c *gin.Context) {
	var req dto.TenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid school payload"))
		return
	}
	tenant, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, tenant)
}

// Delete godoc
// @Summary Delete a school
// @Description Deleting the last remaining school is rejected
// @Tags Schools
// @Produce json
// @Param id path string true "School ID"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /tenants/{id} [delete]
func (h *TenantHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Branding godoc
// @Summary Get the active school's branding
// @Tags Branding
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /branding [get]
func (h *TenantHandler) Branding(c *gin.Context) {
	branding, err := h.service.Branding(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, branding)
}

// SaveBranding godoc
// @Summary Replace the active school's branding
// @Tags Branding
// @Accept json
// @Produce json
// @Param payload body dto.BrandingRequest true "Branding payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /branding [put]
func (h *TenantHandler) SaveBranding(c *gin.Context) {
	var req dto.BrandingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid branding payload"))
		return
	}
	branding, err := h.service.SaveBranding(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, branding)
}
