package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-portal-api/internal/dto"
	"github.com/noah-isme/school-portal-api/internal/service"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
	"github.com/noah-isme/school-portal-api/pkg/response"
)

// FileHandler wires HTTP endpoints to the uploaded-file registry.
type FileHandler struct {
	service *service.FileService
}

// NewFileHandler creates a new handler.
func NewFileHandler(svc *service.FileService) *FileHandler {
	return &FileHandler{service: svc}
}

// List godoc
// @Summary List the active school's files
// @Tags Files
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /files [get]
func (h *FileHandler) List(c *gin.Context) {
	files, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, files)
}

// Create godoc
// @Summary Register an upload
// @Description Accepts either a base64 payload (stored as a data URL) or an external URL
// @Tags Files
// @Accept json
// @Produce json
// @Param payload body dto.FileRequest true "File payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /files [post]
func (h *FileHandler) Create(c *gin.Context) {
	var req dto.FileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid file payload"))
		return
	}
	file, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, file)
}

// Delete godoc
// @Summary Remove a file record
// @Tags Files
// @Produce json
// @Param id path string true "File ID"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /files/{id} [delete]
func (h *FileHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
