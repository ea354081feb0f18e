package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-portal-api/internal/models"
	"github.com/noah-isme/school-portal-api/internal/service"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
	"github.com/noah-isme/school-portal-api/pkg/response"
)

// DataHandler wires HTTP endpoints to the bulk export/import/wipe surface.
type DataHandler struct {
	service *service.DataService
}

// NewDataHandler creates a new handler.
func NewDataHandler(svc *service.DataService) *DataHandler {
	return &DataHandler{service: svc}
}

// Export godoc
// @Summary Export the active school's content
// @Tags Data
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /data/export [get]
func (h *DataHandler) Export(c *gin.Context) {
	doc, err := h.service.Export(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, doc)
}

// Import godoc
// @Summary Import a content document into the active school
// @Description Every present section is validated before any section is applied
// @Tags Data
// @Accept json
// @Produce json
// @Param payload body models.ExportDocument true "Export document"
// @Success 204 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /data/import [post]
func (h *DataHandler) Import(c *gin.Context) {
	var doc models.ExportDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInvalidImport.Code, http.StatusBadRequest, "import document is not valid JSON"))
		return
	}
	if err := h.service.Import(c.Request.Context(), doc); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Wipe godoc
// @Summary Erase all portal data
// @Description Clears every school, account, session, and content record; defaults re-seed on next access
// @Tags Data
// @Produce json
// @Success 204 {object} response.Envelope
// @Router /data [delete]
func (h *DataHandler) Wipe(c *gin.Context) {
	if err := h.service.Wipe(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
