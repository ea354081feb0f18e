package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-portal-api/internal/dto"
	"github.com/noah-isme/school-portal-api/internal/service"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
	"github.com/noah-isme/school-portal-api/pkg/response"
)

// SurveyHandler wires HTTP endpoints to the survey service, including the
// public intake surface for published surveys.
type SurveyHandler struct {
	service *service.SurveyService
	exports *service.ExportService
	metrics *service.MetricsService
}

// NewSurveyHandler creates a new handler. metrics may be nil.
func NewSurveyHandler(svc *service.SurveyService, exports *service.ExportService, metrics *service.MetricsService) *SurveyHandler {
	return &SurveyHandler{service: svc, exports: exports, metrics: metrics}
}

// List godoc
// @Summary List surveys
// @Description Returns every survey in the active school, drafts included
// @Tags Surveys
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /surveys [get]
func (h *SurveyHandler) List(c *gin.Context) {
	surveys, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, surveys)
}

// Get godoc
// @Summary Get one survey
// @Tags Surveys
// @Produce json
// @Param id path string true "Survey ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /surveys/{id} [get]
func (h *SurveyHandler) Get(c *gin.Context) {
	survey, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, survey)
}

// Create godoc
// @Summary Create a survey
// @Tags Surveys
// @Accept json
// @Produce json
// @Param payload body dto.SurveyRequest true "Survey payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /surveys [post]
func (h *SurveyHandler) Create(c *gin.Context) {
	var req dto.SurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid survey payload"))
		return
	}
	survey, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, survey)
}

// Update godoc
// @Summary Replace a survey
// @Tags Surveys
// @Accept json
// @Produce json
// @Param id path string true "Survey ID"
// @Param payload body dto.SurveyRequest true "Survey payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /surveys/{id} [put]
func (h *SurveyHandler) Update(c *gin.Context) {
	var req dto.SurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid survey payload"))
		return
	}
	survey, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, survey)
}

// Delete godoc
// @Summary Delete a survey
// @Description Recorded responses are retained
// @Tags Surveys
// @Produce json
// @Param id path string true "Survey ID"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /surveys/{id} [delete]
func (h *SurveyHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Responses godoc
// @Summary List one survey's responses
// @Tags Responses
// @Produce json
// @Param id path string true "Survey ID"
// @Success 200 {object} response.Envelope
// @Router /surveys/{id}/responses [get]
func (h *SurveyHandler) Responses(c *gin.Context) {
	responses, err := h.service.ResponsesForSurvey(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, responses)
}

// AllResponses godoc
// @Summary List every response in the active school
// @Tags Responses
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /responses [get]
func (h *SurveyHandler) AllResponses(c *gin.Context) {
	responses, err := h.service.Responses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, responses)
}

// ExportResponses godoc
// @Summary Download one survey's responses as a report
// @Tags Responses
// @Produce text/csv
// @Produce application/pdf
// @Param id path string true "Survey ID"
// @Param format query string false "Report format: csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /surveys/{id}/responses/export [get]
func (h *SurveyHandler) ExportResponses(c *gin.Context) {
	format := service.ExportFormat(c.DefaultQuery("format", "csv"))
	report, err := h.exports.Render(c.Request.Context(), c.Param("id"), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+report.Filename)
	c.Data(http.StatusOK, report.ContentType, report.Data)
}

// PublicList godoc
// @Summary List published surveys
// @Description Public intake; no session required
// @Tags Public
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /public/surveys [get]
func (h *SurveyHandler) PublicList(c *gin.Context) {
	surveys, err := h.service.ListPublished(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, surveys)
}

// PublicGet godoc
// @Summary Get one published survey
// @Description Public intake; drafts are reported as absent
// @Tags Public
// @Produce json
// @Param id path string true "Survey ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /public/surveys/{id} [get]
func (h *SurveyHandler) PublicGet(c *gin.Context) {
	survey, err := h.service.GetPublished(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, survey)
}

// SubmitResponse godoc
// @Summary Submit answers against a published survey
// @Description Public intake; signed-in respondents are identified unless the submission is anonymous
// @Tags Public
// @Accept json
// @Produce json
// @Param id path string true "Survey ID"
// @Param payload body dto.ResponseRequest true "Response payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /public/surveys/{id}/responses [post]
func (h *SurveyHandler) SubmitResponse(c *gin.Context) {
	var req dto.ResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid response payload"))
		return
	}

	// A signed-in respondent fills the identity fields unless the
	// submission explicitly opts into anonymity.
	if claims := claimsFromContext(c); claims != nil && !req.IsAnonymous {
		if req.RespondentID == nil {
			req.RespondentID = &claims.UserID
		}
		if req.RespondentName == nil {
			req.RespondentName = &claims.Name
		}
	}

	res, err := h.service.SubmitResponse(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.RecordSubmission()
	response.Created(c, res)
}
