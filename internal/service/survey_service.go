package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/school-portal-api/internal/dto"
	"github.com/noah-isme/school-portal-api/internal/models"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
)

type surveyRepository interface {
	ListSurveys(ctx context.Context, tenantID string) ([]models.Survey, error)
	GetSurvey(ctx context.Context, tenantID, id string) (*models.Survey, bool, error)
	AddSurvey(ctx context.Context, tenantID string, survey models.Survey) error
	UpdateSurvey(ctx context.Context, tenantID, id string, survey models.Survey) (bool, error)
	DeleteSurvey(ctx context.Context, tenantID, id string) (bool, error)
	AddResponse(ctx context.Context, tenantID string, response models.SurveyResponse) error
	ListResponses(ctx context.Context, tenantID string) ([]models.SurveyResponse, error)
	ListResponsesForSurvey(ctx context.Context, tenantID, surveyID string) ([]models.SurveyResponse, error)
}

type surveyTenantResolver interface {
	ActiveID(ctx context.Context) (string, error)
}

// SurveyService manages surveys and their submissions within the active
// tenant. Published surveys are additionally visible through the public
// intake surface, which accepts submissions without a session.
type SurveyService struct {
	content   surveyRepository
	tenants   surveyTenantResolver
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewSurveyService constructs a SurveyService.
func NewSurveyService(content surveyRepository, tenants surveyTenantResolver, validate *validator.Validate, logger *zap.Logger) *SurveyService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SurveyService{content: content, tenants: tenants, validator: validate, logger: logger, now: time.Now}
}

// WithClock overrides the service clock. Test hook.
func (s *SurveyService) WithClock(now func() time.Time) *SurveyService {
	s.now = now
	return s
}

func (s *SurveyService) activeTenant(ctx context.Context) (string, error) {
	tenantID, err := s.tenants.ActiveID(ctx)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve active school")
	}
	return tenantID, nil
}

// List returns all surveys in the active tenant, drafts included.
func (s *SurveyService) List(ctx context.Context) ([]models.Survey, error) {
	tenantID, err := s.activeTenant(ctx)
	if err != nil {
		return nil, err
	}
	surveys, err := s.content.ListSurveys(ctx, tenantID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list surveys")
	}
	return surveys, nil
}

// ListPublished returns only published surveys, for the public intake view.
func (s *SurveyService) ListPublished(ctx context.Context) ([]models.Survey, error) {
	surveys, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	published := make([]models.Survey, 0, len(surveys))
	for _, survey := range surveys {
		if survey.Status == models.SurveyPublished {
			published = append(published, survey)
		}
	}
	return published, nil
}

// Get returns one survey by id.
func (s *SurveyService) Get(ctx context.Context, id string) (*models.Survey, error) {
	tenantID, err := s.activeTenant(ctx)
	if err != nil {
		return nil, err
	}
	survey, ok, err := s.content.GetSurvey(ctx, tenantID, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load survey")
	}
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "survey not found")
	}
	return survey, nil
}

// GetPublished returns one survey by id for public intake. Drafts are
// reported as absent rather than forbidden so their existence leaks nothing.
func (s *SurveyService) GetPublished(ctx context.Context, id string) (*models.Survey, error) {
	survey, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if survey.Status != models.SurveyPublished {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "survey not found")
	}
	return survey, nil
}

// Create adds a survey to the active tenant.
func (s *SurveyService) Create(ctx context.Context, req dto.SurveyRequest) (*models.Survey, error) {
	survey, err := s.surveyFromRequest(req)
	if err != nil {
		return nil, err
	}
	tenantID, err := s.activeTenant(ctx)
	if err != nil {
		return nil, err
	}
	survey.ID = uuid.NewString()
	survey.CreatedAt = s.now().UTC()
	if err := s.content.AddSurvey(ctx, tenantID, *survey); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create survey")
	}
	return survey, nil
}

// Update replaces the survey with the given id.
func (s *SurveyService) Update(ctx context.Context, id string, req dto.SurveyRequest) (*models.Survey, error) {
	survey, err := s.surveyFromRequest(req)
	if err != nil {
		return nil, err
	}
	tenantID, err := s.activeTenant(ctx)
	if err != nil {
		return nil, err
	}
	existing, ok, err := s.content.GetSurvey(ctx, tenantID, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load survey")
	}
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "survey not found")
	}
	survey.ID = id
	survey.CreatedAt = existing.CreatedAt
	if _, err := s.content.UpdateSurvey(ctx, tenantID, id, *survey); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update survey")
	}
	return survey, nil
}

// Delete removes a survey. Its recorded responses are retained; they simply
// stop resolving to a survey.
func (s *SurveyService) Delete(ctx context.Context, id string) error {
	tenantID, err := s.activeTenant(ctx)
	if err != nil {
		return err
	}
	ok, err := s.content.DeleteSurvey(ctx, tenantID, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete survey")
	}
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "survey not found")
	}
	return nil
}

// SubmitResponse records a submission against a published survey. Required
// questions must carry a non-empty answer and option-bound answers must name
// listed options.
func (s *SurveyService) SubmitResponse(ctx context.Context, surveyID string, req dto.ResponseRequest) (*models.SurveyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid response payload")
	}
	tenantID, err := s.activeTenant(ctx)
	if err != nil {
		return nil, err
	}
	survey, err := s.GetPublished(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if err := validateAnswers(survey, req.Answers); err != nil {
		return nil, err
	}
	response := models.SurveyResponse{
		ID:             uuid.NewString(),
		SurveyID:       surveyID,
		RespondentID:   req.RespondentID,
		RespondentName: req.RespondentName,
		IsAnonymous:    req.IsAnonymous,
		Answers:        req.Answers,
		SubmittedAt:    s.now().UTC(),
	}
	if response.IsAnonymous {
		response.RespondentID = nil
		response.RespondentName = nil
	}
	if err := s.content.AddResponse(ctx, tenantID, response); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record response")
	}
	s.logger.Info("survey response recorded",
		zap.String("survey_id", surveyID),
		zap.Bool("anonymous", response.IsAnonymous))
	return &response, nil
}

// Responses returns all submissions in the active tenant.
func (s *SurveyService) Responses(ctx context.Context) ([]models.SurveyResponse, error) {
	tenantID, err := s.activeTenant(ctx)
	if err != nil {
		return nil, err
	}
	responses, err := s.content.ListResponses(ctx, tenantID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list responses")
	}
	return responses, nil
}

// ResponsesForSurvey returns submissions against one survey.
func (s *SurveyService) ResponsesForSurvey(ctx context.Context, surveyID string) ([]models.SurveyResponse, error) {
	tenantID, err := s.activeTenant(ctx)
	if err != nil {
		return nil, err
	}
	responses, err := s.content.ListResponsesForSurvey(ctx, tenantID, surveyID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list responses")
	}
	return responses, nil
}

func (s *SurveyService) surveyFromRequest(req dto.SurveyRequest) (*models.Survey, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid survey payload")
	}
	questions := make([]models.Question, 0, len(req.Questions))
	for i, q := range req.Questions {
		if models.QuestionType(q.Type) == models.QuestionMultipleChoice && len(q.Options) == 0 {
			return nil, appErrors.Clone(appErrors.ErrValidation,
				fmt.Sprintf("question %d is multiple-choice but lists no options", i+1))
		}
		id := q.ID
		if id == "" {
			id = uuid.NewString()
		}
		questions = append(questions, models.Question{
			ID:       id,
			Type:     models.QuestionType(q.Type),
			Prompt:   q.Prompt,
			Options:  q.Options,
			Required: q.Required,
		})
	}
	return &models.Survey{
		Title:       req.Title,
		Description: req.Description,
		Status:      models.SurveyStatus(req.Status),
		Questions:   questions,
	}, nil
}

func validateAnswers(survey *models.Survey, answers map[string]models.Answer) error {
	known := make(map[string]models.Question, len(survey.Questions))
	for _, q := range survey.Questions {
		known[q.ID] = q
	}
	for id := range answers {
		if _, ok := known[id]; !ok {
			return appErrors.Clone(appErrors.ErrValidation,
				fmt.Sprintf("answer targets unknown question %q", id))
		}
	}
	for _, q := range survey.Questions {
		answer, answered := answers[q.ID]
		if !answered || len(answer.Values) == 0 || (len(answer.Values) == 1 && answer.Values[0] == "") {
			if q.Required {
				return appErrors.Clone(appErrors.ErrValidation,
					fmt.Sprintf("question %q requires an answer", q.Prompt))
			}
			continue
		}
		switch q.Type {
		case models.QuestionMultipleChoice:
			if err := checkOptions(q, answer.Values); err != nil {
				return err
			}
		case models.QuestionYesNo:
			if err := checkOptions(q, answer.Values); err != nil {
				return err
			}
		case models.QuestionRating:
			if err := checkRating(q, answer.Values); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkRating(q models.Question, values []string) error {
	for _, value := range values {
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 || n > 5 {
			return appErrors.Clone(appErrors.ErrValidation,
				fmt.Sprintf("answer %q is not a 1-5 rating for question %q", value, q.Prompt))
		}
	}
	return nil
}

func checkOptions(q models.Question, values []string) error {
	options := q.Options
	if q.Type == models.QuestionYesNo && len(options) == 0 {
		options = []string{"Yes", "No"}
	}
	for _, value := range values {
		found := false
		for _, option := range options {
			if option == value {
				found = true
				break
			}
		}
		if !found {
			return appErrors.Clone(appErrors.ErrValidation,
				fmt.Sprintf("answer %q is not an option of question %q", value, q.Prompt))
		}
	}
	return nil
}
