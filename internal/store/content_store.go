package store

import (
	"context"

	"github.com/noah-isme/school-portal-api/pkg/kvstore"

	"github.com/noah-isme/school-portal-api/internal/models"
)

// ContentStore persists branding, surveys, files, and responses per tenant.
// Every operation takes the owning tenant id explicitly; nothing here reads
// an ambient "current tenant".
type ContentStore struct {
	kv       kvstore.Store
	seedDemo bool
}

// NewContentStore creates a content store. When seedDemo is set, a tenant's
// first survey/file access installs the fixed demonstration dataset.
func NewContentStore(kv kvstore.Store, seedDemo bool) *ContentStore {
	return &ContentStore{kv: kv, seedDemo: seedDemo}
}

// GetBranding returns the tenant's stored branding record, reporting
// presence. Callers fall back to the tenant registry fields when absent.
func (s *ContentStore) GetBranding(ctx context.Context, tenantID string) (*models.Branding, bool, error) {
	var branding models.Branding
	ok, err := getJSON(ctx, s.kv, brandingKey(tenantID), &branding)
	if err != nil || !ok {
		return nil, false, err
	}
	return &branding, true, nil
}

// SaveBranding replaces the tenant's branding record.
func (s *ContentStore) SaveBranding(ctx context.Context, tenantID string, branding models.Branding) error {
	return setJSON(ctx, s.kv, brandingKey(tenantID), branding)
}

// ListSurveys returns the tenant's surveys, installing the demonstration
// dataset on first access.
func (s *ContentStore) ListSurveys(ctx context.Context, tenantID string) ([]models.Survey, error) {
	var surveys []models.Survey
	ok, err := getJSON(ctx, s.kv, surveysKey(tenantID), &surveys)
	if err != nil {
		return nil, err
	}
	if !ok {
		if s.seedDemo {
			surveys = demoSurveys()
		} else {
			surveys = []models.Survey{}
		}
		if err := setJSON(ctx, s.kv, surveysKey(tenantID), surveys); err != nil {
			return nil, err
		}
	}
	return surveys, nil
}

// SaveSurveys replaces the tenant's survey list wholesale.
func (s *ContentStore) SaveSurveys(ctx context.Context, tenantID string, surveys []models.Survey) error {
	if surveys == nil {
		surveys = []models.Survey{}
	}
	return setJSON(ctx, s.kv, surveysKey(tenantID), surveys)
}

// AddSurvey appends a survey.
func (s *ContentStore) AddSurvey(ctx context.Context, tenantID string, survey models.Survey) error {
	surveys, err := s.ListSurveys(ctx, tenantID)
	if err != nil {
		return err
	}
	return s.SaveSurveys(ctx, tenantID, append(surveys, survey))
}

// UpdateSurvey replaces the survey with the given id, reporting presence.
func (s *ContentStore) UpdateSurvey(ctx context.Context, tenantID, id string, survey models.Survey) (bool, error) {
	surveys, err := s.ListSurveys(ctx, tenantID)
	if err != nil {
		return false, err
	}
	for i := range surveys {
		if surveys[i].ID == id {
			survey.ID = id
			surveys[i] = survey
			return true, s.SaveSurveys(ctx, tenantID, surveys)
		}
	}
	return false, nil
}

// DeleteSurvey removes the survey with the given id, reporting presence.
func (s *ContentStore) DeleteSurvey(ctx context.Context, tenantID, id string) (bool, error) {
	surveys, err := s.ListSurveys(ctx, tenantID)
	if err != nil {
		return false, err
	}
	remaining := make([]models.Survey, 0, len(surveys))
	found := false
	for _, survey := range surveys {
		if survey.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, survey)
	}
	if !found {
		return false, nil
	}
	return true, s.SaveSurveys(ctx, tenantID, remaining)
}

// GetSurvey returns the survey with the given id, reporting presence.
func (s *ContentStore) GetSurvey(ctx context.Context, tenantID, id string) (*models.Survey, bool, error) {
	surveys, err := s.ListSurveys(ctx, tenantID)
	if err != nil {
		return nil, false, err
	}
	for i := range surveys {
		if surveys[i].ID == id {
			return &surveys[i], true, nil
		}
	}
	return nil, false, nil
}

// ListFiles returns the tenant's uploaded-file records, installing the
// demonstration dataset on first access.
func (s *ContentStore) ListFiles(ctx context.Context, tenantID string) ([]models.UploadedFile, error) {
	var files []models.UploadedFile
	ok, err := getJSON(ctx, s.kv, filesKey(tenantID), &files)
	if err != nil {
		return nil, err
	}
	if !ok {
		if s.seedDemo {
			files = demoFiles()
		} else {
			files = []models.UploadedFile{}
		}
		if err := setJSON(ctx, s.kv, filesKey(tenantID), files); err != nil {
			return nil, err
		}
	}
	return files, nil
}

// SaveFiles replaces the tenant's file list wholesale.
func (s *ContentStore) SaveFiles(ctx context.Context, tenantID string, files []models.UploadedFile) error {
	if files == nil {
		files = []models.UploadedFile{}
	}
	return setJSON(ctx, s.kv, filesKey(tenantID), files)
}

// AddFile appends an uploaded-file record.
func (s *ContentStore) AddFile(ctx context.Context, tenantID string, file models.UploadedFile) error {
	files, err := s.ListFiles(ctx, tenantID)
	if err != nil {
		return err
	}
	return s.SaveFiles(ctx, tenantID, append(files, file))
}

// DeleteFile removes the record with the given id, reporting presence.
func (s *ContentStore) DeleteFile(ctx context.Context, tenantID, id string) (bool, error) {
	files, err := s.ListFiles(ctx, tenantID)
	if err != nil {
		return false, err
	}
	remaining := make([]models.UploadedFile, 0, len(files))
	found := false
	for _, file := range files {
		if file.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, file)
	}
	if !found {
		return false, nil
	}
	return true, s.SaveFiles(ctx, tenantID, remaining)
}

// ListResponses returns the tenant's submitted responses. Responses are
// append-only; there is no update or delete surface.
func (s *ContentStore) ListResponses(ctx context.Context, tenantID string) ([]models.SurveyResponse, error) {
	var responses []models.SurveyResponse
	ok, err := getJSON(ctx, s.kv, responsesKey(tenantID), &responses)
	if err != nil {
		return nil, err
	}
	if !ok {
		responses = []models.SurveyResponse{}
		if err := setJSON(ctx, s.kv, responsesKey(tenantID), responses); err != nil {
			return nil, err
		}
	}
	return responses, nil
}

// SaveResponses replaces the tenant's response list wholesale. Only bulk
// import uses this; the submission path goes through AddResponse.
func (s *ContentStore) SaveResponses(ctx context.Context, tenantID string, responses []models.SurveyResponse) error {
	if responses == nil {
		responses = []models.SurveyResponse{}
	}
	return setJSON(ctx, s.kv, responsesKey(tenantID), responses)
}

// AddResponse appends a submission.
func (s *ContentStore) AddResponse(ctx context.Context, tenantID string, response models.SurveyResponse) error {
	responses, err := s.ListResponses(ctx, tenantID)
	if err != nil {
		return err
	}
	return s.SaveResponses(ctx, tenantID, append(responses, response))
}

// ListResponsesForSurvey filters the tenant's responses by owning survey.
func (s *ContentStore) ListResponsesForSurvey(ctx context.Context, tenantID, surveyID string) ([]models.SurveyResponse, error) {
	responses, err := s.ListResponses(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	matched := make([]models.SurveyResponse, 0, len(responses))
	for _, response := range responses {
		if response.SurveyID == surveyID {
			matched = append(matched, response)
		}
	}
	return matched, nil
}
