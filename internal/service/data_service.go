package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/school-portal-api/internal/models"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
)

type contentRepository interface {
	GetBranding(ctx context.Context, tenantID string) (*models.Branding, bool, error)
	SaveBranding(ctx context.Context, tenantID string, branding models.Branding) error
	ListSurveys(ctx context.Context, tenantID string) ([]models.Survey, error)
	SaveSurveys(ctx context.Context, tenantID string, surveys []models.Survey) error
	ListFiles(ctx context.Context, tenantID string) ([]models.UploadedFile, error)
	SaveFiles(ctx context.Context, tenantID string, files []models.UploadedFile) error
	ListResponses(ctx context.Context, tenantID string) ([]models.SurveyResponse, error)
	SaveResponses(ctx context.Context, tenantID string, responses []models.SurveyResponse) error
}

type dataTenantResolver interface {
	ActiveID(ctx context.Context) (string, error)
	GetByID(ctx context.Context, id string) (*models.Tenant, bool, error)
}

type storeWiper interface {
	Clear(ctx context.Context) error
}

// DataService provides the bulk surface: whole-tenant export, sectioned
// import, and the full factory reset.
type DataService struct {
	content contentRepository
	tenants dataTenantResolver
	wiper   storeWiper
	logger  *zap.Logger
	now     func() time.Time
}

// NewDataService constructs a DataService. wiper is the raw storage backend;
// Wipe clears it wholesale.
func NewDataService(content contentRepository, tenants dataTenantResolver, wiper storeWiper, logger *zap.Logger) *DataService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DataService{content: content, tenants: tenants, wiper: wiper, logger: logger, now: time.Now}
}

// WithClock overrides the service clock. Test hook.
func (s *DataService) WithClock(now func() time.Time) *DataService {
	s.now = now
	return s
}

// Export snapshots the active tenant's content into a transferable document.
// All four sections are always present in an export.
func (s *DataService) Export(ctx context.Context) (*models.ExportDocument, error) {
	tenantID, err := s.tenants.ActiveID(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve active school")
	}
	branding, ok, err := s.content.GetBranding(ctx, tenantID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load branding")
	}
	if !ok {
		tenant, found, err := s.tenants.GetByID(ctx, tenantID)
		if err != nil || !found {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load active school")
		}
		fallback := models.BrandingOf(*tenant)
		branding = &fallback
	}
	surveys, err := s.content.ListSurveys(ctx, tenantID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list surveys")
	}
	files, err := s.content.ListFiles(ctx, tenantID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list files")
	}
	responses, err := s.content.ListResponses(ctx, tenantID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list responses")
	}
	return &models.ExportDocument{
		Version:    models.ExportVersion,
		Branding:   branding,
		Surveys:    &surveys,
		Files:      &files,
		Responses:  &responses,
		ExportedAt: s.now().UTC(),
	}, nil
}

// Import applies a document to the active tenant. Every present section is
// validated before any section is written, so a malformed document leaves
// stored state untouched. Absent sections are skipped.
func (s *DataService) Import(ctx context.Context, doc models.ExportDocument) error {
	if err := validateImport(doc); err != nil {
		return err
	}
	tenantID, err := s.tenants.ActiveID(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve active school")
	}
	if doc.Branding != nil {
		if err := s.content.SaveBranding(ctx, tenantID, *doc.Branding); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to import branding")
		}
	}
	if doc.Surveys != nil {
		if err := s.content.SaveSurveys(ctx, tenantID, *doc.Surveys); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to import surveys")
		}
	}
	if doc.Files != nil {
		if err := s.content.SaveFiles(ctx, tenantID, *doc.Files); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to import files")
		}
	}
	if doc.Responses != nil {
		if err := s.content.SaveResponses(ctx, tenantID, *doc.Responses); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to import responses")
		}
	}
	s.logger.Info("data imported", zap.String("school_id", tenantID))
	return nil
}

// Wipe clears every stored record, tenants, credentials, sessions, and
// content alike. The next reads re-seed the documented defaults.
func (s *DataService) Wipe(ctx context.Context) error {
	if err := s.wiper.Clear(ctx); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to wipe data")
	}
	s.logger.Warn("all portal data wiped")
	return nil
}

func validateImport(doc models.ExportDocument) error {
	if doc.Version != models.ExportVersion {
		return appErrors.Clone(appErrors.ErrInvalidImport,
			fmt.Sprintf("unsupported document version %d", doc.Version))
	}
	if doc.Branding == nil && doc.Surveys == nil && doc.Files == nil && doc.Responses == nil {
		return appErrors.Clone(appErrors.ErrInvalidImport, "document carries no sections")
	}
	if doc.Branding != nil && doc.Branding.Name == "" {
		return appErrors.Clone(appErrors.ErrInvalidImport, "branding section is missing a name")
	}
	if doc.Surveys != nil {
		for i, survey := range *doc.Surveys {
			if survey.ID == "" || survey.Title == "" {
				return appErrors.Clone(appErrors.ErrInvalidImport,
					fmt.Sprintf("survey %d is missing id or title", i+1))
			}
			if survey.Status != models.SurveyDraft && survey.Status != models.SurveyPublished {
				return appErrors.Clone(appErrors.ErrInvalidImport,
					fmt.Sprintf("survey %q has unknown status %q", survey.ID, survey.Status))
			}
			for _, q := range survey.Questions {
				if q.ID == "" || !models.ValidQuestionType(q.Type) {
					return appErrors.Clone(appErrors.ErrInvalidImport,
						fmt.Sprintf("survey %q has a malformed question", survey.ID))
				}
			}
		}
	}
	if doc.Files != nil {
		for i, file := range *doc.Files {
			if file.ID == "" || file.Name == "" {
				return appErrors.Clone(appErrors.ErrInvalidImport,
					fmt.Sprintf("file %d is missing id or name", i+1))
			}
		}
	}
	if doc.Responses != nil {
		for i, response := range *doc.Responses {
			if response.ID == "" || response.SurveyID == "" {
				return appErrors.Clone(appErrors.ErrInvalidImport,
					fmt.Sprintf("response %d is missing id or survey id", i+1))
			}
		}
	}
	return nil
}
