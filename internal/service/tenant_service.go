package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/school-portal-api/internal/dto"
	"github.com/noah-isme/school-portal-api/internal/models"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
)

type tenantRegistry interface {
	List(ctx context.Context) ([]models.Tenant, error)
	GetByID(ctx context.Context, id string) (*models.Tenant, bool, error)
	ActiveID(ctx context.Context) (string, error)
	SetActiveID(ctx context.Context, id string) error
	Create(ctx context.Context, tenant models.Tenant) error
	Update(ctx context.Context, id string, tenant models.Tenant) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type brandingStore interface {
	GetBranding(ctx context.Context, tenantID string) (*models.Branding, bool, error)
	SaveBranding(ctx context.Context, tenantID string, branding models.Branding) error
}

// TenantService manages the school registry, the active-tenant switch, and
// the active tenant's branding record.
type TenantService struct {
	tenants   tenantRegistry
	branding  brandingStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTenantService constructs a TenantService.
func NewTenantService(tenants tenantRegistry, branding brandingStore, validate *validator.Validate, logger *zap.Logger) *TenantService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TenantService{tenants: tenants, branding: branding, validator: validate, logger: logger}
}

// List returns all tenants in insertion order.
func (s *TenantService) List(ctx context.Context) ([]models.Tenant, error) {
	tenants, err := s.tenants.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list schools")
	}
	return tenants, nil
}

// Active returns the currently active tenant.
func (s *TenantService) Active(ctx context.Context) (*models.Tenant, error) {
	id, err := s.tenants.ActiveID(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve active school")
	}
	tenant, ok, err := s.tenants.GetByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load active school")
	}
	if !ok {
		// The persisted choice points at a deleted tenant; fall back to the
		// first remaining one.
		tenants, err := s.tenants.List(ctx)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list schools")
		}
		first := tenants[0]
		if err := s.tenants.SetActiveID(ctx, first.ID); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reset active school")
		}
		return &first, nil
	}
	return tenant, nil
}

// SetActive switches the active tenant. Downstream state is simply re-read
// under the new identifier; any session bound to another tenant becomes
// invalid on its next read.
func (s *TenantService) SetActive(ctx context.Context, req dto.SetActiveTenantRequest) (*models.Tenant, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid switch payload")
	}
	tenant, ok, err := s.tenants.GetByID(ctx, req.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load school")
	}
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "school not found")
	}
	if err := s.tenants.SetActiveID(ctx, req.ID); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to switch school")
	}
	s.logger.Info("active school switched", zap.String("school_id", req.ID))
	return tenant, nil
}

// Create registers a new tenant.
func (s *TenantService) Create(ctx context.Context, req dto.TenantRequest) (*models.Tenant, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid school payload")
	}
	tenant := tenantFromRequest(req)
	tenant.ID = uuid.NewString()
	tenant.CreatedAt = time.Now().UTC()
	if err := s.tenants.Create(ctx, tenant); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, "failed to create school")
	}
	return &tenant, nil
}

// Update replaces the tenant with the given id.
func (s *TenantService) Update(ctx context.Context, id string, req dto.TenantRequest) (*models.Tenant, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid school payload")
	}
	existing, ok, err := s.tenants.GetByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load school")
	}
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "school not found")
	}
	tenant := tenantFromRequest(req)
	tenant.ID = id
	tenant.CreatedAt = existing.CreatedAt
	if _, err := s.tenants.Update(ctx, id, tenant); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update school")
	}
	return &tenant, nil
}

// Delete removes a tenant. At least one tenant must always exist; deleting
// the last one is rejected and leaves state unchanged.
func (s *TenantService) Delete(ctx context.Context, id string) error {
	tenants, err := s.tenants.List(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list schools")
	}
	if len(tenants) <= 1 {
		return appErrors.Clone(appErrors.ErrLastTenant, "")
	}
	ok, err := s.tenants.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete school")
	}
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "school not found")
	}
	return nil
}

// Branding returns the active tenant's theme, falling back to the registry
// record when no branding document has been saved yet.
func (s *TenantService) Branding(ctx context.Context) (*models.Branding, error) {
	tenant, err := s.Active(ctx)
	if err != nil {
		return nil, err
	}
	branding, ok, err := s.branding.GetBranding(ctx, tenant.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load branding")
	}
	if !ok {
		fallback := models.BrandingOf(*tenant)
		if err := s.branding.SaveBranding(ctx, tenant.ID, fallback); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to seed branding")
		}
		return &fallback, nil
	}
	return branding, nil
}

// SaveBranding replaces the active tenant's theme.
func (s *TenantService) SaveBranding(ctx context.Context, req dto.BrandingRequest) (*models.Branding, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid branding payload")
	}
	tenant, err := s.Active(ctx)
	if err != nil {
		return nil, err
	}
	branding := models.Branding{
		Name:           req.Name,
		Logo:           req.Logo,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		Tagline:        req.Tagline,
		Template:       req.Template,
		Font:           req.Font,
	}
	if err := s.branding.SaveBranding(ctx, tenant.ID, branding); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save branding")
	}
	return &branding, nil
}

func tenantFromRequest(req dto.TenantRequest) models.Tenant {
	template := req.Template
	if template == "" {
		template = "modern"
	}
	font := req.Font
	if font == "" {
		font = "inter"
	}
	return models.Tenant{
		Name:           req.Name,
		Logo:           req.Logo,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		Tagline:        req.Tagline,
		Template:       template,
		Font:           font,
	}
}
