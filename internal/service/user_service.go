package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/school-portal-api/internal/dto"
	"github.com/noah-isme/school-portal-api/internal/models"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
)

type credentialRepository interface {
	ListForTenant(ctx context.Context, tenantID string) ([]models.User, error)
	Add(ctx context.Context, user models.User) error
	Update(ctx context.Context, id string, user models.User) (bool, error)
	Delete(ctx context.Context, id, tenantID string) (bool, error)
}

type userTenantResolver interface {
	ActiveID(ctx context.Context) (string, error)
}

// UserService manages credential records within the active tenant.
type UserService struct {
	credentials credentialRepository
	tenants     userTenantResolver
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewUserService constructs a UserService.
func NewUserService(credentials credentialRepository, tenants userTenantResolver, validate *validator.Validate, logger *zap.Logger) *UserService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{credentials: credentials, tenants: tenants, validator: validate, logger: logger}
}

// List returns the active tenant's accounts with secrets stripped.
func (s *UserService) List(ctx context.Context) ([]models.UserInfo, error) {
	tenantID, err := s.tenants.ActiveID(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve active school")
	}
	records, err := s.credentials.ListForTenant(ctx, tenantID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list users")
	}
	infos := make([]models.UserInfo, 0, len(records))
	for _, record := range records {
		infos = append(infos, record.Public())
	}
	return infos, nil
}

// ListFull returns the active tenant's accounts with secrets included. The
// caller is responsible for restricting this to administrators.
func (s *UserService) ListFull(ctx context.Context) ([]models.User, error) {
	tenantID, err := s.tenants.ActiveID(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve active school")
	}
	records, err := s.credentials.ListForTenant(ctx, tenantID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list users")
	}
	return records, nil
}

// Create adds a new account to the active tenant. Emails are unique within
// the tenant, compared case-insensitively.
func (s *UserService) Create(ctx context.Context, req dto.UserRequest) (*models.UserInfo, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid user payload")
	}
	tenantID, err := s.tenants.ActiveID(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve active school")
	}
	records, err := s.credentials.ListForTenant(ctx, tenantID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list users")
	}
	for _, record := range records {
		if strings.EqualFold(record.Email, req.Email) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "email already registered")
		}
	}
	user := models.User{
		ID:        uuid.NewString(),
		Email:     req.Email,
		Name:      req.Name,
		Secret:    req.Secret,
		Role:      models.Role(req.Role),
		TenantID:  tenantID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.credentials.Add(ctx, user); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create user")
	}
	info := user.Public()
	return &info, nil
}

// Update replaces the account with the given id in the active tenant.
func (s *UserService) Update(ctx context.Context, id string, req dto.UserRequest) (*models.UserInfo, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid user payload")
	}
	tenantID, err := s.tenants.ActiveID(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve active school")
	}
	records, err := s.credentials.ListForTenant(ctx, tenantID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list users")
	}
	var existing *models.User
	for i := range records {
		if records[i].ID == id {
			existing = &records[i]
			continue
		}
		if strings.EqualFold(records[i].Email, req.Email) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "email already registered")
		}
	}
	if existing == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}
	user := models.User{
		ID:        id,
		Email:     req.Email,
		Name:      req.Name,
		Secret:    req.Secret,
		Role:      models.Role(req.Role),
		TenantID:  tenantID,
		CreatedAt: existing.CreatedAt,
	}
	if _, err := s.credentials.Update(ctx, id, user); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update user")
	}
	info := user.Public()
	return &info, nil
}

// Delete removes an account from the active tenant. Each tenant keeps at
// least one account; deleting the last one is rejected.
func (s *UserService) Delete(ctx context.Context, id string) error {
	tenantID, err := s.tenants.ActiveID(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve active school")
	}
	records, err := s.credentials.ListForTenant(ctx, tenantID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list users")
	}
	if len(records) <= 1 {
		return appErrors.Clone(appErrors.ErrLastUser, "")
	}
	ok, err := s.credentials.Delete(ctx, id, tenantID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete user")
	}
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}
	return nil
}
