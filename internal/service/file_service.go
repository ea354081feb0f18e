package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/school-portal-api/internal/dto"
	"github.com/noah-isme/school-portal-api/internal/models"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
)

type fileRepository interface {
	ListFiles(ctx context.Context, tenantID string) ([]models.UploadedFile, error)
	AddFile(ctx context.Context, tenantID string, file models.UploadedFile) error
	DeleteFile(ctx context.Context, tenantID, id string) (bool, error)
}

type fileTenantResolver interface {
	ActiveID(ctx context.Context) (string, error)
}

// FileService manages uploaded-file records in the active tenant. Content is
// carried inline as data URLs, so a record is metadata plus its payload.
type FileService struct {
	files     fileRepository
	tenants   fileTenantResolver
	validator *validator.Validate
	logger    *zap.Logger
}

// NewFileService constructs a FileService.
func NewFileService(files fileRepository, tenants fileTenantResolver, validate *validator.Validate, logger *zap.Logger) *FileService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileService{files: files, tenants: tenants, validator: validate, logger: logger}
}

// List returns the active tenant's file records.
func (s *FileService) List(ctx context.Context) ([]models.UploadedFile, error) {
	tenantID, err := s.tenants.ActiveID(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve active school")
	}
	files, err := s.files.ListFiles(ctx, tenantID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list files")
	}
	return files, nil
}

// Create registers an upload. Base64 payloads are wrapped into a data URL;
// the declared size falls back to the decoded payload length when omitted.
func (s *FileService) Create(ctx context.Context, req dto.FileRequest) (*models.UploadedFile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid file payload")
	}
	if (req.Data == "") == (req.URL == "") {
		return nil, appErrors.Clone(appErrors.ErrValidation, "exactly one of data or url must be provided")
	}
	tenantID, err := s.tenants.ActiveID(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve active school")
	}
	url := req.URL
	size := req.Size
	if req.Data != "" {
		decoded, err := base64.StdEncoding.DecodeString(req.Data)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "data is not valid base64")
		}
		url = fmt.Sprintf("data:%s;base64,%s", req.Type, req.Data)
		if size == 0 {
			size = int64(len(decoded))
		}
	}
	file := models.UploadedFile{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Type:       req.Type,
		URL:        url,
		Size:       size,
		UploadedAt: time.Now().UTC(),
	}
	if err := s.files.AddFile(ctx, tenantID, file); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to register file")
	}
	s.logger.Info("file registered",
		zap.String("file_id", file.ID),
		zap.String("name", file.Name),
		zap.Int64("size", file.Size))
	return &file, nil
}

// Delete removes a file record from the active tenant.
func (s *FileService) Delete(ctx context.Context, id string) error {
	tenantID, err := s.tenants.ActiveID(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve active school")
	}
	ok, err := s.files.DeleteFile(ctx, tenantID, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete file")
	}
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "file not found")
	}
	return nil
}
