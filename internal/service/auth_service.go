package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/noah-isme/school-portal-api/internal/dto"
	"github.com/noah-isme/school-portal-api/internal/models"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
)

type authTenantResolver interface {
	ActiveID(ctx context.Context) (string, error)
}

type authCredentialValidator interface {
	Validate(ctx context.Context, email, secret, tenantID string) (*models.UserInfo, bool, error)
}

type authSessionStore interface {
	Get(ctx context.Context) (*models.Session, bool, error)
	Put(ctx context.Context, session models.Session) error
	Delete(ctx context.Context) error
}

// AuthConfig defines configuration for the session manager.
type AuthConfig struct {
	TokenSecret string
	TokenExpiry time.Duration
	Issuer      string
}

// AuthService is the session manager: it mints tokens on successful login,
// persists the single active session, and treats expired, malformed, or
// tenant-mismatched sessions as signed-out.
type AuthService struct {
	tenants   authTenantResolver
	creds     authCredentialValidator
	sessions  authSessionStore
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
	now       func() time.Time
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(tenants authTenantResolver, creds authCredentialValidator, sessions authSessionStore, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if config.TokenExpiry <= 0 {
		config.TokenExpiry = 24 * time.Hour
	}
	return &AuthService{
		tenants:   tenants,
		creds:     creds,
		sessions:  sessions,
		validator: validate,
		logger:    logger,
		config:    config,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source. Test helper.
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}

// Login validates the credentials against the active tenant and, on
// success, persists a fresh session. A failed attempt leaves any existing
// session untouched.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	tenantID, err := s.tenants.ActiveID(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve active school")
	}

	identity, ok, err := s.creds.Validate(ctx, req.Email, req.Secret, tenantID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate credentials")
	}
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid email or password")
	}

	token, issuedAt, expiresAt, err := s.generateToken(*identity)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create session token")
	}

	session := models.Session{
		Token:     token,
		User:      *identity,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}
	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist session")
	}

	return &dto.LoginResponse{
		Token:     token,
		User:      *identity,
		ExpiresAt: expiresAt,
		IssuedAt:  issuedAt,
	}, nil
}

// Logout discards the persisted session unconditionally.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessions.Delete(ctx); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to discard session")
	}
	return nil
}

// CurrentUser returns the signed-in identity, or nil when there is no valid
// session. An expired or malformed record, or one bound to a tenant other
// than the active one, is discarded and reported as signed-out.
func (s *AuthService) CurrentUser(ctx context.Context) (*models.UserInfo, error) {
	session, ok, err := s.sessions.Get(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load session")
	}
	if !ok {
		return nil, nil
	}

	if session.Expired(s.now()) {
		s.discard(ctx)
		return nil, nil
	}

	claims, err := s.parseToken(session.Token)
	if err != nil {
		s.discard(ctx)
		return nil, nil
	}

	tenantID, err := s.tenants.ActiveID(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve active school")
	}
	if claims.TenantID != tenantID {
		s.discard(ctx)
		return nil, nil
	}

	return &session.User, nil
}

// HasRole reports whether the current identity holds the given role.
func (s *AuthService) HasRole(ctx context.Context, role models.Role) (bool, error) {
	return s.HasAnyRole(ctx, role)
}

// HasAnyRole reports whether the current identity holds any of the roles.
func (s *AuthService) HasAnyRole(ctx context.Context, roles ...models.Role) (bool, error) {
	identity, err := s.CurrentUser(ctx)
	if err != nil {
		return false, err
	}
	if identity == nil {
		return false, nil
	}
	for _, role := range roles {
		if identity.Role == role {
			return true, nil
		}
	}
	return false, nil
}

// ValidateToken verifies a bearer token's signature and expiry and checks
// that it is bound to the currently active tenant.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*models.JWTClaims, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid token")
	}

	tenantID, err := s.tenants.ActiveID(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve active school")
	}
	if claims.TenantID != tenantID {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "session is bound to another school")
	}

	return claims, nil
}

func (s *AuthService) discard(ctx context.Context) {
	if err := s.sessions.Delete(ctx); err != nil {
		s.logger.Warn("failed to discard stale session", zap.Error(err))
	}
}

func (s *AuthService) generateToken(identity models.UserInfo) (string, time.Time, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.config.TokenExpiry)
	claims := &models.JWTClaims{
		UserID:   identity.ID,
		Email:    identity.Email,
		Name:     identity.Name,
		Role:     identity.Role,
		TenantID: identity.TenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   identity.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.TokenSecret))
	if err != nil {
		return "", time.Time{}, time.Time{}, err
	}
	return signed, issuedAt, expiresAt, nil
}

func (s *AuthService) parseToken(tokenString string) (*models.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.TokenSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
