package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-portal-api/internal/dto"
	"github.com/noah-isme/school-portal-api/internal/service"
	"github.com/noah-isme/school-portal-api/internal/store"
	"github.com/noah-isme/school-portal-api/pkg/kvstore"
)

type responseEnvelope struct {
	Data  json.RawMessage        `json:"data"`
	Error *envelopeError         `json:"error"`
	Meta  map[string]interface{} `json:"meta"`
}

type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newAuthFixture(t *testing.T) (*AuthHandler, *service.AuthService) {
	t.Helper()
	kv := kvstore.NewMemory()
	auth := service.NewAuthService(
		store.NewTenantStore(kv),
		store.NewCredentialStore(kv),
		store.NewSessionStore(kv),
		nil, nil,
		service.AuthConfig{TokenSecret: "test-secret"},
	)
	return NewAuthHandler(auth, nil), auth
}

func loginAs(auth *service.AuthService, email, secret string) (*dto.LoginResponse, error) {
	return auth.Login(context.Background(), dto.LoginRequest{Email: email, Secret: secret})
}

func postJSON(t *testing.T, body interface{}) *http.Request {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestAuthHandlerLoginSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler, _ := newAuthFixture(t)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = postJSON(t, map[string]string{
		"email":  store.SeedAdminEmail,
		"secret": store.SeedAdminSecret,
	})

	handler.Login(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	var login struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &login))
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, store.SeedAdminEmail, login.User.Email)
	assert.Equal(t, "ADMIN", login.User.Role)
}

func TestAuthHandlerLoginRejectsWrongSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler, _ := newAuthFixture(t)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = postJSON(t, map[string]string{
		"email":  store.SeedAdminEmail,
		"secret": "wrong",
	})

	handler.Login(c)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", envelope.Error.Code)
}

func TestAuthHandlerLoginRejectsMalformedPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler, _ := newAuthFixture(t)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString("{not json"))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Login(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandlerMeWithoutSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler, _ := newAuthFixture(t)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/auth/me", nil)

	handler.Me(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandlerMeAfterLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler, auth := newAuthFixture(t)

	_, err := loginAs(auth, store.SeedTeacherEmail, store.SeedTeacherSecret)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/auth/me", nil)

	handler.Me(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	var identity struct {
		Email  string `json:"email"`
		Secret string `json:"secret"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &identity))
	assert.Equal(t, store.SeedTeacherEmail, identity.Email)
	assert.Empty(t, identity.Secret)
}

func TestAuthHandlerGuardAnonymousRedirectsToLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler, _ := newAuthFixture(t)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/auth/guard?roles=ADMIN", nil)

	handler.Guard(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	var decision struct {
		Allow    bool   `json:"allow"`
		Redirect string `json:"redirect"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &decision))
	assert.False(t, decision.Allow)
	assert.Equal(t, "/login", decision.Redirect)
}

func TestAuthHandlerGuardRejectsUnknownRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler, _ := newAuthFixture(t)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/auth/guard?roles=SUPERUSER", nil)

	handler.Guard(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
