package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-portal-api/internal/middleware"
	"github.com/noah-isme/school-portal-api/internal/models"
	"github.com/noah-isme/school-portal-api/internal/service"
	"github.com/noah-isme/school-portal-api/internal/store"
	"github.com/noah-isme/school-portal-api/pkg/kvstore"
)

func newUserFixture(t *testing.T) *UserHandler {
	t.Helper()
	kv := kvstore.NewMemory()
	users := service.NewUserService(store.NewCredentialStore(kv), store.NewTenantStore(kv), nil, nil)
	return NewUserHandler(users)
}

func TestUserHandlerListRedactsSecrets(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newUserFixture(t)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/users", nil)

	handler.List(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	var listed []map[string]interface{}
	require.NoError(t, json.Unmarshal(envelope.Data, &listed))
	require.Len(t, listed, 3)
	for _, record := range listed {
		assert.NotContains(t, record, "secret")
	}
}

func TestUserHandlerListWithSecretsRequiresAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newUserFixture(t)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/users?include_secrets=true", nil)
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "t1", Role: models.RoleTeacher})

	handler.List(c)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUserHandlerListWithSecretsAsAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newUserFixture(t)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/users?include_secrets=true", nil)
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "a1", Role: models.RoleAdmin})

	handler.List(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	var listed []map[string]interface{}
	require.NoError(t, json.Unmarshal(envelope.Data, &listed))
	require.Len(t, listed, 3)
	assert.Equal(t, store.SeedAdminSecret, listed[0]["secret"])
}

func TestUserHandlerDeleteLastUserConflicts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	kv := kvstore.NewMemory()
	creds := store.NewCredentialStore(kv)
	users := service.NewUserService(creds, store.NewTenantStore(kv), nil, nil)
	handler := NewUserHandler(users)

	listed, err := users.ListFull(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 3)
	require.NoError(t, users.Delete(context.Background(), listed[1].ID))
	require.NoError(t, users.Delete(context.Background(), listed[2].ID))

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodDelete, "/users/"+listed[0].ID, nil)
	c.Params = gin.Params{{Key: "id", Value: listed[0].ID}}

	handler.Delete(c)

	require.Equal(t, http.StatusConflict, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "LAST_USER", envelope.Error.Code)
}
