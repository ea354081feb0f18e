package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-portal-api/internal/models"
	"github.com/noah-isme/school-portal-api/internal/store"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
	"github.com/noah-isme/school-portal-api/pkg/kvstore"
)

type dataFixture struct {
	kv      *kvstore.Memory
	tenants *store.TenantStore
	content *store.ContentStore
	service *DataService
}

func newDataFixture(t *testing.T, seedDemo bool) *dataFixture {
	t.Helper()
	kv := kvstore.NewMemory()
	tenants := store.NewTenantStore(kv)
	content := store.NewContentStore(kv, seedDemo)
	return &dataFixture{
		kv:      kv,
		tenants: tenants,
		content: content,
		service: NewDataService(content, tenants, kv, nil),
	}
}

func TestExportCarriesAllSections(t *testing.T) {
	ctx := context.Background()
	f := newDataFixture(t, true)

	doc, err := f.service.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ExportVersion, doc.Version)
	require.NotNil(t, doc.Branding)
	assert.Equal(t, "Riverside High School", doc.Branding.Name)
	require.NotNil(t, doc.Surveys)
	assert.Len(t, *doc.Surveys, 3)
	require.NotNil(t, doc.Files)
	assert.Len(t, *doc.Files, 5)
	require.NotNil(t, doc.Responses)
	assert.Empty(t, *doc.Responses)
	assert.False(t, doc.ExportedAt.IsZero())
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	source := newDataFixture(t, true)

	require.NoError(t, source.content.AddResponse(ctx, store.DefaultTenantID, models.SurveyResponse{
		ID:          "r1",
		SurveyID:    "1",
		IsAnonymous: true,
		Answers:     map[string]models.Answer{"q1": models.SingleAnswer("5")},
	}))

	doc, err := source.service.Export(ctx)
	require.NoError(t, err)

	target := newDataFixture(t, false)
	require.NoError(t, target.service.Import(ctx, *doc))

	reExported, err := target.service.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, doc.Branding, reExported.Branding)
	assert.Equal(t, doc.Surveys, reExported.Surveys)
	assert.Equal(t, doc.Files, reExported.Files)
	assert.Equal(t, doc.Responses, reExported.Responses)
}

func TestImportAppliesOnlyPresentSections(t *testing.T) {
	ctx := context.Background()
	f := newDataFixture(t, true)

	before, err := f.content.ListFiles(ctx, store.DefaultTenantID)
	require.NoError(t, err)
	require.NotEmpty(t, before)

	surveys := []models.Survey{{ID: "s1", Title: "Imported", Status: models.SurveyPublished}}
	doc := models.ExportDocument{Version: models.ExportVersion, Surveys: &surveys}
	require.NoError(t, f.service.Import(ctx, doc))

	after, err := f.content.ListSurveys(ctx, store.DefaultTenantID)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, "Imported", after[0].Title)

	// Files were not in the document and are untouched.
	files, err := f.content.ListFiles(ctx, store.DefaultTenantID)
	require.NoError(t, err)
	assert.Equal(t, before, files)
}

func TestImportMalformedDocumentAppliesNothing(t *testing.T) {
	ctx := context.Background()
	f := newDataFixture(t, true)

	before, err := f.service.Export(ctx)
	require.NoError(t, err)

	branding := models.Branding{Name: "New Name"}
	surveys := []models.Survey{{ID: "", Title: "Broken"}}
	doc := models.ExportDocument{Version: models.ExportVersion, Branding: &branding, Surveys: &surveys}

	err = f.service.Import(ctx, doc)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidImport.Code, appErrors.FromError(err).Code)

	// The valid branding section was not applied either.
	after, err := f.service.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.Branding, after.Branding)
	assert.Equal(t, before.Surveys, after.Surveys)
}

func TestImportRejectsWrongVersion(t *testing.T) {
	ctx := context.Background()
	f := newDataFixture(t, false)

	branding := models.Branding{Name: "X"}
	err := f.service.Import(ctx, models.ExportDocument{Version: 99, Branding: &branding})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidImport.Code, appErrors.FromError(err).Code)
}

func TestImportRejectsEmptyDocument(t *testing.T) {
	ctx := context.Background()
	f := newDataFixture(t, false)

	err := f.service.Import(ctx, models.ExportDocument{Version: models.ExportVersion})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidImport.Code, appErrors.FromError(err).Code)
}

func TestWipeClearsEverythingAndDefaultsReseed(t *testing.T) {
	ctx := context.Background()
	f := newDataFixture(t, true)

	_, err := f.content.ListSurveys(ctx, store.DefaultTenantID)
	require.NoError(t, err)
	require.NotZero(t, f.kv.Len())

	require.NoError(t, f.service.Wipe(ctx))
	assert.Zero(t, f.kv.Len())

	// First reads after the wipe observe the seeded defaults again.
	tenants, err := f.tenants.List(ctx)
	require.NoError(t, err)
	require.Len(t, tenants, 1)
	assert.Equal(t, store.DefaultTenantID, tenants[0].ID)
}
