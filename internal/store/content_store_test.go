package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-portal-api/internal/models"
	"github.com/noah-isme/school-portal-api/pkg/kvstore"
)

func TestContentStoreSeedsDemoDataOnFirstAccess(t *testing.T) {
	ctx := context.Background()
	store := NewContentStore(kvstore.NewMemory(), true)

	surveys, err := store.ListSurveys(ctx, "school-1")
	require.NoError(t, err)
	require.Len(t, surveys, 3)
	assert.Equal(t, "Student Satisfaction Survey", surveys[0].Title)
	assert.Equal(t, models.SurveyDraft, surveys[2].Status)

	files, err := store.ListFiles(ctx, "school-1")
	require.NoError(t, err)
	assert.Len(t, files, 5)
}

func TestContentStoreSeedDisabledStartsEmpty(t *testing.T) {
	ctx := context.Background()
	store := NewContentStore(kvstore.NewMemory(), false)

	surveys, err := store.ListSurveys(ctx, "school-1")
	require.NoError(t, err)
	assert.Empty(t, surveys)

	files, err := store.ListFiles(ctx, "school-1")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestContentStoreTenantIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewContentStore(kvstore.NewMemory(), false)

	survey := models.Survey{ID: "s1", Title: "Only in school-1", Status: models.SurveyPublished}
	require.NoError(t, store.AddSurvey(ctx, "school-1", survey))

	one, err := store.ListSurveys(ctx, "school-1")
	require.NoError(t, err)
	require.Len(t, one, 1)

	two, err := store.ListSurveys(ctx, "school-2")
	require.NoError(t, err)
	assert.Empty(t, two)

	require.NoError(t, store.SaveBranding(ctx, "school-1", models.Branding{Name: "One"}))
	_, ok, err := store.GetBranding(ctx, "school-2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestContentStoreSurveyCRUD(t *testing.T) {
	ctx := context.Background()
	store := NewContentStore(kvstore.NewMemory(), false)

	survey := models.Survey{ID: "s1", Title: "Original", Status: models.SurveyDraft, CreatedAt: time.Now().UTC()}
	require.NoError(t, store.AddSurvey(ctx, "school-1", survey))

	survey.Title = "Renamed"
	ok, err := store.UpdateSurvey(ctx, "school-1", "s1", survey)
	require.NoError(t, err)
	require.True(t, ok)

	got, ok, err := store.GetSurvey(ctx, "school-1", "s1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Renamed", got.Title)

	ok, err = store.DeleteSurvey(ctx, "school-1", "s1")
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = store.GetSurvey(ctx, "school-1", "s1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestContentStoreResponsesAppendAndFilter(t *testing.T) {
	ctx := context.Background()
	store := NewContentStore(kvstore.NewMemory(), false)

	require.NoError(t, store.AddResponse(ctx, "school-1", models.SurveyResponse{ID: "r1", SurveyID: "s1"}))
	require.NoError(t, store.AddResponse(ctx, "school-1", models.SurveyResponse{ID: "r2", SurveyID: "s2"}))
	require.NoError(t, store.AddResponse(ctx, "school-1", models.SurveyResponse{ID: "r3", SurveyID: "s1"}))

	all, err := store.ListResponses(ctx, "school-1")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := store.ListResponsesForSurvey(ctx, "school-1", "s1")
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	assert.Equal(t, "r1", filtered[0].ID)
	assert.Equal(t, "r3", filtered[1].ID)
}
