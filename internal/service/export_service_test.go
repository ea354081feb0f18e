package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-portal-api/internal/dto"
	"github.com/noah-isme/school-portal-api/internal/models"
	"github.com/noah-isme/school-portal-api/internal/store"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
	"github.com/noah-isme/school-portal-api/pkg/kvstore"
)

func newExportFixture(t *testing.T) (*ExportService, *SurveyService) {
	t.Helper()
	kv := kvstore.NewMemory()
	surveys := NewSurveyService(store.NewContentStore(kv, false), store.NewTenantStore(kv), nil, nil)
	return NewExportService(surveys, nil, nil), surveys
}

func TestRenderCSVReport(t *testing.T) {
	ctx := context.Background()
	exports, surveys := newExportFixture(t)

	survey, err := surveys.Create(ctx, dto.SurveyRequest{
		Title:  "Lunch Poll",
		Status: "published",
		Questions: []dto.QuestionRequest{
			{Type: "multiple-choice", Prompt: "Favorite meal?", Options: []string{"Pizza", "Tacos"}, Required: true},
		},
	})
	require.NoError(t, err)

	name := "Casey"
	id := "u1"
	_, err = surveys.SubmitResponse(ctx, survey.ID, dto.ResponseRequest{
		RespondentID:   &id,
		RespondentName: &name,
		Answers: map[string]models.Answer{
			survey.Questions[0].ID: models.SingleAnswer("Tacos"),
		},
	})
	require.NoError(t, err)

	exports.WithClock(func() time.Time {
		return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	})

	report, err := exports.Render(ctx, survey.ID, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", report.ContentType)
	assert.Equal(t, "lunch-poll-responses-20260901-120000.csv", report.Filename)

	lines := strings.Split(strings.TrimSpace(string(report.Data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Respondent,Anonymous,Favorite meal?,Submitted At", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Casey,no,Tacos,"))
}

func TestRenderPDFReport(t *testing.T) {
	ctx := context.Background()
	exports, surveys := newExportFixture(t)

	survey, err := surveys.Create(ctx, dto.SurveyRequest{
		Title:  "Quick Check",
		Status: "published",
		Questions: []dto.QuestionRequest{
			{Type: "text", Prompt: "Comments?"},
		},
	})
	require.NoError(t, err)

	report, err := exports.Render(ctx, survey.ID, FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", report.ContentType)
	assert.True(t, strings.HasPrefix(string(report.Data), "%PDF"))
}

func TestRenderUnknownFormat(t *testing.T) {
	ctx := context.Background()
	exports, surveys := newExportFixture(t)

	survey, err := surveys.Create(ctx, dto.SurveyRequest{
		Title:     "Quick Check",
		Status:    "published",
		Questions: []dto.QuestionRequest{{Type: "text", Prompt: "Comments?"}},
	})
	require.NoError(t, err)

	_, err = exports.Render(ctx, survey.ID, "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestRenderUnknownSurvey(t *testing.T) {
	ctx := context.Background()
	exports, _ := newExportFixture(t)

	_, err := exports.Render(ctx, "nope", FormatCSV)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
