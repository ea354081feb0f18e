package service

import (
	"context"
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

func newSurveyService(t *testing.T, seedDemo bool) *SurveyService {
	t.Helper()
	kv := kvstore.NewMemory()
	return NewSurveyService(store.NewContentStore(kv, seedDemo), store.NewTenantStore(kv), nil, nil)
}

func pollRequest() dto.SurveyRequest {
	return dto.SurveyRequest{
		Title:  "Lunch Poll",
		Status: "published",
		Questions: []dto.QuestionRequest{
			{Type: "multiple-choice", Prompt: "Favorite meal?", Options: []string{"Pizza", "Tacos"}, Required: true},
			{Type: "text", Prompt: "Anything else?"},
		},
	}
}

func TestSurveyServiceCreateAssignsIDs(t *testing.T) {
	ctx := context.Background()
	svc := newSurveyService(t, false)

	survey, err := svc.Create(ctx, pollRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, survey.ID)
	require.Len(t, survey.Questions, 2)
	assert.NotEmpty(t, survey.Questions[0].ID)
	assert.NotEqual(t, survey.Questions[0].ID, survey.Questions[1].ID)
}

func TestSurveyServiceMultipleChoiceRequiresOptions(t *testing.T) {
	ctx := context.Background()
	svc := newSurveyService(t, false)

	req := pollRequest()
	req.Questions[0].Options = nil
	_, err := svc.Create(ctx, req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSurveyServicePublishedFilter(t *testing.T) {
	ctx := context.Background()
	svc := newSurveyService(t, false)

	published, err := svc.Create(ctx, pollRequest())
	require.NoError(t, err)

	draftReq := pollRequest()
	draftReq.Title = "Draft Poll"
	draftReq.Status = "draft"
	draft, err := svc.Create(ctx, draftReq)
	require.NoError(t, err)

	visible, err := svc.ListPublished(ctx)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, published.ID, visible[0].ID)

	// A draft is reported absent through the public lookup.
	_, err = svc.GetPublished(ctx, draft.ID)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)

	// But still reachable through the authenticated one.
	got, err := svc.Get(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SurveyDraft, got.Status)
}

func TestSubmitSingleSelectAnonymousResponse(t *testing.T) {
	ctx := context.Background()
	svc := newSurveyService(t, false)

	survey, err := svc.Create(ctx, pollRequest())
	require.NoError(t, err)
	questionID := survey.Questions[0].ID

	submitted := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc.WithClock(func() time.Time { return submitted })

	name := "Casey"
	res, err := svc.SubmitResponse(ctx, survey.ID, dto.ResponseRequest{
		RespondentName: &name,
		IsAnonymous:    true,
		Answers: map[string]models.Answer{
			questionID: models.SingleAnswer("Pizza"),
		},
	})
	require.NoError(t, err)
	assert.Nil(t, res.RespondentID)
	assert.Nil(t, res.RespondentName)
	assert.True(t, res.IsAnonymous)
	assert.Equal(t, submitted, res.SubmittedAt)
	assert.Equal(t, "Pizza", res.Answers[questionID].Value())

	stored, err := svc.ResponsesForSurvey(ctx, survey.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, res.ID, stored[0].ID)
}

func TestSubmitResponseRequiredAnswerMissing(t *testing.T) {
	ctx := context.Background()
	svc := newSurveyService(t, false)

	survey, err := svc.Create(ctx, pollRequest())
	require.NoError(t, err)

	_, err = svc.SubmitResponse(ctx, survey.ID, dto.ResponseRequest{
		Answers: map[string]models.Answer{
			survey.Questions[1].ID: models.SingleAnswer("just a comment"),
		},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSubmitResponseRejectsUnlistedOption(t *testing.T) {
	ctx := context.Background()
	svc := newSurveyService(t, false)

	survey, err := svc.Create(ctx, pollRequest())
	require.NoError(t, err)

	_, err = svc.SubmitResponse(ctx, survey.ID, dto.ResponseRequest{
		Answers: map[string]models.Answer{
			survey.Questions[0].ID: models.SingleAnswer("Sushi"),
		},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSubmitResponseRatingBounds(t *testing.T) {
	ctx := context.Background()
	svc := newSurveyService(t, false)

	survey, err := svc.Create(ctx, dto.SurveyRequest{
		Title:  "Canteen Rating",
		Status: "published",
		Questions: []dto.QuestionRequest{
			{Type: "rating", Prompt: "Rate today's lunch", Required: true},
		},
	})
	require.NoError(t, err)

	for _, invalid := range []string{"banana", "0", "6", "3.5", ""} {
		_, err = svc.SubmitResponse(ctx, survey.ID, dto.ResponseRequest{
			IsAnonymous: true,
			Answers: map[string]models.Answer{
				survey.Questions[0].ID: models.SingleAnswer(invalid),
			},
		})
		require.Error(t, err, "value %q", invalid)
		assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	}

	res, err := svc.SubmitResponse(ctx, survey.ID, dto.ResponseRequest{
		IsAnonymous: true,
		Answers: map[string]models.Answer{
			survey.Questions[0].ID: models.SingleAnswer("5"),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"5"}, res.Answers[survey.Questions[0].ID].Values)

	responses, err := svc.ResponsesForSurvey(ctx, survey.ID)
	require.NoError(t, err)
	assert.Len(t, responses, 1)
}

func TestSubmitResponseRejectsUnknownQuestion(t *testing.T) {
	ctx := context.Background()
	svc := newSurveyService(t, false)

	survey, err := svc.Create(ctx, pollRequest())
	require.NoError(t, err)

	_, err = svc.SubmitResponse(ctx, survey.ID, dto.ResponseRequest{
		Answers: map[string]models.Answer{
			survey.Questions[0].ID: models.SingleAnswer("Pizza"),
			"ghost":                models.SingleAnswer("boo"),
		},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSubmitResponseToDraftRejected(t *testing.T) {
	ctx := context.Background()
	svc := newSurveyService(t, false)

	req := pollRequest()
	req.Status = "draft"
	survey, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.SubmitResponse(ctx, survey.ID, dto.ResponseRequest{
		Answers: map[string]models.Answer{
			survey.Questions[0].ID: models.SingleAnswer("Pizza"),
		},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestDeleteSurveyKeepsResponses(t *testing.T) {
	ctx := context.Background()
	svc := newSurveyService(t, false)

	survey, err := svc.Create(ctx, pollRequest())
	require.NoError(t, err)

	_, err = svc.SubmitResponse(ctx, survey.ID, dto.ResponseRequest{
		Answers: map[string]models.Answer{
			survey.Questions[0].ID: models.SingleAnswer("Tacos"),
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, survey.ID))

	responses, err := svc.Responses(ctx)
	require.NoError(t, err)
	assert.Len(t, responses, 1)
}
