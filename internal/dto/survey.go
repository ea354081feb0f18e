package dto

import "github.com/noah-isme/school-portal-api/internal/models"

// QuestionRequest describes one question inside a survey payload.
type QuestionRequest struct {
	ID       string   `json:"id"`
	Type     string   `json:"type" validate:"required,oneof=text multiple-choice rating yes-no"`
	Prompt   string   `json:"question" validate:"required"`
	Options  []string `json:"options"`
	Required bool     `json:"required"`
}

// SurveyRequest creates or replaces a survey.
type SurveyRequest struct {
	Title       string            `json:"title" validate:"required"`
	Description string            `json:"description"`
	Status      string            `json:"status" validate:"required,oneof=draft published"`
	Questions   []QuestionRequest `json:"questions" validate:"dive"`
}

// ResponseRequest submits one set of answers against a survey.
type ResponseRequest struct {
	RespondentID   *string                  `json:"respondent_id"`
	RespondentName *string                  `json:"respondent_name"`
	IsAnonymous    bool                     `json:"is_anonymous"`
	Answers        map[string]models.Answer `json:"answers" validate:"required"`
}
