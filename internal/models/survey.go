package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// SurveyStatus gates public visibility of a survey.
type SurveyStatus string

const (
	SurveyDraft     SurveyStatus = "draft"
	SurveyPublished SurveyStatus = "published"
)

// QuestionType enumerates the supported question kinds.
type QuestionType string

const (
	QuestionText           QuestionType = "text"
	QuestionMultipleChoice QuestionType = "multiple-choice"
	QuestionRating         QuestionType = "rating"
	QuestionYesNo          QuestionType = "yes-no"
)

// ValidQuestionType reports whether t is a known question type.
func ValidQuestionType(t QuestionType) bool {
	switch t {
	case QuestionText, QuestionMultipleChoice, QuestionRating, QuestionYesNo:
		return true
	}
	return false
}

// Survey is an ordered questionnaire owned by one tenant.
type Survey struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      SurveyStatus `json:"status"`
	Questions   []Question   `json:"questions"`
	CreatedAt   time.Time    `json:"created_at"`
}

// Question is a single survey prompt. Options are required for
// multiple-choice questions and meaningless otherwise.
type Question struct {
	ID       string       `json:"id"`
	Type     QuestionType `json:"type"`
	Prompt   string       `json:"question"`
	Options  []string     `json:"options,omitempty"`
	Required bool         `json:"required"`
}

// Answer holds a recorded answer, which is either a single string or a list
// of strings on the wire.
type Answer struct {
	Values []string
	Multi  bool
}

// SingleAnswer wraps one string value.
func SingleAnswer(value string) Answer {
	return Answer{Values: []string{value}}
}

// MultiAnswer wraps a list of values.
func MultiAnswer(values ...string) Answer {
	return Answer{Values: values, Multi: true}
}

// Value returns the single string form, or the first value for lists.
func (a Answer) Value() string {
	if len(a.Values) == 0 {
		return ""
	}
	return a.Values[0]
}

// MarshalJSON encodes a single value as a bare string and a multi value as
// an array, matching the document format of exports.
func (a Answer) MarshalJSON() ([]byte, error) {
	if a.Multi {
		if a.Values == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(a.Values)
	}
	return json.Marshal(a.Value())
}

// UnmarshalJSON accepts either a string or a list of strings.
func (a *Answer) UnmarshalJSON(raw []byte) error {
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		*a = SingleAnswer(single)
		return nil
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		*a = MultiAnswer(many...)
		return nil
	}
	return fmt.Errorf("answer must be a string or a list of strings")
}

// SurveyResponse is one submission against a survey. Responses are
// append-only; respondent fields are nil for anonymous submissions.
type SurveyResponse struct {
	ID             string            `json:"id"`
	SurveyID       string            `json:"survey_id"`
	RespondentID   *string           `json:"respondent_id"`
	RespondentName *string           `json:"respondent_name"`
	IsAnonymous    bool              `json:"is_anonymous"`
	Answers        map[string]Answer `json:"answers"`
	SubmittedAt    time.Time         `json:"submitted_at"`
}
