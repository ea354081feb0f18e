package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/school-portal-api/internal/models"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
	"github.com/noah-isme/school-portal-api/pkg/export"
)

// ExportFormat names a response-report output format.
type ExportFormat string

const (
	FormatCSV ExportFormat = "csv"
	FormatPDF ExportFormat = "pdf"
)

type reportSurveySource interface {
	Get(ctx context.Context, id string) (*models.Survey, error)
	ResponsesForSurvey(ctx context.Context, surveyID string) ([]models.SurveyResponse, error)
}

type reportArchive interface {
	Save(filename string, data []byte) (string, error)
}

// Report is a rendered response report.
type Report struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders a survey's responses into downloadable reports. A
// copy of every rendered report is kept in the local archive.
type ExportService struct {
	surveys reportSurveySource
	csv     *export.CSVRenderer
	pdf     *export.PDFRenderer
	archive reportArchive
	logger  *zap.Logger
	now     func() time.Time
}

// NewExportService constructs an ExportService. archive may be nil, in which
// case rendered reports are returned without being retained.
func NewExportService(surveys reportSurveySource, archive reportArchive, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		surveys: surveys,
		csv:     export.NewCSVRenderer(),
		pdf:     export.NewPDFRenderer(),
		archive: archive,
		logger:  logger,
		now:     time.Now,
	}
}

// WithClock overrides the service clock. Test hook.
func (s *ExportService) WithClock(now func() time.Time) *ExportService {
	s.now = now
	return s
}

// Render builds the response report for one survey in the requested format.
func (s *ExportService) Render(ctx context.Context, surveyID string, format ExportFormat) (*Report, error) {
	survey, err := s.surveys.Get(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	responses, err := s.surveys.ResponsesForSurvey(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	dataset := buildDataset(survey, responses)

	var (
		data        []byte
		contentType string
	)
	switch format {
	case FormatCSV:
		data, err = s.csv.Render(dataset)
		contentType = "text/csv"
	case FormatPDF:
		data, err = s.pdf.Render(dataset, survey.Title)
		contentType = "application/pdf"
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown export format %q", format))
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render report")
	}

	filename := fmt.Sprintf("%s-responses-%s.%s", slugify(survey.Title), s.now().UTC().Format("20060102-150405"), format)
	if s.archive != nil {
		if _, err := s.archive.Save(filename, data); err != nil {
			s.logger.Warn("failed to archive report", zap.String("filename", filename), zap.Error(err))
		}
	}
	return &Report{Filename: filename, ContentType: contentType, Data: data}, nil
}

// buildDataset flattens responses into a table: respondent columns first,
// one column per question in survey order, submission timestamp last.
func buildDataset(survey *models.Survey, responses []models.SurveyResponse) export.Dataset {
	headers := []string{"Respondent", "Anonymous"}
	for _, q := range survey.Questions {
		headers = append(headers, q.Prompt)
	}
	headers = append(headers, "Submitted At")

	rows := make([][]string, 0, len(responses))
	for _, response := range responses {
		row := make([]string, 0, len(headers))
		name := ""
		if response.RespondentName != nil {
			name = *response.RespondentName
		}
		anonymous := "no"
		if response.IsAnonymous {
			anonymous = "yes"
		}
		row = append(row, name, anonymous)
		for _, q := range survey.Questions {
			answer, ok := response.Answers[q.ID]
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, strings.Join(answer.Values, "; "))
		}
		row = append(row, response.SubmittedAt.UTC().Format(time.RFC3339))
		rows = append(rows, row)
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "survey"
	}
	return slug
}
