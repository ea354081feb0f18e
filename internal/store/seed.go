package store

import (
	"fmt"
	"time"

	"github.com/noah-isme/school-portal-api/internal/models"
)

// DefaultTenantID is the identifier of the tenant seeded on first use.
const DefaultTenantID = "school-1"

// Default credentials seeded for every tenant with no user records. These
// are fixed and documented; they are demonstration accounts, not secrets.
const (
	SeedAdminEmail    = "admin@school.edu"
	SeedAdminSecret   = "admin123"
	SeedTeacherEmail  = "teacher@school.edu"
	SeedTeacherSecret = "teacher123"
	SeedViewerEmail   = "viewer@school.edu"
	SeedViewerSecret  = "viewer123"
)

func defaultTenant(now time.Time) models.Tenant {
	return models.Tenant{
		ID:             DefaultTenantID,
		Name:           "Riverside High School",
		Logo:           "https://images.pexels.com/photos/207662/pexels-photo-207662.jpeg?auto=compress&cs=tinysrgb&w=200",
		PrimaryColor:   "#1e40af",
		SecondaryColor: "#3b82f6",
		Tagline:        "Excellence in Education Since 1985",
		Template:       "modern",
		Font:           "inter",
		CreatedAt:      now,
	}
}

func defaultUsers(tenantID string, now time.Time) []models.User {
	return []models.User{
		{
			ID:        fmt.Sprintf("%s-admin-1", tenantID),
			Email:     SeedAdminEmail,
			Name:      "Admin User",
			Secret:    SeedAdminSecret,
			Role:      models.RoleAdmin,
			TenantID:  tenantID,
			CreatedAt: now,
		},
		{
			ID:        fmt.Sprintf("%s-teacher-1", tenantID),
			Email:     SeedTeacherEmail,
			Name:      "Teacher User",
			Secret:    SeedTeacherSecret,
			Role:      models.RoleTeacher,
			TenantID:  tenantID,
			CreatedAt: now,
		},
		{
			ID:        fmt.Sprintf("%s-viewer-1", tenantID),
			Email:     SeedViewerEmail,
			Name:      "Viewer User",
			Secret:    SeedViewerSecret,
			Role:      models.RoleViewer,
			TenantID:  tenantID,
			CreatedAt: now,
		},
	}
}

// demoSurveys is the fixed demonstration dataset installed for a tenant on
// first content access.
func demoSurveys() []models.Survey {
	return []models.Survey{
		{
			ID:          "1",
			Title:       "Student Satisfaction Survey",
			Description: "Help us understand your experience at our school",
			Status:      models.SurveyPublished,
			CreatedAt:   time.Date(2025, 10, 10, 10, 0, 0, 0, time.UTC),
			Questions: []models.Question{
				{ID: "q1", Type: models.QuestionRating, Prompt: "How satisfied are you with the quality of education?", Required: true},
				{ID: "q2", Type: models.QuestionMultipleChoice, Prompt: "What is your favorite subject?", Options: []string{"Math", "Science", "English", "History", "Arts", "Physical Education"}, Required: true},
				{ID: "q3", Type: models.QuestionYesNo, Prompt: "Do you feel supported by your teachers?", Required: true},
				{ID: "q4", Type: models.QuestionText, Prompt: "What improvements would you suggest?", Required: false},
			},
		},
		{
			ID:          "2",
			Title:       "Parent Feedback Form",
			Description: "We value your input on school programs and activities",
			Status:      models.SurveyPublished,
			CreatedAt:   time.Date(2025, 10, 8, 14, 30, 0, 0, time.UTC),
			Questions: []models.Question{
				{ID: "q1", Type: models.QuestionRating, Prompt: "How would you rate communication from the school?", Required: true},
				{ID: "q2", Type: models.QuestionMultipleChoice, Prompt: "How often do you visit the school portal?", Options: []string{"Daily", "Weekly", "Monthly", "Rarely"}, Required: true},
				{ID: "q3", Type: models.QuestionText, Prompt: "What features would you like to see added to the portal?", Required: false},
			},
		},
		{
			ID:          "3",
			Title:       "Course Registration Interest",
			Description: "Express your interest in upcoming elective courses",
			Status:      models.SurveyDraft,
			CreatedAt:   time.Date(2025, 10, 15, 9, 15, 0, 0, time.UTC),
			Questions: []models.Question{
				{ID: "q1", Type: models.QuestionMultipleChoice, Prompt: "Which elective are you most interested in?", Options: []string{"Creative Writing", "Web Design", "Environmental Science", "Music Theory"}, Required: true},
				{ID: "q2", Type: models.QuestionYesNo, Prompt: "Are you interested in after-school activities?", Required: true},
			},
		},
	}
}

func demoFiles() []models.UploadedFile {
	return []models.UploadedFile{
		{
			ID:         "f1",
			Name:       "school-logo.png",
			Type:       "image/png",
			URL:        "https://images.pexels.com/photos/207662/pexels-photo-207662.jpeg?auto=compress&cs=tinysrgb&w=400",
			Size:       245678,
			UploadedAt: time.Date(2025, 10, 12, 11, 20, 0, 0, time.UTC),
		},
		{
			ID:         "f2",
			Name:       "student-handbook-2025.pdf",
			Type:       "application/pdf",
			URL:        "#",
			Size:       1524000,
			UploadedAt: time.Date(2025, 10, 10, 8, 45, 0, 0, time.UTC),
		},
		{
			ID:         "f3",
			Name:       "campus-map.jpg",
			Type:       "image/jpeg",
			URL:        "https://images.pexels.com/photos/256490/pexels-photo-256490.jpeg?auto=compress&cs=tinysrgb&w=400",
			Size:       892340,
			UploadedAt: time.Date(2025, 10, 9, 15, 30, 0, 0, time.UTC),
		},
		{
			ID:         "f4",
			Name:       "sports-team-photo.jpg",
			Type:       "image/jpeg",
			URL:        "https://images.pexels.com/photos/209977/pexels-photo-209977.jpeg?auto=compress&cs=tinysrgb&w=400",
			Size:       1134560,
			UploadedAt: time.Date(2025, 10, 8, 13, 10, 0, 0, time.UTC),
		},
		{
			ID:         "f5",
			Name:       "cafeteria-menu.pdf",
			Type:       "application/pdf",
			URL:        "#",
			Size:       456780,
			UploadedAt: time.Date(2025, 10, 5, 9, 0, 0, 0, time.UTC),
		},
	}
}
