package models

import "time"

// ExportVersion is the current bulk-document schema version.
const ExportVersion = 1

// ExportDocument is the transferable snapshot of one tenant's content.
// Pointer sections distinguish "absent" from "present but empty": an import
// applies only the sections present in the document and leaves the rest of
// the stored state untouched.
type ExportDocument struct {
	Version    int               `json:"version"`
	Branding   *Branding         `json:"branding,omitempty"`
	Surveys    *[]Survey         `json:"surveys,omitempty"`
	Files      *[]UploadedFile   `json:"files,omitempty"`
	Responses  *[]SurveyResponse `json:"responses,omitempty"`
	ExportedAt time.Time         `json:"exported_at"`
}
