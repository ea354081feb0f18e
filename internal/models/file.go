package models

import "time"

// UploadedFile is the stored metadata for one uploaded resource. URL is the
// content reference: either an external location or an inline data URL
// produced by the upload form.
type UploadedFile struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	URL        string    `json:"url"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
}
