package dto

// FileRequest registers an uploaded resource. Exactly one of Data (base64
// payload, stored as a data URL) or URL must be provided.
type FileRequest struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required"`
	Data string `json:"data,omitempty"`
	URL  string `json:"url,omitempty"`
	Size int64  `json:"size" validate:"gte=0"`
}
