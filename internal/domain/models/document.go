package models

// Document is one uploaded file in the library. The file body is embedded
// as a base64 data URI; there is no separate blob store.
type Document struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Size       string `json:"size"` // human-readable, e.g. "12.3 KB"
	Type       string `json:"type"` // MIME type
	DataURL    string `json:"dataUrl"`
	UploadedAt string `json:"uploadedAt"` // RFC 3339, server-assigned
	Category   string `json:"category"`
	IsFavorite bool   `json:"isFavorite"`
}

// DocumentUpdate is the allow-list of mutable document fields. Anything else
// in an update payload is dropped; ID is never touched.
type DocumentUpdate struct {
	Category   *string `json:"category"`
	IsFavorite *bool   `json:"isFavorite"`
}
