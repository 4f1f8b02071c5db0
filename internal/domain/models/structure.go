package models

// FolderInfo is one node of the free-text project-structure documentation.
// Order within the stored array is significant and persisted as-is.
type FolderInfo struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Purpose     string           `json:"purpose"`
	Description string           `json:"description"` // rich text, fixed small grammar
	Attachments []FileAttachment `json:"attachments,omitempty"`
}

// FileAttachment is a file attached to a structure node.
type FileAttachment struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Size       int64  `json:"size"`       // bytes
	UploadedAt int64  `json:"uploadedAt"` // epoch milliseconds
	Data       string `json:"data"`       // base64 data URI
}
