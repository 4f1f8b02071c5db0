package models

// Post is a community discussion thread. Comments live inside the post and
// are removed with it.
type Post struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Message     string       `json:"message"`
	Timestamp   string       `json:"timestamp"` // RFC 3339, server-assigned
	Attachments []Attachment `json:"attachments"`
	Comments    []Comment    `json:"comments"`
}

// Comment is a reply on a post.
type Comment struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Message     string       `json:"message"`
	Timestamp   string       `json:"timestamp"` // RFC 3339, server-assigned
	Attachments []Attachment `json:"attachments"`
}

// Attachment is a file attached to a post or comment. Attachment IDs are
// client-generated and accepted verbatim; they are only used as list keys
// and for client-side download actions, never looked up server-side.
type Attachment struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"` // MIME type
	Size    string `json:"size"` // human-readable
	DataURL string `json:"dataUrl"`
}
