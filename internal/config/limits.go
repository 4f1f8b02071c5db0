package config

const (
	// MaxNameLength is the maximum length for document names, folder names,
	// and author names. Short and descriptive; also keeps store values small.
	MaxNameLength = 255

	// MaxMessageLength is the maximum length for post and comment messages.
	MaxMessageLength = 20000

	// MaxDescriptionLength is the maximum length for folder descriptions
	// (rich text markup is stored raw, so this bounds the stored string).
	MaxDescriptionLength = 50000
)
