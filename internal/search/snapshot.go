// Package search implements the cross-entity search over a point-in-time
// snapshot of all four collections. Scanning happens entirely in memory on
// the caller's copy of the data; nothing here talks to the store, so a query
// can never fail, only return fewer (or zero) results.
package search

import (
	"atrium/internal/domain/models"
)

// Snapshot is one consistent view of the four collections. It is replaced
// wholesale on every successful poll; a failed poll leaves the previous
// snapshot in place rather than mixing old and new collections.
type Snapshot struct {
	UIFolders  []models.FolderInfo
	APIFolders []models.FolderInfo
	Documents  []models.Document
	Posts      []models.Post
}
