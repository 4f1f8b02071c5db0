package search

import (
	"fmt"
	"strings"

	"atrium/internal/domain/models"
)

// MaxResults caps the result list; the search box shows at most ten entries.
const MaxResults = 10

// Type tags a result with the collection it came from.
type Type string

const (
	TypeFolder     Type = "folder"
	TypeDocument   Type = "document"
	TypeDiscussion Type = "discussion"
)

// Target tells the UI where to navigate for a result: which page, which
// structure section when applicable, and which entity to scroll to or expand.
type Target struct {
	Page     string `json:"page"`
	Section  string `json:"section,omitempty"`
	EntityID string `json:"entityId"`
}

// Result is one search hit. Snippet is an HTML fragment with <mark>
// highlights; it is empty for title-only matches, which carry a plain
// Descriptor instead (for example a comment count).
type Result struct {
	Type       Type   `json:"type"`
	Title      string `json:"title"`
	Snippet    string `json:"snippet,omitempty"`
	Descriptor string `json:"descriptor,omitempty"`
	Target     Target `json:"target"`
}

// Query scans the snapshot for the free-text query. Matching is
// case-insensitive substring containment over a fixed per-type field chain,
// first matching field wins. Results come back in encounter order — UI
// folders, API folders, documents, discussions, each in array order — with
// no relevance ranking, capped at MaxResults. A blank query yields nothing.
func Query(query string, snap *Snapshot) []Result {
	query = strings.TrimSpace(query)
	if query == "" || snap == nil {
		return nil
	}
	lowerQuery := strings.ToLower(query)

	var results []Result
	add := func(r Result) bool {
		results = append(results, r)
		return len(results) >= MaxResults
	}

	for _, f := range snap.UIFolders {
		if r, ok := matchFolder(f, query, lowerQuery, "ui"); ok && add(r) {
			return results
		}
	}
	for _, f := range snap.APIFolders {
		if r, ok := matchFolder(f, query, lowerQuery, "api"); ok && add(r) {
			return results
		}
	}
	for _, d := range snap.Documents {
		if r, ok := matchDocument(d, lowerQuery); ok && add(r) {
			return results
		}
	}
	for _, p := range snap.Posts {
		if r, ok := matchPost(p, query, lowerQuery); ok && add(r) {
			return results
		}
	}
	return results
}

// matchFolder checks name, then purpose, then description. A name-only hit
// has no body text to excerpt, so it carries a descriptor instead.
func matchFolder(f models.FolderInfo, query, lowerQuery, section string) (Result, bool) {
	result := Result{
		Type:   TypeFolder,
		Title:  f.Name,
		Target: Target{Page: "structure", Section: section, EntityID: f.ID},
	}

	switch {
	case containsFold(f.Name, lowerQuery):
		result.Descriptor = folderDescriptor(f)
	case containsFold(f.Purpose, lowerQuery):
		result.Snippet = ExtractSnippet(f.Purpose, query)
	case containsFold(f.Description, lowerQuery):
		result.Snippet = ExtractSnippet(f.Description, query)
	default:
		return Result{}, false
	}
	return result, true
}

// matchDocument checks the name only; documents have no searchable body
// (their content is an opaque data URI), so every hit is title-only.
func matchDocument(d models.Document, lowerQuery string) (Result, bool) {
	if !containsFold(d.Name, lowerQuery) {
		return Result{}, false
	}
	return Result{
		Type:       TypeDocument,
		Title:      d.Name,
		Descriptor: fmt.Sprintf("%s · %s", d.Category, d.Size),
		Target:     Target{Page: "documents", EntityID: d.ID},
	}, true
}

// matchPost produces a single logical result per post: the post message
// first, otherwise the first comment whose message or name contains the
// query, in comment array order.
func matchPost(p models.Post, query, lowerQuery string) (Result, bool) {
	result := Result{
		Type:   TypeDiscussion,
		Title:  p.Name,
		Target: Target{Page: "community", EntityID: p.ID},
	}

	if containsFold(p.Message, lowerQuery) {
		result.Snippet = ExtractSnippet(p.Message, query)
		return result, true
	}

	for _, c := range p.Comments {
		if containsFold(c.Message, lowerQuery) {
			result.Snippet = ExtractSnippet(c.Message, query)
			return result, true
		}
		if containsFold(c.Name, lowerQuery) {
			result.Descriptor = commentCount(len(p.Comments))
			return result, true
		}
	}
	return Result{}, false
}

func containsFold(s, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(s), lowerQuery)
}

func folderDescriptor(f models.FolderInfo) string {
	if f.Purpose != "" {
		return f.Purpose
	}
	return "Folder entry"
}

func commentCount(n int) string {
	if n == 1 {
		return "1 comment"
	}
	return fmt.Sprintf("%d comments", n)
}
