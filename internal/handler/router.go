package handler

import (
	"net/http"
)

// NewRouter registers every API route on a fresh mux (Go 1.22+ method
// patterns). Middleware is layered on by the caller.
func NewRouter(doc *DocumentHandler, structure *StructureHandler, community *CommunityHandler) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", Health)

	// Document routes
	mux.HandleFunc("GET /documents", doc.ListDocuments)
	mux.HandleFunc("POST /documents", doc.CreateDocument)
	mux.HandleFunc("PUT /documents/{id}", doc.UpdateDocument)
	mux.HandleFunc("DELETE /documents/{id}", doc.DeleteDocument)

	// Project structure routes (section is "ui" or "api")
	mux.HandleFunc("GET /structure/{section}", structure.GetStructure)
	mux.HandleFunc("POST /structure/{section}", structure.ReplaceStructure)

	// Community routes
	mux.HandleFunc("GET /community/posts", community.ListPosts)
	mux.HandleFunc("POST /community/posts", community.CreatePost)
	mux.HandleFunc("DELETE /community/posts/{id}", community.DeletePost)
	mux.HandleFunc("POST /community/posts/{id}/comments", community.AddComment)
	mux.HandleFunc("DELETE /community/posts/{id}/comments/{commentID}", community.DeleteComment)

	return mux
}
