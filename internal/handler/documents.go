package handler

import (
	"log/slog"
	"net/http"

	"atrium/internal/domain/models"
	"atrium/internal/httputil"
	"atrium/internal/service"
)

// DocumentHandler handles document library HTTP requests.
type DocumentHandler struct {
	docService *service.DocumentService
	logger     *slog.Logger
}

func NewDocumentHandler(docService *service.DocumentService, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{docService: docService, logger: logger}
}

// ListDocuments returns the whole library in stored order.
// GET /documents
func (h *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.docService.List(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"documents": docs,
	})
}

// CreateDocument stores an uploaded document.
// POST /documents
func (h *DocumentHandler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var req service.CreateDocumentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := h.docService.Create(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"document": doc,
		"message":  "Document uploaded successfully",
	})
}

// UpdateDocument applies a partial update (category / isFavorite only).
// PUT /documents/{id}
func (h *DocumentHandler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "document ID is required")
		return
	}

	var patch models.DocumentUpdate
	if err := httputil.ParseJSON(w, r, &patch); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := h.docService.Update(r.Context(), id, &patch)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"document": doc,
		"message":  "Document updated successfully",
	})
}

// DeleteDocument removes a document by ID.
// DELETE /documents/{id}
func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "document ID is required")
		return
	}

	if err := h.docService.Delete(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Document deleted successfully",
	})
}
