package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"atrium/internal/categories"
	"atrium/internal/kvstore"
	"atrium/internal/repository"
	"atrium/internal/service"
)

func newTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()

	logger := slog.Default()
	store := kvstore.NewMemoryStore()

	registry, err := categories.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	docService := service.NewDocumentService(repository.NewDocumentRepository(store, logger), registry, logger)
	structureService := service.NewStructureService(repository.NewStructureRepository(store, logger), logger)
	communityService := service.NewCommunityService(repository.NewPostRepository(store, logger), logger)

	return NewRouter(
		NewDocumentHandler(docService, logger),
		NewStructureHandler(structureService, logger),
		NewCommunityHandler(communityService, logger),
	)
}

func TestHealth(t *testing.T) {
	mux := newTestRouter(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("body = %v, want status ok", body)
	}
}

func TestErrorEnvelopeShape(t *testing.T) {
	mux := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{
			name:       "validation error is 400",
			method:     http.MethodPost,
			path:       "/documents",
			body:       `{"name":"incomplete.pdf"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed json is 400",
			method:     http.MethodPost,
			path:       "/documents",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown document is 404",
			method:     http.MethodDelete,
			path:       "/documents/missing",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown structure section is 404",
			method:     http.MethodGet,
			path:       "/structure/backend",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "comment on unknown post is 404",
			method:     http.MethodPost,
			path:       "/community/posts/missing/comments",
			body:       `{"name":"sam","message":"hi"}`,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reqBody *strings.Reader
			if tt.body != "" {
				reqBody = strings.NewReader(tt.body)
			} else {
				reqBody = strings.NewReader("")
			}
			req := httptest.NewRequest(tt.method, tt.path, reqBody)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body)
			}

			var envelope struct {
				Error   string `json:"error"`
				Details string `json:"details"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
				t.Fatalf("error body is not the JSON envelope: %v (%s)", err, rec.Body)
			}
			if envelope.Error == "" {
				t.Errorf("error envelope missing error string: %s", rec.Body)
			}
		})
	}
}

func TestCreateDocumentEnvelope(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/documents",
		strings.NewReader(`{"name":"a.txt","size":"1 KB","type":"text/plain","dataUrl":"data:text/plain;base64,AA=="}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", rec.Code, rec.Body)
	}

	var envelope struct {
		Document struct {
			ID       string `json:"id"`
			Category string `json:"category"`
		} `json:"document"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Document.ID == "" {
		t.Error("response document missing generated id")
	}
	if envelope.Document.Category != "Uncategorized" {
		t.Errorf("category = %q, want default", envelope.Document.Category)
	}
	if envelope.Message == "" {
		t.Error("success envelope missing message")
	}
}
