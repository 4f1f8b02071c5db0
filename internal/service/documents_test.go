package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"atrium/internal/categories"
	"atrium/internal/domain"
	"atrium/internal/domain/models"
	"atrium/internal/kvstore"
	"atrium/internal/repository"
)

func newDocumentService(t *testing.T) *DocumentService {
	t.Helper()
	registry, err := categories.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	repo := repository.NewDocumentRepository(kvstore.NewMemoryStore(), slog.Default())
	return NewDocumentService(repo, registry, slog.Default())
}

func validCreateRequest() *CreateDocumentRequest {
	return &CreateDocumentRequest{
		Name:    "handbook.pdf",
		Size:    "12.3 KB",
		Type:    "application/pdf",
		DataURL: "data:application/pdf;base64,AA==",
	}
}

func TestCreateDefaultsCategory(t *testing.T) {
	svc := newDocumentService(t)

	doc, err := svc.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if doc.Category != "Uncategorized" {
		t.Errorf("Category = %q, want Uncategorized", doc.Category)
	}
	if doc.ID == "" || doc.UploadedAt == "" {
		t.Errorf("server fields not assigned: %+v", doc)
	}
}

func TestCreateRequiredFields(t *testing.T) {
	svc := newDocumentService(t)

	tests := []struct {
		name   string
		mutate func(*CreateDocumentRequest)
	}{
		{"missing name", func(r *CreateDocumentRequest) { r.Name = "" }},
		{"missing size", func(r *CreateDocumentRequest) { r.Size = "" }},
		{"missing type", func(r *CreateDocumentRequest) { r.Type = "" }},
		{"missing dataUrl", func(r *CreateDocumentRequest) { r.DataURL = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(req)
			_, err := svc.Create(context.Background(), req)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("got %v, want ErrValidation", err)
			}
		})
	}
}

func TestCreateUnknownCategory(t *testing.T) {
	svc := newDocumentService(t)

	req := validCreateRequest()
	req.Category = "Conspiracy"
	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("got %v, want ErrValidation", err)
	}
}

func TestUpdateRejectsEmptyPatch(t *testing.T) {
	svc := newDocumentService(t)

	doc, err := svc.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = svc.Update(context.Background(), doc.ID, &models.DocumentUpdate{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("empty patch: got %v, want ErrValidation", err)
	}
}

func TestUpdateCategory(t *testing.T) {
	svc := newDocumentService(t)
	ctx := context.Background()

	doc, err := svc.Create(ctx, validCreateRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	category := "Engineering"
	updated, err := svc.Update(ctx, doc.ID, &models.DocumentUpdate{Category: &category})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Category != "Engineering" {
		t.Errorf("Category = %q, want Engineering", updated.Category)
	}

	bogus := "Not A Category"
	if _, err := svc.Update(ctx, doc.ID, &models.DocumentUpdate{Category: &bogus}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("unknown category: got %v, want ErrValidation", err)
	}
}
