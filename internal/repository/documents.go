package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"atrium/internal/domain"
	"atrium/internal/domain/models"
	"atrium/internal/kvstore"
)

// DocumentRepository owns the document library collection.
type DocumentRepository struct {
	store  kvstore.Store
	logger *slog.Logger
}

func NewDocumentRepository(store kvstore.Store, logger *slog.Logger) *DocumentRepository {
	return &DocumentRepository{store: store, logger: logger}
}

// List returns all documents in stored order. A missing key means the
// collection has never been written; that is an empty library, not an error.
func (r *DocumentRepository) List(ctx context.Context) ([]models.Document, error) {
	return r.load(ctx)
}

// Create assigns the server-side fields (ID, UploadedAt when absent) and
// appends the document to the collection.
func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	docs, err := r.load(ctx)
	if err != nil {
		return err
	}

	doc.ID = uuid.NewString()
	if doc.UploadedAt == "" {
		doc.UploadedAt = time.Now().UTC().Format(time.RFC3339)
	}

	docs = append(docs, *doc)
	if err := r.save(ctx, docs); err != nil {
		return err
	}

	r.logger.Info("document created", "id", doc.ID, "name", doc.Name)
	return nil
}

// Update shallow-merges the allow-listed fields over the stored record.
// The ID is never changed.
func (r *DocumentRepository) Update(ctx context.Context, id string, patch *models.DocumentUpdate) (*models.Document, error) {
	docs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range docs {
		if docs[i].ID != id {
			continue
		}
		if patch.Category != nil {
			docs[i].Category = *patch.Category
		}
		if patch.IsFavorite != nil {
			docs[i].IsFavorite = *patch.IsFavorite
		}
		if err := r.save(ctx, docs); err != nil {
			return nil, err
		}
		updated := docs[i]
		return &updated, nil
	}

	return nil, &domain.NotFoundError{Message: fmt.Sprintf("document %s not found", id)}
}

// Delete removes the document with the given ID. Unknown IDs fail with
// NotFound and leave the collection untouched.
func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	docs, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range docs {
		if docs[i].ID == id {
			docs = append(docs[:i], docs[i+1:]...)
			return r.save(ctx, docs)
		}
	}

	return &domain.NotFoundError{Message: fmt.Sprintf("document %s not found", id)}
}

func (r *DocumentRepository) load(ctx context.Context) ([]models.Document, error) {
	raw, found, err := r.store.Get(ctx, KeyDocuments)
	if err != nil {
		return nil, &domain.StoreError{Message: fmt.Sprintf("load documents: %v", err)}
	}
	if !found {
		return []models.Document{}, nil
	}

	var docs []models.Document
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, &domain.StoreError{Message: fmt.Sprintf("decode documents: %v", err)}
	}
	return docs, nil
}

func (r *DocumentRepository) save(ctx context.Context, docs []models.Document) error {
	raw, err := json.Marshal(docs)
	if err != nil {
		return &domain.StoreError{Message: fmt.Sprintf("encode documents: %v", err)}
	}
	if err := r.store.Set(ctx, KeyDocuments, raw); err != nil {
		return &domain.StoreError{Message: fmt.Sprintf("save documents: %v", err)}
	}
	return nil
}
