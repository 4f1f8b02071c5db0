package service

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"atrium/internal/categories"
	"atrium/internal/config"
	"atrium/internal/domain"
	"atrium/internal/domain/models"
	"atrium/internal/repository"
)

// CreateDocumentRequest is the payload for uploading a document. The file
// body arrives already encoded as a base64 data URI.
type CreateDocumentRequest struct {
	Name       string `json:"name"`
	Size       string `json:"size"`
	Type       string `json:"type"`
	DataURL    string `json:"dataUrl"`
	Category   string `json:"category"`
	IsFavorite bool   `json:"isFavorite"`
}

// DocumentService applies validation and defaults on top of the repository.
type DocumentService struct {
	repo       *repository.DocumentRepository
	categories *categories.Registry
	logger     *slog.Logger
}

func NewDocumentService(repo *repository.DocumentRepository, registry *categories.Registry, logger *slog.Logger) *DocumentService {
	return &DocumentService{repo: repo, categories: registry, logger: logger}
}

func (s *DocumentService) List(ctx context.Context) ([]models.Document, error) {
	return s.repo.List(ctx)
}

// Create validates the upload and stores it. An absent category falls back
// to the registry default; an unknown one is rejected.
func (s *DocumentService) Create(ctx context.Context, req *CreateDocumentRequest) (*models.Document, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}

	category := req.Category
	if category == "" {
		category = s.categories.Default()
	} else if !s.categories.Valid(category) {
		return nil, &domain.ValidationError{Message: fmt.Sprintf("unknown category %q", category)}
	}

	doc := &models.Document{
		Name:       req.Name,
		Size:       req.Size,
		Type:       req.Type,
		DataURL:    req.DataURL,
		Category:   category,
		IsFavorite: req.IsFavorite,
	}
	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Update applies the allow-listed partial fields to an existing document.
func (s *DocumentService) Update(ctx context.Context, id string, patch *models.DocumentUpdate) (*models.Document, error) {
	if patch.Category == nil && patch.IsFavorite == nil {
		return nil, &domain.ValidationError{Message: "no updatable fields provided (category, isFavorite)"}
	}
	if patch.Category != nil && !s.categories.Valid(*patch.Category) {
		return nil, &domain.ValidationError{Message: fmt.Sprintf("unknown category %q", *patch.Category)}
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *DocumentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *DocumentService) validateCreateRequest(req *CreateDocumentRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, config.MaxNameLength)),
		validation.Field(&req.Size, validation.Required),
		validation.Field(&req.Type, validation.Required),
		validation.Field(&req.DataURL, validation.Required),
	)
}
