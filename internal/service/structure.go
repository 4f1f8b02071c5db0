package service

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"atrium/internal/config"
	"atrium/internal/domain"
	"atrium/internal/domain/models"
	"atrium/internal/repository"
)

// StructureService fronts the two whole-array structure collections.
type StructureService struct {
	repo   *repository.StructureRepository
	logger *slog.Logger
}

func NewStructureService(repo *repository.StructureRepository, logger *slog.Logger) *StructureService {
	return &StructureService{repo: repo, logger: logger}
}

func (s *StructureService) Get(ctx context.Context, section repository.Section) ([]models.FolderInfo, error) {
	if !section.Valid() {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("unknown structure section %q", section)}
	}
	return s.repo.Get(ctx, section)
}

// Replace overwrites the whole section. Concurrent editors racing to save
// will overwrite each other (last write wins); that trade-off is part of the
// API contract, not something this layer papers over.
func (s *StructureService) Replace(ctx context.Context, section repository.Section, folders []models.FolderInfo) error {
	if !section.Valid() {
		return &domain.NotFoundError{Message: fmt.Sprintf("unknown structure section %q", section)}
	}
	if folders == nil {
		return &domain.ValidationError{Message: "structure is required"}
	}
	for i := range folders {
		if err := s.validateFolder(&folders[i]); err != nil {
			return &domain.ValidationError{Message: fmt.Sprintf("folder %d: %v", i, err)}
		}
	}
	return s.repo.Replace(ctx, section, folders)
}

func (s *StructureService) validateFolder(folder *models.FolderInfo) error {
	return validation.ValidateStruct(folder,
		validation.Field(&folder.Name, validation.Required, validation.Length(1, config.MaxNameLength)),
		validation.Field(&folder.Description, validation.Length(0, config.MaxDescriptionLength)),
	)
}
