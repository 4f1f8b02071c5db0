package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"atrium/internal/domain"
	"atrium/internal/domain/models"
	"atrium/internal/kvstore"
)

// Section selects which of the two independent structure trees a call
// operates on.
type Section string

const (
	SectionUI  Section = "ui"
	SectionAPI Section = "api"
)

// Valid reports whether the section is one of the two known trees.
func (s Section) Valid() bool {
	return s == SectionUI || s == SectionAPI
}

func (s Section) key() string {
	if s == SectionAPI {
		return KeyStructureAPI
	}
	return KeyStructureUI
}

// StructureRepository owns the two project-structure collections. There are
// no per-node operations: the client reads and replaces a whole tree at a
// time, so every edit (add/rename/reorder/delete) arrives as a full array.
type StructureRepository struct {
	store  kvstore.Store
	logger *slog.Logger
}

func NewStructureRepository(store kvstore.Store, logger *slog.Logger) *StructureRepository {
	return &StructureRepository{store: store, logger: logger}
}

// Get returns the stored node sequence for the section, in order.
func (r *StructureRepository) Get(ctx context.Context, section Section) ([]models.FolderInfo, error) {
	raw, found, err := r.store.Get(ctx, section.key())
	if err != nil {
		return nil, &domain.StoreError{Message: fmt.Sprintf("load %s structure: %v", section, err)}
	}
	if !found {
		return []models.FolderInfo{}, nil
	}

	var folders []models.FolderInfo
	if err := json.Unmarshal(raw, &folders); err != nil {
		return nil, &domain.StoreError{Message: fmt.Sprintf("decode %s structure: %v", section, err)}
	}
	return folders, nil
}

// Replace overwrites the whole section with the given sequence. Nodes that
// arrive without an ID get one assigned so later edits can address them.
func (r *StructureRepository) Replace(ctx context.Context, section Section, folders []models.FolderInfo) error {
	for i := range folders {
		if folders[i].ID == "" {
			folders[i].ID = uuid.NewString()
		}
	}

	raw, err := json.Marshal(folders)
	if err != nil {
		return &domain.StoreError{Message: fmt.Sprintf("encode %s structure: %v", section, err)}
	}
	if err := r.store.Set(ctx, section.key(), raw); err != nil {
		return &domain.StoreError{Message: fmt.Sprintf("save %s structure: %v", section, err)}
	}

	r.logger.Info("structure replaced", "section", section, "nodes", len(folders))
	return nil
}
