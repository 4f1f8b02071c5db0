package handler

import (
	"log/slog"
	"net/http"

	"atrium/internal/domain/models"
	"atrium/internal/httputil"
	"atrium/internal/repository"
	"atrium/internal/service"
)

// StructureHandler handles the two project-structure collections. Both
// sections share the same two routes; the section name is a path segment.
type StructureHandler struct {
	structureService *service.StructureService
	logger           *slog.Logger
}

func NewStructureHandler(structureService *service.StructureService, logger *slog.Logger) *StructureHandler {
	return &StructureHandler{structureService: structureService, logger: logger}
}

type replaceStructureRequest struct {
	Structure []models.FolderInfo `json:"structure"`
}

// GetStructure returns the whole node sequence for a section.
// GET /structure/{section}
func (h *StructureHandler) GetStructure(w http.ResponseWriter, r *http.Request) {
	section := repository.Section(r.PathValue("section"))

	folders, err := h.structureService.Get(r.Context(), section)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"structure": folders,
	})
}

// ReplaceStructure overwrites the whole node sequence for a section.
// POST /structure/{section}
func (h *StructureHandler) ReplaceStructure(w http.ResponseWriter, r *http.Request) {
	section := repository.Section(r.PathValue("section"))

	var req replaceStructureRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.structureService.Replace(r.Context(), section, req.Structure); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Structure saved successfully",
	})
}
