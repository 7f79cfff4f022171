package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/MauGud/amanda-project/application/services"
	"github.com/MauGud/amanda-project/domain/entities"
	"github.com/MauGud/amanda-project/pkg/common"
)

// MemoryContributor accepts memories submitted by named visitors.
type MemoryContributor interface {
	Contribute(ctx context.Context, input services.ContributeMemoryInput) (entities.Memory, error)
}

// SharedHandler handles the visitor contribution endpoint.
type SharedHandler struct {
	memories       MemoryContributor
	maxUploadBytes int64
	logger         *zap.Logger
}

// NewSharedHandler creates a new shared-contribution handler
func NewSharedHandler(memories MemoryContributor, maxUploadBytes int64, logger *zap.Logger) *SharedHandler {
	return &SharedHandler{
		memories:       memories,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// ContributeMemory handles POST /shared/memories with a multipart form
// carrying the contributor name, the text fields and the photo file.
func (h *SharedHandler) ContributeMemory(w http.ResponseWriter, r *http.Request) {
	form, err := parseMemoryForm(r, h.maxUploadBytes)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	memory, err := h.memories.Contribute(r.Context(), services.ContributeMemoryInput{
		Name:    form.name,
		Title:   form.title,
		Content: form.content,
		Date:    form.date,
		Photo:   form.photo,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, memory)
}
