package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/MauGud/amanda-project/application/services"
	"github.com/MauGud/amanda-project/domain/entities"
	"github.com/MauGud/amanda-project/pkg/common"
	apperrors "github.com/MauGud/amanda-project/pkg/errors"
)

// MemoryWriter implements the memory lifecycle.
type MemoryWriter interface {
	List(ctx context.Context) ([]entities.Memory, error)
	Get(ctx context.Context, id int64) (entities.Memory, error)
	Create(ctx context.Context, input services.CreateMemoryInput) (entities.Memory, error)
	Update(ctx context.Context, id int64, input services.UpdateMemoryInput) (entities.Memory, error)
	Delete(ctx context.Context, id int64) error
}

// MemoryHandler handles memory-related HTTP requests. Creation and update
// arrive as multipart forms because they may carry a photo.
type MemoryHandler struct {
	memories       MemoryWriter
	maxUploadBytes int64
	logger         *zap.Logger
}

// NewMemoryHandler creates a new memory handler
func NewMemoryHandler(memories MemoryWriter, maxUploadBytes int64, logger *zap.Logger) *MemoryHandler {
	return &MemoryHandler{
		memories:       memories,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// ListMemories handles GET /memories
func (h *MemoryHandler) ListMemories(w http.ResponseWriter, r *http.Request) {
	memories, err := h.memories.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, memories)
}

// GetMemory handles GET /memories/{memoryID}
func (h *MemoryHandler) GetMemory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "memoryID")
	if err != nil {
		respondServiceError(w, err)
		return
	}

	memory, err := h.memories.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, memory)
}

// CreateMemory handles POST /memories with a multipart form carrying the
// text fields and the photo file.
func (h *MemoryHandler) CreateMemory(w http.ResponseWriter, r *http.Request) {
	form, err := parseMemoryForm(r, h.maxUploadBytes)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	memory, err := h.memories.Create(r.Context(), services.CreateMemoryInput{
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

// UpdateMemory handles PUT /memories/{memoryID}. Absent fields keep their
// stored values; a photo file replaces the stored one.
func (h *MemoryHandler) UpdateMemory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "memoryID")
	if err != nil {
		respondServiceError(w, err)
		return
	}

	form, err := parseMemoryForm(r, h.maxUploadBytes)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	input := services.UpdateMemoryInput{Photo: form.photo}
	if form.title != "" {
		input.Title = &form.title
	}
	if form.content != "" {
		input.Content = &form.content
	}
	if form.date != "" {
		input.Date = &form.date
	}

	memory, err := h.memories.Update(r.Context(), id, input)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, memory)
}

// DeleteMemory handles DELETE /memories/{memoryID}
func (h *MemoryHandler) DeleteMemory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "memoryID")
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if err := h.memories.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]string{"message": "memory deleted"})
}

type memoryForm struct {
	title   string
	content string
	date    string
	name    string
	photo   []byte
}

// parseMemoryForm reads the multipart form, including the optional photo
// file. The whole request is capped at the given upload limit.
func parseMemoryForm(r *http.Request, maxUploadBytes int64) (memoryForm, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return memoryForm{}, apperrors.NewValidationError("invalid multipart form: " + err.Error())
	}

	form := memoryForm{
		title:   r.FormValue("title"),
		content: r.FormValue("content"),
		date:    r.FormValue("date"),
		name:    r.FormValue("name"),
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return form, nil
		}
		return memoryForm{}, apperrors.NewValidationError("invalid photo upload: " + err.Error())
	}
	defer file.Close()

	photo, err := io.ReadAll(file)
	if err != nil {
		return memoryForm{}, apperrors.NewValidationError("could not read photo upload")
	}
	form.photo = photo
	return form, nil
}
