package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/MauGud/amanda-project/domain/entities"
	"github.com/MauGud/amanda-project/pkg/common"
	apperrors "github.com/MauGud/amanda-project/pkg/errors"
	"github.com/MauGud/amanda-project/pkg/utils"
)

const maxReminderBodyBytes = 4 << 10

// ReminderWriter implements the reminder lifecycle.
type ReminderWriter interface {
	List(ctx context.Context) ([]entities.Reminder, error)
	Get(ctx context.Context, id int64) (entities.Reminder, error)
	Create(ctx context.Context, content string) (entities.Reminder, error)
	UpdateContent(ctx context.Context, id int64, content string) (entities.Reminder, error)
	SetImportant(ctx context.Context, id int64, important bool) (entities.Reminder, error)
	SetCompleted(ctx context.Context, id int64, completed bool) (entities.Reminder, error)
	Delete(ctx context.Context, id int64) error
}

// ReminderHandler handles reminder-related HTTP requests
type ReminderHandler struct {
	reminders ReminderWriter
	logger    *zap.Logger
}

// NewReminderHandler creates a new reminder handler
func NewReminderHandler(reminders ReminderWriter, logger *zap.Logger) *ReminderHandler {
	return &ReminderHandler{
		reminders: reminders,
		logger:    logger,
	}
}

// ReminderContentRequest carries a reminder's text
type ReminderContentRequest struct {
	Content string `json:"content" validate:"required,max=500"`
}

// ReminderFlagRequest carries a boolean toggle
type ReminderFlagRequest struct {
	Value *bool `json:"value" validate:"required"`
}

// ListReminders handles GET /reminders
func (h *ReminderHandler) ListReminders(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.reminders.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, reminders)
}

// GetReminder handles GET /reminders/{reminderID}
func (h *ReminderHandler) GetReminder(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "reminderID")
	if err != nil {
		respondServiceError(w, err)
		return
	}

	reminder, err := h.reminders.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, reminder)
}

// CreateReminder handles POST /reminders
func (h *ReminderHandler) CreateReminder(w http.ResponseWriter, r *http.Request) {
	var req ReminderContentRequest
	if err := common.ParseJSONBody(r, &req, maxReminderBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	reminder, err := h.reminders.Create(r.Context(), req.Content)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, reminder)
}

// UpdateReminder handles PUT /reminders/{reminderID}
func (h *ReminderHandler) UpdateReminder(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "reminderID")
	if err != nil {
		respondServiceError(w, err)
		return
	}

	var req ReminderContentRequest
	if err := common.ParseJSONBody(r, &req, maxReminderBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	reminder, err := h.reminders.UpdateContent(r.Context(), id, req.Content)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, reminder)
}

// SetImportant handles PUT /reminders/{reminderID}/important
func (h *ReminderHandler) SetImportant(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.reminders.SetImportant)
}

// SetCompleted handles PUT /reminders/{reminderID}/complete
func (h *ReminderHandler) SetCompleted(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.reminders.SetCompleted)
}

func (h *ReminderHandler) toggle(w http.ResponseWriter, r *http.Request, apply func(context.Context, int64, bool) (entities.Reminder, error)) {
	id, err := parseID(r, "reminderID")
	if err != nil {
		respondServiceError(w, err)
		return
	}

	var req ReminderFlagRequest
	if err := common.ParseJSONBody(r, &req, maxReminderBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Value == nil {
		respondServiceError(w, apperrors.NewValidationError("value is required"))
		return
	}

	reminder, err := apply(r.Context(), id, *req.Value)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, reminder)
}

// DeleteReminder handles DELETE /reminders/{reminderID}
func (h *ReminderHandler) DeleteReminder(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "reminderID")
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if err := h.reminders.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]string{"message": "reminder deleted"})
}
