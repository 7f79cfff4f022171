package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/MauGud/amanda-project/domain/entities"
	apperrors "github.com/MauGud/amanda-project/pkg/errors"
)

type fakeReminderWriter struct {
	listed   []entities.Reminder
	returned entities.Reminder
	err      error
	lastCall string
	lastFlag bool
}

func (f *fakeReminderWriter) List(ctx context.Context) ([]entities.Reminder, error) {
	f.lastCall = "List"
	return f.listed, f.err
}

func (f *fakeReminderWriter) Get(ctx context.Context, id int64) (entities.Reminder, error) {
	f.lastCall = "Get"
	return f.returned, f.err
}

func (f *fakeReminderWriter) Create(ctx context.Context, content string) (entities.Reminder, error) {
	f.lastCall = "Create"
	return f.returned, f.err
}

func (f *fakeReminderWriter) UpdateContent(ctx context.Context, id int64, content string) (entities.Reminder, error) {
	f.lastCall = "UpdateContent"
	return f.returned, f.err
}

func (f *fakeReminderWriter) SetImportant(ctx context.Context, id int64, important bool) (entities.Reminder, error) {
	f.lastCall = "SetImportant"
	f.lastFlag = important
	return f.returned, f.err
}

func (f *fakeReminderWriter) SetCompleted(ctx context.Context, id int64, completed bool) (entities.Reminder, error) {
	f.lastCall = "SetCompleted"
	f.lastFlag = completed
	return f.returned, f.err
}

func (f *fakeReminderWriter) Delete(ctx context.Context, id int64) error {
	f.lastCall = "Delete"
	return f.err
}

func reminderRouter(writer *fakeReminderWriter) http.Handler {
	h := NewReminderHandler(writer, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/reminders", h.ListReminders)
	r.Post("/reminders", h.CreateReminder)
	r.Get("/reminders/{reminderID}", h.GetReminder)
	r.Put("/reminders/{reminderID}", h.UpdateReminder)
	r.Put("/reminders/{reminderID}/important", h.SetImportant)
	r.Put("/reminders/{reminderID}/complete", h.SetCompleted)
	r.Delete("/reminders/{reminderID}", h.DeleteReminder)
	return r
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestReminderHandler_Create_Success(t *testing.T) {
	// Arrange
	writer := &fakeReminderWriter{returned: entities.Reminder{ID: 1, Content: "water the plants"}}
	router := reminderRouter(writer)

	req := jsonRequest(http.MethodPost, "/reminders", `{"content":"water the plants"}`)
	rec := httptest.NewRecorder()

	// Act
	router.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Create", writer.lastCall)
}

func TestReminderHandler_Create_MissingContentIs400(t *testing.T) {
	// Arrange
	writer := &fakeReminderWriter{}
	router := reminderRouter(writer)

	req := jsonRequest(http.MethodPost, "/reminders", `{}`)
	rec := httptest.NewRecorder()

	// Act
	router.ServeHTTP(rec, req)

	// Assert: rejected before the service is touched
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, writer.lastCall)
}

func TestReminderHandler_Create_UnknownFieldIs400(t *testing.T) {
	// Arrange
	writer := &fakeReminderWriter{}
	router := reminderRouter(writer)

	req := jsonRequest(http.MethodPost, "/reminders", `{"content":"x","bogus":true}`)
	rec := httptest.NewRecorder()

	// Act
	router.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReminderHandler_SetImportant_PassesFlag(t *testing.T) {
	// Arrange
	writer := &fakeReminderWriter{returned: entities.Reminder{ID: 5, IsImportant: true}}
	router := reminderRouter(writer)

	req := jsonRequest(http.MethodPut, "/reminders/5/important", `{"value":true}`)
	rec := httptest.NewRecorder()

	// Act
	router.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "SetImportant", writer.lastCall)
	assert.True(t, writer.lastFlag)
}

func TestReminderHandler_SetImportant_FalseIsValid(t *testing.T) {
	// Arrange
	writer := &fakeReminderWriter{returned: entities.Reminder{ID: 5}}
	router := reminderRouter(writer)

	req := jsonRequest(http.MethodPut, "/reminders/5/important", `{"value":false}`)
	rec := httptest.NewRecorder()

	// Act
	router.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "SetImportant", writer.lastCall)
	assert.False(t, writer.lastFlag)
}

func TestReminderHandler_SetImportant_MissingValueIs400(t *testing.T) {
	// Arrange
	writer := &fakeReminderWriter{}
	router := reminderRouter(writer)

	req := jsonRequest(http.MethodPut, "/reminders/5/important", `{}`)
	rec := httptest.NewRecorder()

	// Act
	router.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, writer.lastCall)
}

func TestReminderHandler_SetCompleted_PassesFlag(t *testing.T) {
	// Arrange
	writer := &fakeReminderWriter{returned: entities.Reminder{ID: 5, IsCompleted: true}}
	router := reminderRouter(writer)

	req := jsonRequest(http.MethodPut, "/reminders/5/complete", `{"value":true}`)
	rec := httptest.NewRecorder()

	// Act
	router.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "SetCompleted", writer.lastCall)
	assert.True(t, writer.lastFlag)
}

func TestReminderHandler_Delete_ExampleRowIs400(t *testing.T) {
	// Arrange
	writer := &fakeReminderWriter{err: apperrors.NewValidationError("example reminders cannot be changed or removed")}
	router := reminderRouter(writer)

	req := httptest.NewRequest(http.MethodDelete, "/reminders/3", nil)
	rec := httptest.NewRecorder()

	// Act
	router.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Contains(t, envelope["error"], "example reminders")
}
