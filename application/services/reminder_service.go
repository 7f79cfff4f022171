package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/MauGud/amanda-project/application/ports"
	"github.com/MauGud/amanda-project/domain/entities"
	domainservices "github.com/MauGud/amanda-project/domain/services"
	apperrors "github.com/MauGud/amanda-project/pkg/errors"
)

const maxReminderLength = 500

// ReminderService implements the reminder lifecycle. Example reminders are
// seed rows; every mutation is checked against the current record so they
// can never be edited, toggled or deleted.
type ReminderService struct {
	gateway ports.DataGateway
	logger  *zap.Logger
}

// NewReminderService creates a new reminder service.
func NewReminderService(gateway ports.DataGateway, logger *zap.Logger) *ReminderService {
	return &ReminderService{
		gateway: gateway,
		logger:  logger,
	}
}

// List returns all reminders in display order: important ones first by
// importance timestamp, then the rest by creation time, newest first.
func (s *ReminderService) List(ctx context.Context) ([]entities.Reminder, error) {
	env := s.gateway.ListReminders(ctx)
	if !env.Success {
		return nil, gatewayError("reminder", env.Error)
	}
	return domainservices.SortRemindersForDisplay(env.Data), nil
}

// Get returns a single reminder by identifier.
func (s *ReminderService) Get(ctx context.Context, id int64) (entities.Reminder, error) {
	env := s.gateway.GetReminder(ctx, id)
	if !env.Success {
		return entities.Reminder{}, gatewayError("reminder", env.Error)
	}
	return env.Data, nil
}

// Create stores a new reminder from trimmed content.
func (s *ReminderService) Create(ctx context.Context, content string) (entities.Reminder, error) {
	content, err := normalizeContent(content)
	if err != nil {
		return entities.Reminder{}, err
	}

	env := s.gateway.CreateReminder(ctx, content)
	if !env.Success {
		return entities.Reminder{}, gatewayError("reminder", env.Error)
	}
	return env.Data, nil
}

// UpdateContent replaces a reminder's text.
func (s *ReminderService) UpdateContent(ctx context.Context, id int64, content string) (entities.Reminder, error) {
	content, err := normalizeContent(content)
	if err != nil {
		return entities.Reminder{}, err
	}
	if err := s.guardMutable(ctx, id); err != nil {
		return entities.Reminder{}, err
	}

	env := s.gateway.UpdateReminder(ctx, id, entities.ReminderUpdate{Content: &content})
	if !env.Success {
		return entities.Reminder{}, gatewayError("reminder", env.Error)
	}
	return env.Data, nil
}

// SetImportant flags or unflags a reminder. The importance timestamp is
// stamped or cleared together with the flag.
func (s *ReminderService) SetImportant(ctx context.Context, id int64, important bool) (entities.Reminder, error) {
	if err := s.guardMutable(ctx, id); err != nil {
		return entities.Reminder{}, err
	}

	env := s.gateway.UpdateReminder(ctx, id, entities.ReminderUpdate{IsImportant: &important})
	if !env.Success {
		return entities.Reminder{}, gatewayError("reminder", env.Error)
	}
	return env.Data, nil
}

// SetCompleted marks a reminder done or not done.
func (s *ReminderService) SetCompleted(ctx context.Context, id int64, completed bool) (entities.Reminder, error) {
	if err := s.guardMutable(ctx, id); err != nil {
		return entities.Reminder{}, err
	}

	env := s.gateway.UpdateReminder(ctx, id, entities.ReminderUpdate{IsCompleted: &completed})
	if !env.Success {
		return entities.Reminder{}, gatewayError("reminder", env.Error)
	}
	return env.Data, nil
}

// Delete removes a reminder.
func (s *ReminderService) Delete(ctx context.Context, id int64) error {
	if err := s.guardMutable(ctx, id); err != nil {
		return err
	}

	env := s.gateway.DeleteReminder(ctx, id)
	if !env.Success {
		return gatewayError("reminder", env.Error)
	}
	return nil
}

// guardMutable fetches the reminder and rejects the mutation when it is an
// example row, before anything is sent to the store.
func (s *ReminderService) guardMutable(ctx context.Context, id int64) error {
	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if current.IsExample {
		return apperrors.NewValidationError("example reminders cannot be changed or removed")
	}
	return nil
}

func normalizeContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", apperrors.NewValidationError("content is required")
	}
	if utf8.RuneCountInString(content) > maxReminderLength {
		return "", apperrors.NewValidationError("content must be at most 500 characters")
	}
	return content, nil
}
