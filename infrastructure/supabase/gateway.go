package supabase

import (
	"context"
	"strconv"
	"strings"

	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"github.com/MauGud/amanda-project/application/ports"
	"github.com/MauGud/amanda-project/domain/entities"
	"github.com/MauGud/amanda-project/pkg/common"
	"github.com/MauGud/amanda-project/pkg/utils"
)

const (
	tablePhrases   = "barney_phrases"
	tableMemories  = "amanda_memories"
	tableReminders = "reminders"
)

// Gateway is the single client wrapping the hosted store. Every method
// returns the uniform envelope; remote failures are logged and converted,
// never propagated as error values or panics.
type Gateway struct {
	db     *supa.Client
	photos ports.ObjectStore
	logger *zap.Logger
}

// NewGateway creates the gateway. The photo store is injected so that
// record deletion can own the cleanup of the associated stored object.
func NewGateway(db *supa.Client, photos ports.ObjectStore, logger *zap.Logger) *Gateway {
	return &Gateway{
		db:     db,
		photos: photos,
		logger: logger,
	}
}

// ListPhrases returns all phrases ordered by sequence number ascending.
func (g *Gateway) ListPhrases(ctx context.Context) common.Envelope[[]entities.Phrase] {
	var rows []entities.Phrase
	_, err := g.db.From(tablePhrases).
		Select("*", "", false).
		Order("phrase_number", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&rows)
	if err != nil {
		g.logger.Error("failed to list phrases", zap.Error(err))
		return common.Fail[[]entities.Phrase](err.Error())
	}
	return common.Ok(rows)
}

// GetPhrase returns a single phrase by identifier.
func (g *Gateway) GetPhrase(ctx context.Context, id int64) common.Envelope[entities.Phrase] {
	var row entities.Phrase
	_, err := g.db.From(tablePhrases).
		Select("*", "", false).
		Eq("id", formatID(id)).
		Single().
		ExecuteTo(&row)
	if err != nil {
		if isNoRows(err) {
			return common.Fail[entities.Phrase]("phrase not found")
		}
		g.logger.Error("failed to get phrase", zap.Int64("id", id), zap.Error(err))
		return common.Fail[entities.Phrase](err.Error())
	}
	return common.Ok(row)
}

// ListMemories returns all memories ordered by date descending.
func (g *Gateway) ListMemories(ctx context.Context) common.Envelope[[]entities.Memory] {
	var rows []entities.Memory
	_, err := g.db.From(tableMemories).
		Select("*", "", false).
		Order("date", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&rows)
	if err != nil {
		g.logger.Error("failed to list memories", zap.Error(err))
		return common.Fail[[]entities.Memory](err.Error())
	}
	return common.Ok(rows)
}

// GetMemory returns a single memory by identifier.
func (g *Gateway) GetMemory(ctx context.Context, id int64) common.Envelope[entities.Memory] {
	var row entities.Memory
	_, err := g.db.From(tableMemories).
		Select("*", "", false).
		Eq("id", formatID(id)).
		Single().
		ExecuteTo(&row)
	if err != nil {
		if isNoRows(err) {
			return common.Fail[entities.Memory]("memory not found")
		}
		g.logger.Error("failed to get memory", zap.Int64("id", id), zap.Error(err))
		return common.Fail[entities.Memory](err.Error())
	}
	return common.Ok(row)
}

// CreateMemory inserts a memory and returns the created record.
func (g *Gateway) CreateMemory(ctx context.Context, memory entities.NewMemory) common.Envelope[entities.Memory] {
	var row entities.Memory
	_, err := g.db.From(tableMemories).
		Insert(memory, false, "", "representation", "").
		Single().
		ExecuteTo(&row)
	if err != nil {
		g.logger.Error("failed to create memory", zap.String("title", memory.Title), zap.Error(err))
		return common.Fail[entities.Memory](err.Error())
	}
	return common.Ok(row)
}

// UpdateMemory applies a partial update, stamping updated_at, and returns
// the updated record.
func (g *Gateway) UpdateMemory(ctx context.Context, id int64, updates entities.MemoryUpdate) common.Envelope[entities.Memory] {
	payload := map[string]interface{}{
		"updated_at": utils.NowRFC3339(),
	}
	if updates.Title != nil {
		payload["title"] = *updates.Title
	}
	if updates.Content != nil {
		payload["content"] = *updates.Content
	}
	if updates.Date != nil {
		payload["date"] = *updates.Date
	}
	if updates.Image != nil {
		payload["image_url"] = updates.Image.URL
		payload["image_path"] = updates.Image.Path
	}

	var row entities.Memory
	_, err := g.db.From(tableMemories).
		Update(payload, "representation", "").
		Eq("id", formatID(id)).
		Single().
		ExecuteTo(&row)
	if err != nil {
		if isNoRows(err) {
			return common.Fail[entities.Memory]("memory not found")
		}
		g.logger.Error("failed to update memory", zap.Int64("id", id), zap.Error(err))
		return common.Fail[entities.Memory](err.Error())
	}
	return common.Ok(row)
}

// DeleteMemory removes the stored photo best-effort, then deletes the
// record. An object-store failure leaves an orphaned object but never
// fails the operation; only a failed record deletion does.
func (g *Gateway) DeleteMemory(ctx context.Context, id int64) common.Envelope[struct{}] {
	var rows []struct {
		ImagePath string `json:"image_path"`
	}
	if _, err := g.db.From(tableMemories).
		Select("image_path", "", false).
		Eq("id", formatID(id)).
		ExecuteTo(&rows); err != nil {
		g.logger.Warn("could not read image path before delete", zap.Int64("id", id), zap.Error(err))
	}

	if len(rows) > 0 && rows[0].ImagePath != "" {
		if err := g.photos.Remove(ctx, rows[0].ImagePath); err != nil {
			g.logger.Warn("photo left orphaned in storage",
				zap.Int64("id", id),
				zap.String("path", rows[0].ImagePath),
				zap.Error(err),
			)
		}
	}

	_, _, err := g.db.From(tableMemories).
		Delete("", "").
		Eq("id", formatID(id)).
		Execute()
	if err != nil {
		g.logger.Error("failed to delete memory", zap.Int64("id", id), zap.Error(err))
		return common.Fail[struct{}](err.Error())
	}
	return common.Ok(struct{}{})
}

// ListReminders returns all reminders ordered for display: importance
// descending, then importance timestamp descending with nulls last, then
// creation timestamp descending.
func (g *Gateway) ListReminders(ctx context.Context) common.Envelope[[]entities.Reminder] {
	var rows []entities.Reminder
	_, err := g.db.From(tableReminders).
		Select("*", "", false).
		Order("is_important", &postgrest.OrderOpts{Ascending: false}).
		Order("important_at", &postgrest.OrderOpts{Ascending: false, NullsFirst: false}).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&rows)
	if err != nil {
		g.logger.Error("failed to list reminders", zap.Error(err))
		return common.Fail[[]entities.Reminder](err.Error())
	}
	return common.Ok(rows)
}

// GetReminder returns a single reminder by identifier.
func (g *Gateway) GetReminder(ctx context.Context, id int64) common.Envelope[entities.Reminder] {
	var row entities.Reminder
	_, err := g.db.From(tableReminders).
		Select("*", "", false).
		Eq("id", formatID(id)).
		Single().
		ExecuteTo(&row)
	if err != nil {
		if isNoRows(err) {
			return common.Fail[entities.Reminder]("reminder not found")
		}
		g.logger.Error("failed to get reminder", zap.Int64("id", id), zap.Error(err))
		return common.Fail[entities.Reminder](err.Error())
	}
	return common.Ok(row)
}

// CreateReminder inserts a reminder; importance defaults to false at the
// store.
func (g *Gateway) CreateReminder(ctx context.Context, content string) common.Envelope[entities.Reminder] {
	payload := map[string]interface{}{
		"content":      content,
		"is_completed": false,
	}

	var row entities.Reminder
	_, err := g.db.From(tableReminders).
		Insert(payload, false, "", "representation", "").
		Single().
		ExecuteTo(&row)
	if err != nil {
		g.logger.Error("failed to create reminder", zap.Error(err))
		return common.Fail[entities.Reminder](err.Error())
	}
	return common.Ok(row)
}

// UpdateReminder applies a partial update, stamping updated_at. Setting the
// importance flag stamps or clears important_at in the same call, keeping
// flag and timestamp atomic.
func (g *Gateway) UpdateReminder(ctx context.Context, id int64, updates entities.ReminderUpdate) common.Envelope[entities.Reminder] {
	payload := map[string]interface{}{
		"updated_at": utils.NowRFC3339(),
	}
	if updates.Content != nil {
		payload["content"] = *updates.Content
	}
	if updates.IsImportant != nil {
		payload["is_important"] = *updates.IsImportant
		if *updates.IsImportant {
			payload["important_at"] = utils.NowRFC3339()
		} else {
			payload["important_at"] = nil
		}
	}
	if updates.IsCompleted != nil {
		payload["is_completed"] = *updates.IsCompleted
	}

	var row entities.Reminder
	_, err := g.db.From(tableReminders).
		Update(payload, "representation", "").
		Eq("id", formatID(id)).
		Single().
		ExecuteTo(&row)
	if err != nil {
		if isNoRows(err) {
			return common.Fail[entities.Reminder]("reminder not found")
		}
		g.logger.Error("failed to update reminder", zap.Int64("id", id), zap.Error(err))
		return common.Fail[entities.Reminder](err.Error())
	}
	return common.Ok(row)
}

// DeleteReminder removes a reminder record.
func (g *Gateway) DeleteReminder(ctx context.Context, id int64) common.Envelope[struct{}] {
	_, _, err := g.db.From(tableReminders).
		Delete("", "").
		Eq("id", formatID(id)).
		Execute()
	if err != nil {
		g.logger.Error("failed to delete reminder", zap.Int64("id", id), zap.Error(err))
		return common.Fail[struct{}](err.Error())
	}
	return common.Ok(struct{}{})
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// isNoRows reports whether a PostgREST error means the single-row request
// matched nothing (error code PGRST116).
func isNoRows(err error) bool {
	return err != nil && strings.Contains(err.Error(), "PGRST116")
}
