// Package ports defines the interfaces between the application services and
// the infrastructure they orchestrate. Services depend on these, never on
// the Supabase or imaging implementations directly.
package ports

import (
	"context"

	"github.com/MauGud/amanda-project/domain/entities"
	"github.com/MauGud/amanda-project/pkg/common"
)

// DataGateway is the single client wrapping the hosted data store. Every
// operation returns the uniform envelope and never panics or propagates a
// remote error; failures are converted into {success:false, error:...}.
type DataGateway interface {
	// Phrases
	ListPhrases(ctx context.Context) common.Envelope[[]entities.Phrase]
	GetPhrase(ctx context.Context, id int64) common.Envelope[entities.Phrase]

	// Memories
	ListMemories(ctx context.Context) common.Envelope[[]entities.Memory]
	GetMemory(ctx context.Context, id int64) common.Envelope[entities.Memory]
	CreateMemory(ctx context.Context, memory entities.NewMemory) common.Envelope[entities.Memory]
	UpdateMemory(ctx context.Context, id int64, updates entities.MemoryUpdate) common.Envelope[entities.Memory]
	DeleteMemory(ctx context.Context, id int64) common.Envelope[struct{}]

	// Reminders
	ListReminders(ctx context.Context) common.Envelope[[]entities.Reminder]
	GetReminder(ctx context.Context, id int64) common.Envelope[entities.Reminder]
	CreateReminder(ctx context.Context, content string) common.Envelope[entities.Reminder]
	UpdateReminder(ctx context.Context, id int64, updates entities.ReminderUpdate) common.Envelope[entities.Reminder]
	DeleteReminder(ctx context.Context, id int64) common.Envelope[struct{}]
}

// ObjectStore is the binary object store with public-URL retrieval.
type ObjectStore interface {
	Upload(ctx context.Context, name string, data []byte, contentType string) error
	Remove(ctx context.Context, name string) error
	PublicURL(name string) string
}

// PreparedImage is the output of the image preparation pipeline: a payload
// ready for upload plus a collision-resistant generated name.
type PreparedImage struct {
	Data        []byte
	Name        string
	ContentType string
	Width       int
	Height      int
}

// ImagePipeline decodes, bounds and re-encodes a user-supplied photo.
type ImagePipeline interface {
	Prepare(data []byte) (PreparedImage, error)
}
