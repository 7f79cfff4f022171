package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/MauGud/amanda-project/application/ports"
	"github.com/MauGud/amanda-project/domain/entities"
	"github.com/MauGud/amanda-project/pkg/common"
)

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) ListPhrases(ctx context.Context) common.Envelope[[]entities.Phrase] {
	args := m.Called(ctx)
	return args.Get(0).(common.Envelope[[]entities.Phrase])
}

func (m *mockGateway) GetPhrase(ctx context.Context, id int64) common.Envelope[entities.Phrase] {
	args := m.Called(ctx, id)
	return args.Get(0).(common.Envelope[entities.Phrase])
}

func (m *mockGateway) ListMemories(ctx context.Context) common.Envelope[[]entities.Memory] {
	args := m.Called(ctx)
	return args.Get(0).(common.Envelope[[]entities.Memory])
}

func (m *mockGateway) GetMemory(ctx context.Context, id int64) common.Envelope[entities.Memory] {
	args := m.Called(ctx, id)
	return args.Get(0).(common.Envelope[entities.Memory])
}

func (m *mockGateway) CreateMemory(ctx context.Context, memory entities.NewMemory) common.Envelope[entities.Memory] {
	args := m.Called(ctx, memory)
	return args.Get(0).(common.Envelope[entities.Memory])
}

func (m *mockGateway) UpdateMemory(ctx context.Context, id int64, updates entities.MemoryUpdate) common.Envelope[entities.Memory] {
	args := m.Called(ctx, id, updates)
	return args.Get(0).(common.Envelope[entities.Memory])
}

func (m *mockGateway) DeleteMemory(ctx context.Context, id int64) common.Envelope[struct{}] {
	args := m.Called(ctx, id)
	return args.Get(0).(common.Envelope[struct{}])
}

func (m *mockGateway) ListReminders(ctx context.Context) common.Envelope[[]entities.Reminder] {
	args := m.Called(ctx)
	return args.Get(0).(common.Envelope[[]entities.Reminder])
}

func (m *mockGateway) GetReminder(ctx context.Context, id int64) common.Envelope[entities.Reminder] {
	args := m.Called(ctx, id)
	return args.Get(0).(common.Envelope[entities.Reminder])
}

func (m *mockGateway) CreateReminder(ctx context.Context, content string) common.Envelope[entities.Reminder] {
	args := m.Called(ctx, content)
	return args.Get(0).(common.Envelope[entities.Reminder])
}

func (m *mockGateway) UpdateReminder(ctx context.Context, id int64, updates entities.ReminderUpdate) common.Envelope[entities.Reminder] {
	args := m.Called(ctx, id, updates)
	return args.Get(0).(common.Envelope[entities.Reminder])
}

func (m *mockGateway) DeleteReminder(ctx context.Context, id int64) common.Envelope[struct{}] {
	args := m.Called(ctx, id)
	return args.Get(0).(common.Envelope[struct{}])
}

type mockObjectStore struct {
	mock.Mock
}

func (m *mockObjectStore) Upload(ctx context.Context, name string, data []byte, contentType string) error {
	args := m.Called(ctx, name, data, contentType)
	return args.Error(0)
}

func (m *mockObjectStore) Remove(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *mockObjectStore) PublicURL(name string) string {
	args := m.Called(name)
	return args.String(0)
}

type mockPipeline struct {
	mock.Mock
}

func (m *mockPipeline) Prepare(data []byte) (ports.PreparedImage, error) {
	args := m.Called(data)
	return args.Get(0).(ports.PreparedImage), args.Error(1)
}
