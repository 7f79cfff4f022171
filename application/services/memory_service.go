package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/MauGud/amanda-project/application/ports"
	"github.com/MauGud/amanda-project/domain/entities"
	apperrors "github.com/MauGud/amanda-project/pkg/errors"
	"github.com/MauGud/amanda-project/pkg/utils"
)

// CreateMemoryInput carries a new memory plus its raw photo bytes.
type CreateMemoryInput struct {
	Title   string `validate:"required,max=100"`
	Content string `validate:"required"`
	Date    string `validate:"required,datetime=2006-01-02"`
	Photo   []byte
}

// ContributeMemoryInput is a memory submitted by a named visitor. The
// contributor name is prefixed onto the content so authorship survives in
// the record itself.
type ContributeMemoryInput struct {
	Name    string `validate:"required,max=50"`
	Title   string `validate:"required,max=100"`
	Content string `validate:"required"`
	Date    string `validate:"required,datetime=2006-01-02"`
	Photo   []byte
}

// UpdateMemoryInput carries a partial update; nil fields are left untouched.
// A non-empty Photo replaces the stored one.
type UpdateMemoryInput struct {
	Title   *string `validate:"omitempty,max=100"`
	Content *string
	Date    *string `validate:"omitempty,datetime=2006-01-02"`
	Photo   []byte
}

// MemoryService implements the memory lifecycle: validated creation with a
// mandatory photo, partial updates with photo replacement, and deletion.
type MemoryService struct {
	gateway  ports.DataGateway
	photos   ports.ObjectStore
	pipeline ports.ImagePipeline
	logger   *zap.Logger
}

// NewMemoryService creates a new memory service.
func NewMemoryService(gateway ports.DataGateway, photos ports.ObjectStore, pipeline ports.ImagePipeline, logger *zap.Logger) *MemoryService {
	return &MemoryService{
		gateway:  gateway,
		photos:   photos,
		pipeline: pipeline,
		logger:   logger,
	}
}

// List returns all memories, newest date first.
func (s *MemoryService) List(ctx context.Context) ([]entities.Memory, error) {
	env := s.gateway.ListMemories(ctx)
	if !env.Success {
		return nil, gatewayError("memory", env.Error)
	}
	return env.Data, nil
}

// Get returns a single memory by identifier.
func (s *MemoryService) Get(ctx context.Context, id int64) (entities.Memory, error) {
	env := s.gateway.GetMemory(ctx, id)
	if !env.Success {
		return entities.Memory{}, gatewayError("memory", env.Error)
	}
	return env.Data, nil
}

// Create validates the input, rejects a missing photo before anything is
// uploaded or stored, then runs photo preparation, upload and record
// insertion in that order.
func (s *MemoryService) Create(ctx context.Context, input CreateMemoryInput) (entities.Memory, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return entities.Memory{}, apperrors.NewValidationError(err.Error())
	}
	if len(input.Photo) == 0 {
		return entities.Memory{}, apperrors.NewValidationError("a photo is required for every memory")
	}

	image, err := s.storePhoto(ctx, input.Photo)
	if err != nil {
		return entities.Memory{}, err
	}

	env := s.gateway.CreateMemory(ctx, entities.NewMemory{
		Title:     input.Title,
		Content:   input.Content,
		Date:      input.Date,
		ImageURL:  image.URL,
		ImagePath: image.Path,
	})
	if !env.Success {
		return entities.Memory{}, gatewayError("memory", env.Error)
	}

	s.logger.Info("memory created",
		zap.Int64("id", env.Data.ID),
		zap.String("image_path", image.Path),
	)
	return env.Data, nil
}

// Contribute creates a memory on behalf of a named visitor, prefixing the
// content with the contributor's name.
func (s *MemoryService) Contribute(ctx context.Context, input ContributeMemoryInput) (entities.Memory, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return entities.Memory{}, apperrors.NewValidationError(err.Error())
	}

	return s.Create(ctx, CreateMemoryInput{
		Title:   input.Title,
		Content: fmt.Sprintf("From: %s\n\n%s", input.Name, input.Content),
		Date:    input.Date,
		Photo:   input.Photo,
	})
}

// Update applies a partial update. A replacement photo removes the previous
// object best-effort first, then prepares and uploads the new one; a failed
// upload aborts the update and leaves the record pointing at the already
// removed object.
func (s *MemoryService) Update(ctx context.Context, id int64, input UpdateMemoryInput) (entities.Memory, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return entities.Memory{}, apperrors.NewValidationError(err.Error())
	}

	updates := entities.MemoryUpdate{
		Title:   input.Title,
		Content: input.Content,
		Date:    input.Date,
	}

	if len(input.Photo) > 0 {
		current, err := s.Get(ctx, id)
		if err != nil {
			return entities.Memory{}, err
		}

		if current.ImagePath != "" {
			if err := s.photos.Remove(ctx, current.ImagePath); err != nil {
				s.logger.Warn("previous photo left orphaned in storage",
					zap.Int64("id", id),
					zap.String("path", current.ImagePath),
					zap.Error(err),
				)
			}
		}

		image, err := s.storePhoto(ctx, input.Photo)
		if err != nil {
			return entities.Memory{}, err
		}
		updates.Image = &image
	}

	env := s.gateway.UpdateMemory(ctx, id, updates)
	if !env.Success {
		return entities.Memory{}, gatewayError("memory", env.Error)
	}
	return env.Data, nil
}

// Delete removes a memory; the gateway owns the cleanup of the stored photo.
func (s *MemoryService) Delete(ctx context.Context, id int64) error {
	env := s.gateway.DeleteMemory(ctx, id)
	if !env.Success {
		return gatewayError("memory", env.Error)
	}
	return nil
}

// storePhoto runs the preparation pipeline and uploads the result, returning
// the (public URL, storage path) pair for the record.
func (s *MemoryService) storePhoto(ctx context.Context, photo []byte) (entities.ImageRef, error) {
	prepared, err := s.pipeline.Prepare(photo)
	if err != nil {
		return entities.ImageRef{}, apperrors.NewValidationError("the photo could not be processed, please use a valid image file")
	}

	if err := s.photos.Upload(ctx, prepared.Name, prepared.Data, prepared.ContentType); err != nil {
		s.logger.Error("photo upload failed", zap.String("name", prepared.Name), zap.Error(err))
		return entities.ImageRef{}, apperrors.NewExternalError("the photo could not be uploaded, please try again", err)
	}

	return entities.ImageRef{
		URL:  s.photos.PublicURL(prepared.Name),
		Path: prepared.Name,
	}, nil
}
