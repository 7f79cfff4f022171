// Package services implements the application use cases on top of the data
// gateway, the photo store and the image pipeline. Services validate input,
// enforce domain rules and translate gateway failures into typed errors.
package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/MauGud/amanda-project/application/ports"
	"github.com/MauGud/amanda-project/domain/entities"
	domainservices "github.com/MauGud/amanda-project/domain/services"
	apperrors "github.com/MauGud/amanda-project/pkg/errors"
)

// PhraseService serves the read-only phrase catalogue.
type PhraseService struct {
	gateway ports.DataGateway
	logger  *zap.Logger
}

// NewPhraseService creates a new phrase service.
func NewPhraseService(gateway ports.DataGateway, logger *zap.Logger) *PhraseService {
	return &PhraseService{
		gateway: gateway,
		logger:  logger,
	}
}

// Browse returns the catalogue ordered by sequence number with duplicate
// entries dropped, keeping the first occurrence.
func (s *PhraseService) Browse(ctx context.Context) ([]entities.Phrase, error) {
	env := s.gateway.ListPhrases(ctx)
	if !env.Success {
		return nil, gatewayError("phrase", env.Error)
	}
	return domainservices.DedupePhrases(env.Data), nil
}

// Detail returns a single phrase by identifier.
func (s *PhraseService) Detail(ctx context.Context, id int64) (entities.Phrase, error) {
	env := s.gateway.GetPhrase(ctx, id)
	if !env.Success {
		return entities.Phrase{}, gatewayError("phrase", env.Error)
	}
	return env.Data, nil
}

// gatewayError maps a gateway failure message to a typed error. The gateway
// reports missing records as "<resource> not found"; everything else is a
// remote failure.
func gatewayError(resource, message string) *apperrors.AppError {
	if strings.HasSuffix(message, "not found") {
		return apperrors.NewNotFoundError(resource)
	}
	return apperrors.NewExternalError("the data store is unavailable, please try again", nil)
}
