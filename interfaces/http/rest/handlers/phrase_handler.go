package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/MauGud/amanda-project/domain/entities"
	"github.com/MauGud/amanda-project/pkg/common"
)

// PhraseReader serves the read-only phrase catalogue.
type PhraseReader interface {
	Browse(ctx context.Context) ([]entities.Phrase, error)
	Detail(ctx context.Context, id int64) (entities.Phrase, error)
}

// PhraseHandler handles phrase-related HTTP requests
type PhraseHandler struct {
	phrases PhraseReader
	logger  *zap.Logger
}

// NewPhraseHandler creates a new phrase handler
func NewPhraseHandler(phrases PhraseReader, logger *zap.Logger) *PhraseHandler {
	return &PhraseHandler{
		phrases: phrases,
		logger:  logger,
	}
}

// ListPhrases handles GET /phrases
func (h *PhraseHandler) ListPhrases(w http.ResponseWriter, r *http.Request) {
	phrases, err := h.phrases.Browse(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, phrases)
}

// GetPhrase handles GET /phrases/{phraseID}
func (h *PhraseHandler) GetPhrase(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "phraseID")
	if err != nil {
		respondServiceError(w, err)
		return
	}

	phrase, err := h.phrases.Detail(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, phrase)
}
