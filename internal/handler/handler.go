package handler

import (
	"context"
	"errors"
	"fmt"
	"io"

	"polyglot/internal/domain"
	"polyglot/internal/service"
	"polyglot/internal/wordbook"

	"go.uber.org/zap"
)

// Handler runs user commands against the dictionary database
type Handler struct {
	db           *wordbook.Database
	dictionaries *service.DictionaryService
	morphology   *service.MorphologyTranslator
	contextual   *service.ContextTranslator
	trainer      *service.Trainer
	out          io.Writer
	logger       *zap.Logger

	// Dialog state of the interactive shell
	state *domain.StateData
}

// NewHandler creates a new handler instance
func NewHandler(
	db *wordbook.Database,
	dictionaries *service.DictionaryService,
	morphology *service.MorphologyTranslator,
	contextual *service.ContextTranslator,
	trainer *service.Trainer,
	out io.Writer,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		db:           db,
		dictionaries: dictionaries,
		morphology:   morphology,
		contextual:   contextual,
		trainer:      trainer,
		out:          out,
		logger:       logger,
		state:        &domain.StateData{State: domain.StateIdle},
	}
}

// GetState returns the current dialog state
func (h *Handler) GetState() *domain.StateData {
	return h.state
}

// SetState sets the dialog state
func (h *Handler) SetState(state *domain.StateData) {
	h.state = state
}

// ResetState returns the dialog to idle
func (h *Handler) ResetState() {
	h.SetState(&domain.StateData{State: domain.StateIdle})
}

// fail reports a failed command and tells whether the session can go on
func (h *Handler) fail(action string, err error) bool {
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		h.logger.Debug("Input closed", zap.String("action", action))
		return false
	}

	h.logger.Error("Command failed", zap.String("action", action), zap.Error(err))
	fmt.Fprintf(h.out, "Error: %v\n", err)
	return true
}

// LineFunc handles one line of shell input and tells whether the session goes on
type LineFunc func(ctx context.Context, line string) bool
