// Package api exposes the tracker as a local JSON API for a presentation
// layer. Every route under /api requires a bearer token.
package api

import (
	"errors"
	"log/slog"
	"time"

	"github.com/terraincognita07/healthlog/internal/i18n"
	"github.com/terraincognita07/healthlog/internal/state"
)

type Handler struct {
	tracker    *state.Tracker
	signingKey []byte
	i18n       *i18n.Manager
	logger     *slog.Logger
	now        func() time.Time
}

func NewHandler(tracker *state.Tracker, signingKey []byte, i18nManager *i18n.Manager, logger *slog.Logger) (*Handler, error) {
	if tracker == nil {
		return nil, errors.New("tracker is required")
	}
	if len(signingKey) == 0 {
		return nil, errors.New("signing key is required")
	}
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		tracker:    tracker,
		signingKey: signingKey,
		i18n:       i18nManager,
		logger:     logger,
		now:        time.Now,
	}, nil
}
