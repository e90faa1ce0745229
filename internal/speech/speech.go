// Package speech defines the audio capabilities the core consumes:
// playing a bundled clip by key and speaking arbitrary text. Actual
// playback is a collaborator concern; the core only issues requests.
package speech

import (
	"context"
	"log/slog"
)

// AudioPlayer plays a bundled audio clip and returns when playback has
// finished or failed.
type AudioPlayer interface {
	Play(ctx context.Context, audioKey string) error
}

// Speaker speaks text aloud and returns when finished or on error.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// NoOp satisfies both capabilities without producing sound. It stands in
// wherever no audio backend is wired up.
type NoOp struct {
	logger *slog.Logger
}

var (
	_ AudioPlayer = (*NoOp)(nil)
	_ Speaker     = (*NoOp)(nil)
)

// NewNoOp creates a silent audio backend.
func NewNoOp(logger *slog.Logger) *NoOp {
	return &NoOp{logger: logger}
}

// Play logs the request and reports success.
func (n *NoOp) Play(ctx context.Context, audioKey string) error {
	if n.logger != nil {
		n.logger.Debug("audio playback skipped", "key", audioKey)
	}
	return nil
}

// Speak logs the request and reports success.
func (n *NoOp) Speak(ctx context.Context, text string) error {
	if n.logger != nil {
		n.logger.Debug("speech skipped", "text", text)
	}
	return nil
}
