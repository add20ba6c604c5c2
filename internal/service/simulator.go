package service

import (
	"context"
	"errors"

	"avika/internal/model"
)

// ErrUnknownStyle is returned for simulation styles outside the closed set.
var ErrUnknownStyle = errors.New("unknown simulation style")

// Simulation styles.
const (
	StyleGeneric       = "generic"
	StyleDetailed      = "detailed"
	StyleContradictory = "contradictory"
)

// Simulate generates a candidate user reply in the given style. The message
// is a suggestion only; it is not appended to the transcript until the user
// actually sends it.
func (s *DialogueService) Simulate(ctx context.Context, sessionID, style string) (string, error) {
	switch style {
	case StyleGeneric, StyleDetailed, StyleContradictory:
	default:
		return "", ErrUnknownStyle
	}

	sess, err := s.store.Get(sessionID)
	if err != nil {
		return "", err
	}

	sess.Lock()
	window := sess.RecentTranscript(s.policy.TranscriptWindow)
	transcript := make([]model.Turn, len(window))
	copy(transcript, window)
	sess.Unlock()

	return s.generate(ctx, s.ai.Models.Simulate, buildSimulatePrompt(style, transcript))
}
