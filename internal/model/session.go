package model

import (
	"sync"
	"time"
)

// Phase tracks where a session is in the assessment state machine.
type Phase string

const (
	PhaseAwaitingInput Phase = "awaiting_input"
	PhaseClarifying    Phase = "clarifying"
	PhaseComplete      Phase = "complete"
)

// Speaker identifies who produced a transcript turn.
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// Turn is one transcript entry. The transcript is append-only.
type Turn struct {
	Speaker Speaker   `json:"speaker"`
	Text    string    `json:"text"`
	At      time.Time `json:"at"`
}

// AnswerSource records how an item got covered.
type AnswerSource string

const (
	SourceAssistant AnswerSource = "assistant" // classified from conversation
	SourceUser      AnswerSource = "user"      // manual entry
	SourceDefault   AnswerSource = "default"   // clarify bound exhausted
)

// Answer is the recorded score for a covered item.
type Answer struct {
	OptionLabel string       `json:"optionLabel"`
	Score       int          `json:"score"`
	Source      AnswerSource `json:"source"`
	AnsweredAt  time.Time    `json:"answeredAt"`
}

// Session is one assessment conversation. Exclusively owned; turn handling is
// serialized through Lock/Unlock so the state is never mutated concurrently.
type Session struct {
	ID            string            `json:"id"`
	Phase         Phase             `json:"phase"`
	Transcript    []Turn            `json:"transcript"`
	Covered       map[string]Answer `json:"covered"` // item ID -> answer
	UnclearStreak int               `json:"unclearStreak"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`

	mu sync.Mutex
}

// NewSession returns a fresh session awaiting its first user input.
func NewSession(id string) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		Phase:     PhaseAwaitingInput,
		Covered:   make(map[string]Answer),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Lock serializes turn handling for this session.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session.
func (s *Session) Unlock() { s.mu.Unlock() }

// Append adds a turn to the transcript and bumps UpdatedAt.
func (s *Session) Append(speaker Speaker, text string) Turn {
	turn := Turn{Speaker: speaker, Text: text, At: time.Now()}
	s.Transcript = append(s.Transcript, turn)
	s.UpdatedAt = turn.At
	return turn
}

// RecentTranscript returns up to n most recent turns.
func (s *Session) RecentTranscript(n int) []Turn {
	if len(s.Transcript) <= n {
		return s.Transcript
	}
	return s.Transcript[len(s.Transcript)-n:]
}

// IsCovered reports whether the item has a recorded answer.
func (s *Session) IsCovered(itemID string) bool {
	_, ok := s.Covered[itemID]
	return ok
}

// CurrentTarget returns the first uncovered item in catalog order, or nil
// when every item is covered. Traversal is an explicit ordered walk so the
// question order is deterministic.
func (s *Session) CurrentTarget(catalog *Catalog) *Item {
	for ci := range catalog.Categories {
		for ii := range catalog.Categories[ci].Items {
			it := &catalog.Categories[ci].Items[ii]
			if !s.IsCovered(it.ID) {
				return it
			}
		}
	}
	return nil
}

// Record stores an answer for an item and resets the unclear streak.
func (s *Session) Record(itemID string, opt *Option, source AnswerSource) {
	s.Covered[itemID] = Answer{
		OptionLabel: opt.Label,
		Score:       opt.Score,
		Source:      source,
		AnsweredAt:  time.Now(),
	}
	s.UnclearStreak = 0
	s.UpdatedAt = time.Now()
}
