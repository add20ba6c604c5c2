package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"avika/internal/config"
	"avika/internal/model"
	"avika/internal/repository"
)

var (
	// ErrSessionComplete is returned when a turn arrives after the catalog
	// is exhausted.
	ErrSessionComplete = errors.New("assessment already complete")

	// ErrUnknownItem is returned for manual answers against item IDs not in
	// the catalog.
	ErrUnknownItem = errors.New("unknown catalog item")

	// ErrUnknownOption is returned for manual answers with a label the item
	// does not have.
	ErrUnknownOption = errors.New("unknown option label")

	// ErrItemCovered is returned when a manual answer targets an item that
	// already has a recorded score.
	ErrItemCovered = errors.New("item already covered")
)

// Canned assistant messages. Used for the opening turn and whenever the
// provider cannot be reached, so the user never sees raw error text.
const (
	greetingMessage = "Hi! I'm Avika. I'm here to chat about your well-being. Feel free to share as much or as little as you like, there's no pressure. How are you feeling today?"

	closingMessage = "Thank you for sharing all of this with me! Your assessment is complete. You can view the full report now."

	unavailableMessage = "I'm having a little trouble on my end right now. Please give me a moment and try again."

	clarifyFallbackMessage = "Could you share a bit more about that? If you'd rather not answer, that's completely okay."

	replyFallbackMessage = "Thank you for sharing. Could you tell me a bit about how you've been feeling and your daily routine?"
)

// TurnResult is the outcome of one handled user turn.
type TurnResult struct {
	Reply    string
	Phase    model.Phase
	Covered  []string // item IDs covered by this turn
	Progress model.Progress
}

// DialogueService is the dialogue engine: it turns a user utterance plus
// session state into a classification, a state update, and the next
// assistant message. One turn is handled to completion before the next is
// accepted for the same session.
type DialogueService struct {
	catalog   *model.Catalog
	store     repository.SessionStore
	provider  Provider
	reportSvc *ReportService
	ai        *config.AIConfig
	policy    config.Policy
	presenter Presenter
}

// NewDialogueService creates a new dialogue service.
func NewDialogueService(
	catalog *model.Catalog,
	store repository.SessionStore,
	provider Provider,
	reportSvc *ReportService,
	ai *config.AIConfig,
	policy config.Policy,
) *DialogueService {
	return &DialogueService{
		catalog:   catalog,
		store:     store,
		provider:  provider,
		reportSvc: reportSvc,
		ai:        ai,
		policy:    policy,
	}
}

// SetPresenter sets the presenter for UI events.
func (s *DialogueService) SetPresenter(p Presenter) {
	s.presenter = p
}

// StartSession creates a session and appends the opening assistant turn.
func (s *DialogueService) StartSession(ctx context.Context) (*model.Session, error) {
	sess := model.NewSession(uuid.NewString())
	turn := sess.Append(model.SpeakerAssistant, greetingMessage)
	if err := s.store.Create(sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	log.Printf("session %s started", sess.ID)

	if s.presenter != nil {
		s.presenter.TurnAppended(sess.ID, turn)
		s.presenter.Progress(sess.ID, s.reportSvc.BuildProgress(sess))
	}
	return sess, nil
}

// HandleTurn processes one user utterance: records it, classifies it against
// the current target item, updates coverage, and produces the next assistant
// message. Provider failures are retried once and then degrade to a canned
// fallback without advancing state.
func (s *DialogueService) HandleTurn(ctx context.Context, sessionID, utterance string) (*TurnResult, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()

	if sess.Phase == model.PhaseComplete {
		return nil, ErrSessionComplete
	}

	window := sess.RecentTranscript(s.policy.TranscriptWindow)
	userTurn := sess.Append(model.SpeakerUser, utterance)
	s.emitTurn(sess.ID, userTurn)

	target := sess.CurrentTarget(s.catalog)

	raw, err := s.generate(ctx, s.ai.Models.Classify, buildClassifyPrompt(target, window, utterance))
	if err != nil {
		// Degrade gracefully: transcript keeps the user turn, coverage and
		// streaks stay untouched, the user gets a generic message.
		log.Printf("session %s: classification failed after retry: %v", sess.ID, err)
		return s.finishTurn(sess, unavailableMessage, nil), nil
	}

	var covered []string
	opt, ok := ParseOption(raw, target)
	if ok {
		sess.Record(target.ID, opt, model.SourceAssistant)
		covered = append(covered, target.ID)
	} else {
		// The utterance may have answered a different item instead; offer
		// the remaining ones in one batch pass before clarifying.
		covered = s.batchClassify(ctx, sess, utterance)
		if len(covered) > 0 {
			sess.UnclearStreak = 0
		} else {
			sess.UnclearStreak++
			if sess.UnclearStreak >= s.policy.ClarifyBound {
				def := target.LeastSevereOption()
				sess.Record(target.ID, def, model.SourceDefault)
				covered = append(covered, target.ID)
				log.Printf("session %s: item %s defaulted to %s after %d unclear turns",
					sess.ID, target.ID, def.Label, s.policy.ClarifyBound)
			}
		}
	}

	next := sess.CurrentTarget(s.catalog)
	if next == nil {
		return s.completeSession(sess, covered), nil
	}

	var reply string
	if len(covered) == 0 {
		sess.Phase = model.PhaseClarifying
		reply = s.generateOrFallback(ctx, s.ai.Models.FollowUp,
			buildFollowUpPrompt(target, sess.RecentTranscript(s.policy.TranscriptWindow), utterance, sess.UnclearStreak),
			clarifyFallbackMessage)
	} else {
		sess.Phase = model.PhaseAwaitingInput
		reply = s.generateOrFallback(ctx, s.ai.Models.Reply,
			buildReplyPrompt(sess.RecentTranscript(s.policy.TranscriptWindow), next),
			replyFallbackMessage)
	}

	return s.finishTurn(sess, reply, covered), nil
}

// ManualAnswer records a directly chosen option for an item, bypassing the
// provider. Used by the questionnaire view.
func (s *DialogueService) ManualAnswer(sessionID, itemID, optionLabel string) (model.Progress, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return model.Progress{}, err
	}

	sess.Lock()
	defer sess.Unlock()

	if sess.Phase == model.PhaseComplete {
		return model.Progress{}, ErrSessionComplete
	}
	item, ok := s.catalog.ItemByID(itemID)
	if !ok {
		return model.Progress{}, ErrUnknownItem
	}
	if sess.IsCovered(itemID) {
		return model.Progress{}, ErrItemCovered
	}
	opt, ok := item.Option(optionLabel)
	if !ok {
		return model.Progress{}, ErrUnknownOption
	}

	sess.Record(itemID, opt, model.SourceUser)
	log.Printf("session %s: item %s answered manually with %s", sess.ID, itemID, opt.Label)

	if sess.CurrentTarget(s.catalog) == nil {
		res := s.completeSession(sess, []string{itemID})
		return res.Progress, nil
	}

	progress := s.reportSvc.BuildProgress(sess)
	if s.presenter != nil {
		s.presenter.Progress(sess.ID, progress)
	}
	return progress, nil
}

// Report builds the session's report. Partial reports are only produced when
// explicitly requested.
func (s *DialogueService) Report(sessionID string, allowPartial bool) (*model.Report, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	sess.Lock()
	defer sess.Unlock()
	return s.reportSvc.BuildReport(sess, allowPartial)
}

// Snapshot returns a copy of the session for read-only presentation.
func (s *DialogueService) Snapshot(sessionID string) (*model.SessionView, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	sess.Lock()
	defer sess.Unlock()

	transcript := make([]model.Turn, len(sess.Transcript))
	copy(transcript, sess.Transcript)
	return &model.SessionView{
		ID:         sess.ID,
		Phase:      sess.Phase,
		Transcript: transcript,
		Progress:   s.reportSvc.BuildProgress(sess),
	}, nil
}

// Abandon discards a session. No cleanup beyond releasing state is needed.
func (s *DialogueService) Abandon(sessionID string) error {
	if err := s.store.Delete(sessionID); err != nil {
		return err
	}
	log.Printf("session %s abandoned", sessionID)
	return nil
}

// batchClassify offers the remaining uncovered items to the provider in one
// pass and records any confident matches. Best effort: failures only log.
func (s *DialogueService) batchClassify(ctx context.Context, sess *model.Session, utterance string) []string {
	if !s.policy.BatchClassify {
		return nil
	}
	var remaining []model.Item
	for _, it := range s.catalog.Items() {
		if !sess.IsCovered(it.ID) {
			remaining = append(remaining, it)
		}
	}
	if len(remaining) == 0 {
		return nil
	}

	raw, err := s.generate(ctx, s.ai.Models.Classify,
		buildBatchPrompt(remaining, sess.RecentTranscript(s.policy.TranscriptWindow), utterance))
	if err != nil {
		log.Printf("session %s: batch classification failed: %v", sess.ID, err)
		return nil
	}

	var covered []string
	for id, opt := range ParseBatch(raw, s.catalog) {
		if sess.IsCovered(id) {
			continue
		}
		sess.Record(id, opt, model.SourceAssistant)
		covered = append(covered, id)
	}
	return covered
}

// completeSession marks the terminal phase and emits the final report.
func (s *DialogueService) completeSession(sess *model.Session, covered []string) *TurnResult {
	sess.Phase = model.PhaseComplete
	log.Printf("session %s complete", sess.ID)

	res := s.finishTurn(sess, closingMessage, covered)
	if s.presenter != nil {
		if report, err := s.reportSvc.BuildReport(sess, false); err == nil {
			s.presenter.Completed(sess.ID, report)
		}
	}
	return res
}

// finishTurn appends the assistant reply and emits turn and progress events.
func (s *DialogueService) finishTurn(sess *model.Session, reply string, covered []string) *TurnResult {
	turn := sess.Append(model.SpeakerAssistant, reply)
	s.emitTurn(sess.ID, turn)

	progress := s.reportSvc.BuildProgress(sess)
	if s.presenter != nil {
		s.presenter.Progress(sess.ID, progress)
	}
	return &TurnResult{
		Reply:    reply,
		Phase:    sess.Phase,
		Covered:  covered,
		Progress: progress,
	}
}

func (s *DialogueService) emitTurn(sessionID string, turn model.Turn) {
	if s.presenter != nil {
		s.presenter.TurnAppended(sessionID, turn)
	}
}

// generate calls the provider with the configured bounded retry.
func (s *DialogueService) generate(ctx context.Context, modelName, prompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= s.policy.ProviderRetries; attempt++ {
		if attempt > 0 {
			log.Printf("provider retry %d/%d", attempt, s.policy.ProviderRetries)
			time.Sleep(time.Duration(s.policy.RetryBackoffMS) * time.Millisecond)
		}
		out, err := s.provider.Generate(ctx, GenerateRequest{Model: modelName, Prompt: prompt})
		if err == nil {
			return out, nil
		}
		lastErr = err
	}
	return "", lastErr
}

// generateOrFallback degrades to a canned message on provider failure so a
// reply-generation outage never stalls the session.
func (s *DialogueService) generateOrFallback(ctx context.Context, modelName, prompt, fallback string) string {
	out, err := s.generate(ctx, modelName, prompt)
	if err != nil {
		log.Printf("reply generation failed, using fallback: %v", err)
		return fallback
	}
	return out
}
