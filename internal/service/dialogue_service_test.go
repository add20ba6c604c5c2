package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avika/internal/config"
	"avika/internal/model"
	"avika/internal/repository"
)

// scriptProvider replays a queue of canned responses, ignoring the prompt.
type scriptProvider struct {
	mu      sync.Mutex
	script  []scriptStep
	calls   int
	prompts []string
}

type scriptStep struct {
	out string
	err error
}

func (p *scriptProvider) Generate(_ context.Context, req GenerateRequest) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.prompts = append(p.prompts, req.Prompt)
	if p.calls >= len(p.script) {
		p.calls++
		return "ok", nil
	}
	step := p.script[p.calls]
	p.calls++
	return step.out, step.err
}

func testCatalog() *model.Catalog {
	opts := []model.Option{
		{Label: "A", Text: "doing well", Score: 4},
		{Label: "B", Text: "mostly fine", Score: 3},
		{Label: "C", Text: "struggling some", Score: 2},
		{Label: "D", Text: "struggling a lot", Score: 1},
	}
	return &model.Catalog{
		Categories: []model.Category{
			{
				Name: "Mood",
				Items: []model.Item{
					{ID: "m1", Category: "Mood", Intent: "general mood", Options: opts},
					{ID: "m2", Category: "Mood", Intent: "energy level", Options: opts},
				},
			},
			{
				Name: "Sleep",
				Items: []model.Item{
					{ID: "s1", Category: "Sleep", Intent: "sleep quality", Options: opts},
					{ID: "s2", Category: "Sleep", Intent: "falling asleep", Options: opts},
				},
			},
		},
	}
}

func testPolicy() config.Policy {
	return config.Policy{
		ClarifyBound:     3,
		ProviderRetries:  1,
		RetryBackoffMS:   0,
		BatchClassify:    false,
		TranscriptWindow: 6,
	}
}

func newTestService(t *testing.T, provider Provider, policy config.Policy) (*DialogueService, repository.SessionStore) {
	t.Helper()
	cat := testCatalog()
	store := repository.NewSessionStore()
	svc := NewDialogueService(cat, store, provider, NewReportService(cat),
		&config.AIConfig{Models: config.GeminiModels{
			Classify: "classify-model",
			Reply:    "reply-model",
			FollowUp: "followup-model",
			Simulate: "simulate-model",
		}}, policy)
	return svc, store
}

func TestStartSessionGreets(t *testing.T) {
	svc, store := newTestService(t, &scriptProvider{}, testPolicy())

	sess, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	assert.Equal(t, model.PhaseAwaitingInput, sess.Phase)
	require.Len(t, sess.Transcript, 1)
	assert.Equal(t, model.SpeakerAssistant, sess.Transcript[0].Speaker)
	assert.Equal(t, greetingMessage, sess.Transcript[0].Text)
	assert.Equal(t, 1, store.Count())
}

func TestHandleTurnCoversTarget(t *testing.T) {
	provider := &scriptProvider{script: []scriptStep{
		{out: `{"option": "B"}`},
		{out: "Thanks for sharing. How has your energy been?"},
	}}
	svc, _ := newTestService(t, provider, testPolicy())

	sess, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	res, err := svc.HandleTurn(context.Background(), sess.ID, "honestly things have been alright lately")
	require.NoError(t, err)

	assert.Equal(t, []string{"m1"}, res.Covered)
	assert.Equal(t, model.PhaseAwaitingInput, res.Phase)
	assert.Equal(t, "Thanks for sharing. How has your energy been?", res.Reply)
	assert.Equal(t, 1, res.Progress.Covered)

	ans := sess.Covered["m1"]
	assert.Equal(t, "B", ans.OptionLabel)
	assert.Equal(t, 3, ans.Score)
	assert.Equal(t, model.SourceAssistant, ans.Source)
}

func TestFullConversationCompletes(t *testing.T) {
	var script []scriptStep
	for i := 0; i < 4; i++ {
		script = append(script,
			scriptStep{out: `{"option": "A"}`},
			scriptStep{out: "next question please"},
		)
	}
	provider := &scriptProvider{script: script}
	svc, _ := newTestService(t, provider, testPolicy())

	sess, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	var last *TurnResult
	for i := 0; i < 4; i++ {
		last, err = svc.HandleTurn(context.Background(), sess.ID, "doing great")
		require.NoError(t, err)
	}

	assert.Equal(t, model.PhaseComplete, last.Phase)
	assert.Equal(t, closingMessage, last.Reply)
	assert.Equal(t, 4, last.Progress.Covered)

	report, err := svc.Report(sess.ID, false)
	require.NoError(t, err)
	assert.False(t, report.Partial)
	assert.InDelta(t, 4.0, report.Overall, 1e-9)

	_, err = svc.HandleTurn(context.Background(), sess.ID, "hello again")
	assert.ErrorIs(t, err, ErrSessionComplete)
}

func TestUnclearTurnsDefaultAfterBound(t *testing.T) {
	provider := &scriptProvider{script: []scriptStep{
		{out: `{"option": null}`},
		{out: "could you tell me more?"},
		{out: `{"option": null}`},
		{out: "no rush, whenever you're ready"},
		{out: `{"option": null}`},
		{out: "let's move on"},
	}}
	svc, _ := newTestService(t, provider, testPolicy())

	sess, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	res, err := svc.HandleTurn(context.Background(), sess.ID, "the weather is nice")
	require.NoError(t, err)
	assert.Empty(t, res.Covered)
	assert.Equal(t, model.PhaseClarifying, res.Phase)

	res, err = svc.HandleTurn(context.Background(), sess.ID, "I like trains")
	require.NoError(t, err)
	assert.Empty(t, res.Covered)
	assert.Equal(t, 2, sess.UnclearStreak)

	res, err = svc.HandleTurn(context.Background(), sess.ID, "anyway")
	require.NoError(t, err)
	assert.Equal(t, []string{"m1"}, res.Covered)
	assert.Equal(t, model.PhaseAwaitingInput, res.Phase)

	ans := sess.Covered["m1"]
	assert.Equal(t, model.SourceDefault, ans.Source)
	assert.Equal(t, 4, ans.Score) // least severe option
	assert.Equal(t, 0, sess.UnclearStreak)
}

func TestClassificationFailureLeavesStateUnchanged(t *testing.T) {
	provErr := &ProviderError{Reason: ReasonNetwork}
	provider := &scriptProvider{script: []scriptStep{
		{err: provErr},
		{err: provErr}, // retry also fails
	}}
	svc, _ := newTestService(t, provider, testPolicy())

	sess, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	res, err := svc.HandleTurn(context.Background(), sess.ID, "feeling okay")
	require.NoError(t, err)

	assert.Equal(t, unavailableMessage, res.Reply)
	assert.Empty(t, res.Covered)
	assert.Empty(t, sess.Covered)
	assert.Equal(t, 0, sess.UnclearStreak)
	assert.Equal(t, 2, provider.calls) // one attempt plus one retry

	// The user turn is still part of the transcript.
	require.Len(t, sess.Transcript, 3)
	assert.Equal(t, "feeling okay", sess.Transcript[1].Text)
}

func TestReplyFailureFallsBackWithoutLosingCoverage(t *testing.T) {
	provErr := &ProviderError{Reason: ReasonTimeout}
	provider := &scriptProvider{script: []scriptStep{
		{out: `{"option": "C"}`},
		{err: provErr},
		{err: provErr},
	}}
	svc, _ := newTestService(t, provider, testPolicy())

	sess, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	res, err := svc.HandleTurn(context.Background(), sess.ID, "some days are hard")
	require.NoError(t, err)

	assert.Equal(t, []string{"m1"}, res.Covered)
	assert.Equal(t, replyFallbackMessage, res.Reply)
	assert.True(t, sess.IsCovered("m1"))
}

func TestBatchClassifyCoversOtherItems(t *testing.T) {
	policy := testPolicy()
	policy.BatchClassify = true

	provider := &scriptProvider{script: []scriptStep{
		{out: `{"option": null}`},
		{out: `{"s1": "D", "m2": "B", "nope": "A"}`},
		{out: "thanks, and how about your mood?"},
	}}
	svc, _ := newTestService(t, provider, policy)

	sess, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	res, err := svc.HandleTurn(context.Background(), sess.ID, "I sleep terribly but my energy is fine")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"s1", "m2"}, res.Covered)
	assert.Equal(t, model.PhaseAwaitingInput, res.Phase)
	assert.Equal(t, 0, sess.UnclearStreak)
	assert.False(t, sess.IsCovered("m1"))
}

func TestManualAnswer(t *testing.T) {
	svc, _ := newTestService(t, &scriptProvider{}, testPolicy())

	sess, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	progress, err := svc.ManualAnswer(sess.ID, "s1", "D")
	require.NoError(t, err)
	assert.Equal(t, 1, progress.Covered)

	ans := sess.Covered["s1"]
	assert.Equal(t, model.SourceUser, ans.Source)
	assert.Equal(t, 1, ans.Score)

	_, err = svc.ManualAnswer(sess.ID, "s1", "A")
	assert.ErrorIs(t, err, ErrItemCovered)

	_, err = svc.ManualAnswer(sess.ID, "zz", "A")
	assert.ErrorIs(t, err, ErrUnknownItem)

	_, err = svc.ManualAnswer(sess.ID, "m1", "Z")
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestManualAnswerCompletesSession(t *testing.T) {
	svc, _ := newTestService(t, &scriptProvider{}, testPolicy())

	sess, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	for _, id := range []string{"m1", "m2", "s1"} {
		_, err = svc.ManualAnswer(sess.ID, id, "B")
		require.NoError(t, err)
	}
	progress, err := svc.ManualAnswer(sess.ID, "s2", "B")
	require.NoError(t, err)

	assert.Equal(t, 4, progress.Covered)
	assert.Equal(t, model.PhaseComplete, sess.Phase)
	assert.Equal(t, closingMessage, sess.Transcript[len(sess.Transcript)-1].Text)
}

func TestSimulate(t *testing.T) {
	provider := &scriptProvider{script: []scriptStep{
		{out: "I've been feeling pretty tired most days."},
	}}
	svc, _ := newTestService(t, provider, testPolicy())

	sess, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	msg, err := svc.Simulate(context.Background(), sess.ID, StyleDetailed)
	require.NoError(t, err)
	assert.Equal(t, "I've been feeling pretty tired most days.", msg)

	// Suggestions are not transcript turns.
	require.Len(t, sess.Transcript, 1)

	_, err = svc.Simulate(context.Background(), sess.ID, "sarcastic")
	assert.ErrorIs(t, err, ErrUnknownStyle)
}

func TestAbandon(t *testing.T) {
	svc, store := newTestService(t, &scriptProvider{}, testPolicy())

	sess, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.Abandon(sess.ID))
	assert.Equal(t, 0, store.Count())

	_, err = svc.HandleTurn(context.Background(), sess.ID, "hello?")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}
