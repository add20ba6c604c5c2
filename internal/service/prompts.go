package service

import (
	"fmt"
	"strings"

	"avika/internal/model"
)

// Prompt builders. Every structured prompt carries a strict "return ONLY
// JSON" contract; the parsers in parse.go treat anything outside that
// contract as unclear.

func renderTranscript(turns []model.Turn) string {
	if len(turns) == 0 {
		return "(conversation just started)"
	}
	var sb strings.Builder
	for _, t := range turns {
		sb.WriteString(string(t.Speaker))
		sb.WriteString(": ")
		sb.WriteString(t.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderOptions(item *model.Item) string {
	var sb strings.Builder
	for _, opt := range item.Options {
		sb.WriteString(fmt.Sprintf("%s: %s\n", opt.Label, opt.Text))
	}
	return sb.String()
}

func buildClassifyPrompt(item *model.Item, transcript []model.Turn, utterance string) string {
	return fmt.Sprintf(`You are scoring one item of a well-being assessment against a user's reply.
Return ONLY valid JSON: {"option": "<label>"} or {"option": null}.

Recent conversation:
%s
Assessment item: %s
Options:
%s
User's most recent reply: %q

Only return an option if the reply is specific enough to confidently select
one. If the reply is vague, partial, or ambiguous, return {"option": null}.
Do NOT infer an option from generic or unrelated statements.`,
		renderTranscript(transcript), item.Intent, renderOptions(item), utterance)
}

func buildBatchPrompt(items []model.Item, transcript []model.Turn, utterance string) string {
	var sb strings.Builder
	for _, it := range items {
		sb.WriteString(fmt.Sprintf("%s: %s\nOptions:\n%s\n", it.ID, it.Intent, renderOptions(&it)))
	}
	return fmt.Sprintf(`A user is taking a well-being assessment through conversation. Check whether
their most recent reply clearly answers any of the remaining items.
Return ONLY a valid JSON object mapping item ids to option labels or null,
for example {"Q2": "A", "Q3": null}.

Recent conversation:
%s
User's most recent reply: %q

Remaining items:
%s
Only map an item to a label when the reply is specific enough to confidently
select one option for it. Do NOT infer answers from generic statements.`,
		renderTranscript(transcript), utterance, sb.String())
}

func buildReplyPrompt(transcript []model.Turn, next *model.Item) string {
	return fmt.Sprintf(`You are a warm, conversational well-being assistant. Your primary goal is to
listen, understand, and make the user feel heard.

Recent conversation:
%s
Reflect briefly and empathetically on what the user just shared, then gently
transition to a new line of inquiry based on this topic:
%s

Combine the reflection and the next question into a single natural, supportive
message. Do NOT show a list or make it feel like a survey. Use simple,
everyday language. Never repeat yourself verbatim. Return ONLY the message.`,
		renderTranscript(transcript), next.Intent)
}

func buildFollowUpPrompt(item *model.Item, transcript []model.Turn, utterance string, attempt int) string {
	return fmt.Sprintf(`You are a warm, empathetic well-being assistant. The user gave a vague or
partial answer on this topic:
%s

Recent conversation:
%s
The user's last reply was: %q
This is follow-up attempt %d on this topic.

Generate a natural, empathetic follow-up question that gently asks for more
detail, using the user's own words if possible. First attempt: be encouraging
and curious. Second: be more specific or offer examples. Later: acknowledge
that they may prefer not to answer and offer to move on. Always start with a
brief empathetic reflection. Return ONLY the follow-up message.`,
		item.Intent, renderTranscript(transcript), utterance, attempt)
}

func buildSimulatePrompt(style string, transcript []model.Turn) string {
	return fmt.Sprintf(`You are simulating a user in a well-being assessment conversation.

Recent conversation:
%s
Generate a single user message in this style:
- generic: vague, non-committal, or brief (e.g., "I'm fine", "not much").
- detailed: specific, descriptive, and relevant to the last assistant question.
- contradictory: self-contradictory or ambiguous (e.g., "I'm great, but also exhausted").

Style: %s

Return ONLY the user message, nothing else.`,
		renderTranscript(transcript), strings.ToUpper(style))
}
