package model

// MessageRequest is the body of POST /v1/sessions/{id}/messages.
type MessageRequest struct {
	Text string `json:"text"`
}

// MessageResponse carries the assistant reply plus updated coverage.
type MessageResponse struct {
	Reply    string   `json:"reply"`
	Phase    Phase    `json:"phase"`
	Covered  []string `json:"covered,omitempty"` // item IDs covered by this turn
	Progress Progress `json:"progress"`
}

// ManualAnswerRequest is the body of PUT /v1/sessions/{id}/answers/{itemID}.
type ManualAnswerRequest struct {
	OptionLabel string `json:"optionLabel"`
}

// SimulateRequest selects a simulated user reply style.
type SimulateRequest struct {
	Style string `json:"style"` // generic, detailed, contradictory
}

// SimulateResponse carries the generated candidate user message.
type SimulateResponse struct {
	Message string `json:"message"`
}

// SessionView is the REST snapshot of a session.
type SessionView struct {
	ID         string   `json:"id"`
	Phase      Phase    `json:"phase"`
	Transcript []Turn   `json:"transcript"`
	Progress   Progress `json:"progress"`
}
