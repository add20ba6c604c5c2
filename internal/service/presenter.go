package service

import "avika/internal/model"

// Presenter receives state-change events for the UI layer (interface lives
// here to avoid an import cycle with transport/ws). The core does not assume
// any particular transport.
type Presenter interface {
	TurnAppended(sessionID string, turn model.Turn)
	Progress(sessionID string, progress model.Progress)
	Completed(sessionID string, report *model.Report)
}

// NopPresenter discards all events.
type NopPresenter struct{}

func (NopPresenter) TurnAppended(string, model.Turn) {}
func (NopPresenter) Progress(string, model.Progress) {}
func (NopPresenter) Completed(string, *model.Report) {}
