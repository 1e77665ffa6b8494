package feed

import (
	"context"
	"log/slog"

	"forum-moderator/internal/model"
)

// Lister is the slice of the forum gateway the loader needs.
type Lister interface {
	ListQuestions(ctx context.Context) ([]model.Question, error)
}

// Notifier receives the outcome notification of a failed load.
type Notifier interface {
	Notify(n model.Notification)
}

// Load performs the single feed load: Loading, then Ready or Errored.
// Any gateway failure becomes a displayable Errored message plus one
// error notification; no retry is attempted — recovery is a fresh
// invocation. If ctx is already canceled when the call returns, the
// result is discarded so no transition is applied on behalf of a
// torn-down view.
func Load(ctx context.Context, gateway Lister, state *State, notify Notifier) {
	if !state.BeginLoad() {
		slog.Warn("feed: load already in flight, ignoring")
		return
	}
	questions, err := gateway.ListQuestions(ctx)
	if ctx.Err() != nil {
		slog.Info("feed: load canceled, discarding result")
		return
	}
	if err != nil {
		slog.Error("feed: load failed", "err", err)
		msg := "Could not load questions: " + err.Error()
		state.FailLoad(msg)
		if notify != nil {
			notify.Notify(model.Notification{
				Kind:        model.NoticeError,
				Title:       "Feed unavailable",
				Description: msg,
			})
		}
		return
	}
	slog.Info("feed: loaded questions", "count", len(questions))
	state.CompleteLoad(questions)
}
