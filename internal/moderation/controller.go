package moderation

import (
	"context"
	"fmt"
	"log/slog"

	"forum-moderator/internal/feed"
	"forum-moderator/internal/model"
)

// Gateway is the slice of the forum client the controller drives.
type Gateway interface {
	DeleteQuestion(ctx context.Context, questionID, authToken string) error
	BanUser(ctx context.Context, userID, authToken string) error
}

// Confirmer gates destructive intent with a synchronous yes/no answer.
// A false answer is a normal abort, not an error.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Notifier receives the structured outcome of each operation.
type Notifier interface {
	Notify(n model.Notification)
}

// Session supplies the current viewer and auth token. ok is false when
// nobody is signed in; that makes moderation unavailable, never a
// crash.
type Session interface {
	Current(ctx context.Context) (viewer *model.Viewer, token string, ok bool)
}

// Controller orchestrates privileged delete/ban operations: capability
// check, confirmation gate, remote call, local reconciliation. Each
// operation is one complete request/response cycle; operations on
// different targets are independent.
type Controller struct {
	gateway Gateway
	state   *feed.State
	session Session
	confirm Confirmer
	notify  Notifier
}

func NewController(gateway Gateway, state *feed.State, session Session, confirm Confirmer, notify Notifier) *Controller {
	return &Controller{
		gateway: gateway,
		state:   state,
		session: session,
		confirm: confirm,
		notify:  notify,
	}
}

// RequestDelete deletes a question on the service and, on success,
// removes it from the local feed. A failed delete leaves the feed
// untouched: the question stays listed because it still exists
// server-side.
func (c *Controller) RequestDelete(ctx context.Context, questionID, questionTitle string) {
	viewer, token, ok := c.session.Current(ctx)
	if !ok || !viewer.CanModerate() {
		// UI gating should make this unreachable; re-check defensively.
		slog.Warn("moderation: delete blocked, viewer cannot moderate", "question_id", questionID)
		return
	}
	prompt := fmt.Sprintf("Delete question %q? This cannot be undone.", questionTitle)
	if !c.confirm.Confirm(prompt) {
		return
	}
	if err := c.gateway.DeleteQuestion(ctx, questionID, token); err != nil {
		slog.Error("moderation: delete failed", "question_id", questionID, "err", err)
		c.notify.Notify(model.Notification{
			Kind:        model.NoticeError,
			Title:       "Delete failed",
			Description: err.Error(),
		})
		return
	}
	c.state.RemoveQuestion(questionID)
	slog.Info("moderation: question deleted", "question_id", questionID)
	c.notify.Notify(model.Notification{
		Kind:        model.NoticeInfo,
		Title:       "Question deleted",
		Description: fmt.Sprintf("%q was removed.", questionTitle),
	})
}

// RequestBan bans a user account. The feed is never mutated: banning
// affects future logins, not historical content, so the author's
// existing questions stay listed.
func (c *Controller) RequestBan(ctx context.Context, userID, username string) {
	viewer, token, ok := c.session.Current(ctx)
	if !ok || !viewer.CanModerate() {
		slog.Warn("moderation: ban blocked, viewer cannot moderate", "user_id", userID)
		return
	}
	prompt := fmt.Sprintf("Ban user %q? They will no longer be able to sign in.", username)
	if !c.confirm.Confirm(prompt) {
		return
	}
	if err := c.gateway.BanUser(ctx, userID, token); err != nil {
		slog.Error("moderation: ban failed", "user_id", userID, "err", err)
		c.notify.Notify(model.Notification{
			Kind:        model.NoticeError,
			Title:       "Ban failed",
			Description: err.Error(),
		})
		return
	}
	slog.Info("moderation: user banned", "user_id", userID)
	c.notify.Notify(model.Notification{
		Kind:        model.NoticeInfo,
		Title:       "User banned",
		Description: fmt.Sprintf("%q can no longer sign in.", username),
	})
}
