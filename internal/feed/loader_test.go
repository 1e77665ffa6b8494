package feed

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"forum-moderator/internal/model"
)

type stubLister struct {
	mu        sync.Mutex
	calls     int
	questions []model.Question
	err       error
	cancel    context.CancelFunc // when set, cancels the context mid-call
}

func (s *stubLister) ListQuestions(ctx context.Context) ([]model.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.cancel != nil {
		s.cancel()
	}
	return s.questions, s.err
}

func (s *stubLister) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type recordingNotifier struct {
	notices []model.Notification
}

func (n *recordingNotifier) Notify(notice model.Notification) {
	n.notices = append(n.notices, notice)
}

func TestLoadSuccess(t *testing.T) {
	lister := &stubLister{questions: []model.Question{{ID: "q1"}, {ID: "q2"}}}
	state := NewState()
	notify := &recordingNotifier{}
	Load(context.Background(), lister, state, notify)
	snap := state.Snapshot()
	if snap.Status != StatusReady {
		t.Fatalf("status: got %s want %s", snap.Status, StatusReady)
	}
	if len(snap.Questions) != 2 {
		t.Fatalf("questions: got %d want 2", len(snap.Questions))
	}
	if lister.callCount() != 1 {
		t.Fatalf("gateway calls: got %d want 1", lister.callCount())
	}
	if len(notify.notices) != 0 {
		t.Fatalf("successful load emitted notices: %+v", notify.notices)
	}
}

func TestLoadFailureBecomesErrored(t *testing.T) {
	lister := &stubLister{err: errors.New("connection refused")}
	state := NewState()
	notify := &recordingNotifier{}
	Load(context.Background(), lister, state, notify)
	snap := state.Snapshot()
	if snap.Status != StatusErrored {
		t.Fatalf("status: got %s want %s", snap.Status, StatusErrored)
	}
	if len(snap.Questions) != 0 {
		t.Fatalf("errored state keeps %d questions", len(snap.Questions))
	}
	if !strings.Contains(snap.ErrorMessage, "connection refused") {
		t.Errorf("error message %q does not carry the cause", snap.ErrorMessage)
	}
	// No automatic retry.
	if lister.callCount() != 1 {
		t.Fatalf("gateway calls: got %d want 1", lister.callCount())
	}
	if len(notify.notices) != 1 || notify.notices[0].Kind != model.NoticeError {
		t.Fatalf("want a single error notice, got %+v", notify.notices)
	}
}

func TestLoadDiscardsResultAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	lister := &stubLister{questions: []model.Question{{ID: "q1"}}, cancel: cancel}
	state := NewState()
	Load(ctx, lister, state, nil)
	// The view was torn down mid-flight: no transition may be applied.
	if got := state.Snapshot().Status; got != StatusLoading {
		t.Fatalf("canceled load applied a transition: status %s", got)
	}
}

func TestLoadIgnoredWhileInFlight(t *testing.T) {
	state := NewState()
	state.BeginLoad()
	lister := &stubLister{}
	Load(context.Background(), lister, state, nil)
	if lister.callCount() != 0 {
		t.Fatalf("duplicate load reached the gateway")
	}
}
