package feed

import (
	"sync"

	"forum-moderator/internal/model"
)

// Status is the load lifecycle phase of the feed.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusErrored Status = "errored"
)

// State holds the question collection and its load status. All
// mutation goes through the named transitions below; the stored order
// is the service order and sorting happens only in Snapshot.
type State struct {
	mu        sync.Mutex
	status    Status
	questions []model.Question
	errMsg    string
	sortKey   model.SortKey
}

// NewState returns an Idle state with the default sort key.
func NewState() *State {
	return &State{status: StatusIdle, sortKey: model.SortNewest}
}

// BeginLoad moves Idle into Loading. Calling it while a load is
// already in flight is a no-op guard against duplicate loads; it
// reports whether the transition happened.
func (s *State) BeginLoad() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == StatusLoading {
		return false
	}
	s.status = StatusLoading
	s.errMsg = ""
	return true
}

// CompleteLoad stores the fetched collection verbatim and moves to
// Ready.
func (s *State) CompleteLoad(questions []model.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusLoading {
		return
	}
	s.status = StatusReady
	s.questions = questions
	s.errMsg = ""
}

// FailLoad records a displayable message, clears any partial
// collection and moves to Errored.
func (s *State) FailLoad(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusLoading {
		return
	}
	s.status = StatusErrored
	s.questions = nil
	s.errMsg = message
}

// SetSortKey records the viewer's display preference. Legal in any
// state and never triggers a refetch.
func (s *State) SetSortKey(key model.SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortKey = key
}

// RemoveQuestion drops the entry with the given id after a confirmed
// remote deletion. Only legal when Ready; a missing id is a no-op, not
// an error — the entry may already be gone.
func (s *State) RemoveQuestion(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusReady {
		return
	}
	for i, q := range s.questions {
		if q.ID == id {
			s.questions = append(s.questions[:i], s.questions[i+1:]...)
			return
		}
	}
}

// Snapshot is the render-facing view: status, error message and the
// collection ordered by the current sort key. The returned slice is a
// copy; callers cannot reach the stored collection through it.
type Snapshot struct {
	Status       Status
	ErrorMessage string
	SortKey      model.SortKey
	Questions    []model.Question
}

func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Status:       s.status,
		ErrorMessage: s.errMsg,
		SortKey:      s.sortKey,
		Questions:    Order(s.questions, s.sortKey),
	}
}

// Find returns the stored question with the given id, if present.
func (s *State) Find(id string) (model.Question, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, q := range s.questions {
		if q.ID == id {
			return q, true
		}
	}
	return model.Question{}, false
}
