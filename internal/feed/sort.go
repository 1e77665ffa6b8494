package feed

import (
	"sort"

	"forum-moderator/internal/model"
)

// Order returns a new slice holding questions arranged by the given
// sort key. The input is never mutated and ties keep their original
// relative order (vote counts and timestamps are not unique).
func Order(questions []model.Question, key model.SortKey) []model.Question {
	out := make([]model.Question, len(questions))
	copy(out, questions)
	switch key {
	case model.SortVotes:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Votes > out[j].Votes
		})
	case model.SortNewest, model.SortActivity:
		// Both keys order by creation time until the service exposes a
		// distinct last-activity timestamp.
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out
}
