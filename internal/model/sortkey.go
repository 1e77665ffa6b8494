package model

import "fmt"

// SortKey is the viewer-selected display ordering for the feed. It is
// pure UI state: changing it never refetches or mutates the stored
// collection.
type SortKey string

const (
	SortNewest SortKey = "newest"
	SortVotes  SortKey = "votes"
	// SortActivity currently orders the same way as SortNewest (by
	// creation time). Kept as a distinct key so the two can diverge
	// once the service reports a last-activity timestamp.
	SortActivity SortKey = "activity"
)

// ParseSortKey validates a user-supplied sort key string.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortNewest, SortVotes, SortActivity:
		return SortKey(s), nil
	}
	return "", fmt.Errorf("unknown sort key %q (want newest, votes or activity)", s)
}
