package feed

import (
	"testing"
	"time"

	"forum-moderator/internal/model"
)

func question(id string, votes int, created time.Time) model.Question {
	return model.Question{ID: id, Title: "Q " + id, Votes: votes, CreatedAt: created}
}

func ids(qs []model.Question) []string {
	out := make([]string, 0, len(qs))
	for _, q := range qs {
		out = append(out, q.ID)
	}
	return out
}

func TestOrderByVotes(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	in := []model.Question{
		question("a", 5, base),
		question("b", 12, base.Add(time.Hour)),
		question("c", 3, base.Add(2*time.Hour)),
	}
	got := Order(in, model.SortVotes)
	want := []string{"b", "a", "c"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("votes order mismatch at %d: got %v want %v", i, ids(got), want)
		}
	}
	for i := 0; i+1 < len(got); i++ {
		if got[i].Votes < got[i+1].Votes {
			t.Errorf("adjacent pair out of order: %d < %d", got[i].Votes, got[i+1].Votes)
		}
	}
}

func TestOrderByNewestAndActivityAgree(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	in := []model.Question{
		question("old", 1, base),
		question("new", 2, base.Add(2*time.Hour)),
		question("mid", 3, base.Add(time.Hour)),
	}
	newest := Order(in, model.SortNewest)
	activity := Order(in, model.SortActivity)
	for i := range newest {
		if newest[i].ID != activity[i].ID {
			t.Fatalf("newest and activity diverge at %d: %v vs %v", i, ids(newest), ids(activity))
		}
	}
	if got, want := ids(newest), []string{"new", "mid", "old"}; got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
		t.Fatalf("newest order: got %v want %v", got, want)
	}
}

func TestOrderIsStableOnTies(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	in := []model.Question{
		question("first", 7, base),
		question("second", 7, base),
		question("third", 7, base),
	}
	for _, key := range []model.SortKey{model.SortVotes, model.SortNewest, model.SortActivity} {
		got := Order(in, key)
		want := []string{"first", "second", "third"}
		for i, id := range want {
			if got[i].ID != id {
				t.Errorf("key %s: tie order not preserved: got %v", key, ids(got))
				break
			}
		}
	}
}

func TestOrderIsPermutation(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	in := []model.Question{
		question("a", 5, base.Add(3*time.Hour)),
		question("b", 12, base),
		question("c", 12, base.Add(time.Hour)),
		question("d", -2, base.Add(2*time.Hour)),
	}
	for _, key := range []model.SortKey{model.SortVotes, model.SortNewest, model.SortActivity} {
		got := Order(in, key)
		if len(got) != len(in) {
			t.Fatalf("key %s: length changed: got %d want %d", key, len(got), len(in))
		}
		seen := map[string]int{}
		for _, q := range got {
			seen[q.ID]++
		}
		for _, q := range in {
			if seen[q.ID] != 1 {
				t.Errorf("key %s: id %s appears %d times", key, q.ID, seen[q.ID])
			}
		}
	}
}

func TestOrderDoesNotMutateInput(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	in := []model.Question{
		question("a", 1, base),
		question("b", 9, base.Add(time.Hour)),
	}
	_ = Order(in, model.SortVotes)
	if in[0].ID != "a" || in[1].ID != "b" {
		t.Fatalf("input mutated: %v", ids(in))
	}
}

func TestOrderEmptyAndSingle(t *testing.T) {
	if got := Order(nil, model.SortVotes); len(got) != 0 {
		t.Fatalf("empty input: got %d items", len(got))
	}
	one := []model.Question{question("only", 4, time.Now())}
	got := Order(one, model.SortNewest)
	if len(got) != 1 || got[0].ID != "only" {
		t.Fatalf("single input: got %v", ids(got))
	}
}
