package store

import (
	"fmt"
	"testing"
	"time"
)

type note struct {
	ID        string
	Text      string
	CreatedAt time.Time
}

func (n note) RecordID() string { return n.ID }

func (n note) WithIdentity(id string, createdAt time.Time) note {
	n.ID = id
	n.CreatedAt = createdAt
	return n
}

func newTestStore() *Store[note] {
	s := New[note]()
	seq := 0
	s.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	s.now = func() time.Time {
		return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	}
	return s
}

func TestInsertStampsAndEmits(t *testing.T) {
	s := newTestStore()

	var emissions [][]note
	cancel := s.Subscribe(func(records []note) {
		emissions = append(emissions, records)
	})
	defer cancel()

	if len(emissions) != 1 || len(emissions[0]) != 0 {
		t.Fatalf("expected empty replay on subscribe, got %v", emissions)
	}

	created := s.Insert(note{Text: "hello"})
	if created.ID != "id-1" {
		t.Fatalf("unexpected id: %q", created.ID)
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("expected creation timestamp to be set")
	}
	if created.Text != "hello" {
		t.Fatalf("insert did not round-trip fields: %+v", created)
	}

	if len(emissions) != 2 {
		t.Fatalf("expected one emission per insert, got %d", len(emissions))
	}
	if len(emissions[1]) != 1 || emissions[1][0] != created {
		t.Fatalf("emitted sequence does not contain inserted record: %v", emissions[1])
	}
}

func TestSubscribeReplaysLatest(t *testing.T) {
	s := newTestStore()
	s.Insert(note{Text: "a"})
	s.Insert(note{Text: "b"})

	var got []note
	cancel := s.Subscribe(func(records []note) { got = records })
	defer cancel()

	if len(got) != 2 || got[0].Text != "a" || got[1].Text != "b" {
		t.Fatalf("expected latest sequence on subscribe, got %v", got)
	}
}

func TestUpdateMergesInPlace(t *testing.T) {
	s := newTestStore()
	s.Insert(note{Text: "a"})
	target := s.Insert(note{Text: "b"})
	s.Insert(note{Text: "c"})

	found := s.Update(target.ID, func(n note) note {
		n.Text = "b2"
		return n
	})
	if !found {
		t.Fatal("expected update to match a record")
	}

	records := s.Query()
	if records[1].Text != "b2" {
		t.Fatalf("update did not apply: %v", records)
	}
	if records[1].ID != target.ID || records[1].CreatedAt != target.CreatedAt {
		t.Fatalf("update must not change identity fields: %+v", records[1])
	}
	if records[0].Text != "a" || records[2].Text != "c" {
		t.Fatalf("update touched unrelated records: %v", records)
	}
}

func TestUpdateAbsentIDIsSilentNoOp(t *testing.T) {
	s := newTestStore()
	s.Insert(note{Text: "a"})

	var emissions [][]note
	cancel := s.Subscribe(func(records []note) {
		emissions = append(emissions, records)
	})
	defer cancel()

	found := s.Update("missing", func(n note) note {
		n.Text = "mutated"
		return n
	})
	if found {
		t.Fatal("expected no match for absent id")
	}

	// The sequence is still emitted, with unchanged content.
	if len(emissions) != 2 {
		t.Fatalf("expected emission after no-op update, got %d", len(emissions))
	}
	if len(emissions[1]) != 1 || emissions[1][0].Text != "a" {
		t.Fatalf("no-op update changed the sequence: %v", emissions[1])
	}
}

func TestRemove(t *testing.T) {
	s := newTestStore()
	a := s.Insert(note{Text: "a"})
	s.Insert(note{Text: "b"})

	s.Remove(a.ID)
	records := s.Query()
	if len(records) != 1 || records[0].Text != "b" {
		t.Fatalf("remove did not filter the record: %v", records)
	}

	s.Remove("missing")
	if got := s.Count(); got != 1 {
		t.Fatalf("remove of absent id must be a no-op, got %d records", got)
	}
}

func TestFindByID(t *testing.T) {
	s := newTestStore()
	created := s.Insert(note{Text: "a"})

	got, ok := s.FindByID(created.ID)
	if !ok || got != created {
		t.Fatalf("expected to find inserted record, got %+v ok=%v", got, ok)
	}

	if _, ok := s.FindByID("missing"); ok {
		t.Fatal("expected miss for absent id")
	}
}

func TestSubscribersSeeMutationsInOrder(t *testing.T) {
	s := newTestStore()

	var first, second []int
	c1 := s.Subscribe(func(records []note) { first = append(first, len(records)) })
	defer c1()
	c2 := s.Subscribe(func(records []note) { second = append(second, len(records)) })
	defer c2()

	s.Insert(note{Text: "a"})
	s.Insert(note{Text: "b"})
	s.Remove("missing")

	want := []int{0, 1, 2, 2}
	for i, lengths := range [][]int{first, second} {
		if len(lengths) != len(want) {
			t.Fatalf("subscriber %d: expected %d emissions, got %v", i, len(want), lengths)
		}
		for j := range want {
			if lengths[j] != want[j] {
				t.Fatalf("subscriber %d: out-of-order delivery: %v", i, lengths)
			}
		}
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	s := newTestStore()

	calls := 0
	cancel := s.Subscribe(func([]note) { calls++ })
	cancel()

	s.Insert(note{Text: "a"})
	if calls != 1 {
		t.Fatalf("expected only the replay delivery, got %d calls", calls)
	}
}

func TestResetReplacesSequence(t *testing.T) {
	s := newTestStore()
	s.Insert(note{Text: "old"})

	var got []note
	cancel := s.Subscribe(func(records []note) { got = records })
	defer cancel()

	s.Reset([]note{{ID: "seed-1", Text: "seeded"}})
	if len(got) != 1 || got[0].ID != "seed-1" {
		t.Fatalf("reset did not replace the sequence: %v", got)
	}
}

func TestEmittedSnapshotIsIsolated(t *testing.T) {
	s := newTestStore()
	s.Insert(note{Text: "a"})

	snap := s.Query()
	snap[0].Text = "tampered"

	records := s.Query()
	if records[0].Text != "a" {
		t.Fatalf("snapshot mutation leaked into the store: %v", records)
	}
}
