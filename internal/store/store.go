package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Record is implemented by every entity type held in a Store.
type Record[T any] interface {
	// RecordID returns the entity identifier, empty on drafts.
	RecordID() string
	// WithIdentity returns a copy of the record carrying the assigned
	// id and creation timestamp.
	WithIdentity(id string, createdAt time.Time) T
}

// Store holds the authoritative in-memory sequence of one entity type
// and broadcasts the full current sequence to subscribers on every
// mutation. Absent-id updates and removals are silent no-ops; an update
// against a missing id still re-emits the (unchanged) sequence, which
// matches the behavior the rest of the system is built around.
type Store[T Record[T]] struct {
	mu      sync.Mutex
	records []T
	subs    []subscriber[T]
	nextSub int

	now   func() time.Time
	newID func() string
}

type subscriber[T any] struct {
	id int
	fn func([]T)
}

// New creates an empty store.
func New[T Record[T]]() *Store[T] {
	return &Store[T]{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Query returns a snapshot of the current sequence.
func (s *Store[T]) Query() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Subscribe registers fn and immediately delivers the latest sequence
// (replay-latest), then delivers every subsequent emission in mutation
// order. Delivery is synchronous on the mutating goroutine: fn must not
// call back into the store and should return quickly, or it delays
// delivery to later subscribers. The returned cancel func releases the
// subscription.
func (s *Store[T]) Subscribe(fn func([]T)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscriber[T]{id: id, fn: fn})
	fn(s.snapshot())

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Insert stamps the draft with a fresh unique id and creation
// timestamp, appends it to the sequence and emits. Insertion cannot
// fail; validation is the caller's responsibility.
func (s *Store[T]) Insert(draft T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := draft.WithIdentity(s.newID(), s.now())
	s.records = append(s.records, record)
	s.emit()
	return record
}

// Update applies fn to the record matching id, keeping its position in
// the sequence. When no record matches, the sequence is emitted
// unchanged. Returns whether a record matched.
func (s *Store[T]) Update(id string, fn func(T) T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i, r := range s.records {
		if r.RecordID() == id {
			s.records[i] = fn(r)
			found = true
		}
	}
	s.emit()
	return found
}

// Remove filters out the record matching id; no-op when absent.
func (s *Store[T]) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.records[:0]
	for _, r := range s.records {
		if r.RecordID() != id {
			kept = append(kept, r)
		}
	}
	s.records = kept
	s.emit()
}

// FindByID returns the record matching id as a one-shot lookup.
func (s *Store[T]) FindByID(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.records {
		if r.RecordID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// Count returns the current sequence length.
func (s *Store[T]) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Reset replaces the whole sequence and emits. Used for fixture seeding
// and tests; records keep the ids they carry.
func (s *Store[T]) Reset(records []T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append([]T(nil), records...)
	s.emit()
}

// emit delivers the current sequence to every subscriber in
// registration order. Caller must hold s.mu, which also guarantees that
// every subscriber observes mutations in the order they occurred.
func (s *Store[T]) emit() {
	snap := s.snapshot()
	for _, sub := range s.subs {
		sub.fn(snap)
	}
}

func (s *Store[T]) snapshot() []T {
	return append([]T(nil), s.records...)
}
