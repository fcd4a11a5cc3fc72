// Package memory implements the storage contract in process. It is the test
// double the repositories and services are exercised against: predicates are
// evaluated with their in-memory path, keys auto-increment and scans run in
// insertion order.
package memory

import (
	"context"
	"sync"

	"github.com/staffdesk/employee_directory/internal/predicate"
	"github.com/staffdesk/employee_directory/internal/storage"
)

// Store holds one entity's rows in memory.
type Store[T any, PT storage.Ptr[T]] struct {
	mu       sync.Mutex
	rows     []T
	nextID   int
	failWith error
	onDelete []func(deleted *T)
}

// NewStore creates an empty in-memory store.
func NewStore[T any, PT storage.Ptr[T]]() *Store[T, PT] {
	return &Store[T, PT]{}
}

// Fail makes every subsequent operation return err until Fail(nil). Used to
// exercise the repositories' failure boundaries.
func (s *Store[T, PT]) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
}

// OnDelete registers a hook run after a successful delete. The real schema
// declares ON DELETE CASCADE from the link tables to employees; tests mirror
// that by pruning dependent stores from a hook.
func (s *Store[T, PT]) OnDelete(hook func(deleted *T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onDelete = append(s.onDelete, hook)
}

// Prune removes every row the match function reports true for.
func (s *Store[T, PT]) Prune(match func(record *T) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.rows[:0]
	for i := range s.rows {
		if !match(&s.rows[i]) {
			kept = append(kept, s.rows[i])
		}
	}
	s.rows = kept
}

func (s *Store[T, PT]) Insert(_ context.Context, record *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	meta := PT(record)
	if meta.ID() == 0 {
		s.nextID++
		meta.SetID(s.nextID)
	} else if meta.ID() > s.nextID {
		s.nextID = meta.ID()
	}
	s.rows = append(s.rows, *record)
	return nil
}

func (s *Store[T, PT]) All(ctx context.Context) ([]T, error) {
	return s.Find(ctx, predicate.Predicate{}, -1)
}

func (s *Store[T, PT]) Find(_ context.Context, pred predicate.Predicate, limit int) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	var records []T
	for i := range s.rows {
		record := s.rows[i]
		meta := PT(&record)
		if !pred.Match(meta.Columns(), meta.Values()) {
			continue
		}
		records = append(records, record)
		if limit > 0 && len(records) == limit {
			break
		}
	}
	return records, nil
}

func (s *Store[T, PT]) First(ctx context.Context, pred predicate.Predicate) (*T, error) {
	records, err := s.Find(ctx, pred, 1)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

func (s *Store[T, PT]) Update(_ context.Context, record *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	id := PT(record).ID()
	for i := range s.rows {
		if PT(&s.rows[i]).ID() == id {
			s.rows[i] = *record
			return nil
		}
	}
	return errNotFound
}

func (s *Store[T, PT]) Delete(_ context.Context, record *T) error {
	s.mu.Lock()
	if s.failWith != nil {
		s.mu.Unlock()
		return s.failWith
	}
	id := PT(record).ID()
	for i := range s.rows {
		if PT(&s.rows[i]).ID() == id {
			deleted := s.rows[i]
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			hooks := append([]func(*T){}, s.onDelete...)
			s.mu.Unlock()
			for _, hook := range hooks {
				hook(&deleted)
			}
			return nil
		}
	}
	s.mu.Unlock()
	return errNotFound
}
