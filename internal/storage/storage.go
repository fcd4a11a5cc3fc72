// Package storage defines the store collaborator the repositories operate
// through: a per-entity session offering insert, full scan, filtered scan
// with limit, first match, field-level update and removal. Two
// implementations exist, storage/postgres for the real relational store and
// storage/memory for the in-process double used by tests.
package storage

import (
	"context"

	"github.com/staffdesk/employee_directory/internal/domain"
	"github.com/staffdesk/employee_directory/internal/predicate"
)

// Ptr constrains a pointer to an entity struct to the Record metadata
// contract.
type Ptr[T any] interface {
	*T
	domain.Record
}

// Store is one connected session over a single entity table.
type Store[T any] interface {
	// Insert persists a new record and assigns its generated key.
	Insert(ctx context.Context, record *T) error
	// All returns every stored record.
	All(ctx context.Context) ([]T, error)
	// Find returns records matching pred, up to limit. A limit <= 0 means
	// no limit.
	Find(ctx context.Context, pred predicate.Predicate, limit int) ([]T, error)
	// First returns the first record matching pred, or nil when none does.
	First(ctx context.Context, pred predicate.Predicate) (*T, error)
	// Update overwrites the non-key columns of the row with record's key.
	Update(ctx context.Context, record *T) error
	// Delete removes the row with record's key.
	Delete(ctx context.Context, record *T) error
}
