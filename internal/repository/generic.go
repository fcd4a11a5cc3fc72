// Package repository provides the generic CRUD engine over a single entity
// table plus the per-entity repositories layered on top of it.
//
// Every operation wraps store access in a failure boundary that reports
// "(error detail, <RepositoryType> - <OperationName>)" to the Logs
// collaborator. Whether the failure is then swallowed (a safe zero result)
// or propagated is part of each operation's contract and is visible in its
// signature: operations without an error return swallow, operations
// returning an error propagate. The base policy is
//
//	Exists  swallow -> false
//	Create  swallow -> nil
//	GetAll  swallow -> nil
//	Get     swallow -> nil
//	GetOne  swallow -> nil
//	Update  propagate
//	Delete  propagate
//
// and the per-entity repositories deviate from it where documented on their
// methods.
package repository

import (
	"context"

	"github.com/staffdesk/employee_directory/internal/logger"
	"github.com/staffdesk/employee_directory/internal/predicate"
	"github.com/staffdesk/employee_directory/internal/storage"
)

// Repository is the generic CRUD engine bound to one entity type.
type Repository[T any, PT storage.Ptr[T]] struct {
	store storage.Store[T]
	logs  *logger.Logs
	name  string
}

// NewRepository creates a repository over store. The name labels failure
// reports, e.g. "AddressRepository".
func NewRepository[T any, PT storage.Ptr[T]](store storage.Store[T], logs *logger.Logs, name string) *Repository[T, PT] {
	return &Repository[T, PT]{store: store, logs: logs, name: name}
}

// Store exposes the underlying store to the per-entity repositories.
func (r *Repository[T, PT]) Store() storage.Store[T] { return r.store }

// Logs exposes the diagnostic collaborator to the per-entity repositories.
func (r *Repository[T, PT]) Logs() *logger.Logs { return r.logs }

// Name returns the failure-report label.
func (r *Repository[T, PT]) Name() string { return r.name }

// Exists reports whether at least one stored record matches pred. Store
// failures are reported and treated as "does not exist".
func (r *Repository[T, PT]) Exists(ctx context.Context, pred predicate.Predicate) bool {
	record, err := r.store.First(ctx, pred)
	if err != nil {
		r.logs.LogToFile(err.Error(), r.name+" - Exists")
		return false
	}
	return record != nil
}

// Create inserts entity and returns it with its store-generated key, or nil
// when the insert fails.
func (r *Repository[T, PT]) Create(ctx context.Context, entity *T) *T {
	if err := r.store.Insert(ctx, entity); err != nil {
		r.logs.LogToFile(err.Error(), r.name+" - Create")
		return nil
	}
	return entity
}

// GetAll returns every stored record, or nil on failure.
func (r *Repository[T, PT]) GetAll(ctx context.Context) []T {
	records, err := r.store.All(ctx)
	if err != nil {
		r.logs.LogToFile(err.Error(), r.name+" - GetAll")
		return nil
	}
	return records
}

// Get returns up to take records matching pred in store order. A take <= 0
// means no limit. Returns nil on failure.
func (r *Repository[T, PT]) Get(ctx context.Context, pred predicate.Predicate, take int) []T {
	records, err := r.store.Find(ctx, pred, take)
	if err != nil {
		r.logs.LogToFile(err.Error(), r.name+" - Get")
		return nil
	}
	return records
}

// GetOne returns the first record matching pred, or nil when none matches or
// on failure.
func (r *Repository[T, PT]) GetOne(ctx context.Context, pred predicate.Predicate) *T {
	record, err := r.store.First(ctx, pred)
	if err != nil {
		r.logs.LogToFile(err.Error(), r.name+" - GetOne")
		return nil
	}
	return record
}

// Update locates the first record matching pred and overwrites every field
// from updated onto it except the primary key, which keeps the located row's
// identity even when updated carries a different or zero key. Returns the
// persisted record, nil when nothing matched, or the store error.
func (r *Repository[T, PT]) Update(ctx context.Context, pred predicate.Predicate, updated *T) (*T, error) {
	existing, err := r.store.First(ctx, pred)
	if err != nil {
		r.logs.LogToFile(err.Error(), r.name+" - Update")
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	merged := *updated
	PT(&merged).SetID(PT(existing).ID())

	if err := r.store.Update(ctx, &merged); err != nil {
		r.logs.LogToFile(err.Error(), r.name+" - Update")
		return nil, err
	}
	return &merged, nil
}

// Delete removes the first record matching pred. Returns false with no error
// when nothing matched.
func (r *Repository[T, PT]) Delete(ctx context.Context, pred predicate.Predicate) (bool, error) {
	existing, err := r.store.First(ctx, pred)
	if err != nil {
		r.logs.LogToFile(err.Error(), r.name+" - Delete")
		return false, err
	}
	if existing == nil {
		return false, nil
	}
	if err := r.store.Delete(ctx, existing); err != nil {
		r.logs.LogToFile(err.Error(), r.name+" - Delete")
		return false, err
	}
	return true, nil
}
