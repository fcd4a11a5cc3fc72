// Package postgres implements the storage contract against PostgreSQL
// through database/sql and the lib/pq driver.
package postgres

import (
	"context"
	"database/sql"

	"github.com/staffdesk/employee_directory/internal/predicate"
	"github.com/staffdesk/employee_directory/internal/repository/builder"
	"github.com/staffdesk/employee_directory/internal/storage"
)

// Store runs one entity's statements against a shared connection pool.
type Store[T any, PT storage.Ptr[T]] struct {
	db *sql.DB
}

// NewStore creates a store bound to db.
func NewStore[T any, PT storage.Ptr[T]](db *sql.DB) *Store[T, PT] {
	return &Store[T, PT]{db: db}
}

func (s *Store[T, PT]) Insert(ctx context.Context, record *T) error {
	meta := PT(record)
	cols := meta.Columns()[1:] // key is store-generated
	vals := meta.Values()[1:]

	query, args := builder.NewSQLBuilder().
		Insert(meta.Table(), cols...).
		Values(vals...).
		Suffix("RETURNING " + meta.Key()).
		Build()

	var id int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return err
	}
	meta.SetID(id)
	return nil
}

func (s *Store[T, PT]) All(ctx context.Context) ([]T, error) {
	return s.Find(ctx, predicate.Predicate{}, -1)
}

func (s *Store[T, PT]) Find(ctx context.Context, pred predicate.Predicate, limit int) ([]T, error) {
	var probe T
	meta := PT(&probe)

	condition, condArgs := pred.Condition()
	b := builder.NewSQLBuilder().
		Select(meta.Columns()...).
		From(meta.Table()).
		Where(condition, condArgs...).
		OrderBy(meta.Key() + " ASC")
	if limit > 0 {
		b.Limit(limit)
	}
	query, args := b.Build()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []T
	for rows.Next() {
		var record T
		if err := rows.Scan(PT(&record).Dest()...); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
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

func (s *Store[T, PT]) Update(ctx context.Context, record *T) error {
	meta := PT(record)
	cols := meta.Columns()
	vals := meta.Values()

	b := builder.NewSQLBuilder().Update(meta.Table())
	for i := 1; i < len(cols); i++ {
		b.Set(cols[i], vals[i])
	}
	query, args := b.Where(meta.Key()+" = ?", meta.ID()).Build()

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Store[T, PT]) Delete(ctx context.Context, record *T) error {
	meta := PT(record)
	query, args := builder.NewSQLBuilder().
		Delete(meta.Table()).
		Where(meta.Key()+" = ?", meta.ID()).
		Build()

	_, err := s.db.ExecContext(ctx, query, args...)
	return err
}
