package domain

// Record is the metadata contract every persisted entity implements. The
// column list is ordered with the primary key first, and Values and Dest are
// aligned with Columns index by index. The generic repository relies on this
// alignment for insert/scan generation, for the key-excluded update copy and
// for in-memory predicate evaluation.
type Record interface {
	// Table returns the storage table name.
	Table() string
	// Key returns the primary key column name.
	Key() string
	// ID returns the surrogate primary key value, zero when unsaved.
	ID() int
	// SetID assigns the store-generated primary key.
	SetID(id int)
	// Columns returns all persisted column names, primary key first.
	Columns() []string
	// Values returns the current column values, aligned with Columns.
	Values() []any
	// Dest returns scan destinations, aligned with Columns.
	Dest() []any
}
