// Package builder constructs parameterized Postgres statements with a small
// fluent API. Conditions are written with "?" placeholders and rewritten to
// positional "$n" markers at build time, so predicate fragments compose with
// SET clauses without placeholder bookkeeping at the call site.
package builder

import (
	"fmt"
	"strings"
)

type statement int

const (
	stmtSelect statement = iota
	stmtInsert
	stmtUpdate
	stmtDelete
)

// SQLBuilder accumulates one statement. Zero value is unusable; start with
// NewSQLBuilder and one of Select/Insert/Update/Delete.
type SQLBuilder struct {
	kind       statement
	table      string
	columns    []string
	setCols    []string
	setArgs    []any
	conditions []string
	condArgs   []any
	joins      []string
	orderBy    []string
	limit      int
	offset     int
	suffix     string
}

// NewSQLBuilder creates an empty builder.
func NewSQLBuilder() *SQLBuilder {
	return &SQLBuilder{}
}

// Select starts a SELECT of the given columns.
func (b *SQLBuilder) Select(cols ...string) *SQLBuilder {
	b.kind = stmtSelect
	b.columns = cols
	return b
}

// From names the table for a SELECT.
func (b *SQLBuilder) From(table string) *SQLBuilder {
	b.table = table
	return b
}

// Insert starts an INSERT into table over the given columns.
func (b *SQLBuilder) Insert(table string, cols ...string) *SQLBuilder {
	b.kind = stmtInsert
	b.table = table
	b.columns = cols
	return b
}

// Values supplies the INSERT values, aligned with the Insert columns.
func (b *SQLBuilder) Values(vals ...any) *SQLBuilder {
	b.setArgs = append(b.setArgs, vals...)
	return b
}

// Update starts an UPDATE of table.
func (b *SQLBuilder) Update(table string) *SQLBuilder {
	b.kind = stmtUpdate
	b.table = table
	return b
}

// Set adds one column assignment to an UPDATE.
func (b *SQLBuilder) Set(col string, val any) *SQLBuilder {
	b.setCols = append(b.setCols, col)
	b.setArgs = append(b.setArgs, val)
	return b
}

// Delete starts a DELETE from table.
func (b *SQLBuilder) Delete(table string) *SQLBuilder {
	b.kind = stmtDelete
	b.table = table
	return b
}

// Where adds a condition with "?" placeholders. Multiple conditions are
// joined with AND.
func (b *SQLBuilder) Where(condition string, args ...any) *SQLBuilder {
	b.conditions = append(b.conditions, condition)
	b.condArgs = append(b.condArgs, args...)
	return b
}

// Join adds a JOIN clause to a SELECT.
func (b *SQLBuilder) Join(joinType, table, on string) *SQLBuilder {
	b.joins = append(b.joins, fmt.Sprintf("%s JOIN %s ON %s", joinType, table, on))
	return b
}

// OrderBy appends an ORDER BY term.
func (b *SQLBuilder) OrderBy(order string) *SQLBuilder {
	b.orderBy = append(b.orderBy, order)
	return b
}

// Limit caps the row count. Values <= 0 leave the statement unlimited.
func (b *SQLBuilder) Limit(limit int) *SQLBuilder {
	b.limit = limit
	return b
}

// Offset skips the first rows. Values <= 0 are ignored.
func (b *SQLBuilder) Offset(offset int) *SQLBuilder {
	b.offset = offset
	return b
}

// Suffix appends a raw trailing fragment, e.g. "RETURNING employee_id".
func (b *SQLBuilder) Suffix(fragment string) *SQLBuilder {
	b.suffix = fragment
	return b
}

// Build assembles the SQL text and its argument list.
func (b *SQLBuilder) Build() (string, []any) {
	var sb strings.Builder
	next := 1

	switch b.kind {
	case stmtSelect:
		sb.WriteString("SELECT ")
		sb.WriteString(strings.Join(b.columns, ", "))
		sb.WriteString(" FROM ")
		sb.WriteString(b.table)
		for _, join := range b.joins {
			sb.WriteString(" ")
			sb.WriteString(join)
		}
	case stmtInsert:
		sb.WriteString("INSERT INTO ")
		sb.WriteString(b.table)
		sb.WriteString(" (")
		sb.WriteString(strings.Join(b.columns, ", "))
		sb.WriteString(") VALUES (")
		marks := make([]string, len(b.setArgs))
		for i := range b.setArgs {
			marks[i] = fmt.Sprintf("$%d", next)
			next++
		}
		sb.WriteString(strings.Join(marks, ", "))
		sb.WriteString(")")
	case stmtUpdate:
		sb.WriteString("UPDATE ")
		sb.WriteString(b.table)
		sb.WriteString(" SET ")
		assignments := make([]string, len(b.setCols))
		for i, col := range b.setCols {
			assignments[i] = fmt.Sprintf("%s = $%d", col, next)
			next++
		}
		sb.WriteString(strings.Join(assignments, ", "))
	case stmtDelete:
		sb.WriteString("DELETE FROM ")
		sb.WriteString(b.table)
	}

	if len(b.conditions) > 0 {
		sb.WriteString(" WHERE ")
		clause := strings.Join(b.conditions, " AND ")
		for _, r := range clause {
			if r == '?' {
				fmt.Fprintf(&sb, "$%d", next)
				next++
				continue
			}
			sb.WriteRune(r)
		}
	}

	if len(b.orderBy) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", b.limit)
	}
	if b.offset > 0 {
		fmt.Fprintf(&sb, " OFFSET %d", b.offset)
	}
	if b.suffix != "" {
		sb.WriteString(" ")
		sb.WriteString(b.suffix)
	}

	args := append(append([]any(nil), b.setArgs...), b.condArgs...)
	return sb.String(), args
}
