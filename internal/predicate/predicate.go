// Package predicate provides structured boolean filters over entity columns.
//
// A Predicate has two evaluation paths: Condition compiles it to a
// parameterized SQL fragment ("?" placeholders, rewritten to $n by the query
// builder), and Match evaluates it in process against a record's
// column/value pairs. Both paths must agree so the same predicate works
// against the real store and the in-memory test double.
package predicate

import (
	"fmt"
	"strings"
	"time"
)

type operator string

const (
	opEq   operator = "="
	opNe   operator = "<>"
	opGt   operator = ">"
	opGte  operator = ">="
	opLt   operator = "<"
	opLte  operator = "<="
	opLike operator = "LIKE"
	opIn   operator = "IN"
	opAnd  operator = "AND"
	opOr   operator = "OR"
)

// Predicate is a filter tree node. The zero value matches everything.
type Predicate struct {
	op     operator
	column string
	value  any
	values []any
	parts  []Predicate
}

// Eq matches rows whose column equals value.
func Eq(column string, value any) Predicate {
	return Predicate{op: opEq, column: column, value: value}
}

// Ne matches rows whose column differs from value.
func Ne(column string, value any) Predicate {
	return Predicate{op: opNe, column: column, value: value}
}

// Gt matches rows whose column is greater than value.
func Gt(column string, value any) Predicate {
	return Predicate{op: opGt, column: column, value: value}
}

// Gte matches rows whose column is greater than or equal to value.
func Gte(column string, value any) Predicate {
	return Predicate{op: opGte, column: column, value: value}
}

// Lt matches rows whose column is less than value.
func Lt(column string, value any) Predicate {
	return Predicate{op: opLt, column: column, value: value}
}

// Lte matches rows whose column is less than or equal to value.
func Lte(column string, value any) Predicate {
	return Predicate{op: opLte, column: column, value: value}
}

// Like matches string columns against a pattern using % wildcards at either
// end, e.g. "%berg", "Sve%" or "%eav%".
func Like(column, pattern string) Predicate {
	return Predicate{op: opLike, column: column, value: pattern}
}

// In matches rows whose column equals any of the given values. An empty value
// list matches nothing.
func In(column string, values ...any) Predicate {
	return Predicate{op: opIn, column: column, values: values}
}

// And combines predicates so that all of them must match.
func And(parts ...Predicate) Predicate {
	return Predicate{op: opAnd, parts: parts}
}

// Or combines predicates so that at least one must match.
func Or(parts ...Predicate) Predicate {
	return Predicate{op: opOr, parts: parts}
}

// IsZero reports whether p is the match-everything predicate.
func (p Predicate) IsZero() bool {
	return p.op == ""
}

// Condition compiles the predicate to a SQL fragment with "?" placeholders
// and the matching argument list. The zero predicate compiles to a tautology.
func (p Predicate) Condition() (string, []any) {
	switch p.op {
	case "":
		return "1 = 1", nil
	case opIn:
		if len(p.values) == 0 {
			return "1 = 0", nil
		}
		marks := strings.TrimSuffix(strings.Repeat("?, ", len(p.values)), ", ")
		return fmt.Sprintf("%s IN (%s)", p.column, marks), append([]any(nil), p.values...)
	case opAnd, opOr:
		if len(p.parts) == 0 {
			return "1 = 1", nil
		}
		var clauses []string
		var args []any
		for _, part := range p.parts {
			c, a := part.Condition()
			if part.op == opAnd || part.op == opOr {
				c = "(" + c + ")"
			}
			clauses = append(clauses, c)
			args = append(args, a...)
		}
		return strings.Join(clauses, " "+string(p.op)+" "), args
	default:
		return fmt.Sprintf("%s %s ?", p.column, p.op), []any{p.value}
	}
}

// Match evaluates the predicate against a record's column/value pairs, which
// must be aligned index by index. Columns the record does not carry never
// match.
func (p Predicate) Match(columns []string, values []any) bool {
	switch p.op {
	case "":
		return true
	case opAnd:
		for _, part := range p.parts {
			if !part.Match(columns, values) {
				return false
			}
		}
		return true
	case opOr:
		for _, part := range p.parts {
			if part.Match(columns, values) {
				return true
			}
		}
		return len(p.parts) == 0
	}

	actual, ok := lookup(columns, values, p.column)
	if !ok {
		return false
	}

	switch p.op {
	case opEq:
		return equal(actual, p.value)
	case opNe:
		return !equal(actual, p.value)
	case opIn:
		for _, v := range p.values {
			if equal(actual, v) {
				return true
			}
		}
		return false
	case opLike:
		pattern, ok := p.value.(string)
		if !ok {
			return false
		}
		s, ok := actual.(string)
		if !ok {
			return false
		}
		return likeMatch(s, pattern)
	}

	cmp, ok := compare(actual, p.value)
	if !ok {
		return false
	}
	switch p.op {
	case opGt:
		return cmp > 0
	case opGte:
		return cmp >= 0
	case opLt:
		return cmp < 0
	case opLte:
		return cmp <= 0
	}
	return false
}

func lookup(columns []string, values []any, column string) (any, bool) {
	for i, c := range columns {
		if c == column && i < len(values) {
			return values[i], true
		}
	}
	return nil, false
}

func equal(a, b any) bool {
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Equal(tb)
		}
		return false
	}
	if fa, ok := asFloat(a); ok {
		if fb, ok := asFloat(b); ok {
			return fa == fb
		}
	}
	return a == b
}

// compare returns the ordering of a relative to b for numeric, string and
// time values. The second result is false for incomparable operands.
func compare(a, b any) (int, bool) {
	if ta, ok := a.(time.Time); ok {
		tb, ok := b.(time.Time)
		if !ok {
			return 0, false
		}
		switch {
		case ta.Before(tb):
			return -1, true
		case ta.After(tb):
			return 1, true
		}
		return 0, true
	}
	if sa, ok := a.(string); ok {
		sb, ok := b.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(sa, sb), true
	}
	fa, ok := asFloat(a)
	if !ok {
		return 0, false
	}
	fb, ok := asFloat(b)
	if !ok {
		return 0, false
	}
	switch {
	case fa < fb:
		return -1, true
	case fa > fb:
		return 1, true
	}
	return 0, true
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func likeMatch(s, pattern string) bool {
	leading := strings.HasPrefix(pattern, "%")
	trailing := strings.HasSuffix(pattern, "%")
	core := strings.TrimSuffix(strings.TrimPrefix(pattern, "%"), "%")
	switch {
	case leading && trailing:
		return strings.Contains(s, core)
	case leading:
		return strings.HasSuffix(s, core)
	case trailing:
		return strings.HasPrefix(s, core)
	default:
		return s == core
	}
}
