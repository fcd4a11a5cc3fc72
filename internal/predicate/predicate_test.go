package predicate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCondition(t *testing.T) {
	tests := []struct {
		name     string
		pred     Predicate
		wantSQL  string
		wantArgs []any
	}{
		{
			name:    "zero predicate matches everything",
			pred:    Predicate{},
			wantSQL: "1 = 1",
		},
		{
			name:     "equality",
			pred:     Eq("department_name", "Finance"),
			wantSQL:  "department_name = ?",
			wantArgs: []any{"Finance"},
		},
		{
			name:     "inequality",
			pred:     Ne("city", "Stockholm"),
			wantSQL:  "city <> ?",
			wantArgs: []any{"Stockholm"},
		},
		{
			name:     "like",
			pred:     Like("street_name", "Svea%"),
			wantSQL:  "street_name LIKE ?",
			wantArgs: []any{"Svea%"},
		},
		{
			name:     "in",
			pred:     In("employee_id", 1, 2, 3),
			wantSQL:  "employee_id IN (?, ?, ?)",
			wantArgs: []any{1, 2, 3},
		},
		{
			name:    "empty in matches nothing",
			pred:    In("employee_id"),
			wantSQL: "1 = 0",
		},
		{
			name:     "and",
			pred:     And(Eq("first_name", "Anna"), Gt("salary_id", 2)),
			wantSQL:  "first_name = ? AND salary_id > ?",
			wantArgs: []any{"Anna", 2},
		},
		{
			name:     "nested or is parenthesized",
			pred:     And(Eq("gender", "F"), Or(Eq("city", "Malmö"), Eq("city", "Lund"))),
			wantSQL:  "gender = ? AND (city = ? OR city = ?)",
			wantArgs: []any{"F", "Malmö", "Lund"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := tt.pred.Condition()
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestMatch(t *testing.T) {
	birth := time.Date(1985, 6, 1, 0, 0, 0, 0, time.UTC)
	columns := []string{"employee_id", "first_name", "email", "birth_date", "salary_id"}
	values := []any{7, "Anna", "anna@staffdesk.se", birth, 3}

	tests := []struct {
		name string
		pred Predicate
		want bool
	}{
		{"zero predicate", Predicate{}, true},
		{"eq hit", Eq("first_name", "Anna"), true},
		{"eq miss", Eq("first_name", "Erik"), false},
		{"eq numeric coercion", Eq("salary_id", 3.0), true},
		{"ne", Ne("first_name", "Erik"), true},
		{"gt on key", Gt("employee_id", 3), true},
		{"lte miss", Lte("employee_id", 3), false},
		{"time equality", Eq("birth_date", birth), true},
		{"time before", Lt("birth_date", birth.AddDate(1, 0, 0)), true},
		{"like prefix", Like("email", "anna@%"), true},
		{"like contains", Like("email", "%staffdesk%"), true},
		{"like miss", Like("email", "%gmail.com"), false},
		{"in hit", In("employee_id", 1, 7), true},
		{"in empty", In("employee_id"), false},
		{"unknown column never matches", Eq("last_name", "Anna"), false},
		{"and", And(Eq("first_name", "Anna"), Gt("salary_id", 2)), true},
		{"and short circuit", And(Eq("first_name", "Erik"), Gt("salary_id", 2)), false},
		{"or", Or(Eq("first_name", "Erik"), Eq("salary_id", 3)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pred.Match(columns, values))
		})
	}
}

// The two evaluation paths must answer consistently: rows Match accepts are
// exactly the rows the compiled condition would keep.
func TestConditionAndMatchAgree(t *testing.T) {
	columns := []string{"employee_id", "first_name"}
	rows := [][]any{
		{1, "Anna"},
		{2, "Erik"},
		{3, "Anna"},
	}

	pred := And(Eq("first_name", "Anna"), Gt("employee_id", 1))

	sql, args := pred.Condition()
	require.Equal(t, "first_name = ? AND employee_id > ?", sql)
	require.Equal(t, []any{"Anna", 1}, args)

	var matched []int
	for _, row := range rows {
		if pred.Match(columns, row) {
			matched = append(matched, row[0].(int))
		}
	}
	assert.Equal(t, []int{3}, matched)
}
