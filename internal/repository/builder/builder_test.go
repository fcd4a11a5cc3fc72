package builder

import (
	"testing"
	"time"
)

func TestSQLBuilder(t *testing.T) {
	t.Run("Select", func(t *testing.T) {
		b := NewSQLBuilder()
		query, args := b.Select("department_id", "department_name").
			From("departments").
			Where("department_id = ?", 1).
			Build()
		expected := "SELECT department_id, department_name FROM departments WHERE department_id = $1"
		if query != expected {
			t.Errorf("expected %s, got %s", expected, query)
		}
		if len(args) != 1 || args[0] != 1 {
			t.Errorf("expected args [1], got %v", args)
		}
	})

	t.Run("Insert", func(t *testing.T) {
		b := NewSQLBuilder()
		query, args := b.Insert("skills", "skill_name").Values("Programming").Build()
		expected := "INSERT INTO skills (skill_name) VALUES ($1)"
		if query != expected {
			t.Errorf("expected %s, got %s", expected, query)
		}
		if len(args) != 1 || args[0] != "Programming" {
			t.Errorf("expected args [Programming], got %v", args)
		}
	})

	t.Run("Insert with returning suffix", func(t *testing.T) {
		b := NewSQLBuilder()
		query, _ := b.Insert("skills", "skill_name").
			Values("Networking").
			Suffix("RETURNING skill_id").
			Build()
		expected := "INSERT INTO skills (skill_name) VALUES ($1) RETURNING skill_id"
		if query != expected {
			t.Errorf("expected %s, got %s", expected, query)
		}
	})

	t.Run("Update placeholders offset past SET args", func(t *testing.T) {
		b := NewSQLBuilder()
		query, args := b.Update("addresses").
			Set("street_name", "Kungsportsavenyn").
			Set("city", "Göteborg").
			Where("address_id = ?", 7).
			Build()
		expected := "UPDATE addresses SET street_name = $1, city = $2 WHERE address_id = $3"
		if query != expected {
			t.Errorf("expected %s, got %s", expected, query)
		}
		if len(args) != 3 || args[0] != "Kungsportsavenyn" || args[2] != 7 {
			t.Errorf("unexpected args %v", args)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		b := NewSQLBuilder()
		query, args := b.Delete("employees").Where("employee_id = ?", 12).Build()
		expected := "DELETE FROM employees WHERE employee_id = $1"
		if query != expected {
			t.Errorf("expected %s, got %s", expected, query)
		}
		if len(args) != 1 {
			t.Errorf("expected 1 arg, got %v", args)
		}
	})

	t.Run("Multiple conditions joined with AND", func(t *testing.T) {
		cutoff := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		b := NewSQLBuilder()
		query, args := b.Select("salary_id", "amount").
			From("salaries").
			Where("amount > ?", 30000.0).
			Where("start_date >= ?", cutoff).
			OrderBy("salary_id ASC").
			Limit(5).
			Build()
		expected := "SELECT salary_id, amount FROM salaries WHERE amount > $1 AND start_date >= $2 ORDER BY salary_id ASC LIMIT 5"
		if query != expected {
			t.Errorf("expected %s, got %s", expected, query)
		}
		if len(args) != 2 {
			t.Errorf("expected 2 args, got %v", args)
		}
	})

	t.Run("Limit zero or negative emits no LIMIT", func(t *testing.T) {
		b := NewSQLBuilder()
		query, _ := b.Select("*").From("employees").Limit(-1).Build()
		if query != "SELECT * FROM employees" {
			t.Errorf("unexpected query %s", query)
		}
	})

	t.Run("Join", func(t *testing.T) {
		b := NewSQLBuilder()
		query, _ := b.Select("e.employee_id", "d.department_name").
			From("employees e").
			Join("INNER", "departments d", "e.department_id = d.department_id").
			Build()
		expected := "SELECT e.employee_id, d.department_name FROM employees e INNER JOIN departments d ON e.department_id = d.department_id"
		if query != expected {
			t.Errorf("expected %s, got %s", expected, query)
		}
	})
}
