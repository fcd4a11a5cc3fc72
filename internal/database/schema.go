package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema for the employee directory. Department, position and skill names
// and the salary triple carry unique constraints so the service-level
// exists guard cannot race two concurrent creates into duplicates. The two
// link tables cascade when their employee goes away; employee_addresses
// also cascades when the address itself is removed.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS departments (
		department_id   SERIAL PRIMARY KEY,
		department_name VARCHAR(100) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS positions (
		position_id   SERIAL PRIMARY KEY,
		position_name VARCHAR(100) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS skills (
		skill_id   SERIAL PRIMARY KEY,
		skill_name VARCHAR(100) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS salaries (
		salary_id  SERIAL PRIMARY KEY,
		amount     NUMERIC(12,2) NOT NULL,
		start_date TIMESTAMPTZ NOT NULL,
		end_date   TIMESTAMPTZ NOT NULL,
		UNIQUE (amount, start_date, end_date)
	)`,
	`CREATE TABLE IF NOT EXISTS addresses (
		address_id    SERIAL PRIMARY KEY,
		street_name   VARCHAR(100) NOT NULL,
		street_number VARCHAR(20)  NOT NULL,
		postal_code   VARCHAR(20)  NOT NULL,
		city          VARCHAR(100) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		employee_id   SERIAL PRIMARY KEY,
		first_name    VARCHAR(100) NOT NULL,
		last_name     VARCHAR(100) NOT NULL,
		email         VARCHAR(200) NOT NULL UNIQUE,
		birth_date    TIMESTAMPTZ NOT NULL,
		gender        VARCHAR(10) NOT NULL,
		department_id INT NOT NULL REFERENCES departments (department_id),
		position_id   INT NOT NULL REFERENCES positions (position_id),
		salary_id     INT NOT NULL REFERENCES salaries (salary_id),
		skill_id      INT NOT NULL REFERENCES skills (skill_id)
	)`,
	`CREATE TABLE IF NOT EXISTS employee_addresses (
		employee_address_id SERIAL PRIMARY KEY,
		employee_id INT NOT NULL REFERENCES employees (employee_id) ON DELETE CASCADE,
		address_id  INT NOT NULL REFERENCES addresses (address_id) ON DELETE CASCADE,
		UNIQUE (employee_id, address_id)
	)`,
	`CREATE TABLE IF NOT EXISTS employee_phone_numbers (
		phone_number_id SERIAL PRIMARY KEY,
		phone_number    VARCHAR(30) NOT NULL UNIQUE,
		employee_id     INT NOT NULL REFERENCES employees (employee_id) ON DELETE CASCADE
	)`,
}

// Migrate creates the schema when it does not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
