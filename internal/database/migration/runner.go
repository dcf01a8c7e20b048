package migration

import (
	"context"
	"errors"

	"job-board/internal/database"
)

// Statements are idempotent so the runner can execute on every boot.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		contact TEXT NOT NULL DEFAULT '',
		skills TEXT[] NOT NULL DEFAULT '{}',
		education TEXT NOT NULL DEFAULT '',
		rating DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS employees_email_key ON employees (email)`,

	`CREATE TABLE IF NOT EXISTS recruiters (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		bio TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS recruiters_email_key ON recruiters (email)`,

	`CREATE TABLE IF NOT EXISTS jobs (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		recruiter_id UUID NOT NULL REFERENCES recruiters (id),
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS jobs_recruiter_id_idx ON jobs (recruiter_id)`,

	`CREATE TABLE IF NOT EXISTS applications (
		job_id UUID NOT NULL REFERENCES jobs (id) ON DELETE CASCADE,
		employee_id UUID NOT NULL REFERENCES employees (id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (job_id, employee_id)
	)`,
	`CREATE INDEX IF NOT EXISTS applications_employee_id_idx ON applications (employee_id)`,
}

type Runner struct{}

func (Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return errors.New("nil db")
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
