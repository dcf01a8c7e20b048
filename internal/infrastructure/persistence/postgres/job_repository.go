package postgres

import (
	"context"
	"errors"

	"job-board/internal/database"
	"job-board/internal/domain/employee"
	"job-board/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type JobRepository struct {
	db database.DB
}

func NewJobRepository(db database.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, j job.Job) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, title, description, recruiter_id, completed)
		 VALUES ($1, $2, $3, $4, $5)`,
		j.ID, j.Title, j.Description, j.RecruiterID, j.Completed,
	)
	return err
}

func (r *JobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, selectJob+` WHERE id = $1`, id)
	return scanJob(row)
}

func (r *JobRepository) ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		selectJob+` WHERE recruiter_id = $1 ORDER BY created_at, id`,
		recruiterID,
	)
	if err != nil {
		return nil, err
	}
	return collectJobs(rows)
}

func (r *JobRepository) DeleteOwned(ctx context.Context, id, recruiterID uuid.UUID) error {
	n, err := r.db.Exec(ctx,
		`DELETE FROM jobs WHERE id = $1 AND recruiter_id = $2`,
		id, recruiterID,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

// Apply performs the whole application workflow in one transaction: the
// duplicate check and the insert either both take effect or neither does,
// and the composite primary key backstops the check against a concurrent
// apply for the same pair.
func (r *JobRepository) Apply(ctx context.Context, jobID, employeeID uuid.UUID) (job.Job, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return job.Job{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	j, err := scanJob(tx.QueryRow(ctx, selectJob+` WHERE id = $1 FOR UPDATE`, jobID))
	if err != nil {
		return job.Job{}, err
	}

	var employeeExists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE id = $1)`, employeeID).Scan(&employeeExists); err != nil {
		return job.Job{}, err
	}
	if !employeeExists {
		return job.Job{}, employee.ErrNotFound
	}

	var applied bool
	if err := tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND employee_id = $2)`,
		jobID, employeeID,
	).Scan(&applied); err != nil {
		return job.Job{}, err
	}
	if applied {
		return job.Job{}, job.ErrDuplicateApplication
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO applications (job_id, employee_id) VALUES ($1, $2)`,
		jobID, employeeID,
	); err != nil {
		if isUniqueViolation(err) {
			return job.Job{}, job.ErrDuplicateApplication
		}
		return job.Job{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return job.Job{}, err
	}
	return j, nil
}

func (r *JobRepository) ListApplied(ctx context.Context, employeeID uuid.UUID) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT j.id, j.title, j.description, j.recruiter_id, j.completed, j.created_at, j.updated_at
		 FROM jobs j
		 JOIN applications a ON a.job_id = j.id
		 WHERE a.employee_id = $1
		 ORDER BY a.created_at, j.id`,
		employeeID,
	)
	if err != nil {
		return nil, err
	}
	return collectJobs(rows)
}

func (r *JobRepository) ListApplicants(ctx context.Context, jobID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT employee_id FROM applications WHERE job_id = $1 ORDER BY created_at`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *JobRepository) ToggleApplied(ctx context.Context, employeeID uuid.UUID) (int64, error) {
	return r.db.Exec(ctx,
		`UPDATE jobs
		 SET completed = NOT completed, updated_at = now()
		 WHERE id IN (SELECT job_id FROM applications WHERE employee_id = $1)`,
		employeeID,
	)
}

func (r *JobRepository) ToggleOneOwned(ctx context.Context, recruiterID uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE jobs
		 SET completed = NOT completed, updated_at = now()
		 WHERE id = (
			SELECT id FROM jobs WHERE recruiter_id = $1 ORDER BY created_at, id LIMIT 1
		 )
		 RETURNING id, title, description, recruiter_id, completed, created_at, updated_at`,
		recruiterID,
	)
	return scanJob(row)
}

const selectJob = `SELECT id, title, description, recruiter_id, completed, created_at, updated_at FROM jobs`

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	err := row.Scan(&j.ID, &j.Title, &j.Description, &j.RecruiterID, &j.Completed, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func collectJobs(rows database.Rows) ([]job.Job, error) {
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		var j job.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Description, &j.RecruiterID, &j.Completed, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
