package postgres

import (
	"context"
	"errors"

	"job-board/internal/database"
	"job-board/internal/domain/recruiter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RecruiterRepository struct {
	db database.DB
}

func NewRecruiterRepository(db database.DB) *RecruiterRepository {
	return &RecruiterRepository{db: db}
}

func (r *RecruiterRepository) Create(ctx context.Context, rec recruiter.Recruiter) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO recruiters (id, name, email, password_hash, bio)
		 VALUES ($1, $2, $3, $4, $5)`,
		rec.ID, rec.Name, rec.Email, rec.PasswordHash, rec.Bio,
	)
	if isUniqueViolation(err) {
		return recruiter.ErrDuplicateEmail
	}
	return err
}

func (r *RecruiterRepository) GetByID(ctx context.Context, id uuid.UUID) (recruiter.Recruiter, error) {
	row := r.db.QueryRow(ctx, selectRecruiter+` WHERE id = $1`, id)
	return scanRecruiter(row)
}

func (r *RecruiterRepository) GetByEmail(ctx context.Context, email string) (recruiter.Recruiter, error) {
	row := r.db.QueryRow(ctx, selectRecruiter+` WHERE email = $1`, email)
	return scanRecruiter(row)
}

func (r *RecruiterRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM recruiters WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *RecruiterRepository) Update(ctx context.Context, rec recruiter.Recruiter) error {
	n, err := r.db.Exec(ctx,
		`UPDATE recruiters
		 SET name = $2, email = $3, bio = $4, updated_at = now()
		 WHERE id = $1`,
		rec.ID, rec.Name, rec.Email, rec.Bio,
	)
	if isUniqueViolation(err) {
		return recruiter.ErrDuplicateEmail
	}
	if err != nil {
		return err
	}
	if n == 0 {
		return recruiter.ErrNotFound
	}
	return nil
}

const selectRecruiter = `SELECT id, name, email, password_hash, bio, created_at, updated_at FROM recruiters`

func scanRecruiter(row database.Row) (recruiter.Recruiter, error) {
	var rec recruiter.Recruiter
	err := row.Scan(&rec.ID, &rec.Name, &rec.Email, &rec.PasswordHash, &rec.Bio, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recruiter.Recruiter{}, recruiter.ErrNotFound
		}
		return recruiter.Recruiter{}, err
	}
	return rec, nil
}
