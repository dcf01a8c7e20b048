package postgres

import (
	"context"
	"errors"

	"job-board/internal/database"
	"job-board/internal/domain/employee"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type EmployeeRepository struct {
	db database.DB
}

func NewEmployeeRepository(db database.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(ctx context.Context, e employee.Employee) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO employees (id, name, email, password_hash, contact, skills, education, rating)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.Name, e.Email, e.PasswordHash, e.Contact, e.Skills, e.Education, e.Rating,
	)
	if isUniqueViolation(err) {
		return employee.ErrDuplicateEmail
	}
	return err
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id uuid.UUID) (employee.Employee, error) {
	row := r.db.QueryRow(ctx, selectEmployee+` WHERE id = $1`, id)
	return scanEmployee(row)
}

func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	row := r.db.QueryRow(ctx, selectEmployee+` WHERE email = $1`, email)
	return scanEmployee(row)
}

func (r *EmployeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e employee.Employee) error {
	n, err := r.db.Exec(ctx,
		`UPDATE employees
		 SET name = $2, email = $3, contact = $4, skills = $5, education = $6, rating = $7, updated_at = now()
		 WHERE id = $1`,
		e.ID, e.Name, e.Email, e.Contact, e.Skills, e.Education, e.Rating,
	)
	if isUniqueViolation(err) {
		return employee.ErrDuplicateEmail
	}
	if err != nil {
		return err
	}
	if n == 0 {
		return employee.ErrNotFound
	}
	return nil
}

const selectEmployee = `SELECT id, name, email, password_hash, contact, skills, education, rating, created_at, updated_at FROM employees`

func scanEmployee(row database.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(&e.ID, &e.Name, &e.Email, &e.PasswordHash, &e.Contact, &e.Skills, &e.Education, &e.Rating, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
