package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"job-board/internal/domain/employee"
	"job-board/internal/domain/job"

	"github.com/google/uuid"
)

// UpdateEmployeeProfileInput carries the merge-update fields. Empty
// strings, empty slices and nil rating all mean "keep the stored value".
type UpdateEmployeeProfileInput struct {
	Name      string
	Email     string
	Contact   string
	Skills    []string
	Education string
	Rating    *float64
}

type EmployeeUsecase interface {
	GetProfile(ctx context.Context, id uuid.UUID) (employee.Employee, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, in UpdateEmployeeProfileInput) (employee.Employee, error)
	Dashboard(ctx context.Context, id uuid.UUID) ([]job.Job, error)
	ToggleDashboard(ctx context.Context, id uuid.UUID) (int64, error)
	AppliedJobTitles(ctx context.Context, id uuid.UUID) ([]string, error)
	Apply(ctx context.Context, employeeID, jobID uuid.UUID) (string, error)
}

type Employee struct {
	employees employee.Repository
	jobs      job.Repository
}

func NewEmployeeUsecase(employees employee.Repository, jobs job.Repository) *Employee {
	return &Employee{employees: employees, jobs: jobs}
}

func (u *Employee) GetProfile(ctx context.Context, id uuid.UUID) (employee.Employee, error) {
	e, err := u.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			return employee.Employee{}, err
		}
		return employee.Employee{}, ErrInternal
	}
	e.PasswordHash = ""
	return e, nil
}

func (u *Employee) UpdateProfile(ctx context.Context, id uuid.UUID, in UpdateEmployeeProfileInput) (employee.Employee, error) {
	e, err := u.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			return employee.Employee{}, err
		}
		return employee.Employee{}, ErrInternal
	}

	if v := strings.TrimSpace(in.Name); v != "" {
		e.Name = v
	}
	if v := strings.TrimSpace(in.Email); v != "" {
		e.Email = strings.ToLower(v)
	}
	if v := strings.TrimSpace(in.Contact); v != "" {
		e.Contact = v
	}
	if len(in.Skills) > 0 {
		e.Skills = in.Skills
	}
	if v := strings.TrimSpace(in.Education); v != "" {
		e.Education = v
	}
	if in.Rating != nil {
		e.Rating = in.Rating
	}

	if err := u.employees.Update(ctx, e); err != nil {
		if errors.Is(err, employee.ErrDuplicateEmail) {
			return employee.Employee{}, err
		}
		return employee.Employee{}, ErrInternal
	}

	updated, err := u.employees.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, ErrInternal
	}
	updated.PasswordHash = ""
	return updated, nil
}

func (u *Employee) Dashboard(ctx context.Context, id uuid.UUID) ([]job.Job, error) {
	jobs, err := u.jobs.ListApplied(ctx, id)
	if err != nil {
		return nil, ErrInternal
	}
	return jobs, nil
}

// ToggleDashboard flips completed on every applied job. Intentionally
// asymmetric with the recruiter side, which flips a single job.
func (u *Employee) ToggleDashboard(ctx context.Context, id uuid.UUID) (int64, error) {
	n, err := u.jobs.ToggleApplied(ctx, id)
	if err != nil {
		return 0, ErrInternal
	}
	return n, nil
}

func (u *Employee) AppliedJobTitles(ctx context.Context, id uuid.UUID) ([]string, error) {
	jobs, err := u.jobs.ListApplied(ctx, id)
	if err != nil {
		return nil, ErrInternal
	}

	titles := make([]string, 0, len(jobs))
	for _, j := range jobs {
		titles = append(titles, j.Title)
	}
	return titles, nil
}

// Apply records the application and returns the confirmation message
// naming the job. Duplicate applications are rejected, not absorbed.
func (u *Employee) Apply(ctx context.Context, employeeID, jobID uuid.UUID) (string, error) {
	j, err := u.jobs.Apply(ctx, jobID, employeeID)
	if err != nil {
		switch {
		case errors.Is(err, job.ErrNotFound), errors.Is(err, employee.ErrNotFound):
			return "", err
		case errors.Is(err, job.ErrDuplicateApplication):
			return "", err
		default:
			return "", ErrInternal
		}
	}

	return fmt.Sprintf("Application for %s has been submitted", j.Title), nil
}
