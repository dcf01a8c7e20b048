package job

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound             = errors.New("job not found")
	ErrDuplicateApplication = errors.New("employee already applied for this job")
)

type Repository interface {
	Create(ctx context.Context, j Job) error
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]Job, error)
	DeleteOwned(ctx context.Context, id, recruiterID uuid.UUID) error

	// Apply records the application inside a single transaction. It fails
	// with ErrNotFound when the job or employee is missing and with
	// ErrDuplicateApplication when the pair already exists.
	Apply(ctx context.Context, jobID, employeeID uuid.UUID) (Job, error)

	ListApplied(ctx context.Context, employeeID uuid.UUID) ([]Job, error)
	ListApplicants(ctx context.Context, jobID uuid.UUID) ([]uuid.UUID, error)

	// ToggleApplied flips completed on every job the employee applied to
	// and reports how many rows changed.
	ToggleApplied(ctx context.Context, employeeID uuid.UUID) (int64, error)

	// ToggleOneOwned flips completed on the recruiter's oldest job only.
	ToggleOneOwned(ctx context.Context, recruiterID uuid.UUID) (Job, error)
}
