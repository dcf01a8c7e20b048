package job

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID          uuid.UUID
	Title       string
	Description string
	RecruiterID uuid.UUID
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Application links one employee to one job. The applications table is the
// single source of truth for both the job's applicant set and the
// employee's applied-job set.
type Application struct {
	JobID      uuid.UUID
	EmployeeID uuid.UUID
	CreatedAt  time.Time
}
