package usecase

import (
	"context"
	"sort"
	"time"

	"job-board/internal/domain/employee"
	"job-board/internal/domain/job"
	"job-board/internal/domain/recruiter"

	"github.com/google/uuid"
)

type memEmployeeRepo struct {
	byID map[uuid.UUID]employee.Employee
}

func newMemEmployeeRepo() *memEmployeeRepo {
	return &memEmployeeRepo{byID: map[uuid.UUID]employee.Employee{}}
}

func (m *memEmployeeRepo) Create(_ context.Context, e employee.Employee) error {
	for _, other := range m.byID {
		if other.Email == e.Email {
			return employee.ErrDuplicateEmail
		}
	}
	e.CreatedAt = time.Now().UTC()
	e.UpdatedAt = e.CreatedAt
	m.byID[e.ID] = e
	return nil
}

func (m *memEmployeeRepo) GetByID(_ context.Context, id uuid.UUID) (employee.Employee, error) {
	e, ok := m.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrNotFound
	}
	return e, nil
}

func (m *memEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	for _, e := range m.byID {
		if e.Email == email {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrNotFound
}

func (m *memEmployeeRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (m *memEmployeeRepo) Update(_ context.Context, e employee.Employee) error {
	if _, ok := m.byID[e.ID]; !ok {
		return employee.ErrNotFound
	}
	for id, other := range m.byID {
		if id != e.ID && other.Email == e.Email {
			return employee.ErrDuplicateEmail
		}
	}
	e.UpdatedAt = time.Now().UTC()
	m.byID[e.ID] = e
	return nil
}

type memRecruiterRepo struct {
	byID map[uuid.UUID]recruiter.Recruiter
}

func newMemRecruiterRepo() *memRecruiterRepo {
	return &memRecruiterRepo{byID: map[uuid.UUID]recruiter.Recruiter{}}
}

func (m *memRecruiterRepo) Create(_ context.Context, r recruiter.Recruiter) error {
	for _, other := range m.byID {
		if other.Email == r.Email {
			return recruiter.ErrDuplicateEmail
		}
	}
	r.CreatedAt = time.Now().UTC()
	r.UpdatedAt = r.CreatedAt
	m.byID[r.ID] = r
	return nil
}

func (m *memRecruiterRepo) GetByID(_ context.Context, id uuid.UUID) (recruiter.Recruiter, error) {
	r, ok := m.byID[id]
	if !ok {
		return recruiter.Recruiter{}, recruiter.ErrNotFound
	}
	return r, nil
}

func (m *memRecruiterRepo) GetByEmail(_ context.Context, email string) (recruiter.Recruiter, error) {
	for _, r := range m.byID {
		if r.Email == email {
			return r, nil
		}
	}
	return recruiter.Recruiter{}, recruiter.ErrNotFound
}

func (m *memRecruiterRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (m *memRecruiterRepo) Update(_ context.Context, r recruiter.Recruiter) error {
	if _, ok := m.byID[r.ID]; !ok {
		return recruiter.ErrNotFound
	}
	m.byID[r.ID] = r
	return nil
}

// memJobRepo mirrors the SQL repository's contract: the applications map
// is the single source of truth for both applicant and applied-job sets.
type memJobRepo struct {
	employees *memEmployeeRepo

	jobs     map[uuid.UUID]job.Job
	jobOrder []uuid.UUID

	applications map[uuid.UUID][]uuid.UUID // employee id -> applied job ids in order
}

func newMemJobRepo(employees *memEmployeeRepo) *memJobRepo {
	return &memJobRepo{
		employees:    employees,
		jobs:         map[uuid.UUID]job.Job{},
		applications: map[uuid.UUID][]uuid.UUID{},
	}
}

func (m *memJobRepo) Create(_ context.Context, j job.Job) error {
	j.CreatedAt = time.Now().UTC()
	j.UpdatedAt = j.CreatedAt
	m.jobs[j.ID] = j
	m.jobOrder = append(m.jobOrder, j.ID)
	return nil
}

func (m *memJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	j, ok := m.jobs[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (m *memJobRepo) ListByRecruiter(_ context.Context, recruiterID uuid.UUID) ([]job.Job, error) {
	out := make([]job.Job, 0)
	for _, id := range m.jobOrder {
		if j, ok := m.jobs[id]; ok && j.RecruiterID == recruiterID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *memJobRepo) DeleteOwned(_ context.Context, id, recruiterID uuid.UUID) error {
	j, ok := m.jobs[id]
	if !ok || j.RecruiterID != recruiterID {
		return job.ErrNotFound
	}
	delete(m.jobs, id)
	for empID, applied := range m.applications {
		kept := applied[:0]
		for _, jobID := range applied {
			if jobID != id {
				kept = append(kept, jobID)
			}
		}
		m.applications[empID] = kept
	}
	return nil
}

func (m *memJobRepo) Apply(ctx context.Context, jobID, employeeID uuid.UUID) (job.Job, error) {
	j, ok := m.jobs[jobID]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	if _, err := m.employees.GetByID(ctx, employeeID); err != nil {
		return job.Job{}, employee.ErrNotFound
	}
	for _, applied := range m.applications[employeeID] {
		if applied == jobID {
			return job.Job{}, job.ErrDuplicateApplication
		}
	}
	m.applications[employeeID] = append(m.applications[employeeID], jobID)
	return j, nil
}

func (m *memJobRepo) ListApplied(_ context.Context, employeeID uuid.UUID) ([]job.Job, error) {
	out := make([]job.Job, 0)
	for _, jobID := range m.applications[employeeID] {
		if j, ok := m.jobs[jobID]; ok {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *memJobRepo) ListApplicants(_ context.Context, jobID uuid.UUID) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0)
	for empID, applied := range m.applications {
		for _, id := range applied {
			if id == jobID {
				out = append(out, empID)
			}
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].String() < out[k].String() })
	return out, nil
}

func (m *memJobRepo) ToggleApplied(_ context.Context, employeeID uuid.UUID) (int64, error) {
	var n int64
	for _, jobID := range m.applications[employeeID] {
		if j, ok := m.jobs[jobID]; ok {
			j.Completed = !j.Completed
			m.jobs[jobID] = j
			n++
		}
	}
	return n, nil
}

func (m *memJobRepo) ToggleOneOwned(_ context.Context, recruiterID uuid.UUID) (job.Job, error) {
	for _, id := range m.jobOrder {
		j, ok := m.jobs[id]
		if !ok || j.RecruiterID != recruiterID {
			continue
		}
		j.Completed = !j.Completed
		m.jobs[id] = j
		return j, nil
	}
	return job.Job{}, job.ErrNotFound
}
