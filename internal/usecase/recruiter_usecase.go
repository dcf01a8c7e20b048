package usecase

import (
	"context"
	"errors"
	"strings"

	"job-board/internal/domain/job"
	"job-board/internal/domain/recruiter"

	"github.com/google/uuid"
)

type UpdateRecruiterProfileInput struct {
	Name  string
	Email string
	Bio   string
}

type CreateJobInput struct {
	Title       string
	Description string
	Completed   bool
}

type RecruiterUsecase interface {
	GetProfile(ctx context.Context, id uuid.UUID) (recruiter.Recruiter, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, in UpdateRecruiterProfileInput) (recruiter.Recruiter, error)
	ToggleDashboard(ctx context.Context, id uuid.UUID) (job.Job, error)
	ListJobs(ctx context.Context, id uuid.UUID) ([]job.Job, error)
	CreateJob(ctx context.Context, id uuid.UUID, in CreateJobInput) (job.Job, error)
	DeleteJob(ctx context.Context, id, jobID uuid.UUID) error
}

type Recruiter struct {
	recruiters recruiter.Repository
	jobs       job.Repository
}

func NewRecruiterUsecase(recruiters recruiter.Repository, jobs job.Repository) *Recruiter {
	return &Recruiter{recruiters: recruiters, jobs: jobs}
}

func (u *Recruiter) GetProfile(ctx context.Context, id uuid.UUID) (recruiter.Recruiter, error) {
	r, err := u.recruiters.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, recruiter.ErrNotFound) {
			return recruiter.Recruiter{}, err
		}
		return recruiter.Recruiter{}, ErrInternal
	}
	r.PasswordHash = ""
	return r, nil
}

func (u *Recruiter) UpdateProfile(ctx context.Context, id uuid.UUID, in UpdateRecruiterProfileInput) (recruiter.Recruiter, error) {
	r, err := u.recruiters.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, recruiter.ErrNotFound) {
			return recruiter.Recruiter{}, err
		}
		return recruiter.Recruiter{}, ErrInternal
	}

	if v := strings.TrimSpace(in.Name); v != "" {
		r.Name = v
	}
	if v := strings.TrimSpace(in.Email); v != "" {
		r.Email = strings.ToLower(v)
	}
	if v := strings.TrimSpace(in.Bio); v != "" {
		r.Bio = v
	}

	if err := u.recruiters.Update(ctx, r); err != nil {
		if errors.Is(err, recruiter.ErrDuplicateEmail) {
			return recruiter.Recruiter{}, err
		}
		return recruiter.Recruiter{}, ErrInternal
	}

	updated, err := u.recruiters.GetByID(ctx, id)
	if err != nil {
		return recruiter.Recruiter{}, ErrInternal
	}
	updated.PasswordHash = ""
	return updated, nil
}

// ToggleDashboard flips completed on the recruiter's oldest job only,
// unlike the employee toggle which covers every applied job.
func (u *Recruiter) ToggleDashboard(ctx context.Context, id uuid.UUID) (job.Job, error) {
	j, err := u.jobs.ToggleOneOwned(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, err
		}
		return job.Job{}, ErrInternal
	}
	return j, nil
}

func (u *Recruiter) ListJobs(ctx context.Context, id uuid.UUID) ([]job.Job, error) {
	jobs, err := u.jobs.ListByRecruiter(ctx, id)
	if err != nil {
		return nil, ErrInternal
	}
	return jobs, nil
}

func (u *Recruiter) CreateJob(ctx context.Context, id uuid.UUID, in CreateJobInput) (job.Job, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || strings.TrimSpace(in.Description) == "" {
		return job.Job{}, ErrInvalidInput
	}

	j := job.Job{
		ID:          uuid.New(),
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		RecruiterID: id,
		Completed:   in.Completed,
	}

	if err := u.jobs.Create(ctx, j); err != nil {
		return job.Job{}, ErrInternal
	}

	created, err := u.jobs.GetByID(ctx, j.ID)
	if err != nil {
		return job.Job{}, ErrInternal
	}
	return created, nil
}

// DeleteJob only removes jobs owned by the caller; a foreign job id reads
// as not found.
func (u *Recruiter) DeleteJob(ctx context.Context, id, jobID uuid.UUID) error {
	if err := u.jobs.DeleteOwned(ctx, jobID, id); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return err
		}
		return ErrInternal
	}
	return nil
}
