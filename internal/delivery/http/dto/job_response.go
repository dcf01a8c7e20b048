package dto

import (
	"time"

	"github.com/google/uuid"

	"job-board/internal/domain/job"
)

type JobResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	RecruiterID uuid.UUID `json:"recruiter_id"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewJobResponse(j job.Job) JobResponse {
	return JobResponse{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		RecruiterID: j.RecruiterID,
		Completed:   j.Completed,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

func NewJobResponses(jobs []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j))
	}
	return out
}
