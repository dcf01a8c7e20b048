package dto

import (
	"time"

	"github.com/google/uuid"

	"job-board/internal/domain/recruiter"
)

type RecruiterResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
}

func NewRecruiterResponse(r recruiter.Recruiter) RecruiterResponse {
	return RecruiterResponse{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Bio:       r.Bio,
		CreatedAt: r.CreatedAt,
	}
}
