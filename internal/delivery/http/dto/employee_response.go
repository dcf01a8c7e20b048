package dto

import (
	"time"

	"github.com/google/uuid"

	"job-board/internal/domain/employee"
)

type EmployeeResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Contact   string    `json:"contact"`
	Skills    []string  `json:"skills"`
	Education string    `json:"education"`
	Rating    *float64  `json:"rating,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewEmployeeResponse(e employee.Employee) EmployeeResponse {
	skills := e.Skills
	if skills == nil {
		skills = []string{}
	}
	return EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Contact:   e.Contact,
		Skills:    skills,
		Education: e.Education,
		Rating:    e.Rating,
		CreatedAt: e.CreatedAt,
	}
}
