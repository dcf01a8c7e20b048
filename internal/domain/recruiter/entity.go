package recruiter

import (
	"time"

	"github.com/google/uuid"
)

type Recruiter struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Bio          string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
