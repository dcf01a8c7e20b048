package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Contact      string
	Skills       []string
	Education    string
	Rating       *float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
