package entity

import (
	"time"

	"github.com/google/uuid"
)

// Questionnaire is a user's Life Blueprint progress. Answers map a
// closed set of known question keys to free-text answers; unknown keys
// are rejected at the boundary.
type Questionnaire struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Answers     map[string]string
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
