package dto

import (
	"time"

	"github.com/google/uuid"
)

type SaveQuestionnaireRequest struct {
	Answers   map[string]string `json:"answers" validate:"required"`
	Completed bool              `json:"completed"`
}

type UpdateAnswerRequest struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value" validate:"required"`
}

type QuestionnaireResponse struct {
	Id          uuid.UUID         `json:"id"`
	UserId      uuid.UUID         `json:"user_id"`
	Answers     map[string]string `json:"answers"`
	Completed   bool              `json:"completed"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
