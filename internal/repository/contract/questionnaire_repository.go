package contract

import (
	"context"

	"dreamlife-be/internal/entity"

	"github.com/google/uuid"
)

type QuestionnaireRepository interface {
	Upsert(ctx context.Context, questionnaire *entity.Questionnaire) error
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.Questionnaire, error)
}
