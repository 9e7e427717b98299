package implementation

import (
	"context"
	"errors"

	"dreamlife-be/internal/entity"
	"dreamlife-be/internal/mapper"
	"dreamlife-be/internal/model"
	"dreamlife-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuestionnaireRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.QuestionnaireMapper
}

func NewQuestionnaireRepository(db *gorm.DB) contract.QuestionnaireRepository {
	return &QuestionnaireRepositoryImpl{
		db:     db,
		mapper: mapper.NewQuestionnaireMapper(),
	}
}

func (r *QuestionnaireRepositoryImpl) Upsert(ctx context.Context, questionnaire *entity.Questionnaire) error {
	modelQuestionnaire, err := r.mapper.ToModel(questionnaire)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"answers", "completed", "completed_at", "updated_at"}),
	}).Create(modelQuestionnaire).Error
	if err != nil {
		return err
	}

	mapped, err := r.mapper.ToEntity(modelQuestionnaire)
	if err != nil {
		return err
	}
	*questionnaire = *mapped
	return nil
}

func (r *QuestionnaireRepositoryImpl) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.Questionnaire, error) {
	var modelQuestionnaire model.Questionnaire

	err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&modelQuestionnaire).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelQuestionnaire)
}
