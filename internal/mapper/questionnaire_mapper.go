package mapper

import (
	"encoding/json"

	"dreamlife-be/internal/entity"
	"dreamlife-be/internal/model"

	"gorm.io/datatypes"
)

type QuestionnaireMapper struct{}

func NewQuestionnaireMapper() *QuestionnaireMapper {
	return &QuestionnaireMapper{}
}

func (m *QuestionnaireMapper) ToEntity(q *model.Questionnaire) (*entity.Questionnaire, error) {
	if q == nil {
		return nil, nil
	}

	answers := make(map[string]string)
	if len(q.Answers) > 0 {
		if err := json.Unmarshal(q.Answers, &answers); err != nil {
			return nil, err
		}
	}

	return &entity.Questionnaire{
		Id:          q.Id,
		UserId:      q.UserId,
		Answers:     answers,
		Completed:   q.Completed,
		CompletedAt: q.CompletedAt,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}, nil
}

func (m *QuestionnaireMapper) ToModel(q *entity.Questionnaire) (*model.Questionnaire, error) {
	if q == nil {
		return nil, nil
	}

	answers := q.Answers
	if answers == nil {
		answers = map[string]string{}
	}
	raw, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}

	return &model.Questionnaire{
		Id:          q.Id,
		UserId:      q.UserId,
		Answers:     datatypes.JSON(raw),
		Completed:   q.Completed,
		CompletedAt: q.CompletedAt,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}, nil
}
