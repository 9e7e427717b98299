// FILE: internal/service/questionnaire_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"dreamlife-be/internal/dto"
	"dreamlife-be/internal/entity"
	"dreamlife-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// questionKeys is the closed set of Life Blueprint question identifiers.
// Answers with keys outside this set are rejected at the boundary.
var questionKeys = map[string]struct{}{
	"name":                  {},
	"dream_sentence":        {},
	"core_values":           {},
	"dream_location":        {},
	"home_look":             {},
	"home_details":          {},
	"home_feelings":         {},
	"body_look":             {},
	"body_feel":             {},
	"health_habits":         {},
	"perfect_day":           {},
	"habits_rituals":        {},
	"weekends":              {},
	"fulfillment":           {},
	"workday":               {},
	"work_impact":           {},
	"key_people":            {},
	"romantic_relationship": {},
	"social_circle":         {},
	"adventures":            {},
	"travel":                {},
	"recurring_moment":      {},
	"financial_reality":     {},
	"assets":                {},
	"money_use":             {},
	"dream_feel":            {},
	"state_of_mind":         {},
	"morning_thoughts":      {},
	"legacy":                {},
	"remembered":            {},
	"big_contribution":      {},
	"colors":                {},
	"music":                 {},
	"objects":               {},
	"first_moment":          {},
}

type IQuestionnaireService interface {
	Save(ctx context.Context, userId uuid.UUID, req *dto.SaveQuestionnaireRequest) (*dto.QuestionnaireResponse, error)
	UpdateAnswer(ctx context.Context, userId uuid.UUID, req *dto.UpdateAnswerRequest) (*dto.QuestionnaireResponse, error)
	Get(ctx context.Context, userId uuid.UUID) (*dto.QuestionnaireResponse, error)
}

type questionnaireService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewQuestionnaireService(uowFactory unitofwork.RepositoryFactory) IQuestionnaireService {
	return &questionnaireService{
		uowFactory: uowFactory,
	}
}

func validateAnswerKeys(answers map[string]string) error {
	for key := range answers {
		if _, ok := questionKeys[key]; !ok {
			return fmt.Errorf("unknown question key: %s", key)
		}
	}
	return nil
}

func toQuestionnaireResponse(q *entity.Questionnaire) *dto.QuestionnaireResponse {
	return &dto.QuestionnaireResponse{
		Id:          q.Id,
		UserId:      q.UserId,
		Answers:     q.Answers,
		Completed:   q.Completed,
		CompletedAt: q.CompletedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func (s *questionnaireService) Save(ctx context.Context, userId uuid.UUID, req *dto.SaveQuestionnaireRequest) (*dto.QuestionnaireResponse, error) {
	if err := validateAnswerKeys(req.Answers); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.QuestionnaireRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	questionnaire := &entity.Questionnaire{
		Id:        uuid.New(),
		UserId:    userId,
		Answers:   req.Answers,
		Completed: req.Completed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if existing != nil {
		questionnaire.Id = existing.Id
		questionnaire.CreatedAt = existing.CreatedAt
		questionnaire.CompletedAt = existing.CompletedAt
	}
	if req.Completed && questionnaire.CompletedAt == nil {
		questionnaire.CompletedAt = &now
	}

	if err := uow.QuestionnaireRepository().Upsert(ctx, questionnaire); err != nil {
		return nil, err
	}

	return toQuestionnaireResponse(questionnaire), nil
}

func (s *questionnaireService) UpdateAnswer(ctx context.Context, userId uuid.UUID, req *dto.UpdateAnswerRequest) (*dto.QuestionnaireResponse, error) {
	if err := validateAnswerKeys(map[string]string{req.Key: req.Value}); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	questionnaire, err := uow.QuestionnaireRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if questionnaire == nil {
		questionnaire = &entity.Questionnaire{
			Id:        uuid.New(),
			UserId:    userId,
			Answers:   map[string]string{},
			CreatedAt: now,
		}
	}
	if questionnaire.Answers == nil {
		questionnaire.Answers = map[string]string{}
	}
	questionnaire.Answers[req.Key] = req.Value
	questionnaire.UpdatedAt = now

	if err := uow.QuestionnaireRepository().Upsert(ctx, questionnaire); err != nil {
		return nil, err
	}

	return toQuestionnaireResponse(questionnaire), nil
}

func (s *questionnaireService) Get(ctx context.Context, userId uuid.UUID) (*dto.QuestionnaireResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	questionnaire, err := uow.QuestionnaireRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if questionnaire == nil {
		// An empty blueprint, not an error
		return &dto.QuestionnaireResponse{
			UserId:  userId,
			Answers: map[string]string{},
		}, nil
	}

	return toQuestionnaireResponse(questionnaire), nil
}
