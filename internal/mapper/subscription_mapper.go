package mapper

import (
	"dreamlife-be/internal/entity"
	"dreamlife-be/internal/model"
)

type SubscriptionMapper struct{}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{}
}

func (m *SubscriptionMapper) ToEntity(s *model.Subscription) *entity.Subscription {
	if s == nil {
		return nil
	}
	return &entity.Subscription{
		Id:            s.Id,
		UserId:        s.UserId,
		PlanId:        s.PlanId,
		PlanName:      s.PlanName,
		Status:        s.Status,
		StartDate:     s.StartDate,
		EndDate:       s.EndDate,
		PaypalOrderId: s.PaypalOrderId,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func (m *SubscriptionMapper) ToModel(s *entity.Subscription) *model.Subscription {
	if s == nil {
		return nil
	}
	return &model.Subscription{
		Id:            s.Id,
		UserId:        s.UserId,
		PlanId:        s.PlanId,
		PlanName:      s.PlanName,
		Status:        s.Status,
		StartDate:     s.StartDate,
		EndDate:       s.EndDate,
		PaypalOrderId: s.PaypalOrderId,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func (m *SubscriptionMapper) ToEntities(subs []*model.Subscription) []*entity.Subscription {
	entities := make([]*entity.Subscription, len(subs))
	for i, s := range subs {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

func (m *SubscriptionMapper) TransactionToEntity(t *model.PaymentTransaction) *entity.PaymentTransaction {
	if t == nil {
		return nil
	}
	return &entity.PaymentTransaction{
		Id:            t.Id,
		UserId:        t.UserId,
		TransactionId: t.TransactionId,
		Amount:        t.Amount,
		Currency:      t.Currency,
		Status:        t.Status,
		PaypalOrderId: t.PaypalOrderId,
		CreatedAt:     t.CreatedAt,
	}
}

func (m *SubscriptionMapper) TransactionToModel(t *entity.PaymentTransaction) *model.PaymentTransaction {
	if t == nil {
		return nil
	}
	return &model.PaymentTransaction{
		Id:            t.Id,
		UserId:        t.UserId,
		TransactionId: t.TransactionId,
		Amount:        t.Amount,
		Currency:      t.Currency,
		Status:        t.Status,
		PaypalOrderId: t.PaypalOrderId,
		CreatedAt:     t.CreatedAt,
	}
}
