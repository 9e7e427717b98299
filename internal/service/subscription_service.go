// FILE: internal/service/subscription_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"dreamlife-be/internal/dto"
	"dreamlife-be/internal/entity"
	"dreamlife-be/internal/repository/specification"
	"dreamlife-be/internal/repository/unitofwork"
	"dreamlife-be/pkg/paypal"

	"dreamlife-be/pkg/events"
	pktNats "dreamlife-be/pkg/nats"

	"github.com/google/uuid"
)

type ISubscriptionService interface {
	CreateOrder(ctx context.Context, userId uuid.UUID, req *dto.CreatePaypalOrderRequest) (*dto.CreatePaypalOrderResponse, error)
	CaptureOrder(ctx context.Context, userId uuid.UUID, orderId string) (*dto.CaptureOrderResponse, error)
	GetOrder(ctx context.Context, orderId string) (*paypal.Order, error)
	GetActiveSubscription(ctx context.Context, userId uuid.UUID) (*dto.SubscriptionResponse, error)
	CancelSubscription(ctx context.Context, userId uuid.UUID) (*dto.SubscriptionResponse, error)
	ListTransactions(ctx context.Context, userId uuid.UUID) ([]dto.TransactionResponse, error)
}

type subscriptionService struct {
	uowFactory     unitofwork.RepositoryFactory
	paypalClient   *paypal.Client
	eventPublisher *pktNats.Publisher
}

func NewSubscriptionService(uowFactory unitofwork.RepositoryFactory, paypalClient *paypal.Client, eventPublisher *pktNats.Publisher) ISubscriptionService {
	return &subscriptionService{
		uowFactory:     uowFactory,
		paypalClient:   paypalClient,
		eventPublisher: eventPublisher,
	}
}

// planFromDescription resolves the plan from the order description. The
// checkout page only sells the two DreamLife tiers.
func planFromDescription(description string) (planId, planName string) {
	lower := strings.ToLower(description)
	if strings.Contains(lower, "legend") {
		return entity.PlanIdLegend, "Legend"
	}
	return entity.PlanIdVisionary, "Visionary"
}

func (s *subscriptionService) CreateOrder(ctx context.Context, userId uuid.UUID, req *dto.CreatePaypalOrderRequest) (*dto.CreatePaypalOrderResponse, error) {
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	order, err := s.paypalClient.CreateOrder(ctx, &paypal.OrderRequest{
		Intent: paypal.IntentCapture,
		PurchaseUnits: []paypal.PurchaseUnitRequest{
			{
				Amount: paypal.Amount{
					CurrencyCode: strings.ToUpper(currency),
					Value:        strconv.FormatFloat(req.Amount, 'f', 2, 64),
				},
				Description: fmt.Sprintf("DreamLife %s Plan", req.PlanName),
			},
		},
		ApplicationContext: &paypal.ApplicationContext{
			BrandName:  "DreamLife",
			UserAction: paypal.UserActionPayNow,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create paypal order: %w", err)
	}

	approvalURL := order.ApprovalURL()
	if approvalURL == "" {
		return nil, errors.New("paypal order has no approval link")
	}

	return &dto.CreatePaypalOrderResponse{
		OrderId:     order.Id,
		ApprovalUrl: approvalURL,
	}, nil
}

func (s *subscriptionService) CaptureOrder(ctx context.Context, userId uuid.UUID, orderId string) (*dto.CaptureOrderResponse, error) {
	order, err := s.paypalClient.CaptureOrder(ctx, orderId)
	if err != nil {
		return nil, fmt.Errorf("capture paypal order: %w", err)
	}

	if order.Status != paypal.OrderStatusCompleted {
		return nil, fmt.Errorf("order not completed, status: %s", order.Status)
	}

	capture := order.FirstCapture()
	if capture == nil {
		return nil, errors.New("order has no capture")
	}

	amount, err := strconv.ParseFloat(capture.Amount.Value, 64)
	if err != nil {
		return nil, fmt.Errorf("parse capture amount: %w", err)
	}

	description := ""
	if len(order.PurchaseUnits) > 0 {
		description = order.PurchaseUnits[0].Description
	}
	planId, planName := planFromDescription(description)

	now := time.Now()
	transaction := &entity.PaymentTransaction{
		Id:            uuid.New(),
		UserId:        userId,
		TransactionId: capture.Id,
		Amount:        amount,
		Currency:      capture.Amount.CurrencyCode,
		Status:        capture.Status,
		PaypalOrderId: order.Id,
		CreatedAt:     now,
	}

	subscription := &entity.Subscription{
		Id:            uuid.New(),
		UserId:        userId,
		PlanId:        planId,
		PlanName:      planName,
		Status:        entity.SubscriptionStatusActive,
		StartDate:     now,
		EndDate:       now.AddDate(0, 1, 0),
		PaypalOrderId: order.Id,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.SubscriptionRepository().CreateTransaction(ctx, transaction); err != nil {
		return nil, err
	}
	if err := uow.SubscriptionRepository().Create(ctx, subscription); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: "SUBSCRIPTION_CREATED",
			Data: map[string]interface{}{
				"user_id":   userId,
				"plan_id":   planId,
				"order_id":  order.Id,
				"amount":    amount,
				"ends_at":   subscription.EndDate.Format(time.RFC3339),
				"timestamp": now.Format(time.RFC822),
			},
			OccurredAt: now,
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish SUBSCRIPTION_CREATED event: %v\n", err)
		}
	}

	return &dto.CaptureOrderResponse{
		Message: "Payment captured successfully",
		Transaction: dto.TransactionResponse{
			TransactionId: transaction.TransactionId,
			Amount:        transaction.Amount,
			Currency:      transaction.Currency,
			Status:        transaction.Status,
			PaypalOrderId: transaction.PaypalOrderId,
			CreatedAt:     transaction.CreatedAt,
		},
		Subscription: dto.SubscriptionResponse{
			Id:        subscription.Id,
			PlanId:    subscription.PlanId,
			PlanName:  subscription.PlanName,
			Status:    subscription.Status,
			StartDate: subscription.StartDate,
			EndDate:   subscription.EndDate,
		},
	}, nil
}

func (s *subscriptionService) GetOrder(ctx context.Context, orderId string) (*paypal.Order, error) {
	return s.paypalClient.GetOrder(ctx, orderId)
}

func (s *subscriptionService) GetActiveSubscription(ctx context.Context, userId uuid.UUID) (*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subscription, err := uow.SubscriptionRepository().FindOne(ctx,
		specification.OwnedBy{UserId: userId},
		specification.ByStatus{Status: entity.SubscriptionStatusActive},
		specification.OrderBy{Field: "end_date", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		return nil, nil
	}

	if time.Now().After(subscription.EndDate) {
		return nil, nil
	}

	return &dto.SubscriptionResponse{
		Id:        subscription.Id,
		PlanId:    subscription.PlanId,
		PlanName:  subscription.PlanName,
		Status:    subscription.Status,
		StartDate: subscription.StartDate,
		EndDate:   subscription.EndDate,
	}, nil
}

// CancelSubscription flips the active subscription to cancelled. Access
// stays until EndDate, so the record is kept as-is otherwise.
func (s *subscriptionService) CancelSubscription(ctx context.Context, userId uuid.UUID) (*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subscription, err := uow.SubscriptionRepository().FindOne(ctx,
		specification.OwnedBy{UserId: userId},
		specification.ByStatus{Status: entity.SubscriptionStatusActive},
		specification.OrderBy{Field: "end_date", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		return nil, errors.New("no active subscription")
	}

	subscription.Status = entity.SubscriptionStatusCancelled
	subscription.UpdatedAt = time.Now()
	if err := uow.SubscriptionRepository().Update(ctx, subscription); err != nil {
		return nil, err
	}

	return &dto.SubscriptionResponse{
		Id:        subscription.Id,
		PlanId:    subscription.PlanId,
		PlanName:  subscription.PlanName,
		Status:    subscription.Status,
		StartDate: subscription.StartDate,
		EndDate:   subscription.EndDate,
	}, nil
}

func (s *subscriptionService) ListTransactions(ctx context.Context, userId uuid.UUID) ([]dto.TransactionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	transactions, err := uow.SubscriptionRepository().FindTransactions(ctx,
		specification.OwnedBy{UserId: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]dto.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		result = append(result, dto.TransactionResponse{
			TransactionId: t.TransactionId,
			Amount:        t.Amount,
			Currency:      t.Currency,
			Status:        t.Status,
			PaypalOrderId: t.PaypalOrderId,
			CreatedAt:     t.CreatedAt,
		})
	}
	return result, nil
}
