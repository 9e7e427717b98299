package contract

import (
	"context"

	"dreamlife-be/internal/entity"
	"dreamlife-be/internal/repository/specification"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *entity.Subscription) error
	Update(ctx context.Context, subscription *entity.Subscription) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscription, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscription, error)

	CreateTransaction(ctx context.Context, transaction *entity.PaymentTransaction) error
	FindTransactions(ctx context.Context, specs ...specification.Specification) ([]*entity.PaymentTransaction, error)
}
