package implementation

import (
	"context"
	"errors"

	"dreamlife-be/internal/entity"
	"dreamlife-be/internal/mapper"
	"dreamlife-be/internal/model"
	"dreamlife-be/internal/repository/contract"
	"dreamlife-be/internal/repository/specification"

	"gorm.io/gorm"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SubscriptionMapper
}

func NewSubscriptionRepository(db *gorm.DB) contract.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSubscriptionMapper(),
	}
}

func (r *SubscriptionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, subscription *entity.Subscription) error {
	modelSubscription := r.mapper.ToModel(subscription)
	if err := r.db.WithContext(ctx).Create(modelSubscription).Error; err != nil {
		return err
	}
	*subscription = *r.mapper.ToEntity(modelSubscription)
	return nil
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, subscription *entity.Subscription) error {
	modelSubscription := r.mapper.ToModel(subscription)
	if err := r.db.WithContext(ctx).Save(modelSubscription).Error; err != nil {
		return err
	}
	*subscription = *r.mapper.ToEntity(modelSubscription)
	return nil
}

func (r *SubscriptionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscription, error) {
	var modelSubscription model.Subscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelSubscription).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelSubscription), nil
}

func (r *SubscriptionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscription, error) {
	var modelSubscriptions []*model.Subscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelSubscriptions).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelSubscriptions), nil
}

func (r *SubscriptionRepositoryImpl) CreateTransaction(ctx context.Context, transaction *entity.PaymentTransaction) error {
	modelTransaction := r.mapper.TransactionToModel(transaction)
	if err := r.db.WithContext(ctx).Create(modelTransaction).Error; err != nil {
		return err
	}
	*transaction = *r.mapper.TransactionToEntity(modelTransaction)
	return nil
}

func (r *SubscriptionRepositoryImpl) FindTransactions(ctx context.Context, specs ...specification.Specification) ([]*entity.PaymentTransaction, error) {
	var modelTransactions []*model.PaymentTransaction
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelTransactions).Error; err != nil {
		return nil, err
	}

	transactions := make([]*entity.PaymentTransaction, len(modelTransactions))
	for i, t := range modelTransactions {
		transactions[i] = r.mapper.TransactionToEntity(t)
	}
	return transactions, nil
}
