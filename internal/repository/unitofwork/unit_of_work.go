package unitofwork

import (
	"context"

	"dreamlife-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	QuestionnaireRepository() contract.QuestionnaireRepository
	ContactRepository() contract.ContactRepository
	SubscriptionRepository() contract.SubscriptionRepository
	KnowledgeRepository() contract.KnowledgeRepository
}
