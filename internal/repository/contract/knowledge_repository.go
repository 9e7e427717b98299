package contract

import (
	"context"

	"dreamlife-be/internal/entity"
)

type KnowledgeRepository interface {
	Create(ctx context.Context, entry *entity.KnowledgeEntry) error
	// FindAll returns the full pool projected to question, answer and
	// question embedding. The answer embedding is not loaded on scans.
	FindAll(ctx context.Context) ([]*entity.KnowledgeEntry, error)
	Count(ctx context.Context) (int64, error)
	FindLatest(ctx context.Context) (*entity.KnowledgeEntry, error)
}
