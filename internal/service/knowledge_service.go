// FILE: internal/service/knowledge_service.go
package service

import (
	"context"

	"dreamlife-be/internal/dto"
	"dreamlife-be/internal/entity"
	"dreamlife-be/internal/repository/unitofwork"
)

type IKnowledgeService interface {
	Stats(ctx context.Context) (*dto.KnowledgeStatsResponse, error)

	// The chat engine's persistence boundary
	FindAll(ctx context.Context) ([]entity.KnowledgeEntry, error)
	Insert(ctx context.Context, entry *entity.KnowledgeEntry) error
}

type knowledgeService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewKnowledgeService(uowFactory unitofwork.RepositoryFactory) IKnowledgeService {
	return &knowledgeService{
		uowFactory: uowFactory,
	}
}

func (s *knowledgeService) FindAll(ctx context.Context) ([]entity.KnowledgeEntry, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entries, err := uow.KnowledgeRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]entity.KnowledgeEntry, 0, len(entries))
	for _, entry := range entries {
		result = append(result, *entry)
	}
	return result, nil
}

func (s *knowledgeService) Insert(ctx context.Context, entry *entity.KnowledgeEntry) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.KnowledgeRepository().Create(ctx, entry)
}

func (s *knowledgeService) Stats(ctx context.Context) (*dto.KnowledgeStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.KnowledgeRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.KnowledgeStatsResponse{TotalEntries: total}

	latest, err := uow.KnowledgeRepository().FindLatest(ctx)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		resp.LatestEntryAt = &latest.CreatedAt
	}

	return resp, nil
}
