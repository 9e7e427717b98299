package mapper

import (
	"dreamlife-be/internal/entity"
	"dreamlife-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type KnowledgeMapper struct{}

func NewKnowledgeMapper() *KnowledgeMapper {
	return &KnowledgeMapper{}
}

func (m *KnowledgeMapper) ToEntity(e *model.KnowledgeEntry) *entity.KnowledgeEntry {
	if e == nil {
		return nil
	}
	return &entity.KnowledgeEntry{
		Id:                e.Id,
		Question:          e.Question,
		Answer:            e.Answer,
		QuestionEmbedding: e.QuestionEmbedding.Slice(),
		AnswerEmbedding:   e.AnswerEmbedding.Slice(),
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func (m *KnowledgeMapper) ToModel(e *entity.KnowledgeEntry) *model.KnowledgeEntry {
	if e == nil {
		return nil
	}
	return &model.KnowledgeEntry{
		Id:                e.Id,
		Question:          e.Question,
		Answer:            e.Answer,
		QuestionEmbedding: pgvector.NewVector(e.QuestionEmbedding),
		AnswerEmbedding:   pgvector.NewVector(e.AnswerEmbedding),
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func (m *KnowledgeMapper) ToEntities(entries []*model.KnowledgeEntry) []*entity.KnowledgeEntry {
	entities := make([]*entity.KnowledgeEntry, len(entries))
	for i, e := range entries {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
