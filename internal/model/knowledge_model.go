package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type KnowledgeEntry struct {
	Id                uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Question          string          `gorm:"type:text;not null;uniqueIndex"`
	Answer            string          `gorm:"type:text;not null"`
	QuestionEmbedding pgvector.Vector `gorm:"type:vector(1536)"` // text-embedding-3-small uses 1536 dimensions
	AnswerEmbedding   pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt         time.Time       `gorm:"autoCreateTime"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime"`
}

func (KnowledgeEntry) TableName() string {
	return "knowledge_entries"
}
