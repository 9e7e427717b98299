package entity

import (
	"time"

	"github.com/google/uuid"
)

// KnowledgeEntry is one stored question/answer pair with embeddings for
// both sides. Created only by the generative chat path and by seeding;
// never mutated afterwards.
type KnowledgeEntry struct {
	Id                uuid.UUID
	Question          string
	Answer            string
	QuestionEmbedding []float32
	AnswerEmbedding   []float32
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
