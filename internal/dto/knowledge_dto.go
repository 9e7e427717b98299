package dto

import "time"

// PublishEmbedKnowledgeMessage is the seed payload carried over the
// in-process pubsub. The consumer embeds both sides and stores them.
type PublishEmbedKnowledgeMessage struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type SubmitKnowledgeRequest struct {
	Question string `json:"question" validate:"required,min=3"`
	Answer   string `json:"answer" validate:"required,min=3"`
}

type KnowledgeStatsResponse struct {
	TotalEntries  int64      `json:"total_entries"`
	LatestEntryAt *time.Time `json:"latest_entry_at,omitempty"`
}
