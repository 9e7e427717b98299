// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"dreamlife-be/internal/dto"
	"dreamlife-be/internal/entity"
	"dreamlife-be/internal/repository/unitofwork"
	"dreamlife-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedKnowledgeMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	question := strings.TrimSpace(payload.Question)
	answer := strings.TrimSpace(payload.Answer)
	if question == "" || answer == "" {
		log.Printf("[ERROR] Seed entry missing question or answer, skipping")
		msg.Ack()
		return
	}

	log.Printf("[INFO] Embedding knowledge entry: %.60q", question)

	questionEmbedding, err := cs.embeddingProvider.GenerateEmbedding(ctx, question)
	if err != nil {
		log.Printf("[ERROR] Failed to embed question: %v", err)
		msg.Nack() // Nack for retriable errors
		return
	}

	answerEmbedding, err := cs.embeddingProvider.GenerateEmbedding(ctx, answer)
	if err != nil {
		log.Printf("[ERROR] Failed to embed answer: %v", err)
		msg.Nack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	entry := &entity.KnowledgeEntry{
		Question:          question,
		Answer:            answer,
		QuestionEmbedding: questionEmbedding,
		AnswerEmbedding:   answerEmbedding,
	}

	if err := uow.KnowledgeRepository().Create(ctx, entry); err != nil {
		log.Printf("[ERROR] Failed to save knowledge entry: %v", err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Knowledge entry stored: %.60q", question)
	msg.Ack()
}
