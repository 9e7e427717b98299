package main

import (
	"context"
	"log"
	"time"

	"dreamlife-be/internal/config"
	"dreamlife-be/internal/repository/unitofwork"
	"dreamlife-be/internal/service"
	"dreamlife-be/pkg/database"
	"dreamlife-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/fatih/color"
)

// Seeds the chat knowledge base. Entries flow through the same pubsub
// consumer the server uses, so embedding happens exactly once per pair
// and reseeding upserts in place.
func main() {
	cfg := config.Load()

	color.Cyan("🚀 Seeding DreamLife knowledge base (%d entries)\n", len(knowledgeBaseData))

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		color.Red("Failed to connect to database: %v", err)
		log.Fatal(err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	embeddingProvider := embedding.NewOpenAIProvider(cfg.OpenAI.APIKey, cfg.OpenAI.EmbeddingModel)

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	consumer := service.NewConsumerService(pubSub, cfg.Chat.SeedTopicName, uowFactory, embeddingProvider)
	if err := consumer.Consume(ctx); err != nil {
		color.Red("Failed to start consumer: %v", err)
		log.Fatal(err)
	}

	publisher := service.NewPublisherService(cfg.Chat.SeedTopicName, pubSub)

	uow := uowFactory.NewUnitOfWork(ctx)
	before, err := uow.KnowledgeRepository().Count(ctx)
	if err != nil {
		color.Red("Failed to count existing entries: %v", err)
		log.Fatal(err)
	}

	for i, entry := range knowledgeBaseData {
		if err := publisher.PublishKnowledgeEntry(entry.Question, entry.Answer); err != nil {
			color.Red("Failed to publish entry %d: %v", i+1, err)
			log.Fatal(err)
		}
		color.Yellow("[%d/%d] queued: %s", i+1, len(knowledgeBaseData), entry.Question)
	}

	// Wait for the consumer to drain the topic. New entries grow the
	// count; reseeded ones upsert, so the floor is the starting count.
	target := before + int64(len(knowledgeBaseData))
	deadline := time.After(10 * time.Minute)
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			count, err := uow.KnowledgeRepository().Count(ctx)
			if err != nil {
				color.Red("Count check failed: %v", err)
				continue
			}
			color.Yellow("Progress: %d entries stored", count)
			if count >= target || (before > 0 && count >= int64(len(knowledgeBaseData))) {
				color.Green("✅ Knowledge base seeded: %d entries", count)
				return
			}
		case <-deadline:
			color.Red("Timed out waiting for seeding to finish")
			log.Fatal("seed timeout")
		}
	}
}
