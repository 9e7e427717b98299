package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"dreamlife-be/internal/entity"
	"dreamlife-be/internal/repository/specification"
	"dreamlife-be/internal/repository/unitofwork"
	"dreamlife-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.SubscriptionRepository())
	assert.NotNil(t, uow.KnowledgeRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Knowledge Repository", func(t *testing.T) {
		count, err := uow.KnowledgeRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Knowledge entry count: %d", count)
	})

	t.Run("Check Transactional Subscription Capture", func(t *testing.T) {
		ctx := context.Background()

		user := &entity.User{
			Id:           uuid.New(),
			Email:        "test-integration-" + uuid.New().String() + "@example.com",
			FullName:     "Integration Test User",
			PasswordHash: "not-a-real-hash",
		}
		err := uow.UserRepository().Create(ctx, user)
		assert.NoError(t, err)

		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		orderId := "TEST-ORDER-" + uuid.New().String()

		transaction := &entity.PaymentTransaction{
			Id:            uuid.New(),
			UserId:        user.Id,
			TransactionId: "TEST-CAPTURE-" + uuid.New().String(),
			Amount:        14.99,
			Currency:      "USD",
			Status:        "COMPLETED",
			PaypalOrderId: orderId,
		}
		err = uow.SubscriptionRepository().CreateTransaction(ctx, transaction)
		assert.NoError(t, err)

		sub := &entity.Subscription{
			Id:            uuid.New(),
			UserId:        user.Id,
			PlanId:        entity.PlanIdVisionary,
			PlanName:      "Visionary",
			Status:        entity.SubscriptionStatusActive,
			PaypalOrderId: orderId,
		}
		err = uow.SubscriptionRepository().Create(ctx, sub)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		found, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByPaypalOrderId{OrderId: orderId})
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, entity.PlanIdVisionary, found.PlanId)
		}

		t.Log("Successfully created Transaction and Subscription in a transaction")
	})
}
