package bootstrap

import (
	"log"
	"time"

	"dreamlife-be/internal/config"
	"dreamlife-be/internal/controller"
	"dreamlife-be/internal/pkg/logger"
	"dreamlife-be/internal/pkg/mailer"
	"dreamlife-be/internal/repository/unitofwork"
	"dreamlife-be/internal/service"
	"dreamlife-be/internal/websocket"
	"dreamlife-be/pkg/chat"
	"dreamlife-be/pkg/embedding"
	llmopenai "dreamlife-be/pkg/llm/openai"
	"dreamlife-be/pkg/paypal"

	pktNats "dreamlife-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController          controller.IAuthController
	QuestionnaireController controller.IQuestionnaireController
	ContactController       controller.IContactController
	SubscriptionController  controller.ISubscriptionController
	ChatController          controller.IChatController

	// Background Services (Exposed for main.go to run)
	ConsumerService  service.IConsumerService
	PublisherService service.IPublisherService

	// Chat engine and its websocket transport
	ChatEngine   *chat.Engine
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// 3. AI Providers
	embeddingProvider := embedding.NewOpenAIProvider(cfg.OpenAI.APIKey, cfg.OpenAI.EmbeddingModel)
	embeddingCache := embedding.NewCache(embeddingProvider)

	llmProvider := llmopenai.NewOpenAIProvider(cfg.OpenAI.APIKey, cfg.OpenAI.ChatModel)

	sysLogger.Info("Bootstrap", "AI providers initialized", map[string]interface{}{
		"embedding_model": cfg.OpenAI.EmbeddingModel,
		"chat_model":      cfg.OpenAI.ChatModel,
	})

	// PayPal
	paypalClient := paypal.NewClient(cfg.PayPal.ClientID, cfg.PayPal.ClientSecret, cfg.PayPal.Mode)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Chat.SeedTopicName, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Chat.SeedTopicName,
		uowFactory,
		embeddingProvider,
	)

	authService := service.NewAuthService(uowFactory, emailService, natsPub)
	questionnaireService := service.NewQuestionnaireService(uowFactory)
	contactService := service.NewContactService(uowFactory, emailService, natsPub)
	subscriptionService := service.NewSubscriptionService(uowFactory, paypalClient, natsPub)
	knowledgeService := service.NewKnowledgeService(uowFactory)

	// Audit worker drains bus events into the structured log
	if natsSub != nil {
		auditService := service.NewAuditService(natsSub, sysLogger)
		go auditService.Start()
	}

	// 5. Chat Engine
	chatLogger := logger.NewIsolatedLogger(cfg.App.ChatLogFilePath)
	chatEngine := chat.NewEngine(
		chat.Config{
			ReuseThreshold:     cfg.Chat.ReuseThreshold,
			AdaptThreshold:     cfg.Chat.AdaptThreshold,
			RetrievalThreshold: cfg.Chat.RetrievalThreshold,
			TopK:               cfg.Chat.TopK,
			GenerateTimeout:    time.Duration(cfg.Chat.GenerateTimeoutSec) * time.Second,
		},
		embeddingCache,
		knowledgeService,
		llmProvider,
		chatLogger,
	)

	// WebSocket Hub
	wsHub := websocket.NewHub(chatEngine, chatLogger)
	go wsHub.Run()

	// 6. Controllers
	return &Container{
		AuthController:          controller.NewAuthController(authService),
		QuestionnaireController: controller.NewQuestionnaireController(questionnaireService),
		ContactController:       controller.NewContactController(contactService),
		SubscriptionController:  controller.NewSubscriptionController(subscriptionService),
		ChatController:          controller.NewChatController(chatEngine, knowledgeService, publisherService),

		ConsumerService:  consumerService,
		PublisherService: publisherService,

		ChatEngine:   chatEngine,
		WebSocketHub: wsHub,
	}
}
