package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	OpenAI   OpenAIConfig
	PayPal   PayPalConfig
	Chat     ChatConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	ChatLogFilePath    string
	CorsAllowedOrigins string
	NatsURL            string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
	AdminEmail string
}

type OpenAIConfig struct {
	APIKey         string
	EmbeddingModel string
	ChatModel      string
}

type PayPalConfig struct {
	ClientID        string
	ClientSecret    string
	Mode            string // "sandbox" or "live"
	VisionaryPlanID string
	LegendPlanID    string
}

// ChatConfig holds the answer resolution policy knobs. Thresholds are
// policy constants, tunable per deployment without touching engine code.
type ChatConfig struct {
	ReuseThreshold     float64
	AdaptThreshold     float64
	RetrievalThreshold float64
	TopK               int
	GenerateTimeoutSec int
	SeedTopicName      string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			ChatLogFilePath:    getEnv("CHAT_LOG_FILE_PATH", "chat.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "DreamLife"),
			AdminEmail: getEnv("ADMIN_EMAIL", ""),
		},
		OpenAI: OpenAIConfig{
			APIKey:         getEnv("OPENAI_API_KEY", ""),
			EmbeddingModel: getEnv("OPENAI_EMBEDDING_MODEL", "text-embedding-3-small"),
			ChatModel:      getEnv("OPENAI_CHAT_MODEL", "gpt-3.5-turbo"),
		},
		PayPal: PayPalConfig{
			ClientID:        getEnv("PAYPAL_CLIENT_ID", ""),
			ClientSecret:    getEnv("PAYPAL_CLIENT_SECRET", ""),
			Mode:            getEnv("PAYPAL_MODE", "sandbox"),
			VisionaryPlanID: getEnv("PAYPAL_VISIONARY_PLAN_ID", ""),
			LegendPlanID:    getEnv("PAYPAL_LEGEND_PLAN_ID", ""),
		},
		Chat: ChatConfig{
			ReuseThreshold:     getEnvAsFloat("CHAT_REUSE_THRESHOLD", 0.9),
			AdaptThreshold:     getEnvAsFloat("CHAT_ADAPT_THRESHOLD", 0.65),
			RetrievalThreshold: getEnvAsFloat("CHAT_RETRIEVAL_THRESHOLD", 0.4),
			TopK:               getEnvAsInt("CHAT_TOP_K", 5),
			GenerateTimeoutSec: getEnvAsInt("CHAT_GENERATE_TIMEOUT_SEC", 10),
			SeedTopicName:      getEnv("EMBED_KNOWLEDGE_TOPIC_NAME", "EMBED_KNOWLEDGE_ENTRY"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
