package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	SubscriptionStatusActive    = "active"
	SubscriptionStatusCancelled = "cancelled"
	SubscriptionStatusExpired   = "expired"

	PlanIdVisionary = "visionary-plan"
	PlanIdLegend    = "legend-plan"
)

type Subscription struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	PlanId        string
	PlanName      string
	Status        string
	StartDate     time.Time
	EndDate       time.Time
	PaypalOrderId string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type PaymentTransaction struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	TransactionId string
	Amount        float64
	Currency      string
	Status        string
	PaypalOrderId string
	CreatedAt     time.Time
}
