package model

import (
	"time"

	"github.com/google/uuid"
)

type Subscription struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        uuid.UUID `gorm:"type:uuid;not null;index"`
	PlanId        string    `gorm:"type:varchar(50);not null"`
	PlanName      string    `gorm:"type:varchar(100);not null"`
	Status        string    `gorm:"type:varchar(20);not null;default:'active';index"`
	StartDate     time.Time `gorm:"not null"`
	EndDate       time.Time `gorm:"not null"`
	PaypalOrderId string    `gorm:"type:varchar(100);index"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

type PaymentTransaction struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        uuid.UUID `gorm:"type:uuid;not null;index"`
	TransactionId string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Amount        float64   `gorm:"type:numeric(10,2);not null"`
	Currency      string    `gorm:"type:varchar(10);not null;default:'USD'"`
	Status        string    `gorm:"type:varchar(20);not null"`
	PaypalOrderId string    `gorm:"type:varchar(100);index"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (PaymentTransaction) TableName() string {
	return "payment_transactions"
}
