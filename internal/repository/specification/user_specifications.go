package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByEmail filters by email address
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// ByToken filters by token value
type ByToken struct {
	Token string
}

func (s ByToken) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("token = ?", s.Token)
}

// OwnedBy filters rows belonging to a user
type OwnedBy struct {
	UserId uuid.UUID
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserId)
}

// ByStatus filters by status column
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ByPaypalOrderId filters payment rows by the PayPal order id
type ByPaypalOrderId struct {
	OrderId string
}

func (s ByPaypalOrderId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("paypal_order_id = ?", s.OrderId)
}
