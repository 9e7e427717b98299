package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	ContactStatusUnread    = "unread"
	ContactStatusRead      = "read"
	ContactStatusResponded = "responded"
)

type Contact struct {
	Id        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Message   string
	Status    string
	IpAddress string
	UserAgent string
	CreatedAt time.Time
	UpdatedAt time.Time
}
