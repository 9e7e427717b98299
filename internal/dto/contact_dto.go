package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitContactRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"omitempty,max=50"`
	Message   string `json:"message" validate:"required,min=1"`
}

type SubmitContactResponse struct {
	Id      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}

type ContactResponse struct {
	Id        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type PaginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type ContactListResponse struct {
	Contacts   []ContactResponse  `json:"contacts"`
	Pagination PaginationResponse `json:"pagination"`
}

type UpdateContactStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=unread read responded"`
}
