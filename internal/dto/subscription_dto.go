package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePaypalOrderRequest struct {
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Currency string  `json:"currency" validate:"omitempty,len=3"`
	PlanName string  `json:"plan_name" validate:"required"`
}

type CreatePaypalOrderResponse struct {
	OrderId     string `json:"order_id"`
	ApprovalUrl string `json:"approval_url"`
}

type TransactionResponse struct {
	TransactionId string    `json:"transaction_id"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	PaypalOrderId string    `json:"paypal_order_id"`
	CreatedAt     time.Time `json:"created_at"`
}

type SubscriptionResponse struct {
	Id        uuid.UUID `json:"id"`
	PlanId    string    `json:"plan_id"`
	PlanName  string    `json:"plan_name"`
	Status    string    `json:"status"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type CaptureOrderResponse struct {
	Message      string               `json:"message"`
	Transaction  TransactionResponse  `json:"transaction"`
	Subscription SubscriptionResponse `json:"subscription"`
}
