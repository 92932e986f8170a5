package model

import (
	"strings"
	"time"
)

// StatusBucket is the three-way display classification of an order status.
type StatusBucket string

const (
	BucketPaid    StatusBucket = "paid"
	BucketPending StatusBucket = "pending"
	BucketFailed  StatusBucket = "failed"
)

// ClassifyStatus maps an arbitrary backend status onto a display bucket.
// Only "paid" and "pending" (case-insensitive) have their own treatment,
// everything else renders as failed.
func ClassifyStatus(status string) StatusBucket {
	switch strings.ToLower(status) {
	case "paid":
		return BucketPaid
	case "pending":
		return BucketPending
	default:
		return BucketFailed
	}
}

// SupportedCurrencies is the fixed allow-list offered by the create form.
var SupportedCurrencies = []string{"USD", "EUR", "GBP", "CAD", "AUD"}

// Order is the backend order object as returned by /api/orders.
type Order struct {
	ID            string  `json:"id"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
	CreatedBy     string  `json:"created_by"`
	Status        string  `json:"status"`
	Amount        float64 `json:"amount"`
	Description   *string `json:"description,omitempty"`
	CustomerEmail *string `json:"customer_email,omitempty"`
	Currency      string  `json:"currency"`
}

// Created parses the backend timestamp; zero time when it does not parse.
func (o Order) Created() time.Time {
	t, err := time.Parse(time.RFC3339, o.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

type CreateOrderDTO struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Currency    string  `json:"currency" validate:"required,oneof=USD EUR GBP CAD AUD"`
}

// CreateOrderRequest is the POST /api/orders payload.
type CreateOrderRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Email       string  `json:"email"`
	Currency    string  `json:"currency"`
	BusinessID  string  `json:"business_id"`
}

// OrderRow is the per-row display projection of an Order.
type OrderRow struct {
	ID             string
	Customer       string
	Amount         float64
	AmountDisplay  string
	Description    string
	Currency       string
	Status         string
	Bucket         StatusBucket
	CreatedDisplay string
	ExpiresIn      string
	PayLink        string
	WhatsAppURL    string
	Copied         bool
}

// Banner is a transient success/error notice on the orders screen.
type Banner struct {
	Type      string    `json:"type"` // "success" | "error" | "info"
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
}

// OrdersView is everything the orders screen needs to render.
type OrdersView struct {
	BusinessID string
	Rows       []OrderRow
	Loading    bool
	Error      string
	Banner     *Banner
	ModalOpen  bool
	FormError  string
	Form       CreateOrderForm
	Currencies []string
}

// CreateOrderForm holds raw form values so a failed submit re-renders
// populated.
type CreateOrderForm struct {
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Email       string `json:"email"`
	Currency    string `json:"currency"`
}
