package models

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusSuccess    Status = "success"
	StatusFailed     Status = "failed"
)

// ValidStatus reports whether s is one of the four payment statuses.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusProcessing, StatusSuccess, StatusFailed:
		return true
	}
	return false
}

type Payment struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Amount    float64   `json:"amount"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePaymentRequest is the raw POST /payments payload. Amount is untyped
// because callers send it either as a JSON number or a quoted string; the
// validation layer normalizes it.
type CreatePaymentRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Amount any    `json:"amount"`
	Status string `json:"status"`
}

// UpdatePaymentRequest is the raw PATCH payload; nil fields were not supplied.
type UpdatePaymentRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Amount any     `json:"amount"`
	Status *string `json:"status"`
}

// PaymentInput is a validated, normalized creation fragment.
type PaymentInput struct {
	Name   string
	Email  string
	Amount float64
	Status Status
}

// PaymentPatch carries only the fields to change; nil means leave untouched.
type PaymentPatch struct {
	Name   *string
	Email  *string
	Amount *float64
	Status *Status
}

// Empty reports whether the patch changes nothing.
func (p PaymentPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Amount == nil && p.Status == nil
}
