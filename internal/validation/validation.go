// Package validation holds the pure checks and normalization applied to
// payment payloads before they reach the repository. No side effects.
package validation

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aibek/payments-admin/internal/models"
)

// Error is a rejected payload. Message is safe to return to the caller.
type Error struct {
	Reason  string
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	ErrMissingFields = &Error{Reason: "missing_fields", Message: "Missing required fields: name, email, amount, status"}
	ErrInvalidStatus = &Error{Reason: "invalid_status", Message: "Invalid status. Must be: pending, processing, success, or failed"}
	ErrInvalidAmount = &Error{Reason: "invalid_amount", Message: "Amount must be a positive number"}
)

// Create validates a creation payload and returns the normalized fragment.
// All four fields are required; a numeric zero amount counts as absent.
func Create(req models.CreatePaymentRequest) (models.PaymentInput, error) {
	if req.Name == "" || req.Email == "" || req.Status == "" || amountMissing(req.Amount) {
		return models.PaymentInput{}, ErrMissingFields
	}
	if !models.ValidStatus(req.Status) {
		return models.PaymentInput{}, ErrInvalidStatus
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return models.PaymentInput{}, err
	}
	return models.PaymentInput{
		Name:   req.Name,
		Email:  req.Email,
		Amount: amount,
		Status: models.Status(req.Status),
	}, nil
}

// Update validates only the supplied fields of a partial payload; absent
// fields stay nil in the returned patch.
func Update(req models.UpdatePaymentRequest) (models.PaymentPatch, error) {
	var patch models.PaymentPatch
	patch.Name = req.Name
	patch.Email = req.Email
	if req.Status != nil {
		if !models.ValidStatus(*req.Status) {
			return models.PaymentPatch{}, ErrInvalidStatus
		}
		status := models.Status(*req.Status)
		patch.Status = &status
	}
	if req.Amount != nil {
		amount, err := parseAmount(req.Amount)
		if err != nil {
			return models.PaymentPatch{}, err
		}
		patch.Amount = &amount
	}
	return patch, nil
}

func amountMissing(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case float64:
		return v == 0
	}
	return false
}

// parseAmount accepts a JSON number or a numeric string and normalizes it to
// a positive float64.
func parseAmount(raw any) (float64, error) {
	var (
		d   decimal.Decimal
		err error
	)
	switch v := raw.(type) {
	case string:
		d, err = decimal.NewFromString(strings.TrimSpace(v))
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, ErrInvalidAmount
		}
		d = decimal.NewFromFloat(v)
	case json.Number:
		d, err = decimal.NewFromString(v.String())
	default:
		return 0, ErrInvalidAmount
	}
	if err != nil || !d.IsPositive() {
		return 0, ErrInvalidAmount
	}
	amount, _ := d.Float64()
	return amount, nil
}
