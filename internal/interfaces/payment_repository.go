package interfaces

import (
	"context"
	"errors"

	"github.com/aibek/payments-admin/internal/models"
)

// ErrNotFound is returned by repositories when no payment matches an id.
var ErrNotFound = errors.New("payment not found")

// PaymentRepository defines the contract for payment data access
type PaymentRepository interface {
	ListAll(ctx context.Context) ([]models.Payment, error)
	GetByID(ctx context.Context, id string) (*models.Payment, error)
	Create(ctx context.Context, input models.PaymentInput) (*models.Payment, error)
	Update(ctx context.Context, id string, patch models.PaymentPatch) (*models.Payment, error)
	DeleteOne(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) (int, error)
	HealthCheck(ctx context.Context) (bool, error)
}
