package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aibek/payments-admin/internal/models"
)

// MemoryRepository is an in-process PaymentRepository used by tests and local
// development. It mirrors the Postgres gateway's semantics: newest-first
// listing, partial updates, silent skips on batch delete.
type MemoryRepository struct {
	mu       sync.Mutex
	payments map[string]models.Payment
	order    []string // ids in insertion order
	healthy  bool
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		payments: make(map[string]models.Payment),
		order:    []string{},
		healthy:  true,
	}
}

// SetHealthy controls what HealthCheck reports.
func (r *MemoryRepository) SetHealthy(healthy bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.healthy = healthy
}

func (r *MemoryRepository) ListAll(ctx context.Context) ([]models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	payments := make([]models.Payment, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		payments = append(payments, r.payments[r.order[i]])
	}
	return payments, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	payment, ok := r.payments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &payment, nil
}

func (r *MemoryRepository) Create(ctx context.Context, input models.PaymentInput) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	payment := models.Payment{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Amount:    input.Amount,
		Status:    input.Status,
		CreatedAt: time.Now(),
	}
	r.payments[payment.ID] = payment
	r.order = append(r.order, payment.ID)
	return &payment, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, patch models.PaymentPatch) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	payment, ok := r.payments[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Name != nil {
		payment.Name = *patch.Name
	}
	if patch.Email != nil {
		payment.Email = *patch.Email
	}
	if patch.Amount != nil {
		payment.Amount = *patch.Amount
	}
	if patch.Status != nil {
		payment.Status = *patch.Status
	}
	r.payments[id] = payment
	return &payment, nil
}

func (r *MemoryRepository) DeleteOne(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.payments[id]; !ok {
		return ErrNotFound
	}
	r.remove(id)
	return nil
}

func (r *MemoryRepository) DeleteMany(ctx context.Context, ids []string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := 0
	for _, id := range ids {
		if _, ok := r.payments[id]; ok {
			r.remove(id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *MemoryRepository) HealthCheck(ctx context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.healthy, nil
}

// remove expects r.mu held.
func (r *MemoryRepository) remove(id string) {
	delete(r.payments, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}
