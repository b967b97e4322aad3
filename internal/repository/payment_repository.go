package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/aibek/payments-admin/internal/interfaces"
	"github.com/aibek/payments-admin/internal/models"
)

// ErrNotFound is returned when no payment row matches the given id.
var ErrNotFound = interfaces.ErrNotFound

type PaymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) InitDB() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS payments (
			id VARCHAR(255) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			amount DECIMAL(15,2) NOT NULL,
			status VARCHAR(50) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_status ON payments(status)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_created_at ON payments(created_at)`,
	}

	for _, query := range queries {
		if _, err := r.db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}

func (r *PaymentRepository) ListAll(ctx context.Context) ([]models.Payment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, amount, status, created_at
		FROM payments ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		var payment models.Payment
		if err := rows.Scan(&payment.ID, &payment.Name, &payment.Email,
			&payment.Amount, &payment.Status, &payment.CreatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, amount, status, created_at
		FROM payments WHERE id = $1
	`, id).Scan(&payment.ID, &payment.Name, &payment.Email,
		&payment.Amount, &payment.Status, &payment.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) Create(ctx context.Context, input models.PaymentInput) (*models.Payment, error) {
	id := uuid.New().String()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO payments (id, name, email, amount, status)
		VALUES ($1, $2, $3, $4, $5)
	`, id, input.Name, input.Email, input.Amount, input.Status)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *PaymentRepository) Update(ctx context.Context, id string, patch models.PaymentPatch) (*models.Payment, error) {
	if patch.Empty() {
		return r.GetByID(ctx, id)
	}

	set := []string{}
	args := []interface{}{}
	arg := 1
	add := func(column string, value interface{}) {
		set = append(set, fmt.Sprintf("%s = $%d", column, arg))
		args = append(args, value)
		arg++
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Amount != nil {
		add("amount", *patch.Amount)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	set = append(set, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE payments SET %s WHERE id = $%d`, strings.Join(set, ", "), arg)
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *PaymentRepository) DeleteOne(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMany removes every payment whose id is in ids and returns the number
// actually removed. Unknown ids are skipped, not an error.
func (r *PaymentRepository) DeleteMany(ctx context.Context, ids []string) (int, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM payments WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return 0, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(rows), nil
}

// HealthCheck runs a trivial round trip. Connectivity faults are reported as
// false, not as an error.
func (r *PaymentRepository) HealthCheck(ctx context.Context) (bool, error) {
	if r.db == nil {
		return false, errors.New("repository has no database handle")
	}
	var one int
	if err := r.db.QueryRowContext(ctx, `SELECT 1`).Scan(&one); err != nil {
		return false, nil
	}
	return true, nil
}
