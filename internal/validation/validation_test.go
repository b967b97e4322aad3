package validation

import (
	"errors"
	"testing"

	"github.com/aibek/payments-admin/internal/models"
)

func TestCreateValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		amount     any
		wantAmount float64
	}{
		{name: "string_amount", amount: "150.00", wantAmount: 150},
		{name: "number_amount", amount: 42.5, wantAmount: 42.5},
		{name: "string_with_spaces", amount: " 19.99 ", wantAmount: 19.99},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			input, err := Create(models.CreatePaymentRequest{
				Name:   "Alice",
				Email:  "a@x.com",
				Amount: tt.amount,
				Status: "success",
			})
			if err != nil {
				t.Fatalf("Create: unexpected error %v", err)
			}
			if input.Amount != tt.wantAmount {
				t.Errorf("amount = %v, want %v", input.Amount, tt.wantAmount)
			}
			if input.Name != "Alice" || input.Email != "a@x.com" || input.Status != models.StatusSuccess {
				t.Errorf("unexpected normalized input %+v", input)
			}
		})
	}
}

func TestCreateRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  models.CreatePaymentRequest
		want *Error
	}{
		{
			name: "missing_name",
			req:  models.CreatePaymentRequest{Email: "b@x.com", Amount: "5", Status: "pending"},
			want: ErrMissingFields,
		},
		{
			name: "missing_email",
			req:  models.CreatePaymentRequest{Name: "Bob", Amount: "5", Status: "pending"},
			want: ErrMissingFields,
		},
		{
			name: "missing_amount",
			req:  models.CreatePaymentRequest{Name: "Bob", Email: "b@x.com", Status: "pending"},
			want: ErrMissingFields,
		},
		{
			name: "empty_string_amount",
			req:  models.CreatePaymentRequest{Name: "Bob", Email: "b@x.com", Amount: "", Status: "pending"},
			want: ErrMissingFields,
		},
		{
			name: "zero_amount_counts_as_missing",
			req:  models.CreatePaymentRequest{Name: "Bob", Email: "b@x.com", Amount: float64(0), Status: "pending"},
			want: ErrMissingFields,
		},
		{
			name: "missing_status",
			req:  models.CreatePaymentRequest{Name: "Bob", Email: "b@x.com", Amount: "5"},
			want: ErrMissingFields,
		},
		{
			name: "unknown_status",
			req:  models.CreatePaymentRequest{Name: "Bob", Email: "b@x.com", Amount: "5", Status: "done"},
			want: ErrInvalidStatus,
		},
		{
			name: "negative_amount",
			req:  models.CreatePaymentRequest{Name: "Bob", Email: "b@x.com", Amount: "-5", Status: "pending"},
			want: ErrInvalidAmount,
		},
		{
			name: "negative_number_amount",
			req:  models.CreatePaymentRequest{Name: "Bob", Email: "b@x.com", Amount: -0.01, Status: "pending"},
			want: ErrInvalidAmount,
		},
		{
			name: "zero_string_amount",
			req:  models.CreatePaymentRequest{Name: "Bob", Email: "b@x.com", Amount: "0", Status: "pending"},
			want: ErrInvalidAmount,
		},
		{
			name: "unparseable_amount",
			req:  models.CreatePaymentRequest{Name: "Bob", Email: "b@x.com", Amount: "abc", Status: "pending"},
			want: ErrInvalidAmount,
		},
		{
			name: "amount_of_wrong_type",
			req:  models.CreatePaymentRequest{Name: "Bob", Email: "b@x.com", Amount: []any{1}, Status: "pending"},
			want: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Create(tt.req)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Create = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUpdateOnlySuppliedFields(t *testing.T) {
	t.Parallel()

	status := "failed"
	patch, err := Update(models.UpdatePaymentRequest{Status: &status, Amount: "12.50"})
	if err != nil {
		t.Fatalf("Update: unexpected error %v", err)
	}
	if patch.Name != nil || patch.Email != nil {
		t.Errorf("unsupplied fields should stay nil, got %+v", patch)
	}
	if patch.Status == nil || *patch.Status != models.StatusFailed {
		t.Errorf("status = %v, want failed", patch.Status)
	}
	if patch.Amount == nil || *patch.Amount != 12.5 {
		t.Errorf("amount = %v, want 12.5", patch.Amount)
	}
}

func TestUpdateEmptyPatch(t *testing.T) {
	t.Parallel()

	patch, err := Update(models.UpdatePaymentRequest{})
	if err != nil {
		t.Fatalf("Update: unexpected error %v", err)
	}
	if !patch.Empty() {
		t.Errorf("empty request should produce an empty patch, got %+v", patch)
	}
}

func TestUpdateRejections(t *testing.T) {
	t.Parallel()

	badStatus := "refunded"
	if _, err := Update(models.UpdatePaymentRequest{Status: &badStatus}); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("bad status: got %v, want ErrInvalidStatus", err)
	}

	if _, err := Update(models.UpdatePaymentRequest{Amount: "-1"}); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("negative amount: got %v, want ErrInvalidAmount", err)
	}

	// On update an empty amount string is supplied-but-unparseable, unlike
	// create where it counts as missing.
	if _, err := Update(models.UpdatePaymentRequest{Amount: ""}); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("empty amount: got %v, want ErrInvalidAmount", err)
	}
}
