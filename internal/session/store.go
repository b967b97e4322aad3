// Package session holds the client-side view of the payment collection for
// one UI session: an API client plus a state container that keeps an
// in-memory copy of the records in step with the server.
package session

import (
	"context"
	"sync"

	"github.com/aibek/payments-admin/internal/models"
)

// Store owns the session's record collection. All mutation goes through its
// methods; callers only ever see copies of the collection. The server is the
// source of truth, the Store a possibly stale cache: a failed operation
// leaves the local records exactly as they were.
//
// The Store does not serialize overlapping operations; callers are expected
// to wait for one mutation to return (watching Loading) before issuing the
// next.
type Store struct {
	mu      sync.Mutex
	client  *Client
	records []models.Payment
	loading bool
	lastErr string
}

func NewStore(client *Client) *Store {
	return &Store{client: client}
}

// Open constructs a Store and performs the session's initial refresh. The
// store is returned even when the refresh fails; the failure is available
// via LastError.
func Open(ctx context.Context, client *Client) *Store {
	s := NewStore(client)
	_ = s.Refresh(ctx)
	return s
}

// Refresh replaces the whole collection with the server's, keeping the
// server's ordering. On failure the previous records stay available.
func (s *Store) Refresh(ctx context.Context) error {
	s.begin()
	defer s.end()

	payments, err := s.client.List(ctx)
	if err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	s.records = payments
	s.mu.Unlock()
	return nil
}

// Add creates a payment and appends the server's record to the tail of the
// collection. The tail position can diverge from the server's newest-first
// ordering until the next Refresh.
func (s *Store) Add(ctx context.Context, req models.CreatePaymentRequest) (models.Payment, error) {
	s.begin()
	defer s.end()

	payment, err := s.client.Create(ctx, req)
	if err != nil {
		s.fail(err)
		return models.Payment{}, err
	}

	s.mu.Lock()
	s.records = append(s.records, payment)
	s.mu.Unlock()
	return payment, nil
}

// Update patches a payment and replaces the matching record in place.
func (s *Store) Update(ctx context.Context, id string, req models.UpdatePaymentRequest) (models.Payment, error) {
	s.begin()
	defer s.end()

	payment, err := s.client.Update(ctx, id, req)
	if err != nil {
		s.fail(err)
		return models.Payment{}, err
	}

	s.mu.Lock()
	for i := range s.records {
		if s.records[i].ID == id {
			s.records[i] = payment
			break
		}
	}
	s.mu.Unlock()
	return payment, nil
}

// RemoveMany batch-deletes the given ids. On HTTP success every matching
// record is dropped locally, regardless of the server-reported count; the
// count is returned so callers can surface under-delivery if they care.
func (s *Store) RemoveMany(ctx context.Context, ids []string) (int, error) {
	s.begin()
	defer s.end()

	deleted, err := s.client.DeleteMany(ctx, ids)
	if err != nil {
		s.fail(err)
		return 0, err
	}

	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	s.mu.Lock()
	kept := s.records[:0]
	for _, record := range s.records {
		if !drop[record.ID] {
			kept = append(kept, record)
		}
	}
	s.records = kept
	s.mu.Unlock()
	return deleted, nil
}

// Records returns a copy of the current collection.
func (s *Store) Records() []models.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := make([]models.Payment, len(s.records))
	copy(records, s.records)
	return records
}

// Loading reports whether an operation is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LastError returns the message of the most recent failed operation, or ""
// if the last operation succeeded. Last write wins; there is no history.
func (s *Store) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Store) begin() {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *Store) end() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *Store) fail(err error) {
	s.mu.Lock()
	s.lastErr = err.Error()
	s.mu.Unlock()
}
