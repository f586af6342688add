// Package pending makes the storefront's session-storage bridge explicit:
// the checkout snapshot written before the gateway redirect and read back by
// the success page lives here under the payment reference.
package pending

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/don-Savage01/universe-ofhair-sub001/internal/models"
)

// ErrNotFound is returned when no snapshot exists for a reference (never
// stored, already cleared, or expired).
var ErrNotFound = errors.New("pending checkout not found")

// TTL bounds how long an unfinished checkout is kept. A customer who takes
// longer than this on the gateway page loses the contact details for the
// confirmation emails — a known fragility of the flow.
const TTL = 24 * time.Hour

// Storage is the key-value surface the store persists through.
type Storage interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// Store implements the store/load/clear contract for pending checkouts.
type Store struct {
	storage Storage
	ttl     time.Duration
}

func NewStore(storage Storage) *Store {
	return &Store{storage: storage, ttl: TTL}
}

func key(reference string) string {
	return "pending:checkout:" + reference
}

// Save writes the snapshot under its reference.
func (s *Store) Save(ctx context.Context, pc models.PendingCheckout) error {
	if pc.Reference == "" {
		return errors.New("pending checkout needs a reference")
	}
	if pc.CreatedAt.IsZero() {
		pc.CreatedAt = time.Now()
	}

	data, err := json.Marshal(pc)
	if err != nil {
		return fmt.Errorf("pending checkout serialization failed: %v", err)
	}
	return s.storage.Set(ctx, key(pc.Reference), data, s.ttl)
}

// Load reads the snapshot for a reference.
func (s *Store) Load(ctx context.Context, reference string) (*models.PendingCheckout, error) {
	data, err := s.storage.Get(ctx, key(reference))
	if err != nil {
		return nil, err
	}

	var pc models.PendingCheckout
	if err := json.Unmarshal(data, &pc); err != nil {
		return nil, fmt.Errorf("pending checkout deserialization failed: %v", err)
	}
	return &pc, nil
}

// Clear removes the snapshot once the order emails have gone out.
func (s *Store) Clear(ctx context.Context, reference string) error {
	return s.storage.Delete(ctx, key(reference))
}
