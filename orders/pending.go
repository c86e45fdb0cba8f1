// Package orders holds customer orders awaiting merchant confirmation in a
// keyed in-memory store with explicit TTL eviction. Single-process only;
// confirmed orders become sales and leave the store.
package orders

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Item is one requested line in a pending order.
type Item struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Order is a customer's not-yet-confirmed purchase request. Keyed by
// (merchant, customer): a new order from the same customer replaces the
// previous pending one.
type Order struct {
	ID         string    `json:"id"`
	MerchantID string    `json:"merchant_id"`
	CustomerID string    `json:"customer_id"`
	Items      []Item    `json:"items"`
	CreatedAt  time.Time `json:"created_at"`
}

type entry struct {
	order     Order
	expiresAt time.Time
}

// Store is a TTL-bounded pending-order cache.
type Store struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry
	done    chan struct{}
	now     func() time.Time
}

const janitorInterval = time.Minute

// NewStore creates a store whose entries expire after ttl and starts a
// background janitor. Call Stop when the store is no longer needed.
func NewStore(ttl time.Duration) *Store {
	s := &Store{
		ttl:     ttl,
		entries: make(map[string]entry),
		done:    make(chan struct{}),
		now:     time.Now,
	}
	go s.janitor()
	return s
}

// Stop terminates the background janitor.
func (s *Store) Stop() {
	close(s.done)
}

func (s *Store) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.evictExpired()
		case <-s.done:
			return
		}
	}
}

func (s *Store) evictExpired() {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, key)
		}
	}
}

func key(merchantID, customerID string) string {
	return merchantID + "/" + customerID
}

// Put stores a pending order, replacing any previous pending order for the
// same merchant/customer pair, and returns it with ID and CreatedAt set.
func (s *Store) Put(order Order) Order {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	now := s.now()
	order.CreatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key(order.MerchantID, order.CustomerID)] = entry{
		order:     order,
		expiresAt: now.Add(s.ttl),
	}
	return order
}

// Get returns the pending order for the pair, if present and not expired.
func (s *Store) Get(merchantID, customerID string) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key(merchantID, customerID)]
	if !ok || s.now().After(e.expiresAt) {
		return Order{}, false
	}
	return e.order, true
}

// Remove deletes and returns the pending order for the pair. Used on
// confirmation and rejection.
func (s *Store) Remove(merchantID, customerID string) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key(merchantID, customerID)
	e, ok := s.entries[k]
	if !ok || s.now().After(e.expiresAt) {
		delete(s.entries, k)
		return Order{}, false
	}
	delete(s.entries, k)
	return e.order, true
}

// ListForMerchant returns every unexpired pending order for the merchant.
func (s *Store) ListForMerchant(merchantID string) []Order {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := make([]Order, 0)
	for _, e := range s.entries {
		if e.order.MerchantID == merchantID && !now.After(e.expiresAt) {
			pending = append(pending, e.order)
		}
	}
	return pending
}
