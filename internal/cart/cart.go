// Package cart is the local-only shopping cart store. The cart is never
// backed by the remote store; it lives entirely in the local key-value
// namespace and is rebuilt from it on every load.
package cart

import (
	"encoding/json"
	"sync"

	"github.com/gothyxan/storefront/internal/localkv"
	"github.com/gothyxan/storefront/internal/models"
)

// CartKey is the localkv namespace key holding the full cart as a JSON array.
const CartKey = "gothyxan_cart_v1"

// Store keeps cart lines in insertion order, at most one line per product id.
type Store struct {
	mu sync.Mutex
	kv *localkv.Store
}

func NewStore(kv *localkv.Store) *Store {
	return &Store{kv: kv}
}

// Load returns the stored lines in insertion order. Missing or corrupt data
// loads as an empty cart.
func (s *Store) Load() ([]models.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() ([]models.CartLine, error) {
	raw, ok, err := s.kv.Get(CartKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.CartLine{}, nil
	}
	var lines []models.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		return []models.CartLine{}, nil
	}
	return lines, nil
}

func (s *Store) persist(lines []models.CartLine) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.kv.Put(CartKey, data)
}

// Add merges the line into the cart: an existing line for the same product id
// gets its quantity incremented, otherwise the line is appended. A
// non-positive quantity defaults to 1. The full cart is persisted after the
// mutation.
func (s *Store) Add(line models.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if line.Quantity <= 0 {
		line.Quantity = 1
	}

	lines, err := s.load()
	if err != nil {
		return err
	}
	merged := false
	for i, l := range lines {
		if l.ProductID == line.ProductID {
			lines[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, line)
	}
	return s.persist(lines)
}

// Remove filters out the line matching the product id and persists.
func (s *Store) Remove(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, err := s.load()
	if err != nil {
		return err
	}
	kept := lines[:0]
	for _, l := range lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	return s.persist(kept)
}

// Clear persists an empty cart.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist([]models.CartLine{})
}

// TotalQuantity sums all line quantities, recomputed on demand.
func (s *Store) TotalQuantity() (int, error) {
	lines, err := s.Load()
	if err != nil {
		return 0, err
	}
	total := 0
	for _, l := range lines {
		total += l.Quantity
	}
	return total, nil
}
