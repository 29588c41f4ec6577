package cart

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/gothyxan/storefront/internal/localkv"
	"github.com/gothyxan/storefront/internal/models"
)

func newStore(t *testing.T) (*Store, *localkv.Store) {
	t.Helper()
	kv := localkv.New(afero.NewMemMapFs(), "data")
	return NewStore(kv), kv
}

func TestLoadEmptyCart(t *testing.T) {
	s, _ := newStore(t)

	lines, err := s.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("expected empty cart, got %d lines", len(lines))
	}

	total, err := s.TotalQuantity()
	if err != nil {
		t.Fatalf("total failed: %v", err)
	}
	if total != 0 {
		t.Errorf("expected total 0 on empty cart, got %d", total)
	}
}

func TestAddMergesQuantitiesForSameProduct(t *testing.T) {
	s, _ := newStore(t)

	line := models.CartLine{ProductID: "prod-001", Title: "Nocturne Coat", Price: 7990}

	line.Quantity = 2
	if err := s.Add(line); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	line.Quantity = 3
	if err := s.Add(line); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	lines, _ := s.Load()
	if len(lines) != 1 {
		t.Fatalf("expected exactly one line, got %d", len(lines))
	}
	if lines[0].Quantity != 5 {
		t.Errorf("expected merged quantity 5, got %d", lines[0].Quantity)
	}
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	s, _ := newStore(t)

	if err := s.Add(models.CartLine{ProductID: "prod-002", Title: "Raven Belt", Price: 1990}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	lines, _ := s.Load()
	if lines[0].Quantity != 1 {
		t.Errorf("expected default quantity 1, got %d", lines[0].Quantity)
	}
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	s, _ := newStore(t)

	ids := []string{"prod-003", "prod-001", "prod-002"}
	for _, id := range ids {
		if err := s.Add(models.CartLine{ProductID: id, Quantity: 1}); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	lines, _ := s.Load()
	for i, id := range ids {
		if lines[i].ProductID != id {
			t.Errorf("expected %q at position %d, got %q", id, i, lines[i].ProductID)
		}
	}
}

func TestRemoveOnlyLineEmptiesCart(t *testing.T) {
	s, _ := newStore(t)

	if err := s.Add(models.CartLine{ProductID: "prod-001", Quantity: 2}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := s.Remove("prod-001"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	lines, _ := s.Load()
	if len(lines) != 0 {
		t.Errorf("expected empty cart after removing only line, got %d lines", len(lines))
	}
}

func TestClear(t *testing.T) {
	s, _ := newStore(t)

	s.Add(models.CartLine{ProductID: "prod-001", Quantity: 1})
	s.Add(models.CartLine{ProductID: "prod-002", Quantity: 4})
	if err := s.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	total, _ := s.TotalQuantity()
	if total != 0 {
		t.Errorf("expected total 0 after clear, got %d", total)
	}
}

func TestRoundTripPreservesLines(t *testing.T) {
	kv := localkv.New(afero.NewMemMapFs(), "data")
	s := NewStore(kv)

	want := []models.CartLine{
		{ProductID: "prod-001", Title: "Nocturne Coat", Price: 7990, Quantity: 2},
		{ProductID: "prod-004", Title: "Void Boots", Price: 9200, Quantity: 1},
	}
	for _, l := range want {
		if err := s.Add(l); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	// A fresh store over the same namespace must see identical lines.
	reloaded, err := NewStore(kv).Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(reloaded) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(reloaded))
	}
	for i := range want {
		if reloaded[i] != want[i] {
			t.Errorf("line %d mismatch: expected %+v, got %+v", i, want[i], reloaded[i])
		}
	}
}

func TestCorruptCartLoadsEmpty(t *testing.T) {
	s, kv := newStore(t)

	if err := kv.Put(CartKey, []byte(`{"broken`)); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	lines, err := s.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("expected empty cart on corrupt data, got %d lines", len(lines))
	}
}

func TestTotalQuantitySumsAllLines(t *testing.T) {
	s, _ := newStore(t)

	s.Add(models.CartLine{ProductID: "prod-001", Quantity: 2})
	s.Add(models.CartLine{ProductID: "prod-002", Quantity: 3})
	s.Add(models.CartLine{ProductID: "prod-001", Quantity: 1})

	total, err := s.TotalQuantity()
	if err != nil {
		t.Fatalf("total failed: %v", err)
	}
	if total != 6 {
		t.Errorf("expected total 6, got %d", total)
	}
}
