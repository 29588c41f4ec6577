package repo

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"

	"github.com/spf13/afero"

	"github.com/gothyxan/storefront/internal/localkv"
	"github.com/gothyxan/storefront/internal/models"
)

var productIDPattern = regexp.MustCompile(`^prod-[a-z0-9]{6}$`)

func newLocalRepo(t *testing.T) (*LocalProductRepository, *localkv.Store) {
	t.Helper()
	kv := localkv.New(afero.NewMemMapFs(), "data")
	return NewLocalProductRepository(kv), kv
}

func TestFetchAllSeedsDefaultCatalog(t *testing.T) {
	r, kv := newLocalRepo(t)

	products, err := r.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	if len(products) != 4 {
		t.Fatalf("expected 4 seeded products, got %d", len(products))
	}
	wantIDs := []string{"prod-001", "prod-002", "prod-003", "prod-004"}
	for i, want := range wantIDs {
		if products[i].ID != want {
			t.Errorf("expected id %q at index %d, got %q", want, i, products[i].ID)
		}
	}

	// Seeding must persist, so the next load sees the same data.
	raw, ok, err := kv.Get(ProductsKey)
	if err != nil || !ok {
		t.Fatalf("expected seeded blob under %q (ok=%v, err=%v)", ProductsKey, ok, err)
	}
	var stored []models.Product
	if err := json.Unmarshal(raw, &stored); err != nil {
		t.Fatalf("stored blob is not valid JSON: %v", err)
	}
	if len(stored) != 4 {
		t.Errorf("expected 4 stored products, got %d", len(stored))
	}
}

func TestFetchAllCorruptBlobFallsBackWithoutPersisting(t *testing.T) {
	r, kv := newLocalRepo(t)

	corrupt := []byte(`{"not":"a list"`)
	if err := kv.Put(ProductsKey, corrupt); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	products, err := r.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(products) != 4 {
		t.Fatalf("expected default catalog on corrupt data, got %d products", len(products))
	}

	// The corrupt blob must be left untouched.
	raw, _, _ := kv.Get(ProductsKey)
	if string(raw) != string(corrupt) {
		t.Errorf("corrupt blob was overwritten: %q", raw)
	}
}

func TestSaveAssignsGeneratedID(t *testing.T) {
	r, _ := newLocalRepo(t)
	ctx := context.Background()

	before, _ := r.FetchAll(ctx)

	saved, err := r.Save(ctx, models.Product{Title: "Test", Price: 100}, nil)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !productIDPattern.MatchString(saved.ID) {
		t.Errorf("expected id matching %s, got %q", productIDPattern, saved.ID)
	}

	after, _ := r.FetchAll(ctx)
	if len(after) != len(before)+1 {
		t.Errorf("expected list to grow by 1 (%d -> %d)", len(before), len(after))
	}
}

func TestSaveExistingIDReplacesInPlace(t *testing.T) {
	r, _ := newLocalRepo(t)
	ctx := context.Background()

	before, _ := r.FetchAll(ctx)

	updated := models.Product{ID: "prod-002", Title: "Raven Belt II", Price: 2490, Category: "unisex"}
	saved, err := r.Save(ctx, updated, nil)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if saved.ID != "prod-002" {
		t.Errorf("id must not be reassigned, got %q", saved.ID)
	}

	after, _ := r.FetchAll(ctx)
	if len(after) != len(before) {
		t.Fatalf("replacing must not change list length (%d -> %d)", len(before), len(after))
	}
	if after[1].Title != "Raven Belt II" || after[1].Price != 2490 {
		t.Errorf("entry not replaced in place: %+v", after[1])
	}
}

func TestDeleteRemovesProduct(t *testing.T) {
	r, _ := newLocalRepo(t)
	ctx := context.Background()

	if err := r.Delete(ctx, "prod-001"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	products, _ := r.FetchAll(ctx)
	if len(products) != 3 {
		t.Fatalf("expected 3 products after delete, got %d", len(products))
	}
	for _, p := range products {
		if p.ID == "prod-001" {
			t.Error("deleted product still present")
		}
	}
}

func TestDeleteNonexistentIDIsIdempotent(t *testing.T) {
	r, _ := newLocalRepo(t)
	ctx := context.Background()

	before, _ := r.FetchAll(ctx)
	if err := r.Delete(ctx, "prod-zzzzzz"); err != nil {
		t.Fatalf("expected success deleting nonexistent id, got %v", err)
	}
	after, _ := r.FetchAll(ctx)
	if len(after) != len(before) {
		t.Errorf("store changed by deleting a nonexistent id (%d -> %d)", len(before), len(after))
	}
}

func TestNewProductIDPattern(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := NewProductID()
		if !productIDPattern.MatchString(id) {
			t.Fatalf("id %q does not match %s", id, productIDPattern)
		}
		seen[id] = true
	}
	if len(seen) < 2 {
		t.Error("generated ids are not varying")
	}
}
