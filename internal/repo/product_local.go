package repo

import (
	"context"
	"encoding/json"
	"math/rand"
	"strings"
	"sync"

	"github.com/gothyxan/storefront/internal/localkv"
	"github.com/gothyxan/storefront/internal/models"
)

// ProductsKey is the localkv namespace key holding the full product list as a
// JSON array.
const ProductsKey = "gothyxan_products_v1"

// DefaultProducts is the catalog seeded on first use of an empty local store,
// so first-run behavior is deterministic.
var DefaultProducts = []models.Product{
	{ID: "prod-001", Title: "Nocturne Coat", Price: 7990, Category: "unisex", Description: "Elegant wool coat.", Color: "#1b1b1b"},
	{ID: "prod-002", Title: "Raven Belt", Price: 1990, Category: "unisex", Description: "Leather belt.", Color: "#2a2a2a"},
	{ID: "prod-003", Title: "Eclipse Dress", Price: 5490, Category: "girls", Description: "Evening dress.", Color: "#292929"},
	{ID: "prod-004", Title: "Void Boots", Price: 9200, Category: "boys", Description: "Lace-up boots.", Color: "#111111"},
}

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// LocalProductRepository keeps the full product list as one JSON blob in the
// local key-value namespace. Callers always work with the whole list; there
// is no partial-update primitive.
type LocalProductRepository struct {
	mu sync.Mutex
	kv *localkv.Store
}

func NewLocalProductRepository(kv *localkv.Store) *LocalProductRepository {
	return &LocalProductRepository{kv: kv}
}

// FetchAll reads and parses the stored list. A missing key seeds the default
// catalog and persists it. A corrupt blob falls back to the defaults in
// memory only, leaving the stored data untouched.
func (r *LocalProductRepository) FetchAll(ctx context.Context) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *LocalProductRepository) load() ([]models.Product, error) {
	raw, ok, err := r.kv.Get(ProductsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		seed := defaultCatalog()
		if err := r.persist(seed); err != nil {
			return nil, err
		}
		return seed, nil
	}
	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return defaultCatalog(), nil
	}
	return products, nil
}

func (r *LocalProductRepository) persist(products []models.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return r.kv.Put(ProductsKey, data)
}

// Save assigns a generated id when the product has none, replaces an existing
// entry with the same id in place, appends otherwise, and persists the full
// list. The asset is ignored: the local backend stores no binaries.
func (r *LocalProductRepository) Save(ctx context.Context, product models.Product, _ *Asset) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load()
	if err != nil {
		return models.Product{}, err
	}

	if strings.TrimSpace(product.ID) == "" {
		product.ID = NewProductID()
	}

	replaced := false
	for i, p := range products {
		if p.ID == product.ID {
			products[i] = product
			replaced = true
			break
		}
	}
	if !replaced {
		products = append(products, product)
	}

	if err := r.persist(products); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// Delete filters the id out of the stored list. Deleting an absent id is a
// no-op that still reports success.
func (r *LocalProductRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load()
	if err != nil {
		return err
	}
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return r.persist(kept)
}

// NewProductID generates a local product id: "prod-" plus six lowercase
// alphanumerics.
func NewProductID() string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return "prod-" + string(b)
}

func defaultCatalog() []models.Product {
	out := make([]models.Product, len(DefaultProducts))
	copy(out, DefaultProducts)
	return out
}
