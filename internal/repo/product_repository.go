package repo

import (
	"context"
	"errors"
	"io"

	"github.com/gothyxan/storefront/internal/models"
)

// Asset is a binary file (typically a product image) stored separately from
// its record and referenced by URL.
type Asset struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// ProductRepository defines the storage contract shared by the local and the
// remote backend. Save assigns an ID when the product has none and returns
// the stored record; Delete succeeds even when the id is not present.
type ProductRepository interface {
	FetchAll(ctx context.Context) ([]models.Product, error)
	Save(ctx context.Context, product models.Product, asset *Asset) (models.Product, error)
	Delete(ctx context.Context, id string) error
}

// ErrProductNotFound is returned when a product lookup misses.
var ErrProductNotFound = errors.New("product not found")
