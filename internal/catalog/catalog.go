// Package catalog is the persistence facade: one uniform CRUD contract over
// the local and the remote product backend, with the active backend chosen
// per call.
package catalog

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/gothyxan/storefront/internal/models"
	"github.com/gothyxan/storefront/internal/repo"
)

// Catalog routes product operations to the remote backend when one is
// attached and to the local backend otherwise. The remote handle may come
// online or go offline between calls; the choice is re-evaluated every time
// and never cached.
type Catalog struct {
	mu     sync.RWMutex
	remote repo.ProductRepository
	local  repo.ProductRepository
}

func New(local repo.ProductRepository) *Catalog {
	return &Catalog{local: local}
}

// SetRemote attaches (or, with nil, detaches) the remote backend.
func (c *Catalog) SetRemote(r repo.ProductRepository) {
	c.mu.Lock()
	c.remote = r
	c.mu.Unlock()
}

// RemoteActive reports whether a remote backend is currently attached.
func (c *Catalog) RemoteActive() bool {
	return c.remoteRepo() != nil
}

func (c *Catalog) remoteRepo() repo.ProductRepository {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.remote
}

// Products lists the catalog. A remote read failure is an explicit fallback
// policy, not an error: it is logged and the local backend's current contents
// are returned instead.
func (c *Catalog) Products(ctx context.Context) ([]models.Product, error) {
	if remote := c.remoteRepo(); remote != nil {
		products, err := remote.FetchAll(ctx)
		if err == nil {
			return products, nil
		}
		log.Warn().Err(err).Msg("remote product read failed, falling back to local store")
	}
	return c.local.FetchAll(ctx)
}

// SaveProduct stores the product on the active backend and returns the record
// with its backend-assigned id (and asset URL, when the remote backend
// uploaded one). Remote write failures propagate to the caller.
func (c *Catalog) SaveProduct(ctx context.Context, product models.Product, asset *repo.Asset) (models.Product, error) {
	if remote := c.remoteRepo(); remote != nil {
		return remote.Save(ctx, product, asset)
	}
	return c.local.Save(ctx, product, asset)
}

// DeleteProduct deletes by id on the active backend. Both backends treat a
// missing id as success.
func (c *Catalog) DeleteProduct(ctx context.Context, id string) error {
	if remote := c.remoteRepo(); remote != nil {
		return remote.Delete(ctx, id)
	}
	return c.local.Delete(ctx, id)
}
