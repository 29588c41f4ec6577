package handlers

import (
	"github.com/gothyxan/storefront/internal/cart"
	"github.com/gothyxan/storefront/internal/catalog"
	"github.com/gothyxan/storefront/internal/repo"
)

var (
	productCatalog *catalog.Catalog
	cartStore      *cart.Store
	actionLog      repo.ActionLog
)

func SetCatalog(c *catalog.Catalog) {
	productCatalog = c
}

func SetCartStore(s *cart.Store) {
	cartStore = s
}

// SetActionLog attaches the audit trail. Left nil in local-only mode, in
// which case no events are recorded and the admin feed is empty.
func SetActionLog(l repo.ActionLog) {
	actionLog = l
}
