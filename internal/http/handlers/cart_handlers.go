package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/gothyxan/storefront/internal/models"
)

// GetCartHandler godoc
// @Summary Get the cart
// @Description Returns the cart lines in insertion order with recomputed totals.
// @Tags cart
// @Produce json
// @Success 200 {object} CartSummary
// @Failure 500 {string} string "Internal error"
// @Router /cart [get]
func GetCartHandler(w http.ResponseWriter, r *http.Request) {
	lines, err := cartStore.Load()
	if err != nil {
		http.Error(w, "could not load cart", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toCartSummary(lines))
}

// AddCartItemHandler godoc
// @Summary Add a product to the cart
// @Description Snapshots the product's title and price at add time. Adding an already-present product increments its quantity.
// @Tags cart
// @Accept json
// @Produce json
// @Param item body CartAddRequest true "Product id and quantity"
// @Success 201 {object} CartSummary
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Product not found"
// @Router /cart/items [post]
func AddCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var req CartAddRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.ProductID) == "" {
		http.Error(w, "product ID is required", http.StatusBadRequest)
		return
	}

	products, err := productCatalog.Products(r.Context())
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	var product *models.Product
	for i := range products {
		if products[i].ID == req.ProductID {
			product = &products[i]
			break
		}
	}
	if product == nil {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	line := models.CartLine{
		ProductID: product.ID,
		Title:     product.Title,
		Price:     product.Price,
		Quantity:  req.Quantity,
	}
	if err := cartStore.Add(line); err != nil {
		http.Error(w, "could not update cart", http.StatusInternalServerError)
		return
	}

	// Audit write is best effort: a failed or missing log never fails the add.
	if actionLog != nil {
		msg := fmt.Sprintf("added to cart: %s", product.Title)
		if err := actionLog.Record(r.Context(), msg); err != nil {
			log.Warn().Err(err).Msg("could not record cart action")
		}
	}

	lines, err := cartStore.Load()
	if err != nil {
		http.Error(w, "could not load cart", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, toCartSummary(lines))
}

// RemoveCartItemHandler godoc
// @Summary Remove a cart line
// @Tags cart
// @Param id path string true "Product ID"
// @Success 204 "Removed"
// @Failure 500 {string} string "Internal error"
// @Router /cart/items/{id} [delete]
func RemoveCartItemHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := cartStore.Remove(id); err != nil {
		http.Error(w, "could not update cart", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearCartHandler godoc
// @Summary Clear the cart
// @Tags cart
// @Success 204 "Cleared"
// @Failure 500 {string} string "Internal error"
// @Router /cart [delete]
func ClearCartHandler(w http.ResponseWriter, r *http.Request) {
	if err := cartStore.Clear(); err != nil {
		http.Error(w, "could not clear cart", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CartCountHandler godoc
// @Summary Total cart quantity
// @Tags cart
// @Produce json
// @Success 200 {object} CartCountResult
// @Failure 500 {string} string "Internal error"
// @Router /cart/count [get]
func CartCountHandler(w http.ResponseWriter, r *http.Request) {
	count, err := cartStore.TotalQuantity()
	if err != nil {
		http.Error(w, "could not load cart", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, CartCountResult{Count: count})
}

func toCartSummary(lines []models.CartLine) CartSummary {
	summary := CartSummary{Lines: make([]CartLineResponse, len(lines))}
	for i, l := range lines {
		summary.Lines[i] = CartLineResponse{
			ProductID: l.ProductID,
			Title:     l.Title,
			Price:     l.Price,
			Quantity:  l.Quantity,
			LineTotal: l.Price * int64(l.Quantity),
		}
		summary.TotalQuantity += l.Quantity
		summary.TotalPrice += l.Price * int64(l.Quantity)
	}
	return summary
}
