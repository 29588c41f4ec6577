package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/gothyxan/storefront/internal/models"
	"github.com/gothyxan/storefront/internal/repo"
)

const maxUploadBytes = 10 << 20 // 10 MB

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the catalog. Accepts JSON, or multipart form data with an optional image file that is uploaded to the asset store.
// @Tags products
// @Accept json
// @Accept mpfd
// @Produce json
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {array} ProductValidationError
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	req, asset, ok := decodeProductRequest(w, r)
	if !ok {
		return
	}
	saveProduct(w, r, req, asset, http.StatusCreated)
}

// GetProductsHandler godoc
// @Summary List all products
// @Description Lists the catalog. With a remote backend attached the list is ordered by title; a remote read failure falls back to the local store.
// @Tags products
// @Produce json
// @Param sort query string false "Sort order" Enums(price-asc, price-desc)
// @Success 200 {array} ProductResponse
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productCatalog.Products(r.Context())
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	switch r.URL.Query().Get("sort") {
	case "price-asc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case "price-desc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	}

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = toProductResponse(p)
	}
	writeJSON(w, http.StatusOK, response)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	products, err := productCatalog.Products(r.Context())
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	for _, p := range products {
		if p.ID == id {
			writeJSON(w, http.StatusOK, toProductResponse(p))
			return
		}
	}
	http.Error(w, "product not found", http.StatusNotFound)
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Edits the product in place under its existing id. On the remote backend absent fields are preserved by the merge write.
// @Tags products
// @Accept json
// @Accept mpfd
// @Produce json
// @Param id path string true "Product ID"
// @Param product body ProductRequest true "Updated product"
// @Success 200 {object} ProductResponse
// @Failure 400 {array} ProductValidationError
// @Failure 502 {string} string "Remote backend error"
// @Router /products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	req, asset, ok := decodeProductRequest(w, r)
	if !ok {
		return
	}
	req.Id = chi.URLParam(r, "id")
	saveProduct(w, r, req, asset, http.StatusOK)
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Description Deletes by id on the active backend. Deleting an absent id still succeeds.
// @Tags products
// @Param id path string true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 502 {string} string "Remote backend error"
// @Router /products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "product ID is required", http.StatusBadRequest)
		return
	}
	if err := productCatalog.DeleteProduct(r.Context(), id); err != nil {
		http.Error(w, "could not delete product", backendErrorStatus())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeProductRequest reads the product payload from JSON or multipart form
// data. The multipart path may carry an image file under the "image" field.
func decodeProductRequest(w http.ResponseWriter, r *http.Request) (ProductRequest, *repo.Asset, bool) {
	var req ProductRequest
	var asset *repo.Asset

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			http.Error(w, "invalid form data", http.StatusBadRequest)
			return ProductRequest{}, nil, false
		}
		price, _ := strconv.ParseInt(r.FormValue("price"), 10, 64)
		req = ProductRequest{
			Title:       r.FormValue("title"),
			Price:       price,
			Category:    r.FormValue("category"),
			Description: r.FormValue("desc"),
			Color:       r.FormValue("color"),
		}
		if file, header, err := r.FormFile("image"); err == nil {
			asset = &repo.Asset{
				Filename:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Body:        file,
			}
		}
	} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return ProductRequest{}, nil, false
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return ProductRequest{}, nil, false
	}
	return req, asset, true
}

func saveProduct(w http.ResponseWriter, r *http.Request, req ProductRequest, asset *repo.Asset, successStatus int) {
	if asset != nil {
		if closer, ok := asset.Body.(io.Closer); ok {
			defer closer.Close()
		}
	}

	color := strings.TrimSpace(req.Color)
	if color == "" {
		color = "#dddddd"
	}
	product := models.Product{
		ID:          req.Id,
		Title:       req.Title,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		Color:       color,
	}

	saved, err := productCatalog.SaveProduct(r.Context(), product, asset)
	if err != nil {
		http.Error(w, "could not save product", backendErrorStatus())
		return
	}
	writeJSON(w, successStatus, toProductResponse(saved))
}

// backendErrorStatus maps a write/delete failure to 502 when it came from the
// remote backend and 500 otherwise.
func backendErrorStatus() int {
	if productCatalog.RemoteActive() {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
