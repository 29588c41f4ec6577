package storefront_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync/atomic"

	"github.com/spf13/afero"

	"github.com/gothyxan/storefront/internal/cart"
	"github.com/gothyxan/storefront/internal/catalog"
	api "github.com/gothyxan/storefront/internal/http"
	handler "github.com/gothyxan/storefront/internal/http/handlers"
	"github.com/gothyxan/storefront/internal/localkv"
	"github.com/gothyxan/storefront/internal/repo"
)

type (
	productRequest  = handler.ProductRequest
	validationError = handler.ProductValidationError
)

var (
	productCatalog *catalog.Catalog
	cartStore      *cart.Store

	// Each request gets its own client address so the admin-route rate
	// limiter never throttles the suite.
	addrCounter atomic.Int64
)

// setupStores rebuilds both stores on a fresh in-memory namespace.
func setupStores() {
	kv := localkv.New(afero.NewMemMapFs(), "data")

	productCatalog = catalog.New(repo.NewLocalProductRepository(kv))
	handler.SetCatalog(productCatalog)

	cartStore = cart.NewStore(kv)
	handler.SetCartStore(cartStore)

	handler.SetActionLog(nil)
}

func send(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	n := addrCounter.Add(1)
	req.RemoteAddr = fmt.Sprintf("10.0.%d.%d:1234", n/250, n%250)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))
	return send(r, req)
}

func updateProduct(r http.Handler, id string, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPut, "/products/"+id, bytes.NewReader(body))
	return send(r, req)
}

func deleteProduct(r http.Handler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, "/products/"+id, nil)
	return send(r, req)
}

func listProducts(r http.Handler, query string) []handler.ProductResponse {
	req := httptest.NewRequest(http.MethodGet, "/products"+query, nil)
	w := send(r, req)
	var resp []handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&resp)
	return resp
}

func addCartItem(r http.Handler, item handler.CartAddRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(item)
	req := httptest.NewRequest(http.MethodPost, "/cart/items", bytes.NewReader(body))
	return send(r, req)
}

func getCart(r http.Handler) handler.CartSummary {
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := send(r, req)
	var resp handler.CartSummary
	json.NewDecoder(w.Body).Decode(&resp)
	return resp
}

func multipartProduct(fields map[string]string, imageName string, image []byte) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		writer.WriteField(key, value)
	}
	if imageName != "" {
		part, _ := writer.CreateFormFile("image", imageName)
		part.Write(image)
	}

	writer.Close()
	return &buf, writer.FormDataContentType()
}

func newRouter() http.Handler {
	return api.NewRouter()
}

func decodeProduct(body io.Reader) (handler.ProductResponse, error) {
	var resp handler.ProductResponse
	err := json.NewDecoder(body).Decode(&resp)
	return resp, err
}
