package repo

import (
	"testing"

	"github.com/gothyxan/storefront/internal/models"
)

func TestProductToDocExcludesID(t *testing.T) {
	doc := productToDoc(models.Product{
		ID:          "prod-001",
		Title:       "Nocturne Coat",
		Price:       7990,
		Category:    "unisex",
		Description: "Elegant wool coat.",
		Color:       "#1b1b1b",
	})

	if _, ok := doc["id"]; ok {
		t.Error("document payload must not carry the id field")
	}
	if doc["title"] != "Nocturne Coat" {
		t.Errorf("expected title in payload, got %v", doc["title"])
	}
	if doc["price"] != int64(7990) {
		t.Errorf("expected price in payload, got %v", doc["price"])
	}
}

func TestProductToDocOmitsEmptyImageURL(t *testing.T) {
	// The merge write must not blank a stored image URL when the payload
	// carries none.
	doc := productToDoc(models.Product{Title: "Raven Belt", Price: 1990})
	if _, ok := doc["imageUrl"]; ok {
		t.Error("empty imageUrl must be omitted from the payload")
	}

	doc = productToDoc(models.Product{Title: "Raven Belt", Price: 1990, ImageURL: "https://storage.googleapis.com/b/products/1_belt.jpg"})
	if doc["imageUrl"] != "https://storage.googleapis.com/b/products/1_belt.jpg" {
		t.Errorf("expected imageUrl in payload, got %v", doc["imageUrl"])
	}
}

func TestPublicURL(t *testing.T) {
	got := publicURL("gothyxan-assets", "products/123_coat.jpg")
	want := "https://storage.googleapis.com/gothyxan-assets/products/123_coat.jpg"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
