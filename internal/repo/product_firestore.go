package repo

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gothyxan/storefront/internal/models"
)

const productsCollection = "products"

// FirestoreProductRepository is the Firestore-backed implementation of
// ProductRepository. Product images go through the asset store first; the
// resolved URL is written onto the document.
type FirestoreProductRepository struct {
	client *firestore.Client
	assets AssetStore
}

func NewFirestoreProductRepository(client *firestore.Client, assets AssetStore) *FirestoreProductRepository {
	return &FirestoreProductRepository{client: client, assets: assets}
}

func (r *FirestoreProductRepository) col() *firestore.CollectionRef {
	return r.client.Collection(productsCollection)
}

// FetchAll returns every product ordered by title ascending, each record
// being the stored fields merged with the document's own id.
func (r *FirestoreProductRepository) FetchAll(ctx context.Context) ([]models.Product, error) {
	if r.client == nil {
		return nil, errors.New("firestore client is nil")
	}

	it := r.col().OrderBy("title", firestore.Asc).Documents(ctx)
	defer it.Stop()

	var products []models.Product
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		p, err := docToProduct(doc)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// Save uploads the asset first when one is supplied and records its public
// URL, then writes the document: at product.ID with merge semantics when the
// id is present (fields absent from the payload are preserved), else at a
// freshly reserved auto-id that is assigned back onto the product. Upload and
// write are sequential, not transactional; a failed write after a successful
// upload leaves the object orphaned.
func (r *FirestoreProductRepository) Save(ctx context.Context, product models.Product, asset *Asset) (models.Product, error) {
	if r.client == nil {
		return models.Product{}, errors.New("firestore client is nil")
	}

	if asset != nil {
		url, err := r.assets.Upload(ctx, *asset)
		if err != nil {
			return models.Product{}, err
		}
		product.ImageURL = url
	}

	var docRef *firestore.DocumentRef
	if id := strings.TrimSpace(product.ID); id != "" {
		docRef = r.col().Doc(id)
	} else {
		docRef = r.col().NewDoc()
	}
	product.ID = docRef.ID

	if _, err := docRef.Set(ctx, productToDoc(product), firestore.MergeAll); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// Delete removes the document at id. No existence check: deleting an absent
// id succeeds.
func (r *FirestoreProductRepository) Delete(ctx context.Context, id string) error {
	if r.client == nil {
		return errors.New("firestore client is nil")
	}
	_, err := r.col().Doc(id).Delete(ctx)
	if status.Code(err) == codes.NotFound {
		return nil
	}
	return err
}

func docToProduct(doc *firestore.DocumentSnapshot) (models.Product, error) {
	var p models.Product
	if err := doc.DataTo(&p); err != nil {
		return models.Product{}, err
	}
	p.ID = doc.Ref.ID
	return p, nil
}

// productToDoc builds the document payload: every attribute except the id,
// with imageUrl omitted when empty so a merge write keeps the stored URL.
func productToDoc(p models.Product) map[string]any {
	doc := map[string]any{
		"title":    p.Title,
		"price":    p.Price,
		"category": p.Category,
		"desc":     p.Description,
		"color":    p.Color,
	}
	if p.ImageURL != "" {
		doc["imageUrl"] = p.ImageURL
	}
	return doc
}
