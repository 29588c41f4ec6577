package models

// Product represents a catalog item. Price is in the smallest currency unit.
// ID is assigned by whichever backend first stores the record and is never
// reassigned; the Firestore document carries every field except ID, which is
// the document's own identifier.
type Product struct {
	ID          string `json:"id" firestore:"-"`
	Title       string `json:"title" firestore:"title"`
	Price       int64  `json:"price" firestore:"price"`
	Category    string `json:"category" firestore:"category"`
	Description string `json:"desc" firestore:"desc"`
	Color       string `json:"color" firestore:"color"`
	ImageURL    string `json:"imageUrl,omitempty" firestore:"imageUrl"`
}
