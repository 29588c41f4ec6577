package models

import "time"

// Action is one entry in the storefront's audit trail, written when a visitor
// adds a product to the cart and shown in the admin panel.
type Action struct {
	Message   string    `json:"action" firestore:"action"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
}
