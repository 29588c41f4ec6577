package repo

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/gothyxan/storefront/internal/models"
)

const actionsCollection = "actions"

// ActionLog records storefront audit events and serves them back to the
// admin panel, newest first.
type ActionLog interface {
	Record(ctx context.Context, message string) error
	Latest(ctx context.Context, limit int) ([]models.Action, error)
}

// FirestoreActionLog is the Firestore-backed ActionLog. Each event becomes a
// document in the actions collection under an auto-generated id.
type FirestoreActionLog struct {
	client *firestore.Client
}

func NewFirestoreActionLog(client *firestore.Client) *FirestoreActionLog {
	return &FirestoreActionLog{client: client}
}

func (l *FirestoreActionLog) col() *firestore.CollectionRef {
	return l.client.Collection(actionsCollection)
}

// Record appends one event stamped with the current UTC time.
func (l *FirestoreActionLog) Record(ctx context.Context, message string) error {
	if l.client == nil {
		return errors.New("firestore client is nil")
	}
	_, _, err := l.col().Add(ctx, models.Action{
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
	return err
}

// Latest returns up to limit events ordered by timestamp descending.
func (l *FirestoreActionLog) Latest(ctx context.Context, limit int) ([]models.Action, error) {
	if l.client == nil {
		return nil, errors.New("firestore client is nil")
	}

	it := l.col().OrderBy("timestamp", firestore.Desc).Limit(limit).Documents(ctx)
	defer it.Stop()

	var actions []models.Action
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var a models.Action
		if err := doc.DataTo(&a); err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, nil
}
