package db

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"

	"photoevent-admin-go/internal/models"
)

const paymentsCollection = "payments"

// firestorePaymentRepository implements PaymentRepository using Firestore.
type firestorePaymentRepository struct {
	client *firestore.Client
}

// NewFirestorePaymentRepository creates a new firestorePaymentRepository.
func NewFirestorePaymentRepository(client *firestore.Client) PaymentRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for PaymentRepository.")
	}
	return &firestorePaymentRepository{client: client}
}

// List retrieves all payment documents. Used by the revenue rollups, which
// need the full set.
func (r *firestorePaymentRepository) List(ctx context.Context) ([]*models.Payment, error) {
	snaps, err := fetchDocs(ctx, r.client.Collection(paymentsCollection).Query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payments: %w", err)
	}

	payments := make([]*models.Payment, 0, len(snaps))
	for _, snap := range snaps {
		payments = append(payments, models.PaymentFromDoc(snap.Ref.ID, snap.Data()))
	}
	return payments, nil
}

// ListRecent retrieves the most recent payments, newest first.
func (r *firestorePaymentRepository) ListRecent(ctx context.Context, limit int) ([]*models.Payment, error) {
	if limit <= 0 {
		limit = 5
	}
	snaps, err := fetchDocs(ctx, r.client.Collection(paymentsCollection).
		OrderBy("created_at", firestore.Desc).
		Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent payments: %w", err)
	}

	payments := make([]*models.Payment, 0, len(snaps))
	for _, snap := range snaps {
		payments = append(payments, models.PaymentFromDoc(snap.Ref.ID, snap.Data()))
	}
	return payments, nil
}

// Count returns the total number of payment documents.
func (r *firestorePaymentRepository) Count(ctx context.Context) (int, error) {
	count, err := countDocs(ctx, r.client.Collection(paymentsCollection).Query)
	if err != nil {
		return 0, fmt.Errorf("failed to count payments: %w", err)
	}
	return count, nil
}
