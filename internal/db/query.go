package db

import (
	"context"
	"errors"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"photoevent-admin-go/internal/timeutil"
)

// ErrNotFound is the common error for a document missing from Firestore.
var ErrNotFound = errors.New("document not found")

// fetchDocs drains a query into document snapshots.
func fetchDocs(ctx context.Context, query firestore.Query) ([]*firestore.DocumentSnapshot, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	var snaps []*firestore.DocumentSnapshot
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, doc)
	}
	return snaps, nil
}

// fetchOrdered runs an ordered query, falling back to an unordered fetch plus
// a client-side stable sort (descending by timeField) when Firestore rejects
// the filter+order combination for lack of a composite index. Index
// provisioning lags behind deploys; the fallback keeps the screens working
// in the meantime.
func fetchOrdered(ctx context.Context, base firestore.Query, timeField string) ([]*firestore.DocumentSnapshot, error) {
	snaps, err := fetchDocs(ctx, base.OrderBy(timeField, firestore.Desc))
	if err == nil {
		return snaps, nil
	}
	if status.Code(err) != codes.FailedPrecondition {
		return nil, err
	}

	snaps, err = fetchDocs(ctx, base)
	if err != nil {
		return nil, err
	}
	sortSnapsDesc(snaps, timeField)
	return snaps, nil
}

// sortSnapsDesc stable-sorts snapshots by a timestamp field, newest first.
// Documents whose field cannot be resolved sort last.
func sortSnapsDesc(snaps []*firestore.DocumentSnapshot, timeField string) {
	sort.SliceStable(snaps, func(i, j int) bool {
		a, aok := timeutil.Parse(snaps[i].Data()[timeField])
		b, bok := timeutil.Parse(snaps[j].Data()[timeField])
		if !aok {
			return false
		}
		if !bok {
			return true
		}
		return a.After(b)
	})
}

// countDocs counts the documents matched by a query by iterating the result
// set. Collection sizes here stay small enough that an aggregation query is
// not worth the extra client surface.
func countDocs(ctx context.Context, query firestore.Query) (int, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	count := 0
	for {
		_, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, err
		}
		count++
	}
	return count, nil
}
