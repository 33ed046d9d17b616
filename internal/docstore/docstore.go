// Package docstore is the record store the workflow layer runs on: collections
// of JSON documents with per-document optimistic concurrency and an atomic
// counter primitive for display-id allocation.
package docstore

import (
	"context"
	"encoding/json"
)

// Collection names.
const (
	Books            = "books"
	Members          = "members"
	Holds            = "holds"
	CheckoutRequests = "checkoutRequests"
	Transactions     = "transactions"
	CalendarEvents   = "calendarEvents"
	Notifications    = "notifications"
	Settings         = "settings"
)

// SettingsDocID is the id of the settings singleton document.
const SettingsDocID = "config"

type Doc struct {
	ID      string
	Version int64
	Data    json.RawMessage
}

type Op int

const (
	OpEq Op = iota
	OpIn
)

// Predicate is a field-equality filter over top-level document fields.
type Predicate struct {
	Field  string
	Op     Op
	Values []string
}

func Eq(field, value string) Predicate {
	return Predicate{Field: field, Op: OpEq, Values: []string{value}}
}

func In(field string, values ...string) Predicate {
	return Predicate{Field: field, Op: OpIn, Values: values}
}

type Store interface {
	Get(ctx context.Context, collection, id string) (Doc, error)
	Find(ctx context.Context, collection string, preds ...Predicate) ([]Doc, error)
	Insert(ctx context.Context, collection string, data any) (string, error)
	// InsertWithID creates a document with a caller-chosen id (singletons).
	// Fails with errs.ErrConflict if the id is taken.
	InsertWithID(ctx context.Context, collection, id string, data any) error
	// Update replaces the document body. It succeeds only if the stored
	// version still equals expectedVersion; otherwise it fails with
	// errs.ErrConflict so the caller can re-read and retry.
	Update(ctx context.Context, collection, id string, data any, expectedVersion int64) error
	Delete(ctx context.Context, collection, id string) error
	// AllocateNext atomically increments a counter field on the settings
	// document and returns the value before the increment.
	AllocateNext(ctx context.Context, counter string) (int64, error)
}
