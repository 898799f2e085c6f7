// Package services contains the portal business logic: snapshot loading
// with a cache-aside Redis layer and the lifecycle transitions the views
// may request.
//
// Preconditions are evaluated against the last-fetched snapshot and are
// advisory only; the backend is the authority and may still reject a call.
// Every mutation follows the same discipline: check precondition, issue
// exactly one backend call, and refresh the snapshot only after the backend
// confirmed success. There is no optimistic local mutation anywhere.
package services

import (
	"context"
	"errors"
	"time"
)

// ErrPrecondition marks a transition whose advisory precondition failed
// against the local snapshot. No backend call has been issued.
var ErrPrecondition = errors.New("precondition failed")

// Cache describes the snapshot cache methods the services need.
type Cache interface {
	// Get reads the cached value under key into result, reporting presence.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Set stores a value under key with a TTL.
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	// Invalidate drops the value under key.
	Invalidate(ctx context.Context, key string) error
}

// Snapshot cache keys, one per mirrored backend collection.
const (
	keyUsers         = "snapshot:users"
	keyPlans         = "snapshot:plans"
	keySubscriptions = "snapshot:subscriptions"
	keyInvoices      = "snapshot:invoices"
	keyTaxes         = "snapshot:taxes"
)
