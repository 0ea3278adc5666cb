package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Catalog lookups and cache stores
// return these (optionally wrapped) so services can translate them into domain
// errors.
//
// - ErrNotFound: record or cache entry does not exist
// - ErrUnavailable: backing store temporarily unreachable
//
// For validation errors (bad input, broken static data), use pkg/domain-errors
// directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)
