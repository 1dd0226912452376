package records

import "context"

// Store supplies the full ordered sequence of case records. Implementations
// load once and cache for the process lifetime; the returned slice is
// read-only shared state and must not be mutated by callers.
//
// Error contract:
// - CSVStore never errors: a missing or unreadable file yields an empty
//   store (logged), which callers must treat as "lookup unavailable".
// - PostgresStore wraps failures in sentinel.ErrUnavailable.
type Store interface {
	All(ctx context.Context) ([]Record, error)
}
