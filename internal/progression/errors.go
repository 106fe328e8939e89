package progression

import "errors"

// Error taxonomy for the submission pipeline. Handlers map these to HTTP
// statuses and machine-readable kinds; everything else in the package only
// wraps them.
var (
	// ErrNotFound means the referenced quiz does not exist. Client error,
	// never retried.
	ErrNotFound = errors.New("quiz not found")

	// ErrDataIntegrity means the quiz content is malformed (for example a
	// quiz with zero questions). Server defect, never retried.
	ErrDataIntegrity = errors.New("quiz content is malformed")

	// ErrRetryable means a transient store failure during the attempt or
	// ledger write. Safe to retry: ledger application is idempotent per
	// attempt id.
	ErrRetryable = errors.New("transient store failure")
)
