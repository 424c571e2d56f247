package research

import "errors"

// Failure signals returned by Ledger.Check. They are wrapped with the
// location id, so match them with errors.Is.
var (
	// ErrNoCharges means the global charge pool is empty.
	ErrNoCharges = errors.New("no research charges available")

	// ErrLocationLimit means the location's cast limit has been reached.
	ErrLocationLimit = errors.New("cast limit reached")

	// ErrUnknownLocation means the location was never registered.
	ErrUnknownLocation = errors.New("unknown location")
)
