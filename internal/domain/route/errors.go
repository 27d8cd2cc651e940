package route

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoCandidates is returned when a destination search produced zero usable
// candidates, even after falling back to the catalog search.
var ErrNoCandidates = errors.New("no destination candidates found")

// ErrEmptyRoute is returned when a directions response carried too few edges
// to safely trim the zero-length marker edges from both ends.
var ErrEmptyRoute = errors.New("directions response has too few edges")

// ProviderError reports a non-success status from the mapping provider on a
// call whose result is required for the primary response. It carries the raw
// provider response for diagnostics.
type ProviderError struct {
	Op       string
	Code     int
	Response json.RawMessage
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s failed with code %d", e.Op, e.Code)
}
