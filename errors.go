package ldap

import (
	"errors"
	"fmt"
)

// Sentinel errors for the search and session lifecycle. Every failure mode
// that the search path can hit maps onto one of these, so callers can
// classify outcomes with errors.Is instead of inspecting client state.
var (
	// ErrBaseDNEmpty is returned by Search when the tree base is empty.
	// The directory service is not contacted in this case.
	ErrBaseDNEmpty = errors.New("ldap: search base DN is empty")

	// ErrNotConnected is returned when an operation requires an
	// established connection and there is none.
	ErrNotConnected = errors.New("ldap: not connected")

	// ErrNotBound is returned by Search when the session has no
	// successful bind.
	ErrNotBound = errors.New("ldap: not bound")

	// ErrNoResults is returned by Search when the directory reports zero
	// matching entries. Distinct from an empty normalized slice, which
	// Normalize produces but Search never pairs with a nil error.
	ErrNoResults = errors.New("ldap: no matching entries")
)

// DirectoryError wraps a failure from the underlying directory service with
// the operation name and server address for context.
type DirectoryError struct {
	// Op is the operation name (e.g., "Connect", "Bind", "Search")
	Op string
	// Server is the directory server address
	Server string
	// Err is the underlying error
	Err error
}

// Error implements the error interface.
func (e *DirectoryError) Error() string {
	return fmt.Sprintf("ldap %s failed on server %q: %v", e.Op, e.Server, e.Err)
}

// Unwrap implements the Go 1.13+ error unwrapping interface.
func (e *DirectoryError) Unwrap() error {
	return e.Err
}
