package ldap

import (
	"crypto/tls"

	"github.com/go-ldap/ldap/v3"
)

// Conn is the narrow view of a directory connection the client needs.
// *ldap.Conn satisfies it; tests substitute their own implementation.
type Conn interface {
	// StartTLS upgrades the connection to TLS in-band.
	StartTLS(config *tls.Config) error
	// Bind authenticates the connection as the given user or DN.
	Bind(username, password string) error
	// Search executes a search request and returns the raw result.
	Search(req *ldap.SearchRequest) (*ldap.SearchResult, error)
	// Close tears the connection down.
	Close() error
}

// DialFunc establishes a directory connection for the given address.
// The default implementation dials with go-ldap; WithDialer replaces it.
type DialFunc func(addr string, config *Config) (Conn, error)
