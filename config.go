package ldap

import (
	"crypto/tls"
	"time"

	"github.com/creasty/defaults"
)

// protocolVersion is the LDAP protocol version the client speaks. Version 3
// and disabled referral chasing are fixed configuration, not options.
const protocolVersion = 3

// Config contains the connection configuration for a directory client.
type Config struct {
	// Port is used when the server address carries no scheme or port.
	Port int `default:"389"`
	// DialTimeout bounds connection establishment.
	DialTimeout time.Duration `default:"10s"`
	// SizeLimit caps the number of entries a search returns; 0 means no
	// client-side limit.
	SizeLimit int
	// TimeLimit is the server-side search time limit in seconds; 0 means
	// the server default.
	TimeLimit int
	// TLSConfig is used for the StartTLS upgrade attempted during Bind.
	// When nil, a config with the server hostname is derived.
	TLSConfig *tls.Config
}

// newConfig returns a Config with defaults applied.
func newConfig() (*Config, error) {
	config := &Config{}
	if err := defaults.Set(config); err != nil {
		return nil, err
	}
	return config, nil
}
