package ldap

import (
	"crypto/tls"
	"log/slog"
	"time"
)

// Option represents a functional option for configuring a directory client.
type Option func(*Client)

// WithLogger sets a custom structured logger for directory operations.
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
//	client, err := New("ldap://ldap.example.com", WithLogger(logger))
func WithLogger(logger *slog.Logger) Option {
	return func(l *Client) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithTLS sets the TLS configuration used for the StartTLS upgrade
// attempted during Bind.
func WithTLS(tlsConfig *tls.Config) Option {
	return func(l *Client) {
		l.config.TLSConfig = tlsConfig
	}
}

// WithDialTimeout bounds connection establishment.
func WithDialTimeout(timeout time.Duration) Option {
	return func(l *Client) {
		l.config.DialTimeout = timeout
	}
}

// WithSizeLimit caps the number of entries a search returns.
func WithSizeLimit(limit int) Option {
	return func(l *Client) {
		l.config.SizeLimit = limit
	}
}

// WithDialer replaces the transport used to reach the directory server.
// Primarily useful in tests.
func WithDialer(dialer DialFunc) Option {
	return func(l *Client) {
		if dialer != nil {
			l.dialer = dialer
		}
	}
}

// WithSIDDecoding renders objectSid values as S-1-5-21-... strings instead
// of passing them through the GUID layout.
func WithSIDDecoding() Option {
	return func(l *Client) {
		l.normalizer.DecodeSIDs = true
	}
}
