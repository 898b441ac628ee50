package ldap

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/go-ldap/ldap/v3"
)

// Client is a directory client holding one logical connection. The session
// moves Unconnected -> Connected -> Bound; Bind performs the Unconnected ->
// Connected transition implicitly, exactly once per call, never looping.
//
// A Client is not safe for concurrent use; it handles one request at a time
// over its single connection. Independent instances are independent.
type Client struct {
	config       *Config
	server       string
	organization string
	logger       *slog.Logger
	dialer       DialFunc
	normalizer   Normalizer

	// Session state. conn is the single connection handle; the remaining
	// fields form the bind-state record.
	conn     Conn
	user     string
	password string
	secure   bool
	bound    bool
}

// New creates a directory client for the given server address. The address
// may be a full URL (ldap://host:389, ldaps://host:636) or a bare hostname,
// in which case the configured port is appended.
func New(server string, opts ...Option) (*Client, error) {
	if server == "" {
		return nil, errors.New("server address cannot be empty")
	}

	config, err := newConfig()
	if err != nil {
		return nil, fmt.Errorf("apply config defaults: %w", err)
	}

	c := &Client{
		config: config,
		server: server,
		logger: slog.Default(),
		dialer: dialDirectory,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.logger.Debug("directory_client_created",
		slog.String("server", server))

	return c, nil
}

// Server returns the server address the client was created with.
func (l *Client) Server() string {
	return l.server
}

// Connection returns the current connection handle, or nil when the client
// is unconnected.
func (l *Client) Connection() Conn {
	return l.conn
}

// Organization returns the organization name associated with this client.
func (l *Client) Organization() string {
	return l.organization
}

// SetOrganization associates an organization name with this client and
// returns the client for chaining.
func (l *Client) SetOrganization(name string) *Client {
	l.organization = name
	return l
}

// IsConnected reports whether the client holds a connection handle.
func (l *Client) IsConnected() bool {
	return l.conn != nil
}

// IsBound reports whether the last bind on this session succeeded.
func (l *Client) IsBound() bool {
	return l.bound
}

// IsSecure reports whether the StartTLS upgrade attempted during the last
// bind succeeded.
func (l *Client) IsSecure() bool {
	return l.secure
}

// Connect establishes the connection to the directory server.
func (l *Client) Connect() error {
	return l.ConnectContext(context.Background())
}

// ConnectContext establishes the connection to the directory server.
// A client that is already connected returns nil without dialing again.
// On failure the connection handle stays unset and the session remains
// in the Unconnected state.
func (l *Client) ConnectContext(ctx context.Context) error {
	if l.IsConnected() {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	addr := l.dialAddress()

	conn, err := l.dialer(addr, l.config)
	if err != nil {
		l.conn = nil
		l.logger.Error("directory_connect_failed",
			slog.String("server", addr),
			slog.String("error", err.Error()),
			slog.Duration("duration", time.Since(start)))
		return &DirectoryError{Op: "Connect", Server: addr, Err: err}
	}

	l.conn = conn
	l.bound = false
	l.secure = false

	l.logger.Debug("directory_connected",
		slog.String("server", addr),
		slog.Int("protocol_version", protocolVersion),
		slog.Duration("duration", time.Since(start)))

	return nil
}

// Bind authenticates the session as the given user or DN.
func (l *Client) Bind(userOrDN, password string) error {
	return l.BindContext(context.Background(), userOrDN, password)
}

// BindContext authenticates the session as the given user or DN. An
// unconnected client connects first; that implicit connect happens at most
// once per call. A StartTLS upgrade is attempted before the bind and its
// outcome recorded, but a failed upgrade never aborts the bind.
func (l *Client) BindContext(ctx context.Context, userOrDN, password string) error {
	start := time.Now()

	l.user = userOrDN
	l.password = password
	l.bound = false

	if !l.IsConnected() {
		if err := l.ConnectContext(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := l.conn.StartTLS(l.tlsConfig()); err != nil {
		l.secure = false
		l.logger.Warn("directory_starttls_failed",
			slog.String("server", l.server),
			slog.String("error", err.Error()))
	} else {
		l.secure = true
	}

	if err := l.conn.Bind(userOrDN, password); err != nil {
		l.logger.Error("directory_bind_failed",
			slog.String("server", l.server),
			slog.String("user", userOrDN),
			slog.String("error", err.Error()),
			slog.Duration("duration", time.Since(start)))
		return &DirectoryError{Op: "Bind", Server: l.server, Err: err}
	}

	l.bound = true

	l.logger.Debug("directory_bound",
		slog.String("server", l.server),
		slog.String("user", userOrDN),
		slog.Bool("secure", l.secure),
		slog.Duration("duration", time.Since(start)))

	return nil
}

// Close tears down the connection and resets the session to Unconnected.
func (l *Client) Close() error {
	if l.conn == nil {
		return nil
	}

	err := l.conn.Close()
	l.conn = nil
	l.bound = false
	l.secure = false

	if err != nil {
		return fmt.Errorf("close directory connection: %w", err)
	}
	return nil
}

// dialAddress returns the server address as a dialable URL, appending the
// default scheme and configured port to bare hostnames.
func (l *Client) dialAddress() string {
	if strings.Contains(l.server, "://") {
		return l.server
	}
	return fmt.Sprintf("ldap://%s:%d", l.server, l.config.Port)
}

// tlsConfig returns the configured TLS config, or one derived from the
// server hostname.
func (l *Client) tlsConfig() *tls.Config {
	if l.config.TLSConfig != nil {
		return l.config.TLSConfig
	}
	return &tls.Config{ServerName: l.hostname()}
}

// hostname extracts the bare host from the server address.
func (l *Client) hostname() string {
	addr := l.server
	if u, err := url.Parse(l.dialAddress()); err == nil && u.Host != "" {
		addr = u.Host
	}
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

// dialDirectory is the default DialFunc, dialing with go-ldap. The library
// speaks protocol version 3 only and never chases referrals, matching the
// fixed configuration this client promises.
func dialDirectory(addr string, config *Config) (Conn, error) {
	conn, err := ldap.DialURL(addr,
		ldap.DialWithDialer(&net.Dialer{Timeout: config.DialTimeout}))
	if err != nil {
		return nil, err
	}
	return conn, nil
}
