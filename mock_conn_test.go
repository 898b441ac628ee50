package ldap

import (
	"crypto/tls"

	"github.com/go-ldap/ldap/v3"
)

// mockConn implements Conn for tests. Behavior is injected per test via the
// function fields; calls are counted so tests can assert what was reached.
type mockConn struct {
	startTLSErr error
	bindErr     error
	searchFunc  func(req *ldap.SearchRequest) (*ldap.SearchResult, error)

	startTLSCalls int
	bindCalls     int
	searchCalls   int
	closed        bool

	lastBindUser     string
	lastBindPassword string
	lastSearchReq    *ldap.SearchRequest
}

func (m *mockConn) StartTLS(config *tls.Config) error {
	m.startTLSCalls++
	return m.startTLSErr
}

func (m *mockConn) Bind(username, password string) error {
	m.bindCalls++
	m.lastBindUser = username
	m.lastBindPassword = password
	return m.bindErr
}

func (m *mockConn) Search(req *ldap.SearchRequest) (*ldap.SearchResult, error) {
	m.searchCalls++
	m.lastSearchReq = req
	if m.searchFunc != nil {
		return m.searchFunc(req)
	}
	return &ldap.SearchResult{}, nil
}

func (m *mockConn) Close() error {
	m.closed = true
	return nil
}

// mockDialer returns a DialFunc handing out the given connection and counts
// dial attempts through the returned counter.
func mockDialer(conn *mockConn, dialErr error) (DialFunc, *int) {
	calls := new(int)
	return func(addr string, config *Config) (Conn, error) {
		*calls++
		if dialErr != nil {
			return nil, dialErr
		}
		return conn, nil
	}, calls
}
