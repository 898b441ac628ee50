package ldap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-ldap/ldap/v3"
)

// Search runs a subtree search under the given base and returns the
// normalized entries.
func (l *Client) Search(filter, base string) ([]Entry, error) {
	return l.SearchContext(context.Background(), filter, base)
}

// SearchContext runs a subtree search under the given base and returns the
// normalized entries.
//
// Every failure mode returns a nil slice with a classifying error: an empty
// base returns ErrBaseDNEmpty before the directory is contacted, a session
// that is not connected or not bound returns ErrNotConnected or ErrNotBound,
// a directory failure returns a wrapped DirectoryError, and zero matches
// return ErrNoResults. A nil error therefore always comes with at least one
// entry.
func (l *Client) SearchContext(ctx context.Context, filter, base string) ([]Entry, error) {
	start := time.Now()

	if base == "" {
		l.logger.Debug("directory_search_skipped",
			slog.String("server", l.server),
			slog.String("reason", "empty base DN"))
		return nil, ErrBaseDNEmpty
	}

	if !l.IsConnected() {
		return nil, ErrNotConnected
	}

	if !l.IsBound() {
		return nil, ErrNotBound
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := l.conn.Search(&ldap.SearchRequest{
		BaseDN:       base,
		Scope:        ldap.ScopeWholeSubtree,
		DerefAliases: ldap.NeverDerefAliases,
		SizeLimit:    l.config.SizeLimit,
		TimeLimit:    l.config.TimeLimit,
		Filter:       filter,
	})
	if err != nil {
		l.logger.Error("directory_search_failed",
			slog.String("server", l.server),
			slog.String("base_dn", base),
			slog.String("filter", filter),
			slog.String("error", err.Error()),
			slog.Duration("duration", time.Since(start)))
		return nil, &DirectoryError{Op: "Search", Server: l.server, Err: err}
	}

	if len(res.Entries) == 0 {
		l.logger.Debug("directory_search_empty",
			slog.String("server", l.server),
			slog.String("base_dn", base),
			slog.String("filter", filter),
			slog.Duration("duration", time.Since(start)))
		return nil, fmt.Errorf("no entries under %q: %w", base, ErrNoResults)
	}

	entries := l.normalizer.Normalize(rawFromSearchResult(res))

	l.logger.Debug("directory_search_completed",
		slog.String("server", l.server),
		slog.String("base_dn", base),
		slog.String("filter", filter),
		slog.Int("entries", len(entries)),
		slog.Duration("duration", time.Since(start)))

	return entries, nil
}
