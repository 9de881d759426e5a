// Package kv provides the key-value store used for refresh tokens and saved
// features. Keys are strings, values are byte slices, nothing expires.
package kv

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
)

// ErrNotFound is returned by Get when the key does not exist.
var ErrNotFound = errors.New("kv: key not found")

// Store is a minimal string-keyed byte store. Implementations must be safe
// for concurrent use.
type Store interface {
	// Get returns the value for key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// SetNX stores value only if key is absent. Reports whether it was stored.
	SetNX(ctx context.Context, key string, value []byte) (bool, error)

	Ping(ctx context.Context) error
	Close() error
}

// Connection retry settings used by Open.
const (
	connectMaxTries        = 5
	connectInitialInterval = 500 * time.Millisecond
)

// Open connects to the store named by rawURL and verifies the connection.
//
//	redis://[user:pass@]host:port/db   Redis (rediss:// for TLS)
//	sqlite://path/to/file.db           embedded SQLite
//	file:name?mode=memory              SQLite DSN passed through verbatim
func Open(ctx context.Context, rawURL string, logger *zap.Logger) (Store, error) {
	store, err := dial(rawURL)
	if err != nil {
		return nil, err
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = connectInitialInterval

	attempt := 0
	_, err = backoff.Retry(ctx, func() (struct{}, error) {
		attempt++
		return struct{}{}, store.Ping(ctx)
	},
		backoff.WithBackOff(expBackoff),
		backoff.WithMaxTries(connectMaxTries),
		backoff.WithNotify(func(err error, d time.Duration) {
			logger.Warn("store not reachable, retrying",
				zap.Int("attempt", attempt),
				zap.Duration("retry_in", d),
				zap.Error(err))
		}),
	)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("connect to store: %w", err)
	}

	logger.Info("store connected", zap.String("backend", backendName(rawURL)))
	return store, nil
}

func dial(rawURL string) (Store, error) {
	switch {
	case strings.HasPrefix(rawURL, "redis://"), strings.HasPrefix(rawURL, "rediss://"):
		return NewRedisStoreFromURL(rawURL)
	case strings.HasPrefix(rawURL, "sqlite://"):
		return OpenSQLite(strings.TrimPrefix(rawURL, "sqlite://"))
	case strings.HasPrefix(rawURL, "file:"):
		return OpenSQLite(rawURL)
	default:
		return nil, fmt.Errorf("unsupported store url scheme: %q", redactURL(rawURL))
	}
}

func backendName(rawURL string) string {
	if strings.HasPrefix(rawURL, "redis") {
		return "redis"
	}
	return "sqlite"
}

// redactURL keeps only the scheme so credentials never reach logs or errors.
func redactURL(rawURL string) string {
	if i := strings.Index(rawURL, "://"); i >= 0 {
		return rawURL[:i+3] + "..."
	}
	if len(rawURL) > 8 {
		return rawURL[:8] + "..."
	}
	return rawURL
}
