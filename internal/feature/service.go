// Package feature stores user-submitted GeoJSON features under generated,
// human-readable identifiers.
package feature

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/pysugar/kreuzungen-auth/internal/kv"
	"github.com/pysugar/kreuzungen-auth/internal/metrics"
)

// MaxAttempts bounds how many names are tried before giving up.
const MaxAttempts = 32

var (
	// ErrNotFound is returned by Get for an unknown id.
	ErrNotFound = errors.New("feature not found")
	// ErrNamesExhausted is returned when every candidate name was taken.
	ErrNamesExhausted = errors.New("no free feature name")
)

// idPattern matches the identifiers Save hands out. Anything else, such as
// an athlete id, lives in the same keyspace and must not be readable here.
var idPattern = regexp.MustCompile(`^[a-z]+(_[a-z]+)*$`)

// NameGenerator produces candidate identifiers.
type NameGenerator interface {
	Generate() string
}

// Service saves and loads features.
type Service struct {
	store   kv.Store
	names   NameGenerator
	metrics *metrics.Metrics
}

// NewService creates a feature service. m may be nil.
func NewService(store kv.Store, names NameGenerator, m *metrics.Metrics) *Service {
	return &Service{store: store, names: names, metrics: m}
}

// Save claims a fresh name with a conditional write and stores payload under
// it verbatim.
func (s *Service) Save(ctx context.Context, payload []byte) (string, error) {
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		id := s.names.Generate()
		ok, err := s.store.SetNX(ctx, id, payload)
		if err != nil {
			return "", fmt.Errorf("save feature: %w", err)
		}
		if ok {
			return id, nil
		}
		s.metrics.IncFeatureReroll()
	}
	return "", ErrNamesExhausted
}

// Get returns the stored payload for id.
func (s *Service) Get(ctx context.Context, id string) ([]byte, error) {
	if !idPattern.MatchString(id) {
		return nil, ErrNotFound
	}
	data, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load feature %s: %w", id, err)
	}
	return data, nil
}
