// Package service provides the core business service that implements the
// dependencies required by the HTTP API. It owns the session state: the
// active roster lives in the repository and is replaced wholesale on every
// ingestion; the sanitize-ingest-normalize pipeline and all aggregation stay
// pure functions invoked from here.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/okian/faceoff/internal/adapters/repository"
	"github.com/okian/faceoff/internal/domain/aggregate"
	"github.com/okian/faceoff/internal/domain/model"
	"github.com/okian/faceoff/internal/domain/roster"
	"github.com/okian/faceoff/internal/domain/verdict"
	"github.com/okian/faceoff/internal/exporter"
	"github.com/okian/faceoff/pkg/logger"
	"github.com/okian/faceoff/pkg/metrics"
)

// Default configuration constants.
const (
	defaultMaxRosterRows = 10_000
	defaultMaxGroupSize  = 25
	defaultMatchLimit    = 50
	defaultCacheSize     = 1024

	nanosecondsPerMillisecond = 1e6
)

// RosterSummary describes a freshly ingested roster.
type RosterSummary struct {
	Version string  `json:"version"`
	Players int     `json:"players"`
	Scored  int     `json:"scored"`
	Mean    float64 `json:"mean"`
	StdDev  float64 `json:"std_dev"`
}

// Selections carries the free-text name lists for each trade side. C is
// optional; an empty slice means the third side is absent.
type Selections struct {
	A []string `json:"a"`
	B []string `json:"b"`
	C []string `json:"c,omitempty"`
}

// Comparison bundles the aggregated sides with their verdict.
type Comparison struct {
	RosterVersion string           `json:"roster_version"`
	A             aggregate.Group  `json:"a"`
	B             aggregate.Group  `json:"b"`
	C             *aggregate.Group `json:"c,omitempty"`
	Verdict       verdict.Verdict  `json:"verdict"`
}

// Service implements the API dependencies for the trade analyzer.
type Service struct {
	store repository.Store

	// Configuration
	maxRosterRows int
	maxGroupSize  int
	matchLimit    int
	cacheSize     int

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore sets a custom session store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithMaxRosterRows caps the number of data rows ingested per table.
func WithMaxRosterRows(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxRosterRows = n
		}
	}
}

// WithMaxGroupSize caps the number of selection entries per trade side.
func WithMaxGroupSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxGroupSize = n
		}
	}
}

// WithMatchLimit caps player prefix-match results.
func WithMatchLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.matchLimit = n
		}
	}
}

// WithCacheSize bounds the aggregate memo cache.
func WithCacheSize(n int) Option {
	return func(s *Service) {
		s.cacheSize = n
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		maxRosterRows: defaultMaxRosterRows,
		maxGroupSize:  defaultMaxGroupSize,
		matchLimit:    defaultMatchLimit,
		cacheSize:     defaultCacheSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.store == nil {
		s.store = repository.NewSessionStore(repository.WithCacheSize(s.cacheSize))
	}
	return s
}

// IngestRoster runs the full pipeline over the uploaded table and commits
// the result, replacing any previous roster. On error nothing is committed
// and the previous roster stays active.
func (s *Service) IngestRoster(ctx context.Context, src io.Reader) (RosterSummary, error) {
	start := time.Now()

	r, err := roster.Parse(src, roster.WithMaxRows(s.maxRosterRows))
	if err != nil {
		metrics.RecordRosterRejected(rejectReason(err))
		s.logger.Warn(ctx, "roster rejected", logger.Error(err))
		return RosterSummary{}, fmt.Errorf("ingest roster: %w", err)
	}

	s.store.Replace(ctx, r)

	metrics.RecordRosterIngested()
	metrics.RecordIngestDuration(float64(time.Since(start).Nanoseconds()) / nanosecondsPerMillisecond)
	metrics.UpdateRosterPlayers(len(r.Players))
	metrics.UpdateRosterScored(r.Scored)

	s.logger.Info(ctx, "roster ingested",
		logger.String("version", r.Version),
		logger.Int("players", len(r.Players)),
		logger.Int("scored", r.Scored),
		logger.Float64("mean", r.Mean),
		logger.Float64("std_dev", r.StdDev),
	)

	return RosterSummary{
		Version: r.Version,
		Players: len(r.Players),
		Scored:  r.Scored,
		Mean:    r.Mean,
		StdDev:  r.StdDev,
	}, nil
}

// Reset discards the active roster and all derived state.
func (s *Service) Reset(ctx context.Context) {
	s.store.Replace(ctx, nil)
	metrics.UpdateRosterPlayers(0)
	metrics.UpdateRosterScored(0)
	s.logger.Info(ctx, "session reset")
}

// Players returns roster members whose normalized name starts with the
// normalized prefix, for the autocomplete feed. An empty prefix lists the
// whole roster up to the match limit.
func (s *Service) Players(ctx context.Context, prefix string) ([]model.Player, error) {
	players, err := s.store.Match(ctx, prefix, s.matchLimit)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

// Compare aggregates each side and computes the verdict. Blank and
// unresolved selection entries are skipped silently inside aggregation.
func (s *Service) Compare(ctx context.Context, sel Selections) (*Comparison, error) {
	if err := s.checkGroupSizes(sel); err != nil {
		return nil, err
	}

	start := time.Now()
	a, err := s.store.Aggregate(ctx, "A", sel.A)
	if err != nil {
		return nil, fmt.Errorf("aggregate side A: %w", err)
	}
	metrics.RecordAggregation()

	b, err := s.store.Aggregate(ctx, "B", sel.B)
	if err != nil {
		return nil, fmt.Errorf("aggregate side B: %w", err)
	}
	metrics.RecordAggregation()

	var c *aggregate.Group
	if len(sel.C) > 0 {
		g, err := s.store.Aggregate(ctx, "C", sel.C)
		if err != nil {
			return nil, fmt.Errorf("aggregate side C: %w", err)
		}
		metrics.RecordAggregation()
		c = &g
	}
	metrics.RecordAggregationDuration(float64(time.Since(start).Nanoseconds()) / nanosecondsPerMillisecond)

	v := verdict.Compare(a, b, c)
	metrics.RecordComparison(string(v.Winner))

	return &Comparison{
		RosterVersion: s.store.Version(ctx),
		A:             a,
		B:             b,
		C:             c,
		Verdict:       v,
	}, nil
}

// Export renders the plain-text trade report for the selections.
func (s *Service) Export(ctx context.Context, sel Selections) (string, error) {
	cmp, err := s.Compare(ctx, sel)
	if err != nil {
		return "", err
	}
	metrics.RecordExport()
	return exporter.Render(cmp.A, cmp.B, cmp.C, cmp.Verdict), nil
}

// GetStats returns service statistics for the stats endpoint.
func (s *Service) GetStats() map[string]interface{} {
	ctx := context.Background()
	hits, misses := s.store.CacheStats(ctx)
	return map[string]interface{}{
		"roster_version":       s.store.Version(ctx),
		"roster_players":       s.store.Count(ctx),
		"aggregate_cache_hits": hits,
		"aggregate_cache_miss": misses,
		"max_roster_rows":      s.maxRosterRows,
		"max_group_size":       s.maxGroupSize,
	}
}

func (s *Service) checkGroupSizes(sel Selections) error {
	for label, names := range map[string][]string{"A": sel.A, "B": sel.B, "C": sel.C} {
		if len(names) > s.maxGroupSize {
			return fmt.Errorf("side %s has %d entries, cap is %d: %w", label, len(names), s.maxGroupSize, ErrGroupTooLarge)
		}
	}
	return nil
}

// rejectReason maps ingestion error kinds to a metric label.
func rejectReason(err error) string {
	switch {
	case errors.Is(err, roster.ErrFormat):
		return "format"
	case errors.Is(err, roster.ErrValidation):
		return "validation"
	default:
		return "other"
	}
}
