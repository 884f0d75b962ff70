package dataset

import (
	"context"
	"sync"
	"time"

	"github.com/akyairhashvil/brasileirao/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const flightKey = "dataset"

// Loader fetches the dataset at most once per session and caches it.
// The cache is written only by a successful, non-empty load and is never cleared.
type Loader struct {
	fetcher Fetcher
	logger  *zap.Logger
	now     func() time.Time
	group   singleflight.Group

	mu    sync.RWMutex
	teams []models.Team
}

// NewLoader returns a Loader backed by fetcher.
func NewLoader(fetcher Fetcher, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{fetcher: fetcher, logger: logger, now: time.Now}
}

// Cached returns the cached dataset and whether it is populated.
// The returned slice is shared and must be treated as read-only.
func (l *Loader) Cached() ([]models.Team, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.teams, len(l.teams) > 0
}

// Load returns the cached dataset, fetching it first when the cache is empty.
// Concurrent callers share one in-flight fetch; the first caller's context governs it.
func (l *Loader) Load(ctx context.Context) ([]models.Team, error) {
	if teams, ok := l.Cached(); ok {
		return teams, nil
	}
	v, err, shared := l.group.Do(flightKey, func() (any, error) {
		if teams, ok := l.Cached(); ok {
			return teams, nil
		}
		return l.fetch(ctx)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		l.logger.Debug("dataset load shared with in-flight fetch")
	}
	return v.([]models.Team), nil
}

func (l *Loader) fetch(ctx context.Context) ([]models.Team, error) {
	start := l.now()
	payload, err := l.fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	teams, err := Decode(payload)
	if err != nil {
		return nil, err
	}
	if len(teams) > 0 {
		l.mu.Lock()
		l.teams = teams
		l.mu.Unlock()
	}
	l.logger.Info("dataset loaded",
		zap.String("resource", payload.Resource),
		zap.String("format", string(payload.Format)),
		zap.Int("teams", len(teams)),
		zap.Duration("elapsed", l.now().Sub(start)),
	)
	return teams, nil
}
