// Package performance caches the user's answered-question history for the
// lifetime of the process and derives the dashboard metrics from it.
package performance

import (
	"context"

	"github.com/asalykin/certprep/internal/client/busy"
	"github.com/asalykin/certprep/internal/client/models"
)

// Fetcher is the one remote call the cache depends on. api.Client
// satisfies it.
type Fetcher interface {
	Performance(ctx context.Context) (*models.Performance, error)
}

// Cache is the lazily populated in-memory snapshot of the performance
// history. It fetches at most once; recorded answers are appended locally
// without a re-fetch, and a process restart starts from fresh server state.
type Cache struct {
	fetch    Fetcher
	busy     *busy.Indicator
	snapshot *models.Performance
}

func NewCache(fetch Fetcher, busy *busy.Indicator) *Cache {
	return &Cache{fetch: fetch, busy: busy}
}

// Get returns the cached snapshot, fetching it on first use. On failure it
// returns nil and the gateway's error untouched; deciding what the user
// sees (and clearing the session on 401) is the caller's job.
func (c *Cache) Get(ctx context.Context) (*models.Performance, error) {
	if c.snapshot != nil {
		return c.snapshot, nil
	}

	c.busy.Show()
	defer c.busy.Hide()

	p, err := c.fetch.Performance(ctx)
	if err != nil {
		return nil, err
	}
	c.snapshot = p
	return p, nil
}

// Record classifies the answered question by set equality of submitted vs
// correct letters and appends it to the matching bucket. The mutation lives
// only in memory: nothing is re-fetched and nothing is persisted.
func (c *Cache) Record(ctx context.Context, q models.Question) error {
	snap, err := c.Get(ctx)
	if err != nil {
		return err
	}

	if q.Answered() {
		snap.CorrectAnswers = append(snap.CorrectAnswers, q)
	} else {
		snap.IncorrectAnswers = append(snap.IncorrectAnswers, q)
	}
	return nil
}
