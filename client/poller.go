package client

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"atrium/internal/search"
)

// DefaultPollInterval is how often the index builder re-fetches all four
// collections. Freshness is bounded by this window; there is no push channel.
const DefaultPollInterval = 3 * time.Second

// FetchSnapshot pulls all four collections concurrently and returns them as
// one snapshot. Any failed fetch fails the whole call, so callers never see
// a half-updated view.
func (c *Client) FetchSnapshot(ctx context.Context) (*search.Snapshot, error) {
	var snap search.Snapshot

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snap.UIFolders, err = c.GetStructure(ctx, "ui")
		return err
	})
	g.Go(func() (err error) {
		snap.APIFolders, err = c.GetStructure(ctx, "api")
		return err
	})
	g.Go(func() (err error) {
		snap.Documents, err = c.ListDocuments(ctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Posts, err = c.ListPosts(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Poller keeps a current snapshot by re-fetching on a fixed interval, with
// one immediate fetch at startup. A failed cycle logs and keeps the previous
// snapshot; the interactive search never observes a partial refresh.
type Poller struct {
	client   *Client
	interval time.Duration

	mu        sync.RWMutex
	snap      *search.Snapshot
	reachable bool
}

func NewPoller(c *Client, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{client: c, interval: interval}
}

// Run blocks until ctx is done, refreshing the snapshot immediately and then
// every interval. A refresh that loses the race to a newer one simply gets
// overwritten; there is no de-duplication of in-flight cycles.
func (p *Poller) Run(ctx context.Context) {
	p.refresh(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.refresh(ctx)
		}
	}
}

func (p *Poller) refresh(ctx context.Context) {
	snap, err := p.client.FetchSnapshot(ctx)
	if err != nil {
		p.client.logger.Warn("snapshot refresh failed, keeping previous", "error", err)
		return
	}

	p.mu.Lock()
	p.snap = snap
	p.reachable = true
	p.mu.Unlock()
}

// Snapshot returns the most recent complete snapshot, or nil before the
// first successful fetch.
func (p *Poller) Snapshot() *search.Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snap
}

// Reachable reports whether a combined fetch has succeeded at least once.
// It only drives a connectivity banner; search correctness never depends
// on it.
func (p *Poller) Reachable() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.reachable
}

// Search runs the query engine against the current snapshot.
func (p *Poller) Search(query string) []search.Result {
	return search.Query(query, p.Snapshot())
}
