package cmsdash

import (
	"context"
	"fmt"
	"time"
)

// StatsService reads the dashboard statistics.
type StatsService struct {
	svc statsUseCase
	obs *observer
}

// Get returns the current snapshot. Snapshots are cached briefly and
// recomputed after writes made through this client.
func (s *StatsService) Get(ctx context.Context) (_ Stats, err error) {
	start := time.Now()
	defer func() { s.obs.observe("stats.get", start, err) }()

	snap, err := s.svc.Get(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("get stats: %w", err)
	}
	return fromInternalStats(snap), nil
}
