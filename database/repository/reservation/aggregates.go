package reservationRepo

import (
	"context"
	"time"

	"management/models"

	"golang.org/x/sync/errgroup"
)

// statCounter evaluates a single dashboard counter.
type statCounter func(ctx context.Context, kind statKind, now, todayStart time.Time) (int64, error)

// collectStats runs every counter concurrently and assembles the snapshot once
// all of them succeed. The first failure cancels the shared context and is
// returned; no partial stats are produced.
//
// The counters are independent reads, so under concurrent writes they may
// disagree with each other. That is accepted in exchange for latency.
func collectStats(ctx context.Context, now time.Time, loc *time.Location, count statCounter) (models.DashboardStats, error) {
	todayStart := models.StartOfDay(now, loc)

	var stats models.DashboardStats
	targets := map[statKind]*int64{
		statActiveLoans:       &stats.ActiveLoans,
		statPendingCollection: &stats.PendingCollection,
		statOverdueLoans:      &stats.OverdueLoans,
		statReturnedToday:     &stats.ReturnedToday,
		statReservationsToday: &stats.ReservationsToday,
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, kind := range statKinds {
		dst := targets[kind]
		g.Go(func() error {
			n, err := count(gctx, kind, now, todayStart)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.DashboardStats{}, err
	}

	stats.CalculatedAt = now
	return stats, nil
}
