package reservationRepo

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"management/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestCollectStatsAssemblesEveryCounter(t *testing.T) {
	var calls atomic.Int32
	var seenStart time.Time
	stats, err := collectStats(context.Background(), fixedNow, time.UTC, func(ctx context.Context, kind statKind, now, todayStart time.Time) (int64, error) {
		calls.Add(1)
		assert.Equal(t, fixedNow, now)
		if kind == statReservationsToday {
			seenStart = todayStart
		}
		return int64(kind) + 10, nil
	})
	require.NoError(t, err)

	assert.Equal(t, int32(5), calls.Load())
	assert.Equal(t, models.DashboardStats{
		ActiveLoans:       10,
		PendingCollection: 11,
		OverdueLoans:      12,
		ReturnedToday:     13,
		ReservationsToday: 14,
		CalculatedAt:      fixedNow,
	}, stats)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), seenStart)
}

func TestCollectStatsRunsCountersConcurrently(t *testing.T) {
	// Every counter blocks until all five have started.
	var started atomic.Int32
	release := make(chan struct{})
	_, err := collectStats(context.Background(), fixedNow, time.UTC, func(ctx context.Context, kind statKind, now, todayStart time.Time) (int64, error) {
		if started.Add(1) == int32(len(statKinds)) {
			close(release)
		}
		select {
		case <-release:
			return 1, nil
		case <-time.After(2 * time.Second):
			return 0, fmt.Errorf("%s: counters were serialized", kind)
		}
	})
	require.NoError(t, err)
}

func TestCollectStatsFailsFast(t *testing.T) {
	boom := &StoreError{Op: "count overdueLoans", Kind: ErrQuery, Err: errors.New("bad predicate")}

	stats, err := collectStats(context.Background(), fixedNow, time.UTC, func(ctx context.Context, kind statKind, now, todayStart time.Time) (int64, error) {
		if kind == statOverdueLoans {
			return 0, boom
		}
		// The others wait for cancellation caused by the failing counter.
		select {
		case <-ctx.Done():
			return 0, classify("count "+kind.String(), ctx.Err())
		case <-time.After(2 * time.Second):
			return 7, nil
		}
	})
	require.Error(t, err)
	assert.Same(t, boom, err)
	assert.Equal(t, models.DashboardStats{}, stats)
}

func TestClassify(t *testing.T) {
	err := classify("count activeLoans", context.DeadlineExceeded)
	assert.True(t, errors.Is(err, ErrStoreUnavailable))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.False(t, errors.Is(err, ErrQuery))

	err = classify("list reservations", mongo.ErrClientDisconnected)
	assert.True(t, errors.Is(err, ErrStoreUnavailable))

	err = classify("list reservations", mongo.CommandError{Code: 2, Message: "bad query"})
	assert.True(t, errors.Is(err, ErrQuery))
	assert.Contains(t, err.Error(), "list reservations")

	wrapped := classify("outer", err)
	assert.Same(t, err, wrapped)
}
