package reservationRepo

import (
	"context"
	"time"

	"management/models"

	"go.uber.org/zap"
)

// ReservationQueryRepository provides read-only access to reservation data for
// admin views. Implementations never mutate the store and always return fully
// realized slices.
type ReservationQueryRepository interface {
	// GetDashboardStats aggregates the five dashboard counters.
	GetDashboardStats(ctx context.Context) (models.DashboardStats, error)
	// ListReservations returns reservations matching filters, newest first.
	ListReservations(ctx context.Context, filters models.ReservationFilters) ([]models.ReservationSummary, error)
	// ListOverdueReservations returns collected loans past their return due date, earliest due first.
	ListOverdueReservations(ctx context.Context) ([]models.ReservationSummary, error)
	// ListPendingCollections returns reservations awaiting pickup, soonest expiring first.
	ListPendingCollections(ctx context.Context) ([]models.ReservationSummary, error)
}

// Clock returns the current instant.
type Clock func() time.Time

// Options tune a repository. Zero values fall back to sensible defaults.
type Options struct {
	Logger       *zap.Logger
	Clock        Clock
	Location     *time.Location // calendar used for "today"
	QueryTimeout time.Duration
}

const defaultQueryTimeout = 10 * time.Second

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	clock := o.Clock
	if clock == nil {
		clock = time.Now
	}
	// Stored timestamps carry milliseconds. Store predicates and the overdue
	// derivation must see the same instant.
	o.Clock = func() time.Time { return clock().Truncate(time.Millisecond) }
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.QueryTimeout <= 0 {
		o.QueryTimeout = defaultQueryTimeout
	}
	return o
}
