package reservationRepo

import (
	"context"
	"slices"
	"strings"
	"time"

	"management/models"
)

// InMemoryReservationQueryRepo serves the same contract from a fixed set of
// documents. It evaluates the same predicates as the Mongo planner and is used
// for local development and tests.
type InMemoryReservationQueryRepo struct {
	docs []models.ReservationDocument
	opts Options
}

// NewInMemoryReservationQueryRepo copies docs so later changes by the caller are not observed.
func NewInMemoryReservationQueryRepo(docs []models.ReservationDocument, opts Options) *InMemoryReservationQueryRepo {
	return &InMemoryReservationQueryRepo{
		docs: slices.Clone(docs),
		opts: opts.withDefaults(),
	}
}

// parsedDoc carries the timestamps the predicates need.
type parsedDoc struct {
	doc         models.ReservationDocument
	reservedAt  time.Time
	expiresAt   time.Time
	returnDueAt *time.Time
}

func (r *InMemoryReservationQueryRepo) snapshot(op string) ([]parsedDoc, error) {
	out := make([]parsedDoc, 0, len(r.docs))
	for _, doc := range r.docs {
		reservedAt, err := models.ParseISO(doc.ReservedAt)
		if err != nil {
			return nil, classify(op, err)
		}
		expiresAt, err := models.ParseISO(doc.ExpiresAt)
		if err != nil {
			return nil, classify(op, err)
		}
		returnDueAt, err := models.ParseOptionalISO(doc.ReturnDueAt)
		if err != nil {
			return nil, classify(op, err)
		}
		out = append(out, parsedDoc{
			doc:         doc,
			reservedAt:  reservedAt,
			expiresAt:   expiresAt,
			returnDueAt: returnDueAt,
		})
	}
	return out, nil
}

// storedMatches evaluates a dashboard counter on the raw stored strings, the
// same way the store compares them, so malformed timestamps affect listings only.
func storedMatches(doc models.ReservationDocument, kind statKind, nowISO, todayISO string) bool {
	switch kind {
	case statActiveLoans:
		return doc.Status == models.StatusCollected
	case statPendingCollection:
		return doc.Status == models.StatusReserved && doc.ExpiresAt > nowISO
	case statOverdueLoans:
		return doc.Status == models.StatusCollected && doc.ReturnDueAt > "" && doc.ReturnDueAt < nowISO
	case statReturnedToday:
		return doc.Status == models.StatusReturned && doc.ReturnedAt >= todayISO
	case statReservationsToday:
		return doc.ReservedAt >= todayISO
	}
	return false
}

func (p parsedDoc) matchesFilters(f models.ReservationFilters) bool {
	if f.Status != "" && p.doc.Status != f.Status {
		return false
	}
	if f.UserID != "" && p.doc.UserID != f.UserID {
		return false
	}
	if f.DeviceModelID != "" && p.doc.DeviceModelID != f.DeviceModelID {
		return false
	}
	if f.FromDate != nil && p.reservedAt.Before(*f.FromDate) {
		return false
	}
	if f.ToDate != nil && p.reservedAt.After(*f.ToDate) {
		return false
	}
	return true
}

// GetDashboardStats evaluates the five counters concurrently over the stored
// documents. Like the store, it never parses them.
func (r *InMemoryReservationQueryRepo) GetDashboardStats(ctx context.Context) (models.DashboardStats, error) {
	return collectStats(ctx, r.opts.Clock(), r.opts.Location, func(ctx context.Context, kind statKind, now, todayStart time.Time) (int64, error) {
		if err := ctx.Err(); err != nil {
			return 0, classify("count "+kind.String(), err)
		}
		nowISO, todayISO := models.FormatISO(now), models.FormatISO(todayStart)
		var n int64
		for _, doc := range r.docs {
			if storedMatches(doc, kind, nowISO, todayISO) {
				n++
			}
		}
		return n, nil
	})
}

// ListReservations returns reservations matching filters, newest first.
func (r *InMemoryReservationQueryRepo) ListReservations(ctx context.Context, filters models.ReservationFilters) ([]models.ReservationSummary, error) {
	const op = "list reservations"
	docs, err := r.snapshot(op)
	if err != nil {
		return nil, err
	}
	var selected []parsedDoc
	for _, p := range docs {
		if p.matchesFilters(filters) {
			selected = append(selected, p)
		}
	}
	slices.SortStableFunc(selected, func(a, b parsedDoc) int {
		if c := b.reservedAt.Compare(a.reservedAt); c != 0 {
			return c
		}
		return strings.Compare(a.doc.ID, b.doc.ID)
	})
	return r.project(ctx, op, selected, r.opts.Clock(), false)
}

// ListOverdueReservations returns overdue loans, earliest due first.
func (r *InMemoryReservationQueryRepo) ListOverdueReservations(ctx context.Context) ([]models.ReservationSummary, error) {
	const op = "list overdue reservations"
	docs, err := r.snapshot(op)
	if err != nil {
		return nil, err
	}
	now := r.opts.Clock()
	var selected []parsedDoc
	for _, p := range docs {
		if models.IsOverdueAt(p.doc.Status, p.returnDueAt, now) {
			selected = append(selected, p)
		}
	}
	slices.SortStableFunc(selected, func(a, b parsedDoc) int {
		if c := a.returnDueAt.Compare(*b.returnDueAt); c != 0 {
			return c
		}
		return strings.Compare(a.doc.ID, b.doc.ID)
	})
	return r.project(ctx, op, selected, now, true)
}

// ListPendingCollections returns reservations awaiting pickup, soonest expiring first.
func (r *InMemoryReservationQueryRepo) ListPendingCollections(ctx context.Context) ([]models.ReservationSummary, error) {
	const op = "list pending collections"
	docs, err := r.snapshot(op)
	if err != nil {
		return nil, err
	}
	now := r.opts.Clock()
	var selected []parsedDoc
	for _, p := range docs {
		if models.IsPendingCollectionAt(p.doc.Status, p.expiresAt, now) {
			selected = append(selected, p)
		}
	}
	slices.SortStableFunc(selected, func(a, b parsedDoc) int {
		if c := a.expiresAt.Compare(b.expiresAt); c != 0 {
			return c
		}
		return strings.Compare(a.doc.ID, b.doc.ID)
	})
	return r.project(ctx, op, selected, now, false)
}

func (r *InMemoryReservationQueryRepo) project(ctx context.Context, op string, selected []parsedDoc, now time.Time, forceOverdue bool) ([]models.ReservationSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, classify(op, err)
	}
	docs := make([]models.ReservationDocument, 0, len(selected))
	for _, p := range selected {
		docs = append(docs, p.doc)
	}
	summaries, err := mapAll(docs, now, forceOverdue)
	if err != nil {
		return nil, classify(op, err)
	}
	return summaries, nil
}
