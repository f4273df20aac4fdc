package reservationRepo

import (
	"time"

	"management/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Stored timestamps are ISO-8601 strings in models.ISOLayout, so range
// predicates compare strings formatted the same way.

// findQuery is a filter plus the sort order the result must come back in.
type findQuery struct {
	filter bson.D
	sort   bson.D
}

// statKind names one of the dashboard counters.
type statKind int

const (
	statActiveLoans statKind = iota
	statPendingCollection
	statOverdueLoans
	statReturnedToday
	statReservationsToday
)

func (k statKind) String() string {
	switch k {
	case statActiveLoans:
		return "activeLoans"
	case statPendingCollection:
		return "pendingCollection"
	case statOverdueLoans:
		return "overdueLoans"
	case statReturnedToday:
		return "returnedToday"
	case statReservationsToday:
		return "reservationsToday"
	}
	return "unknown"
}

var statKinds = []statKind{
	statActiveLoans,
	statPendingCollection,
	statOverdueLoans,
	statReturnedToday,
	statReservationsToday,
}

// listQuery builds the filtered listing. Unset filter fields add no predicate.
func listQuery(f models.ReservationFilters) findQuery {
	filter := bson.D{}
	if f.Status != "" {
		filter = append(filter, bson.E{Key: "status", Value: string(f.Status)})
	}
	if f.UserID != "" {
		filter = append(filter, bson.E{Key: "userId", Value: f.UserID})
	}
	if f.DeviceModelID != "" {
		filter = append(filter, bson.E{Key: "deviceModelId", Value: f.DeviceModelID})
	}
	if f.FromDate != nil || f.ToDate != nil {
		rng := bson.D{}
		if f.FromDate != nil {
			rng = append(rng, bson.E{Key: "$gte", Value: models.FormatISO(*f.FromDate)})
		}
		if f.ToDate != nil {
			rng = append(rng, bson.E{Key: "$lte", Value: models.FormatISO(*f.ToDate)})
		}
		filter = append(filter, bson.E{Key: "reservedAt", Value: rng})
	}
	return findQuery{
		filter: filter,
		sort:   bson.D{{Key: "reservedAt", Value: -1}, {Key: "id", Value: 1}},
	}
}

// overdueFilter matches collected loans whose return due date is set and has passed.
func overdueFilter(now time.Time) bson.D {
	return bson.D{
		{Key: "status", Value: string(models.StatusCollected)},
		{Key: "returnDueAt", Value: bson.D{
			{Key: "$gt", Value: ""},
			{Key: "$lt", Value: models.FormatISO(now)},
		}},
	}
}

// pendingFilter matches reservations whose hold window is still open.
func pendingFilter(now time.Time) bson.D {
	return bson.D{
		{Key: "status", Value: string(models.StatusReserved)},
		{Key: "expiresAt", Value: bson.D{{Key: "$gt", Value: models.FormatISO(now)}}},
	}
}

func overdueQuery(now time.Time) findQuery {
	return findQuery{
		filter: overdueFilter(now),
		sort:   bson.D{{Key: "returnDueAt", Value: 1}, {Key: "id", Value: 1}},
	}
}

func pendingQuery(now time.Time) findQuery {
	return findQuery{
		filter: pendingFilter(now),
		sort:   bson.D{{Key: "expiresAt", Value: 1}, {Key: "id", Value: 1}},
	}
}

// countFilter returns the predicate behind one dashboard counter.
func countFilter(kind statKind, now, todayStart time.Time) bson.D {
	switch kind {
	case statActiveLoans:
		return bson.D{{Key: "status", Value: string(models.StatusCollected)}}
	case statPendingCollection:
		return pendingFilter(now)
	case statOverdueLoans:
		return overdueFilter(now)
	case statReturnedToday:
		return bson.D{
			{Key: "status", Value: string(models.StatusReturned)},
			{Key: "returnedAt", Value: bson.D{{Key: "$gte", Value: models.FormatISO(todayStart)}}},
		}
	case statReservationsToday:
		return bson.D{{Key: "reservedAt", Value: bson.D{{Key: "$gte", Value: models.FormatISO(todayStart)}}}}
	}
	return nil
}
