package reservationRepo

import (
	"context"
	"time"

	"management/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoReservationQueryRepo implements ReservationQueryRepository on top of the
// collection the reservation service writes to. It only ever reads.
type MongoReservationQueryRepo struct {
	coll *mongo.Collection
	opts Options
}

// NewMongoReservationQueryRepo wraps an already connected collection.
func NewMongoReservationQueryRepo(coll *mongo.Collection, opts Options) *MongoReservationQueryRepo {
	opts = opts.withDefaults()
	opts.Logger.Info("reservation query repository initialized",
		zap.String("database", coll.Database().Name()),
		zap.String("collection", coll.Name()),
	)
	return &MongoReservationQueryRepo{coll: coll, opts: opts}
}

// newContext bounds a single store round trip.
func (r *MongoReservationQueryRepo) newContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, r.opts.QueryTimeout)
}

func (r *MongoReservationQueryRepo) fail(op string, err error) error {
	err = classify(op, err)
	r.opts.Logger.Error("reservation query failed", zap.String("op", op), zap.Error(err))
	return err
}

// GetDashboardStats issues the five counters concurrently.
func (r *MongoReservationQueryRepo) GetDashboardStats(ctx context.Context) (models.DashboardStats, error) {
	return collectStats(ctx, r.opts.Clock(), r.opts.Location, r.count)
}

func (r *MongoReservationQueryRepo) count(ctx context.Context, kind statKind, now, todayStart time.Time) (int64, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, countFilter(kind, now, todayStart))
	if err != nil {
		return 0, r.fail("count "+kind.String(), err)
	}
	return n, nil
}

// ListReservations returns reservations matching filters, newest first.
func (r *MongoReservationQueryRepo) ListReservations(ctx context.Context, filters models.ReservationFilters) ([]models.ReservationSummary, error) {
	return r.find(ctx, "list reservations", listQuery(filters), r.opts.Clock(), false)
}

// ListOverdueReservations returns overdue loans, earliest due first. Every
// element is flagged overdue since the query already applied that predicate.
func (r *MongoReservationQueryRepo) ListOverdueReservations(ctx context.Context) ([]models.ReservationSummary, error) {
	now := r.opts.Clock()
	return r.find(ctx, "list overdue reservations", overdueQuery(now), now, true)
}

// ListPendingCollections returns reservations awaiting pickup, soonest expiring first.
func (r *MongoReservationQueryRepo) ListPendingCollections(ctx context.Context) ([]models.ReservationSummary, error) {
	now := r.opts.Clock()
	return r.find(ctx, "list pending collections", pendingQuery(now), now, false)
}

func (r *MongoReservationQueryRepo) find(ctx context.Context, op string, q findQuery, now time.Time, forceOverdue bool) ([]models.ReservationSummary, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, q.filter, options.Find().SetSort(q.sort))
	if err != nil {
		return nil, r.fail(op, err)
	}
	defer cursor.Close(ctx)

	var docs []models.ReservationDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, r.fail(op, err)
	}

	summaries, err := mapAll(docs, now, forceOverdue)
	if err != nil {
		return nil, r.fail(op, err)
	}
	return summaries, nil
}

// Ping checks that the store answers within the query timeout.
func (r *MongoReservationQueryRepo) Ping(ctx context.Context) error {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	if err := r.coll.Database().RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return classify("ping", err)
	}
	return nil
}
