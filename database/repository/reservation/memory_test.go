package reservationRepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"management/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(summaries []models.ReservationSummary) []string {
	out := make([]string, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, s.ID)
	}
	return out
}

func TestInMemoryDashboardStats(t *testing.T) {
	repo := NewInMemoryReservationQueryRepo(mixedDocs(), testOptions())

	stats, err := repo.GetDashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.ActiveLoans)
	assert.Equal(t, int64(2), stats.PendingCollection)
	assert.Equal(t, int64(2), stats.OverdueLoans)
	assert.Equal(t, int64(1), stats.ReturnedToday)
	assert.Equal(t, int64(2), stats.ReservationsToday)
	assert.Equal(t, fixedNow, stats.CalculatedAt)
}

func TestInMemoryDashboardStatsEmptyStore(t *testing.T) {
	repo := NewInMemoryReservationQueryRepo(nil, Options{Location: time.UTC})

	before := time.Now().Truncate(time.Millisecond)
	stats, err := repo.GetDashboardStats(context.Background())
	after := time.Now()
	require.NoError(t, err)

	assert.Zero(t, stats.ActiveLoans)
	assert.Zero(t, stats.PendingCollection)
	assert.Zero(t, stats.OverdueLoans)
	assert.Zero(t, stats.ReturnedToday)
	assert.Zero(t, stats.ReservationsToday)
	assert.False(t, stats.CalculatedAt.Before(before))
	assert.False(t, stats.CalculatedAt.After(after))
}

func TestInMemoryDashboardStatsScenario(t *testing.T) {
	day := 24 * time.Hour
	docs := []models.ReservationDocument{
		reservedDoc("a", fixedNow.Add(-2*day), fixedNow.Add(day)),
		reservedDoc("b", fixedNow.Add(-3*day), fixedNow.Add(-day)),
		collectedDoc("c", fixedNow.Add(-4*day), fixedNow.Add(-day)),
	}
	repo := NewInMemoryReservationQueryRepo(docs, testOptions())

	stats, err := repo.GetDashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.PendingCollection)
	assert.Equal(t, int64(1), stats.OverdueLoans)
	assert.Equal(t, int64(1), stats.ActiveLoans)
}

func TestInMemoryDashboardStatsCancelledContext(t *testing.T) {
	repo := NewInMemoryReservationQueryRepo(mixedDocs(), testOptions())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := repo.GetDashboardStats(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStoreUnavailable))
	assert.Equal(t, models.DashboardStats{}, stats)
}

func TestInMemoryListReservationsUnfiltered(t *testing.T) {
	repo := NewInMemoryReservationQueryRepo(mixedDocs(), testOptions())

	got, err := repo.ListReservations(context.Background(), models.ReservationFilters{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"r-open", "r-soon", "c-ontime", "r-lapsed", "r-cancelled", "r-expired",
		"c-nodue", "c-overdue-new", "ret-today", "ret-yesterday", "c-overdue-old",
	}, ids(got))

	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].ReservedAt.After(got[i-1].ReservedAt), "not sorted by reservedAt desc at %d", i)
	}
}

func TestInMemoryListReservationsByStatus(t *testing.T) {
	repo := NewInMemoryReservationQueryRepo(mixedDocs(), testOptions())

	got, err := repo.ListReservations(context.Background(), models.ReservationFilters{Status: models.StatusCollected})
	require.NoError(t, err)
	assert.Equal(t, []string{"c-ontime", "c-nodue", "c-overdue-new", "c-overdue-old"}, ids(got))
	for _, s := range got {
		assert.Equal(t, models.StatusCollected, s.Status)
	}
}

func TestInMemoryListReservationsCombinedFilters(t *testing.T) {
	docs := mixedDocs()
	docs[0].DeviceModelID = "model-b"
	repo := NewInMemoryReservationQueryRepo(docs, testOptions())

	got, err := repo.ListReservations(context.Background(), models.ReservationFilters{
		Status:        models.StatusReserved,
		DeviceModelID: "model-b",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"r-open"}, ids(got))

	got, err = repo.ListReservations(context.Background(), models.ReservationFilters{UserID: "user-c-ontime"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c-ontime"}, ids(got))

	got, err = repo.ListReservations(context.Background(), models.ReservationFilters{UserID: "nobody"})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// fromDate and toDate are honoured as inclusive bounds on reservedAt.
func TestInMemoryListReservationsDateRange(t *testing.T) {
	repo := NewInMemoryReservationQueryRepo(mixedDocs(), testOptions())
	day := 24 * time.Hour
	from := fixedNow.Add(-6 * day)
	to := fixedNow.Add(-2 * day)

	got, err := repo.ListReservations(context.Background(), models.ReservationFilters{FromDate: &from, ToDate: &to})
	require.NoError(t, err)
	assert.Equal(t, []string{"r-lapsed", "r-cancelled", "r-expired", "c-nodue", "c-overdue-new"}, ids(got))
}

func TestInMemoryListOverdue(t *testing.T) {
	repo := NewInMemoryReservationQueryRepo(mixedDocs(), testOptions())

	got, err := repo.ListOverdueReservations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"c-overdue-old", "c-overdue-new"}, ids(got))
	for _, s := range got {
		assert.True(t, s.IsOverdue)
		assert.Equal(t, models.StatusCollected, s.Status)
		require.NotNil(t, s.ReturnDueAt)
		assert.True(t, s.ReturnDueAt.Before(fixedNow))
	}
}

// The dedicated overdue listing and the generic derivation must agree on every document.
func TestOverdueListingMatchesDerivation(t *testing.T) {
	docs := mixedDocs()
	repo := NewInMemoryReservationQueryRepo(docs, testOptions())

	overdue, err := repo.ListOverdueReservations(context.Background())
	require.NoError(t, err)
	listed := map[string]bool{}
	for _, s := range overdue {
		listed[s.ID] = true
	}

	for _, doc := range docs {
		s, err := mapToSummary(doc, fixedNow, false)
		require.NoError(t, err)
		assert.Equal(t, listed[doc.ID], s.IsOverdue, "document %s", doc.ID)
	}

	all, err := repo.ListReservations(context.Background(), models.ReservationFilters{})
	require.NoError(t, err)
	for _, s := range all {
		assert.Equal(t, listed[s.ID], s.IsOverdue, "document %s", s.ID)
	}
}

func TestInMemoryListPending(t *testing.T) {
	repo := NewInMemoryReservationQueryRepo(mixedDocs(), testOptions())

	got, err := repo.ListPendingCollections(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"r-soon", "r-open"}, ids(got))
	for _, s := range got {
		assert.Equal(t, models.StatusReserved, s.Status)
		assert.True(t, s.ExpiresAt.After(fixedNow))
		assert.False(t, s.IsOverdue)
	}
}

func TestInMemoryListingsAreIdempotent(t *testing.T) {
	repo := NewInMemoryReservationQueryRepo(mixedDocs(), testOptions())
	ctx := context.Background()

	first, err := repo.ListReservations(ctx, models.ReservationFilters{})
	require.NoError(t, err)
	second, err := repo.ListReservations(ctx, models.ReservationFilters{})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	o1, err := repo.ListOverdueReservations(ctx)
	require.NoError(t, err)
	o2, err := repo.ListOverdueReservations(ctx)
	require.NoError(t, err)
	assert.Equal(t, o1, o2)

	p1, err := repo.ListPendingCollections(ctx)
	require.NoError(t, err)
	p2, err := repo.ListPendingCollections(ctx)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
}

func TestInMemoryResultsAreIndependent(t *testing.T) {
	repo := NewInMemoryReservationQueryRepo(mixedDocs(), testOptions())
	ctx := context.Background()

	first, err := repo.ListReservations(ctx, models.ReservationFilters{})
	require.NoError(t, err)
	first[0].ID = "mutated"

	second, err := repo.ListReservations(ctx, models.ReservationFilters{})
	require.NoError(t, err)
	assert.Equal(t, "r-open", second[0].ID)
}

func TestInMemoryMalformedTimestamp(t *testing.T) {
	docs := mixedDocs()
	docs[2].ReservedAt = "not-a-date"
	repo := NewInMemoryReservationQueryRepo(docs, testOptions())

	_, err := repo.ListReservations(context.Background(), models.ReservationFilters{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrQuery))

	// Counters compare stored strings like the store does and do not fail.
	stats, err := repo.GetDashboardStats(context.Background())
	require.NoError(t, err)
	clean, err := NewInMemoryReservationQueryRepo(mixedDocs(), testOptions()).GetDashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, clean, stats)
}

func TestInMemorySubMillisecondClock(t *testing.T) {
	opts := testOptions()
	opts.Clock = func() time.Time { return fixedNow.Add(500 * time.Microsecond) }
	repo := NewInMemoryReservationQueryRepo([]models.ReservationDocument{
		collectedDoc("c-edge", fixedNow.Add(-72*time.Hour), fixedNow),
	}, opts)
	ctx := context.Background()

	overdue, err := repo.ListOverdueReservations(ctx)
	require.NoError(t, err)
	assert.Empty(t, overdue)

	all, err := repo.ListReservations(ctx, models.ReservationFilters{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].IsOverdue)

	stats, err := repo.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.OverdueLoans)
	assert.Equal(t, fixedNow, stats.CalculatedAt)
}
