package admin

import (
	"context"

	"management/models"
)

// GetDashboardStats returns aggregated statistics for the admin overview.
func (s *DefaultAdminService) GetDashboardStats(ctx context.Context) Result[models.DashboardStats] {
	return run(ctx, s.Logger, "getDashboardStats", s.Repo.GetDashboardStats)
}

// ListAllReservations lists reservations with optional filters.
func (s *DefaultAdminService) ListAllReservations(ctx context.Context, filters models.ReservationFilters) Result[[]models.ReservationSummary] {
	return run(ctx, s.Logger, "listAllReservations", func(ctx context.Context) ([]models.ReservationSummary, error) {
		return nonNil(s.Repo.ListReservations(ctx, filters))
	})
}

// ListOverdueReservations lists loans past their return due date.
func (s *DefaultAdminService) ListOverdueReservations(ctx context.Context) Result[[]models.ReservationSummary] {
	return run(ctx, s.Logger, "listOverdueReservations", func(ctx context.Context) ([]models.ReservationSummary, error) {
		return nonNil(s.Repo.ListOverdueReservations(ctx))
	})
}

// ListPendingCollections lists reservations awaiting pickup.
func (s *DefaultAdminService) ListPendingCollections(ctx context.Context) Result[[]models.ReservationSummary] {
	return run(ctx, s.Logger, "listPendingCollections", func(ctx context.Context) ([]models.ReservationSummary, error) {
		return nonNil(s.Repo.ListPendingCollections(ctx))
	})
}

func nonNil(summaries []models.ReservationSummary, err error) ([]models.ReservationSummary, error) {
	if err != nil {
		return nil, err
	}
	if summaries == nil {
		summaries = []models.ReservationSummary{}
	}
	return summaries, nil
}
