package admin

import (
	"context"

	reservationRepo "management/database/repository/reservation"
	"management/models"

	"go.uber.org/zap"
)

// AdminService exposes the staff-only reservation views. Every method reports
// failure through the returned Result and never returns a Go error.
type AdminService interface {
	GetDashboardStats(ctx context.Context) Result[models.DashboardStats]
	ListAllReservations(ctx context.Context, filters models.ReservationFilters) Result[[]models.ReservationSummary]
	ListOverdueReservations(ctx context.Context) Result[[]models.ReservationSummary]
	ListPendingCollections(ctx context.Context) Result[[]models.ReservationSummary]
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Repo   reservationRepo.ReservationQueryRepository
	Logger *zap.Logger
}

// NewAdminService wires the service to a reservation query repository.
func NewAdminService(repo reservationRepo.ReservationQueryRepository, logger *zap.Logger) *DefaultAdminService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultAdminService{Repo: repo, Logger: logger}
}
