package handlers

import (
	"time"

	"management/models"
)

// reservationResponse is the wire shape of a reservation summary. Absent
// optional timestamps are omitted rather than sent as null.
type reservationResponse struct {
	ID            string                   `json:"id"`
	UserID        string                   `json:"userId"`
	UserEmail     string                   `json:"userEmail"`
	DeviceID      string                   `json:"deviceId"`
	DeviceModelID string                   `json:"deviceModelId"`
	Status        models.ReservationStatus `json:"status"`
	ReservedAt    string                   `json:"reservedAt"`
	ExpiresAt     string                   `json:"expiresAt"`
	CollectedAt   string                   `json:"collectedAt,omitempty"`
	ReturnDueAt   string                   `json:"returnDueAt,omitempty"`
	ReturnedAt    string                   `json:"returnedAt,omitempty"`
	IsOverdue     bool                     `json:"isOverdue"`
}

type dashboardStatsResponse struct {
	ActiveLoans       int64  `json:"activeLoans"`
	PendingCollection int64  `json:"pendingCollection"`
	OverdueLoans      int64  `json:"overdueLoans"`
	ReturnedToday     int64  `json:"returnedToday"`
	ReservationsToday int64  `json:"reservationsToday"`
	CalculatedAt      string `json:"calculatedAt"`
}

func toReservationResponses(summaries []models.ReservationSummary) []reservationResponse {
	out := make([]reservationResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, reservationResponse{
			ID:            s.ID,
			UserID:        s.UserID,
			UserEmail:     s.UserEmail,
			DeviceID:      s.DeviceID,
			DeviceModelID: s.DeviceModelID,
			Status:        s.Status,
			ReservedAt:    models.FormatISO(s.ReservedAt),
			ExpiresAt:     models.FormatISO(s.ExpiresAt),
			CollectedAt:   optionalISO(s.CollectedAt),
			ReturnDueAt:   optionalISO(s.ReturnDueAt),
			ReturnedAt:    optionalISO(s.ReturnedAt),
			IsOverdue:     s.IsOverdue,
		})
	}
	return out
}

func toDashboardStatsResponse(stats models.DashboardStats) dashboardStatsResponse {
	return dashboardStatsResponse{
		ActiveLoans:       stats.ActiveLoans,
		PendingCollection: stats.PendingCollection,
		OverdueLoans:      stats.OverdueLoans,
		ReturnedToday:     stats.ReturnedToday,
		ReservationsToday: stats.ReservationsToday,
		CalculatedAt:      models.FormatISO(stats.CalculatedAt),
	}
}

func optionalISO(t *time.Time) string {
	if t == nil {
		return ""
	}
	return models.FormatISO(*t)
}
