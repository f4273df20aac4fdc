package reservationRepo

import (
	"fmt"
	"time"

	"management/models"
)

// mapToSummary projects a stored document. forceOverdue is set only by the
// overdue listing, whose query already applied the same predicate.
func mapToSummary(doc models.ReservationDocument, now time.Time, forceOverdue bool) (models.ReservationSummary, error) {
	reservedAt, err := models.ParseISO(doc.ReservedAt)
	if err != nil {
		return models.ReservationSummary{}, fmt.Errorf("reservation %s: reservedAt: %w", doc.ID, err)
	}
	expiresAt, err := models.ParseISO(doc.ExpiresAt)
	if err != nil {
		return models.ReservationSummary{}, fmt.Errorf("reservation %s: expiresAt: %w", doc.ID, err)
	}
	collectedAt, err := models.ParseOptionalISO(doc.CollectedAt)
	if err != nil {
		return models.ReservationSummary{}, fmt.Errorf("reservation %s: collectedAt: %w", doc.ID, err)
	}
	returnDueAt, err := models.ParseOptionalISO(doc.ReturnDueAt)
	if err != nil {
		return models.ReservationSummary{}, fmt.Errorf("reservation %s: returnDueAt: %w", doc.ID, err)
	}
	returnedAt, err := models.ParseOptionalISO(doc.ReturnedAt)
	if err != nil {
		return models.ReservationSummary{}, fmt.Errorf("reservation %s: returnedAt: %w", doc.ID, err)
	}

	return models.ReservationSummary{
		ID:            doc.ID,
		UserID:        doc.UserID,
		UserEmail:     doc.UserEmail,
		DeviceID:      doc.DeviceID,
		DeviceModelID: doc.DeviceModelID,
		Status:        doc.Status,
		ReservedAt:    reservedAt,
		ExpiresAt:     expiresAt,
		CollectedAt:   collectedAt,
		ReturnDueAt:   returnDueAt,
		ReturnedAt:    returnedAt,
		IsOverdue:     forceOverdue || models.IsOverdueAt(doc.Status, returnDueAt, now),
	}, nil
}

func mapAll(docs []models.ReservationDocument, now time.Time, forceOverdue bool) ([]models.ReservationSummary, error) {
	summaries := make([]models.ReservationSummary, 0, len(docs))
	for _, doc := range docs {
		s, err := mapToSummary(doc, now, forceOverdue)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}
