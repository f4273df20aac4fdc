package reservationRepo

import (
	"time"

	"management/models"
)

// fixedNow is a Monday mid-morning in UTC.
var fixedNow = time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func testOptions() Options {
	return Options{Clock: fixedClock, Location: time.UTC}
}

func iso(t time.Time) string { return models.FormatISO(t) }

func reservedDoc(id string, reservedAt, expiresAt time.Time) models.ReservationDocument {
	return models.ReservationDocument{
		ID:            id,
		UserID:        "user-" + id,
		UserEmail:     id + "@example.com",
		DeviceID:      "device-" + id,
		DeviceModelID: "model-a",
		Status:        models.StatusReserved,
		ReservedAt:    iso(reservedAt),
		ExpiresAt:     iso(expiresAt),
		UpdatedAt:     iso(reservedAt),
	}
}

func collectedDoc(id string, reservedAt, returnDueAt time.Time) models.ReservationDocument {
	doc := reservedDoc(id, reservedAt, reservedAt.Add(48*time.Hour))
	doc.Status = models.StatusCollected
	doc.CollectedAt = iso(reservedAt.Add(time.Hour))
	doc.ReturnDueAt = iso(returnDueAt)
	return doc
}

func returnedDoc(id string, reservedAt, returnedAt time.Time) models.ReservationDocument {
	doc := collectedDoc(id, reservedAt, returnedAt.Add(24*time.Hour))
	doc.Status = models.StatusReturned
	doc.ReturnedAt = iso(returnedAt)
	return doc
}

// mixedDocs covers every status and both sides of each time boundary.
func mixedDocs() []models.ReservationDocument {
	day := 24 * time.Hour
	cancelled := reservedDoc("r-cancelled", fixedNow.Add(-3*day), fixedNow.Add(-day))
	cancelled.Status = models.StatusCancelled
	cancelled.CancelledAt = iso(fixedNow.Add(-2 * day))
	expired := reservedDoc("r-expired", fixedNow.Add(-4*day), fixedNow.Add(-2*day))
	expired.Status = models.StatusExpired
	noDue := collectedDoc("c-nodue", fixedNow.Add(-5*day), fixedNow)
	noDue.ReturnDueAt = ""

	return []models.ReservationDocument{
		reservedDoc("r-open", fixedNow.Add(-time.Hour), fixedNow.Add(day)),
		reservedDoc("r-lapsed", fixedNow.Add(-2*day), fixedNow.Add(-day)),
		reservedDoc("r-soon", fixedNow.Add(-2*time.Hour), fixedNow.Add(time.Hour)),
		collectedDoc("c-overdue-old", fixedNow.Add(-10*day), fixedNow.Add(-3*day)),
		collectedDoc("c-overdue-new", fixedNow.Add(-6*day), fixedNow.Add(-day)),
		collectedDoc("c-ontime", fixedNow.Add(-day), fixedNow.Add(6*day)),
		noDue,
		returnedDoc("ret-today", fixedNow.Add(-7*day), fixedNow.Add(-2*time.Hour)),
		returnedDoc("ret-yesterday", fixedNow.Add(-8*day), fixedNow.Add(-day)),
		cancelled,
		expired,
	}
}
