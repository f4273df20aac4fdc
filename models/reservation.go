package models

import (
	"fmt"
	"time"
)

// ReservationStatus mirrors the status values written by the reservation service.
type ReservationStatus string

const (
	StatusReserved  ReservationStatus = "Reserved"
	StatusCollected ReservationStatus = "Collected"
	StatusReturned  ReservationStatus = "Returned"
	StatusCancelled ReservationStatus = "Cancelled"
	StatusExpired   ReservationStatus = "Expired"
)

var reservationStatuses = []ReservationStatus{
	StatusReserved,
	StatusCollected,
	StatusReturned,
	StatusCancelled,
	StatusExpired,
}

// ParseReservationStatus validates a caller supplied status value.
func ParseReservationStatus(s string) (ReservationStatus, error) {
	for _, st := range reservationStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown reservation status %q", s)
}

// ReservationDocument is the stored shape of a reservation. Timestamps are kept
// as ISO-8601 strings exactly as the reservation service writes them; an empty
// string means the field is absent.
type ReservationDocument struct {
	ID            string            `bson:"id" json:"id"`
	UserID        string            `bson:"userId" json:"userId"`
	UserEmail     string            `bson:"userEmail" json:"userEmail"`
	DeviceID      string            `bson:"deviceId" json:"deviceId"`
	DeviceModelID string            `bson:"deviceModelId" json:"deviceModelId"`
	Status        ReservationStatus `bson:"status" json:"status"`
	ReservedAt    string            `bson:"reservedAt" json:"reservedAt"`
	ExpiresAt     string            `bson:"expiresAt" json:"expiresAt"`
	CollectedAt   string            `bson:"collectedAt,omitempty" json:"collectedAt,omitempty"` // Set once the device is picked up.
	ReturnDueAt   string            `bson:"returnDueAt,omitempty" json:"returnDueAt,omitempty"` // Present iff status reached Collected.
	ReturnedAt    string            `bson:"returnedAt,omitempty" json:"returnedAt,omitempty"`
	CancelledAt   string            `bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`
	Notes         string            `bson:"notes,omitempty" json:"notes,omitempty"`
	UpdatedAt     string            `bson:"updatedAt" json:"updatedAt"`
}

// ReservationSummary is the admin-facing projection of a reservation.
// Optional timestamps are nil when the document does not carry them.
type ReservationSummary struct {
	ID            string
	UserID        string
	UserEmail     string
	DeviceID      string
	DeviceModelID string
	Status        ReservationStatus
	ReservedAt    time.Time
	ExpiresAt     time.Time
	CollectedAt   *time.Time
	ReturnDueAt   *time.Time
	ReturnedAt    *time.Time
	IsOverdue     bool
}

// ReservationFilters are AND-combined. Zero values impose no constraint.
type ReservationFilters struct {
	Status        ReservationStatus
	UserID        string
	DeviceModelID string
	FromDate      *time.Time // inclusive lower bound on reservedAt
	ToDate        *time.Time // inclusive upper bound on reservedAt
}

// IsEmpty reports whether the filters select every reservation.
func (f ReservationFilters) IsEmpty() bool {
	return f.Status == "" && f.UserID == "" && f.DeviceModelID == "" && f.FromDate == nil && f.ToDate == nil
}

// IsOverdueAt is the client side overdue derivation. A missing return due date
// never counts as overdue.
func IsOverdueAt(status ReservationStatus, returnDueAt *time.Time, now time.Time) bool {
	return status == StatusCollected && returnDueAt != nil && now.After(*returnDueAt)
}

// IsPendingCollectionAt reports whether a reservation is still waiting to be
// picked up. A lapsed hold is not pending even if its stored status is still
// Reserved.
func IsPendingCollectionAt(status ReservationStatus, expiresAt time.Time, now time.Time) bool {
	return status == StatusReserved && expiresAt.After(now)
}
