package handlers

import (
	"fmt"
	"time"

	"management/models"

	"github.com/gin-gonic/gin"
)

const dateOnlyLayout = "2006-01-02"

// parseReservationFilters reads the listing filters from the query string.
// Bare dates are interpreted in loc: fromDate as the start of that day and
// toDate as its last millisecond, so both bounds stay inclusive.
func parseReservationFilters(c *gin.Context, loc *time.Location) (models.ReservationFilters, error) {
	filters := models.ReservationFilters{
		UserID:        c.Query("userId"),
		DeviceModelID: c.Query("deviceModelId"),
	}

	if raw := c.Query("status"); raw != "" {
		status, err := models.ParseReservationStatus(raw)
		if err != nil {
			return filters, err
		}
		filters.Status = status
	}

	from, err := parseDateParam(c.Query("fromDate"), loc, false)
	if err != nil {
		return filters, fmt.Errorf("fromDate: %w", err)
	}
	to, err := parseDateParam(c.Query("toDate"), loc, true)
	if err != nil {
		return filters, fmt.Errorf("toDate: %w", err)
	}
	if from != nil && to != nil && from.After(*to) {
		return filters, fmt.Errorf("fromDate %s is after toDate %s", models.FormatISO(*from), models.FormatISO(*to))
	}
	filters.FromDate, filters.ToDate = from, to
	return filters, nil
}

func parseDateParam(raw string, loc *time.Location, endOfDay bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return &t, nil
	}
	day, err := time.ParseInLocation(dateOnlyLayout, raw, loc)
	if err != nil {
		return nil, fmt.Errorf("%q is neither RFC3339 nor YYYY-MM-DD", raw)
	}
	if endOfDay {
		day = day.AddDate(0, 0, 1).Add(-time.Millisecond)
	}
	return &day, nil
}
