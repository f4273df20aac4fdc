package models

import (
	"fmt"
	"time"
)

// ISOLayout is the timestamp layout used in storage and on the wire:
// UTC with millisecond precision. Values in this layout sort lexically in
// time order, which the store-side range predicates rely on.
const ISOLayout = "2006-01-02T15:04:05.000Z"

// FormatISO renders t in ISOLayout.
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// ParseISO parses a stored ISO-8601 timestamp.
func ParseISO(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t, nil
}

// ParseOptionalISO returns nil for an absent timestamp.
func ParseOptionalISO(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := ParseISO(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
