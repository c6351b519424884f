// Package model defines the persisted representation of the domain entities.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// dateLayout is the calendar-date layout used by date-only values.
const dateLayout = "2006-01-02"

// Date is a timestamp encoded as a calendar date when it falls on UTC midnight and as RFC 3339 otherwise.
// Decoding accepts both forms.
type Date struct {
	time.Time
}

// MarshalJSON encodes the date.
func (d Date) MarshalJSON() ([]byte, error) {
	t := d.UTC()
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return json.Marshal(t.Format(dateLayout))
	}
	return json.Marshal(d.Format(time.RFC3339Nano))
}

// UnmarshalJSON decodes a calendar date or an RFC 3339 timestamp.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	if t, err := time.Parse(dateLayout, raw); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", raw, err)
	}
	d.Time = t
	return nil
}
