package cli

import (
	"fmt"

	"github.com/nathanial/chronos/internal/civil"
)

// InstantResult is the output payload for commands that produce an instant.
type InstantResult struct {
	Seconds     int64  `json:"seconds"`
	Nanoseconds uint32 `json:"nanoseconds"`
}

func newInstantResult(i civil.Instant) InstantResult {
	return InstantResult{Seconds: i.Seconds, Nanoseconds: i.Nanoseconds}
}

// String renders the instant as text-format output lines.
func (r InstantResult) String() string {
	return fmt.Sprintf("seconds:     %d\nnanoseconds: %d", r.Seconds, r.Nanoseconds)
}

// FieldsResult is the output payload for commands that produce civil fields.
// Zone names which decomposition produced the fields; the fields themselves
// do not carry it.
type FieldsResult struct {
	Zone       string `json:"zone"`
	Year       int32  `json:"year"`
	Month      uint8  `json:"month"`
	Day        uint8  `json:"day"`
	Hour       uint8  `json:"hour"`
	Minute     uint8  `json:"minute"`
	Second     uint8  `json:"second"`
	Nanosecond uint32 `json:"nanosecond"`
}

func newFieldsResult(zone string, dt civil.DateTime) FieldsResult {
	return FieldsResult{
		Zone:       zone,
		Year:       dt.Year,
		Month:      dt.Month,
		Day:        dt.Day,
		Hour:       dt.Hour,
		Minute:     dt.Minute,
		Second:     dt.Second,
		Nanosecond: dt.Nanosecond,
	}
}

// String renders the fields as text-format output lines.
func (r FieldsResult) String() string {
	return fmt.Sprintf(
		"zone:       %s\nyear:       %d\nmonth:      %d\nday:        %d\nhour:       %d\nminute:     %d\nsecond:     %d\nnanosecond: %d",
		r.Zone, r.Year, r.Month, r.Day, r.Hour, r.Minute, r.Second, r.Nanosecond)
}

// OffsetResult is the output payload for the offset command.
type OffsetResult struct {
	OffsetSeconds int32 `json:"offset_seconds"`
}

// String renders the offset as a text-format output line.
func (r OffsetResult) String() string {
	return fmt.Sprintf("offset_seconds: %d", r.OffsetSeconds)
}
