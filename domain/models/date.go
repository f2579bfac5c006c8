package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the ISO calendar date format used on the wire and in storage.
const DateLayout = "2006-01-02"

// Date is a calendar date without time of day.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate builds a Date from its parts, normalizing overflow like time.Date.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf drops the time-of-day part of t, keeping t's calendar day.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// ParseDate parses an ISO yyyy-MM-dd string.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// Time returns midnight UTC on d.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

// Before reports whether d is an earlier day than other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// After reports whether d is a later day than other.
func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

// String formats d as yyyy-MM-dd.
func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

// DatePtr is a convenience for optional dates.
func DatePtr(d Date) *Date {
	return &d
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string in %s format", DateLayout)
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected %s", raw, DateLayout)
	}
	*d = parsed
	return nil
}

// Value stores the date as its ISO string so ordering and range
// comparisons behave the same on postgres DATE and sqlite TEXT columns.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan accepts driver time values and ISO date text.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

func (d *Date) scanString(v string) error {
	if len(v) >= len(DateLayout) {
		v = v[:len(DateLayout)]
	}
	parsed, err := ParseDate(v)
	if err != nil {
		return fmt.Errorf("cannot scan %q into Date: %w", v, err)
	}
	*d = parsed
	return nil
}
