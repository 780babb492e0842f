package entity

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// Date is a calendar day without a time-of-day or location component.
// It marshals to and from the "YYYY-MM-DD" form used by the portals.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date, normalizing out-of-range values the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()

	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}

	return DateOf(t), nil
}

// MustParseDate is ParseDate for literals known to be valid, such as seed data.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}

	return d
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// MonthKey returns the "YYYY-MM" bucket d falls in.
func (d Date) MonthKey() string {
	return d.Time().Format(monthLayout)
}

// String returns d in "YYYY-MM-DD" form.
func (d Date) String() string {
	return d.Time().Format(dateLayout)
}

// MarshalJSON implements json.Marshaler. The zero Date encodes as null.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler. null and "" decode to the zero Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}

		return nil
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed

	return nil
}

// MonthKeyOf returns the "YYYY-MM" bucket of t.
func MonthKeyOf(t time.Time) string {
	return t.Format(monthLayout)
}
