package engine

import (
	"fmt"
	"time"
)

// dateLayout is the canonical on-disk and in-memory form of a calendar day.
const dateLayout = "2006-01-02"

// Date is a timezone-free calendar day in canonical ISO form (yyyy-mm-dd).
// Keeping days as canonical strings makes them stable map keys and avoids
// off-by-one-day drift when state round-trips through the store.
type Date string

// ParseDate validates s as an ISO calendar date and returns it canonicalized.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// DateOf returns the calendar day containing t.
func DateOf(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Next returns the following calendar day.
func (d Date) Next() Date {
	return DateOf(d.Time().AddDate(0, 0, 1))
}

// Year returns the calendar year of the date.
func (d Date) Year() int {
	return d.Time().Year()
}

// String returns the canonical yyyy-mm-dd form.
func (d Date) String() string {
	return string(d)
}
