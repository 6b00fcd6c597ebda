package types

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ISODate is the layout Dates are formatted and compared with.
const ISODate = "2006-01-02"

const sqliteTime = "2006-01-02 15:04:05.999999999-07:00"

var ErrInvalidFormat = errors.New("invalid format")

// Date is a calendar day without a time of day or time zone.
//
// It is always stored as midnight UTC, so that comparing two dates is the
// same as comparing their ISO representation.
type Date time.Time

// NewDate returns the Date for the given year, month and day. Out of range
// values are normalized the way time.Date does it.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day on which t occurs in t's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// ParseDate parses "YYYY-MM-DD". RFC3339 timestamps are accepted, their
// time of day is ignored.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(ISODate, s)
	if err == nil {
		return DateOf(t), nil
	}

	t, err = time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q is not a date, use YYYY-MM-DD", ErrInvalidFormat, s)
	}

	return DateOf(t), nil
}

// MustParseDate is like ParseDate but panics on malformed input.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	return time.Time(d).Format(ISODate)
}

func (d Date) Year() int {
	return time.Time(d).Year()
}

func (d Date) Month() time.Month {
	return time.Time(d).Month()
}

func (d Date) Day() int {
	return time.Time(d).Day()
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// AddDate adds years, months and days like time.Time.AddDate, including
// its normalization: January 31st plus one month is March 2nd or 3rd.
func (d Date) AddDate(years, months, days int) Date {
	return Date(time.Time(d).AddDate(years, months, days))
}

// Compare returns -1 if d is before e, +1 if it is after e and 0 for the same day.
func (d Date) Compare(e Date) int {
	return strings.Compare(d.String(), e.String())
}

// Before reports whether d is an earlier day than e.
func (d Date) Before(e Date) bool {
	return d.String() < e.String()
}

// After reports whether d is a later day than e.
func (d Date) After(e Date) bool {
	return d.String() > e.String()
}

// Equal reports whether d and e are the same day.
func (d Date) Equal(e Date) bool {
	return d.String() == e.String()
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// UnmarshalParam implements gin's binding.BindUnmarshaler for query parameters.
func (d *Date) UnmarshalParam(param string) error {
	if param == "" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(param)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Scan writes the value from the database.
func (d *Date) Scan(value any) error {
	// sqlite hands out dates as strings when the column was written as text
	if s, ok := value.(string); ok {
		parsed, err := ParseDate(s)
		if err != nil {
			// "2006-01-02 15:04:05+00:00" as written by the sqlite driver
			t, terr := time.Parse(sqliteTime, s)
			if terr != nil {
				return err
			}
			parsed = DateOf(t.UTC())
		}
		*d = parsed
		return nil
	}

	nullTime := &sql.NullTime{}
	if err := nullTime.Scan(value); err != nil {
		return err
	}

	if !nullTime.Valid {
		*d = Date{}
		return nil
	}

	*d = DateOf(nullTime.Time.UTC())
	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return time.Time(d), nil
}

// GormDataType defines the data type used by gorm the type.
func (Date) GormDataType() string {
	return "date"
}
