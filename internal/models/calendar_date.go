package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const CalendarDateLayout = "2006-01-02"

// CalendarDate is a UTC day in YYYY-MM-DD form. SQLite hands DATE columns back
// as text or time.Time depending on the stored value and PostgreSQL always as
// time.Time, so Scan accepts both.
type CalendarDate string

func CalendarDateOf(value time.Time) CalendarDate {
	return CalendarDate(value.UTC().Format(CalendarDateLayout))
}

func (date CalendarDate) String() string {
	return string(date)
}

func (date CalendarDate) Value() (driver.Value, error) {
	return string(date), nil
}

func (date *CalendarDate) Scan(src any) error {
	switch value := src.(type) {
	case nil:
		*date = ""
	case time.Time:
		// DATE carries no zone; drivers attach one, so read the wall-clock day.
		*date = CalendarDate(value.Format(CalendarDateLayout))
	case string:
		*date = calendarDateFromText(value)
	case []byte:
		*date = calendarDateFromText(string(value))
	default:
		return fmt.Errorf("scan calendar date: unsupported type %T", src)
	}
	return nil
}

func calendarDateFromText(value string) CalendarDate {
	if len(value) > len(CalendarDateLayout) {
		value = value[:len(CalendarDateLayout)]
	}
	return CalendarDate(value)
}
