package models

// MealRecordQuery filters a record listing. Date takes precedence over From/To.
type MealRecordQuery struct {
	Date      *CalendarDate
	From      *CalendarDate
	To        *CalendarDate
	Ascending bool
	Limit     int
	Offset    int
}
