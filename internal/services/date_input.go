package services

import (
	"strings"
	"time"

	"github.com/terraincognita07/mealtally/internal/models"
)

// Month and day may be one or two digits.
const dateInputLayout = "2006-1-2"

// NormalizeDate turns YYYY/MM/DD, YYYY-MM-DD or an RFC 3339 timestamp into a
// canonical UTC calendar date. Plain dates are never shifted; timestamps are
// converted to UTC before the day is taken.
func NormalizeDate(raw string) (models.CalendarDate, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), "/", "-")
	if normalized == "" {
		return "", &InvalidDateError{Input: raw}
	}

	if parsed, err := time.ParseInLocation(dateInputLayout, normalized, time.UTC); err == nil {
		return models.CalendarDateOf(parsed), nil
	}
	if parsed, err := time.Parse(time.RFC3339, normalized); err == nil {
		return models.CalendarDateOf(parsed), nil
	}
	return "", &InvalidDateError{Input: raw}
}

func NormalizeDateValue(value time.Time) models.CalendarDate {
	return models.CalendarDateOf(value)
}

// normalizeOptionalDate treats an empty string as absent.
func normalizeOptionalDate(raw string) (*models.CalendarDate, error) {
	if raw == "" {
		return nil, nil
	}
	date, err := NormalizeDate(raw)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
