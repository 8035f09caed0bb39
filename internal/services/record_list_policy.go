package services

import (
	"math"
	"strings"

	"github.com/terraincognita07/mealtally/internal/models"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

// ListQuery is the raw query string of a record listing.
type ListQuery struct {
	Date   string
	From   string
	To     string
	Limit  string
	Offset string
	Order  string
}

// ParseListQuery normalizes dates and clamps paging. A limit that is missing,
// unparsable or zero falls back to DefaultListLimit before clamping to
// [0, MaxListLimit].
func ParseListQuery(raw ListQuery) (models.MealRecordQuery, error) {
	query := models.MealRecordQuery{
		Limit:     ClampListLimit(raw.Limit),
		Offset:    ClampListOffset(raw.Offset),
		Ascending: strings.EqualFold(raw.Order, "asc"),
	}

	if raw.Date != "" {
		date, err := NormalizeDate(raw.Date)
		if err != nil {
			return models.MealRecordQuery{}, err
		}
		query.Date = &date
		return query, nil
	}

	from, err := normalizeOptionalDate(raw.From)
	if err != nil {
		return models.MealRecordQuery{}, err
	}
	to, err := normalizeOptionalDate(raw.To)
	if err != nil {
		return models.MealRecordQuery{}, err
	}
	query.From = from
	query.To = to
	return query, nil
}

func ClampListLimit(raw string) int {
	limit, ok := parseLeadingInt(raw)
	if !ok || limit == 0 {
		limit = DefaultListLimit
	}
	return int(max(0, min(limit, MaxListLimit)))
}

func ClampListOffset(raw string) int {
	offset, ok := parseLeadingInt(raw)
	if !ok {
		return 0
	}
	return int(max(0, min(offset, math.MaxInt32)))
}
