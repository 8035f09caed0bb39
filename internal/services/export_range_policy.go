package services

import "github.com/terraincognita07/mealtally/internal/models"

// ParseExportRange normalizes the optional bounds of an export. Both ends are
// inclusive and a range ending before it starts is rejected.
func ParseExportRange(rawFrom string, rawTo string) (*models.CalendarDate, *models.CalendarDate, error) {
	from, err := normalizeOptionalDate(rawFrom)
	if err != nil {
		return nil, nil, err
	}
	to, err := normalizeOptionalDate(rawTo)
	if err != nil {
		return nil, nil, err
	}

	// Canonical dates compare correctly as strings.
	if from != nil && to != nil && *to < *from {
		return nil, nil, ErrExportRangeInvalid
	}
	return from, to, nil
}
