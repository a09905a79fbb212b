package validation

import (
	"time"

	"wayfarer-backend/internal/apperr"
)

// Stats validates the start/end query params of the stats endpoint and
// returns the parsed bounds. endDate must not precede startDate.
func Stats(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := statsDate("startDate", startDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := statsDate("endDate", endDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, apperr.Validation("endDate must be larger than or equal to startDate")
	}
	return start, end, nil
}

func statsDate(key, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, apperr.Validation(key + " is required!")
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, apperr.Validation(key + " should be in this format YYYY-MM-DD")
	}
	return t, nil
}
