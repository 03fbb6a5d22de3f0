package newsapi

import (
	"time"

	"github.com/samvad-hq/samvad-news-fetcher/internal/domain"
)

// Query parameter names understood by the everything endpoint.
const (
	ParamQuery    = "q"
	ParamFrom     = "from"
	ParamSortBy   = "sortBy"
	ParamLanguage = "language"
	ParamAPIKey   = "apiKey"

	dateLayout = "2006-01-02"
)

// OffsetDays returns how many days back a window reaches.
// Only Daily, Weekly and Monthly are matched; every other value, including
// unknown ones, gets the yearly offset.
func OffsetDays(w domain.Window) int {
	switch w {
	case domain.WindowDaily:
		return 1
	case domain.WindowWeekly:
		return 7
	case domain.WindowMonthly:
		return 30
	default:
		return 365
	}
}

// DateFrom formats now minus the window offset as YYYY-MM-DD in now's location.
// Days are subtracted on the calendar, so the wall clock time is unchanged across DST shifts.
func DateFrom(w domain.Window, now time.Time) string {
	return now.AddDate(0, 0, -OffsetDays(w)).Format(dateLayout)
}

// BuildParams maps a request onto the outbound query parameters.
// The topic is passed through verbatim, empty included.
func BuildParams(req domain.SearchRequest, now time.Time, apiKey string) map[string]string {
	return map[string]string{
		ParamQuery:    req.Topic,
		ParamFrom:     DateFrom(req.Window, now),
		ParamSortBy:   string(req.SortBy),
		ParamLanguage: string(req.Language),
		ParamAPIKey:   apiKey,
	}
}
