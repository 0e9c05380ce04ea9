package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// AllTimeToken selects every document of a company regardless of date.
const AllTimeToken = "all"

// Window is a half-open date range [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Period is a resolved settlement month. In all-time mode the date filter is
// dropped, but Year/Month/Start/End still carry the current month so the
// summary id and the declaration lookups stay well defined.
type Period struct {
	Start   time.Time
	End     time.Time
	Year    int
	Month   int
	AllTime bool
}

// Window returns the date filter for store queries, or nil in all-time mode.
func (p Period) Window() *Window {
	if p.AllTime {
		return nil
	}
	return &Window{Start: p.Start, End: p.End}
}

// Previous returns the (year, month) immediately before the period.
func (p Period) Previous() (year, month int) {
	if p.Month == 1 {
		return p.Year - 1, 12
	}
	return p.Year, p.Month - 1
}

// Key formats the period as YYYY-MM.
func (p Period) Key() string {
	return fmt.Sprintf("%d-%02d", p.Year, p.Month)
}

// MonthPeriod builds the period for a calendar month in loc.
func MonthPeriod(year, month int, loc *time.Location) Period {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)
	return Period{Start: start, End: end, Year: start.Year(), Month: int(start.Month())}
}

// CurrentPeriod returns the calendar month containing now, in loc.
func CurrentPeriod(now time.Time, loc *time.Location) Period {
	local := now.In(loc)
	return MonthPeriod(local.Year(), int(local.Month()), loc)
}

// AllTimePeriod returns an unfiltered period anchored on the current month.
func AllTimePeriod(now time.Time, loc *time.Location) Period {
	p := CurrentPeriod(now, loc)
	p.AllTime = true
	return p
}

// ParsePeriod resolves a period token. An empty token means the current month,
// AllTimeToken means all-time mode, anything else must be YYYY-MM.
func ParsePeriod(token string, now time.Time, loc *time.Location) (Period, error) {
	token = strings.TrimSpace(token)
	switch strings.ToLower(token) {
	case "":
		return CurrentPeriod(now, loc), nil
	case AllTimeToken:
		return AllTimePeriod(now, loc), nil
	}

	yearPart, monthPart, ok := strings.Cut(token, "-")
	if !ok || len(yearPart) != 4 || len(monthPart) != 2 {
		return Period{}, fmt.Errorf("%w: %q is not YYYY-MM", ErrInvalidPeriod, token)
	}
	year, err := strconv.Atoi(yearPart)
	if err != nil || year < 1 {
		return Period{}, fmt.Errorf("%w: bad year in %q", ErrInvalidPeriod, token)
	}
	month, err := strconv.Atoi(monthPart)
	if err != nil || month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: month must be 01-12 in %q", ErrInvalidPeriod, token)
	}
	return MonthPeriod(year, month, loc), nil
}
