package analytics

import (
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// maxWindowDays bounds day-count windows. Longer counts read as all time so
// the start never leaves the range storage can represent.
const maxWindowDays = 100 * 366

const (
	PeriodAll   = "all"
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
)

// Window is the inclusive [Start, End] interval every component filters on.
// A nil Start means unbounded: the earliest record is used.
type Window struct {
	Start *time.Time `json:"start"`
	End   time.Time  `json:"end"`
}

func (w Window) Contains(t time.Time) bool {
	if w.Start != nil && t.Before(*w.Start) {
		return false
	}
	return !t.After(w.End)
}

// PeriodSelector is the raw, client-supplied period description. Fields are
// strings on purpose: resolution never fails on garbage input.
type PeriodSelector struct {
	Days      string
	Period    string
	StartDate string
	EndDate   string
}

// ResolveWindow turns a selector into a concrete window. Precedence is an
// explicit date range, then a named period, then a day count. Anything
// malformed falls back to the configured default day count.
func ResolveWindow(sel PeriodSelector, now time.Time, cfg Config) Window {
	loc := cfg.Location()
	end := endOfDay(now, loc)

	if sel.StartDate != "" || sel.EndDate != "" {
		if w, ok := explicitRange(sel.StartDate, sel.EndDate, loc); ok {
			return w
		}
		return lastDays(cfg.DefaultWindowDays, now, loc)
	}

	switch strings.ToLower(strings.TrimSpace(sel.Period)) {
	case "":
	case PeriodAll:
		return Window{End: end}
	case PeriodToday:
		start := startOfDay(now, loc)
		return Window{Start: &start, End: end}
	case PeriodWeek:
		start := startOfWeek(now, loc)
		return Window{Start: &start, End: end}
	case PeriodMonth:
		y, m, _ := now.In(loc).Date()
		start := time.Date(y, m, 1, 0, 0, 0, 0, loc)
		return Window{Start: &start, End: end}
	default:
		return lastDays(cfg.DefaultWindowDays, now, loc)
	}

	days := strings.TrimSpace(sel.Days)
	if strings.EqualFold(days, PeriodAll) {
		return Window{End: end}
	}
	n, err := strconv.Atoi(days)
	if err != nil || n < 0 {
		n = cfg.DefaultWindowDays
	}
	return lastDays(n, now, loc)
}

func lastDays(n int, now time.Time, loc *time.Location) Window {
	if n > maxWindowDays {
		return Window{End: endOfDay(now, loc)}
	}
	start := startOfDay(now.AddDate(0, 0, -n), loc)
	return Window{Start: &start, End: endOfDay(now, loc)}
}

func explicitRange(from, to string, loc *time.Location) (Window, bool) {
	startDate, err := time.ParseInLocation(dateLayout, strings.TrimSpace(from), loc)
	if err != nil {
		return Window{}, false
	}
	endDate, err := time.ParseInLocation(dateLayout, strings.TrimSpace(to), loc)
	if err != nil {
		return Window{}, false
	}
	if endDate.Before(startDate) {
		return Window{}, false
	}
	start := startOfDay(startDate, loc)
	return Window{Start: &start, End: endOfDay(endDate, loc)}, true
}
