// Package countdown converts an event date/time into time-remaining values.
// Malformed input never fails: it resolves to a fixed placeholder so an
// editor preview without a date still shows a plausible countdown.
package countdown

import (
	"strconv"
	"strings"
	"time"
)

// Result is derived fresh on every call and never mutated in place.
type Result struct {
	Days          int  `json:"days"`
	Hours         int  `json:"hours"`
	Minutes       int  `json:"minutes"`
	Seconds       int  `json:"seconds"`
	IsPast        bool `json:"isPast"`
	IsPlaceholder bool `json:"isPlaceholder"`
}

// Placeholder is returned for any absent or unparseable date/time pair.
var Placeholder = Result{Days: 90, Hours: 12, Minutes: 30, Seconds: 45, IsPlaceholder: true}

// Until computes the time remaining until the event instant in the local
// time zone. date is an ISO calendar date (Y-M-D); tm is HH:MM and defaults
// to 12:00 when empty.
func Until(date, tm string) Result {
	return UntilAt(date, tm, time.Now())
}

// UntilAt is Until evaluated against an explicit wall-clock now.
func UntilAt(date, tm string, now time.Time) Result {
	year, month, day, ok := parseDate(date)
	if !ok {
		return Placeholder
	}

	hours, minutes, ok := parseClock(tm)
	if !ok {
		return Placeholder
	}

	event := time.Date(year, time.Month(month), day, hours, minutes, 0, 0, now.Location())
	delta := event.Sub(now)
	if delta <= 0 {
		return Result{IsPast: true}
	}

	// Always decompose the live delta; never decrement a previous result,
	// so repeated one-second recomputation cannot drift.
	total := int64(delta / time.Millisecond)
	const (
		dayMs    = 24 * 60 * 60 * 1000
		hourMs   = 60 * 60 * 1000
		minuteMs = 60 * 1000
	)
	return Result{
		Days:    int(total / dayMs),
		Hours:   int(total % dayMs / hourMs),
		Minutes: int(total % hourMs / minuteMs),
		Seconds: int(total % minuteMs / 1000),
	}
}

// parseDate accepts only a 3-component numeric Y-M-D string.
func parseDate(date string) (year, month, day int, ok bool) {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, false
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], true
}

// parseClock reads HH:MM. An empty string and a string with fewer than two
// components both fall back to 12:00; non-numeric components fail.
func parseClock(tm string) (hours, minutes int, ok bool) {
	if tm == "" {
		tm = "12:00"
	}
	parts := strings.Split(tm, ":")
	if len(parts) < 2 {
		return 12, 0, true
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return h, m, true
}
