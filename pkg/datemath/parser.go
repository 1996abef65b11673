package datemath

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"assistente-gestao/pkg/textnorm"
)

// Parser anchors date resolution to a timezone. Only the outermost call
// sites use it to read the clock; Resolve itself never does.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Lisbon"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// TodayIn returns the calendar day of now in loc, as a UTC midnight.
func TodayIn(now time.Time, loc *time.Location) time.Time {
	return startOfDay(now.In(loc))
}

// Resolve converts a natural-language Portuguese date expression into a
// YYYY-MM-DD string relative to today. It never fails.
//
// Unrecognised expressions resolve to today + 1 day. This leniency keeps a
// command with a typo'd date actionable; callers that need strict dates must
// compare the result against that fallback themselves.
func Resolve(expression string, today time.Time) string {
	expr := textnorm.Fold(expression)
	base := startOfDay(today)

	for _, wd := range weekdays {
		if strings.Contains(expr, wd.keyword) {
			return Format(nextWeekday(base, wd.weekday))
		}
	}

	switch {
	case strings.Contains(expr, keywordTomorrow):
		return Format(base.AddDate(0, 0, 1))
	case strings.Contains(expr, keywordToday):
		return Format(base)
	case strings.Contains(expr, keywordNextWeek):
		return Format(base.AddDate(0, 0, 7))
	}

	if date, ok := parseExplicit(expr); ok {
		return date
	}

	if t, ok := parseDuration(expr, base); ok {
		return Format(t)
	}

	return Format(base.AddDate(0, 0, 1))
}

// Format renders t as a canonical calendar date.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// nextWeekday returns the next occurrence of target strictly after base.
// Naming today's weekday always rolls forward a full week.
func nextWeekday(base time.Time, target time.Weekday) time.Time {
	delta := (int(target) - int(base.Weekday()) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	return base.AddDate(0, 0, delta)
}

// parseExplicit extracts a numeric date. Components are zero-padded but not
// range-checked; month 13 passes through unchanged.
func parseExplicit(expr string) (string, bool) {
	for _, p := range explicitPatterns {
		m := p.re.FindStringSubmatch(expr)
		if m == nil {
			continue
		}
		return fmt.Sprintf("%s-%s-%s", m[p.year], pad2(m[p.month]), pad2(m[p.dayIdx])), true
	}
	return "", false
}

// maxDurationDays caps relative durations at roughly ten years.
const maxDurationDays = 3650

// parseDuration handles patterns like "daqui a 3 dias", "em 2 semanas", "1 mes".
func parseDuration(expr string, base time.Time) (time.Time, bool) {
	m := durationPattern.FindStringSubmatch(expr)
	if m == nil {
		return time.Time{}, false
	}

	amount, ok := numberWords[m[1]]
	if !ok {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, false
		}
		amount = n
	}

	// Spans above maxDurationDays are unrecognised. Checked before amount*7.
	unit := m[2]
	switch {
	case strings.HasPrefix(unit, "dia") && amount <= maxDurationDays:
		return base.AddDate(0, 0, amount), true
	case strings.HasPrefix(unit, "semana") && amount <= maxDurationDays/7:
		return base.AddDate(0, 0, amount*7), true
	case strings.HasPrefix(unit, "mes") && amount <= maxDurationDays/30:
		return base.AddDate(0, amount, 0), true
	}
	return time.Time{}, false
}

// startOfDay strips the clock and zone, keeping only the calendar day.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
