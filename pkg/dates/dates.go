package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"todo-chat-api/pkg/response"
)

// explicitLayouts are the accepted date forms: the due-date wire format
// plus spelled-out variants, e.g. "January 5, 2026" or "Jan 5 2026".
var explicitLayouts = []string{
	response.DateFormat,
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
}

var inDurationRe = regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months)`)

// Parser normalizes explicit dates and resolves relative date phrases
// against a fixed IANA timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a date parser for the given IANA timezone string,
// e.g. "America/New_York".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// ParseExplicit normalizes an explicit calendar date string to YYYY-MM-DD.
// Accepted inputs are ISO dates and "Month D[,] YYYY" forms; anything else,
// including impossible dates like 2026-02-31, is an error.
func (p *Parser) ParseExplicit(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range explicitLayouts {
		if t, err := time.ParseInLocation(layout, s, p.location); err == nil {
			return t.Format(response.DateFormat), nil
		}
	}
	return "", fmt.Errorf("unrecognized date %q", s)
}

// ParseRelative resolves a relative date phrase ("today", "tomorrow",
// "in 3 days", "next friday") to an absolute time, using baseTime as the
// reference point.
func (p *Parser) ParseRelative(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	return baseTime, fmt.Errorf("unrecognized relative date %q", relative)
}

// FormatDay renders a time as YYYY-MM-DD in the parser's timezone.
func (p *Parser) FormatDay(t time.Time) string {
	return t.In(p.location).Format(response.DateFormat)
}

// parseInDuration handles "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles "next monday" .. "next sunday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	currentWeekday := baseTime.In(p.location).Weekday()
	daysUntil := int(targetWeekday - currentWeekday)
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's
// timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
