package event

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	calendarTimeFormat = "20060102T150405Z"
	defaultDuration    = 2 * time.Hour
	icsLineOctets      = 75
)

func calendarDetails(e *Event) string {
	req := strings.TrimSpace(e.Requirements)
	if req == "" {
		req = "None"
	}
	return e.Description + "\n\nRequirements: " + req
}

// GoogleCalendarURL builds a Google Calendar template link for e.
func GoogleCalendarURL(e *Event) string {
	start := e.Date.UTC()
	end := start.Add(defaultDuration)

	var b strings.Builder
	b.WriteString("https://www.google.com/calendar/render?action=TEMPLATE")
	b.WriteString("&text=" + url.QueryEscape(e.Title))
	b.WriteString("&dates=" + start.Format(calendarTimeFormat) + "/" + end.Format(calendarTimeFormat))
	b.WriteString("&details=" + url.QueryEscape(calendarDetails(e)))
	b.WriteString("&location=" + url.QueryEscape(e.Location))
	return b.String()
}

var icsEscaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\r\n", `\n`,
	"\n", `\n`,
)

// ICS renders e as a single-event iCalendar document.
func ICS(e *Event, now time.Time) string {
	start := e.Date.UTC()
	end := start.Add(defaultDuration)

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//County Portal//Events//EN",
		"CALSCALE:GREGORIAN",
		"BEGIN:VEVENT",
		fmt.Sprintf("UID:event-%d@county-portal", e.ID),
		"DTSTAMP:" + now.UTC().Format(calendarTimeFormat),
		"DTSTART:" + start.Format(calendarTimeFormat),
		"DTEND:" + end.Format(calendarTimeFormat),
		"SUMMARY:" + icsEscaper.Replace(e.Title),
		"DESCRIPTION:" + icsEscaper.Replace(calendarDetails(e)),
		"LOCATION:" + icsEscaper.Replace(e.Location),
		"END:VEVENT",
		"END:VCALENDAR",
	}
	for i, l := range lines {
		lines[i] = foldLine(l)
	}
	return strings.Join(lines, "\r\n") + "\r\n"
}

// foldLine splits a content line so no physical line exceeds 75 octets,
// continuing with CRLF and a single space. Splits fall on rune boundaries.
func foldLine(line string) string {
	if len(line) <= icsLineOctets {
		return line
	}
	var b strings.Builder
	n := 0
	for _, r := range line {
		size := utf8.RuneLen(r)
		if n+size > icsLineOctets {
			b.WriteString("\r\n ")
			n = 1
		}
		b.WriteRune(r)
		n += size
	}
	return b.String()
}

func icsFilename(e *Event) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return '_'
		default:
			return -1
		}
	}, e.Title)
	if name == "" {
		name = fmt.Sprintf("event_%d", e.ID)
	}
	return name + ".ics"
}
