// File: match.go
// Title: Layout Matcher and Field Resolution
// Description: Runs a token list against a text and resolves the collected
//              fields into a time.Time. Optional groups are tried once and
//              rolled back when they fail; there is no other backtracking.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Initial implementation

package timex

import (
	"strings"
	"time"
)

var monthNames = [...]string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

var weekdayNames = [...]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// fields holds the values collected while matching one layout
type fields struct {
	year       int
	month      int
	day        int
	hour       int
	minute     int
	second     int
	nanos      int
	meridiem   int // 0 none, 1 AM, 2 PM
	weekday    time.Weekday
	hasWeekday bool
	hasOffset  bool
	offset     int // seconds east of UTC
	zone       string
}

type matcher struct {
	text  string
	pos   int
	pivot int // first year of the two-digit year window
	f     fields
}

// matchLayout reports whether tokens consume all of text
func matchLayout(tokens []Token, text string, pivot int) (fields, bool) {
	m := matcher{text: text, pivot: pivot, f: fields{day: 1}}
	if !m.run(tokens) || m.pos != len(m.text) {
		return fields{}, false
	}
	return m.f, true
}

func (m *matcher) run(tokens []Token) bool {
	for _, tok := range tokens {
		if tok.Kind == KindOptional {
			saved := *m
			if !m.run(tok.Tokens) {
				*m = saved
			}
			continue
		}
		if !m.step(tok) {
			return false
		}
	}
	return true
}

func (m *matcher) step(tok Token) bool {
	var ok bool
	switch tok.Kind {
	case KindLiteral:
		ok = m.prefix(tok.Text)
	case KindYear:
		ok = m.year()
	case KindYear2:
		var v int
		if v, ok = m.digits(2, 2); ok {
			m.f.year = m.pivot - m.pivot%100 + v
			if m.f.year < m.pivot {
				m.f.year += 100
			}
		}
	case KindMonth:
		m.f.month, ok = m.digits(1, 2)
	case KindMonth2:
		m.f.month, ok = m.digits(2, 2)
	case KindMonthText:
		var i int
		if i, ok = m.name(monthNames[:]); ok {
			m.f.month = i + 1
		}
	case KindDay:
		m.f.day, ok = m.digits(1, 2)
	case KindDay2:
		m.f.day, ok = m.digits(2, 2)
	case KindWeekday:
		var i int
		if i, ok = m.name(weekdayNames[:]); ok {
			m.f.weekday, m.f.hasWeekday = time.Weekday(i), true
		}
	case KindTimeSep:
		ok = m.prefix(" ") || m.prefix("T")
	case KindHour:
		m.f.hour, ok = m.digits(1, 2)
	case KindMinute:
		m.f.minute, ok = m.digits(2, 2)
	case KindSecond:
		m.f.second, ok = m.digits(2, 2)
	case KindFraction:
		ok = m.fraction()
	case KindMeridiem:
		switch {
		case m.prefix("AM"):
			m.f.meridiem, ok = 1, true
		case m.prefix("PM"):
			m.f.meridiem, ok = 2, true
		}
	case KindOffset:
		ok = m.offset()
	case KindZoneID:
		ok = m.zoneID()
	case KindZoneAbbr:
		ok = m.zoneAbbr()
	}
	return ok
}

// prefix consumes s, ignoring ASCII case
func (m *matcher) prefix(s string) bool {
	if len(m.text)-m.pos < len(s) || !strings.EqualFold(m.text[m.pos:m.pos+len(s)], s) {
		return false
	}
	m.pos += len(s)
	return true
}

// digits consumes between lo and hi ASCII digits
func (m *matcher) digits(lo, hi int) (int, bool) {
	v, n := 0, 0
	for n < hi && m.pos+n < len(m.text) {
		c := m.text[m.pos+n]
		if c < '0' || c > '9' {
			break
		}
		v = v*10 + int(c-'0')
		n++
	}
	if n < lo {
		return 0, false
	}
	m.pos += n
	return v, true
}

func (m *matcher) year() bool {
	sign := 1
	if m.pos < len(m.text) && (m.text[m.pos] == '+' || m.text[m.pos] == '-') {
		if m.text[m.pos] == '-' {
			sign = -1
		}
		m.pos++
		v, ok := m.digits(4, 9)
		m.f.year = sign * v
		return ok
	}
	v, ok := m.digits(4, 4)
	m.f.year = v
	return ok
}

func (m *matcher) fraction() bool {
	start := m.pos
	v, ok := m.digits(1, 9)
	if !ok {
		return false
	}
	for n := m.pos - start; n < 9; n++ {
		v *= 10
	}
	m.f.nanos = v
	return true
}

// name consumes the longest full or three-letter name and returns its index
func (m *matcher) name(names []string) (int, bool) {
	for i, n := range names {
		if m.prefix(n) {
			return i, true
		}
	}
	for i, n := range names {
		if m.prefix(n[:3]) {
			return i, true
		}
	}
	return 0, false
}

func (m *matcher) offset() bool {
	switch {
	case m.prefix("GMT"), m.prefix("UTC"), m.prefix("UT"), m.prefix("Z"):
		m.f.hasOffset, m.f.offset = true, 0
		return true
	}
	if m.pos >= len(m.text) || (m.text[m.pos] != '+' && m.text[m.pos] != '-') {
		return false
	}
	sign := 1
	if m.text[m.pos] == '-' {
		sign = -1
	}
	m.pos++
	hh, ok := m.digits(2, 2)
	if !ok {
		return false
	}
	mm := 0
	if m.prefix(":") {
		if mm, ok = m.digits(2, 2); !ok {
			return false
		}
	} else if v, ok := m.digits(2, 2); ok {
		mm = v
	}
	if hh > 18 || mm > 59 {
		return false
	}
	m.f.hasOffset, m.f.offset = true, sign*(hh*3600+mm*60)
	return true
}

func (m *matcher) zoneID() bool {
	if !m.prefix("[") {
		return false
	}
	end := strings.IndexByte(m.text[m.pos:], ']')
	if end <= 0 {
		return false
	}
	m.f.zone = m.text[m.pos : m.pos+end]
	m.pos += end + 1
	return true
}

func (m *matcher) zoneAbbr() bool {
	n := 0
	for m.pos+n < len(m.text) && n < 8 {
		c := m.text[m.pos+n]
		if !(c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '+' || c == '-') {
			break
		}
		n++
	}
	m.pos += n
	return n > 0
}

// resolution tags the outcome of resolve
type resolution int

const (
	resolved resolution = iota
	missingZone
	rejected
)

// resolve turns the fields into a time. Without a zone in the text and with
// a nil fallback it reports missingZone so the caller can retry with one.
func (f *fields) resolve(fallback *time.Location) (time.Time, resolution, string) {
	hour := f.hour
	if f.meridiem != 0 {
		if hour < 1 || hour > 12 {
			return time.Time{}, rejected, ReasonInvalidTime
		}
		hour %= 12
		if f.meridiem == 2 {
			hour += 12
		}
	}
	if hour > 23 || f.minute > 59 || f.second > 59 {
		return time.Time{}, rejected, ReasonInvalidTime
	}

	// calendar check on UTC, free of DST gaps
	check := time.Date(f.year, time.Month(f.month), f.day, 0, 0, 0, 0, time.UTC)
	if y, mo, d := check.Date(); f.month < 1 || f.month > 12 || y != f.year || int(mo) != f.month || d != f.day {
		return time.Time{}, rejected, ReasonInvalidDate
	}
	if f.hasWeekday && check.Weekday() != f.weekday {
		return time.Time{}, rejected, ReasonWeekday
	}

	var loc *time.Location
	switch {
	case f.zone != "":
		l, err := time.LoadLocation(f.zone)
		if err != nil {
			return time.Time{}, rejected, ReasonUnknownZone
		}
		loc = l
	case f.hasOffset:
		loc = offsetZone(f.offset)
	case fallback == nil:
		return time.Time{}, missingZone, ""
	default:
		loc = fallback
	}

	build := loc
	if f.zone != "" && f.hasOffset {
		build = offsetZone(f.offset)
	}
	t := time.Date(f.year, time.Month(f.month), f.day, hour, f.minute, f.second, f.nanos, build)
	return t.In(loc), resolved, ""
}

func offsetZone(seconds int) *time.Location {
	if seconds == 0 {
		return time.UTC
	}
	return time.FixedZone("", seconds)
}
