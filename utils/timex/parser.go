// File: parser.go
// Title: Multi-Layout Date Parser
// Description: Parser runs the layout table against a text and returns the
//              first full match. Zones embedded in the text win; a fallback
//              location is only consulted when the text carries none.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with format list parsing
// - 2026-10-18 v0.2.0: Layout table, two-stage zone resolution, strict dates

package timex

import (
	"time"

	mdwerrors "github.com/msto63/corekit/core/errors"
	"github.com/msto63/corekit/core/log"
	"github.com/msto63/corekit/utils/stringx"
)

// Parser parses dates using an ordered layout table. It is immutable after
// NewParser returns and safe for concurrent use.
type Parser struct {
	layouts      []Layout
	clock        func() time.Time
	pivotPerCall bool
	pivot        int
	logger       *log.Logger
}

// Option configures a Parser
type Option func(*Parser)

// WithClock sets the clock used to anchor the two-digit year window
func WithClock(clock func() time.Time) Option {
	return func(p *Parser) {
		if clock != nil {
			p.clock = clock
		}
	}
}

// WithPivotPerCall anchors the two-digit year window at every call instead
// of once at construction
func WithPivotPerCall() Option {
	return func(p *Parser) {
		p.pivotPerCall = true
	}
}

// WithLogger sets the logger that receives rejected texts at trace level.
// Without it the parser uses the package default logger named "timex".
func WithLogger(logger *log.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithLayouts replaces the layout table
func WithLayouts(layouts []Layout) Option {
	return func(p *Parser) {
		p.layouts = append([]Layout(nil), layouts...)
	}
}

// NewParser creates a parser with the default layout table
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		layouts: DefaultLayouts(),
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.pivot = pivotYear(p.clock())
	return p
}

// pivotYear returns the first year of the window 80 years back, 20 forward
func pivotYear(now time.Time) int {
	return now.Year() - 80
}

// Match is the result of a successful parse
type Match struct {
	Time         time.Time
	Layout       string
	ZoneFromText bool // false when the fallback location was applied
}

// Layouts returns the layout names in priority order
func (p *Parser) Layouts() []string {
	names := make([]string, len(p.layouts))
	for i, l := range p.layouts {
		names[i] = l.Name
	}
	return names
}

// PivotYear returns the first year of the current two-digit year window
func (p *Parser) PivotYear() int {
	if p.pivotPerCall {
		return pivotYear(p.clock())
	}
	return p.pivot
}

// Match parses text and reports which layout matched. Blank text yields an
// empty Match and no error. A nil fallback means time.Local.
func (p *Parser) Match(text string, fallback *time.Location) (Match, error) {
	m, perr := p.match(text, fallback)
	if perr != nil {
		return Match{}, mdwerrors.TimexParseError("Match", text, perr)
	}
	return m, nil
}

// Parse returns the time in text, or the zero time when text is blank or
// cannot be parsed. Failures are logged at trace level.
func (p *Parser) Parse(text string, fallback *time.Location) time.Time {
	m, perr := p.match(text, fallback)
	if perr != nil {
		p.traceRejected(text, perr)
		return time.Time{}
	}
	return m.Time
}

// ParseChecked returns the time in text. Blank text yields the zero time and
// no error; anything else that does not parse yields an error matching
// ErrDateParse.
func (p *Parser) ParseChecked(text string, fallback *time.Location) (time.Time, error) {
	m, perr := p.match(text, fallback)
	if perr != nil {
		return time.Time{}, mdwerrors.TimexParseError("ParseChecked", text, perr)
	}
	return m.Time, nil
}

func (p *Parser) match(text string, fallback *time.Location) (Match, *ParseError) {
	s := stringx.TrimWhitespace(text)
	if s == "" {
		return Match{}, nil
	}
	if fallback == nil {
		fallback = time.Local
	}

	pivot := p.PivotYear()
	for _, layout := range p.layouts {
		f, ok := matchLayout(layout.Tokens, s, pivot)
		if !ok {
			continue
		}

		fromText := true
		t, res, reason := f.resolve(nil)
		if res == missingZone {
			fromText = false
			t, res, reason = f.resolve(fallback)
		}
		if res != resolved {
			return Match{}, &ParseError{Text: s, Layout: layout.Name, Reason: reason}
		}
		return Match{Time: t, Layout: layout.Name, ZoneFromText: fromText}, nil
	}
	return Match{}, &ParseError{Text: s, Reason: ReasonNoMatch}
}

func (p *Parser) traceRejected(text string, perr *ParseError) {
	l := p.logger
	if l == nil {
		if l = log.Named("timex", log.LevelTrace); l == nil {
			return
		}
	}
	l.TraceWithErr("unparseable date", perr,
		log.String("text", stringx.Truncate(text, 64, "...")),
		log.String("layout", perr.Layout))
}

var defaultParser = NewParser()

// DefaultParser returns the parser behind the package-level functions
func DefaultParser() *Parser {
	return defaultParser
}

// Parse parses text with the default parser, returning the zero time when
// text is blank or unparseable
func Parse(text string, fallback *time.Location) time.Time {
	return defaultParser.Parse(text, fallback)
}

// ParseChecked parses text with the default parser
func ParseChecked(text string, fallback *time.Location) (time.Time, error) {
	return defaultParser.ParseChecked(text, fallback)
}
