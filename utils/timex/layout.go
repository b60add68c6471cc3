// File: layout.go
// Title: Date Layout Table
// Description: Declarative description of every accepted date layout. A
//              Layout is an ordered list of field tokens and literals; the
//              Parser runs them in table order with a single generic matcher.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Initial implementation

package timex

// TokenKind identifies what a Token consumes
type TokenKind int

const (
	KindLiteral   TokenKind = iota // fixed text, case-insensitive
	KindOptional                   // nested tokens that may be absent
	KindYear                       // 4 digits, or a signed 4-9 digit year
	KindYear2                      // 2 digits resolved through the pivot window
	KindMonth                      // 1-2 digits
	KindMonth2                     // exactly 2 digits
	KindMonthText                  // full or abbreviated English month name
	KindDay                        // 1-2 digits
	KindDay2                       // exactly 2 digits
	KindWeekday                    // full or abbreviated English weekday name
	KindTimeSep                    // ' ' or 'T'
	KindHour                       // 1-2 digits
	KindMinute                     // exactly 2 digits
	KindSecond                     // exactly 2 digits
	KindFraction                   // 1-9 digits of a second
	KindMeridiem                   // AM or PM
	KindOffset                     // Z, GMT, UTC, UT, +HH, +HHMM or +HH:MM
	KindZoneID                     // [Region/City]
	KindZoneAbbr                   // zone abbreviation, ignored
)

// Token is one element of a Layout
type Token struct {
	Kind   TokenKind
	Text   string  // KindLiteral only
	Tokens []Token // KindOptional only
}

// Layout is a named, ordered token sequence that must match a whole text
type Layout struct {
	Name   string
	Tokens []Token
}

// Field returns a token of the given kind
func Field(kind TokenKind) Token {
	return Token{Kind: kind}
}

// Lit returns a literal token
func Lit(text string) Token {
	return Token{Kind: KindLiteral, Text: text}
}

// Opt returns a token group that is skipped when it does not match
func Opt(tokens ...Token) Token {
	return Token{Kind: KindOptional, Tokens: tokens}
}

// seq concatenates token groups
func seq(groups ...[]Token) []Token {
	var out []Token
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func toks(tokens ...Token) []Token {
	return tokens
}

var (
	year      = Field(KindYear)
	year2     = Field(KindYear2)
	month     = Field(KindMonth)
	month2    = Field(KindMonth2)
	monthText = Field(KindMonthText)
	day       = Field(KindDay)
	day2      = Field(KindDay2)
	hour      = Field(KindHour)
	minute    = Field(KindMinute)
	second    = Field(KindSecond)
	fraction  = Field(KindFraction)
	offset    = Field(KindOffset)
	space     = Lit(" ")
	comma     = Opt(Lit(","))

	// [ HH:mm[:ss[.f]][ a][ offset][[zone]]]
	timeOfDay = toks(Opt(
		Field(KindTimeSep), hour, Lit(":"), minute,
		Opt(Lit(":"), second, Opt(Lit("."), fraction)),
		Opt(Opt(space), Field(KindMeridiem)),
		Opt(Opt(space), offset),
		Opt(Field(KindZoneID)),
	))
)

// DefaultLayouts returns the built-in layout table in priority order. Earlier
// entries win; several later ones accept prefixes of earlier ones.
func DefaultLayouts() []Layout {
	numericMDY := func(sep string, y Token) []Token {
		return seq(toks(month, Lit(sep), day, Lit(sep), y), timeOfDay)
	}
	dayMonthYear := func(y Token) []Token {
		return seq(toks(day, space, monthText, comma, space, y), timeOfDay)
	}
	dayMonthYearDash := func(y Token) []Token {
		return seq(toks(day, Lit("-"), monthText, Lit("-"), y), timeOfDay)
	}
	monthDayYear := func(y Token) []Token {
		return seq(toks(monthText, space, day, comma, space, y), timeOfDay)
	}
	monthDayYearDash := func(y Token) []Token {
		return seq(toks(monthText, Lit("-"), day, Lit("-"), y), timeOfDay)
	}

	return []Layout{
		// explicit offset with milliseconds
		{"yyyy-MM-dd'T'HH:mm:ss.SSSZ", toks(year, Lit("-"), month2, Lit("-"), day2,
			Lit("T"), hour, Lit(":"), minute, Lit(":"), second, Lit("."), fraction, offset)},

		// dash separated dates, optionally with time, offset and zone id
		{"yyyy-M-d[ HH:mm[:ss[.f]]][offset][[zone]]", seq(toks(year, Lit("-"), month, Lit("-"), day), timeOfDay)},

		// strict ISO and RFC variants
		{"yyyy-MM-dd HH:mm:ss[.f] -0700 MST", toks(year, Lit("-"), month2, Lit("-"), day2,
			space, hour, Lit(":"), minute, Lit(":"), second, Opt(Lit("."), fraction),
			space, offset, space, Field(KindZoneAbbr))},
		{"yyyy-MM-ddXXX", toks(year, Lit("-"), month2, Lit("-"), day2, offset)},
		{"EEE, d MMM yyyy HH:mm[:ss] offset", toks(Opt(Field(KindWeekday), Lit(","), space),
			day, space, monthText, space, year, space, hour, Lit(":"), minute,
			Opt(Lit(":"), second), space, offset)},

		// month first, four-digit year
		{"M/d/yyyy", numericMDY("/", year)},
		{"M-d-yyyy", numericMDY("-", year)},
		{"M.d.yyyy", numericMDY(".", year)},

		// year first and bare month-year
		{"yyyy/M/d", seq(toks(year, Lit("/"), month, Lit("/"), day), timeOfDay)},
		{"yyyyMMMdd", toks(year, monthText, day2)},
		{"MMM[,] yyyy", toks(monthText, comma, space, year)},

		// day, textual month, four-digit year
		{"d MMM[,] yyyy", dayMonthYear(year)},
		{"d-MMM-yyyy", dayMonthYearDash(year)},

		// textual month, day, four-digit year
		{"MMM d[,] yyyy", monthDayYear(year)},
		{"MMM-d-yyyy", monthDayYearDash(year)},

		// the same with a two-digit year
		{"M/d/yy", numericMDY("/", year2)},
		{"M-d-yy", numericMDY("-", year2)},
		{"M.d.yy", numericMDY(".", year2)},
		{"d MMM[,] yy", dayMonthYear(year2)},
		{"d-MMM-yy", dayMonthYearDash(year2)},
		{"MMM d[,] yy", monthDayYear(year2)},
		{"MMM-d-yy", monthDayYearDash(year2)},

		// fallbacks
		{"yyyyMMdd", toks(year, month2, day2)},
		{"yyyy-MM-dd'T'HH:mm[:ss[.f]]Z", toks(year, Lit("-"), month2, Lit("-"), day2,
			Lit("T"), hour, Lit(":"), minute, Opt(Lit(":"), second, Opt(Lit("."), fraction)), offset)},
	}
}
