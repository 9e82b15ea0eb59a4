// Package expiry parses compact duration token strings such as "1y 6m 12h"
// and turns them into absolute expiration times.
package expiry

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Unit is a calendar or clock unit recognized in a duration token.
type Unit int

const (
	Year Unit = iota
	Month
	Week
	Day
	Hour
	Minute
	Second
)

// String returns the canonical token code for the unit.
func (u Unit) String() string {
	switch u {
	case Year:
		return "y"
	case Month:
		return "m"
	case Week:
		return "w"
	case Day:
		return "d"
	case Hour:
		return "h"
	case Minute:
		return "mi"
	case Second:
		return "s"
	default:
		return "?"
	}
}

// Token is one parsed <digits><unit-code> pair.
type Token struct {
	Magnitude int
	Unit      Unit
}

var tokenRE = regexp.MustCompile(`^([0-9]+)([A-Za-z]{1,2})$`)

// Parse splits s into whitespace-separated duration tokens and returns the
// recognized ones in input order. Matching is case-insensitive. Tokens with an
// unrecognized unit code are dropped silently, as are fields that are not
// digits-then-letters at all.
//
// The two-letter code "mi" (minute) is checked before the one-letter "m"
// (month), so "30mi" is thirty minutes, never thirty months.
func Parse(s string) []Token {
	var tokens []Token
	for _, field := range strings.Fields(s) {
		m := tokenRE.FindStringSubmatch(field)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		unit, ok := parseUnit(strings.ToLower(m[2]))
		if !ok {
			continue
		}
		tokens = append(tokens, Token{Magnitude: n, Unit: unit})
	}
	return tokens
}

func parseUnit(code string) (Unit, bool) {
	// Longest code first: "mi" must win over "m".
	if code == "mi" {
		return Minute, true
	}
	switch code {
	case "y":
		return Year, true
	case "m":
		return Month, true
	case "w":
		return Week, true
	case "d":
		return Day, true
	case "h":
		return Hour, true
	case "s":
		return Second, true
	}
	return 0, false
}

// Add applies tokens to base in sequence and returns the resulting time in
// UTC. Years and months shift calendar fields, with the usual normalization
// at month ends; weeks, days, hours, minutes and seconds are fixed-duration
// shifts. With no tokens at all the result is base plus one year.
func Add(base time.Time, tokens []Token) time.Time {
	t := base.UTC()
	if len(tokens) == 0 {
		return t.AddDate(1, 0, 0)
	}
	for _, tok := range tokens {
		switch tok.Unit {
		case Year:
			t = t.AddDate(tok.Magnitude, 0, 0)
		case Month:
			t = t.AddDate(0, tok.Magnitude, 0)
		case Week:
			t = t.Add(time.Duration(tok.Magnitude) * 7 * 24 * time.Hour)
		case Day:
			t = t.Add(time.Duration(tok.Magnitude) * 24 * time.Hour)
		case Hour:
			t = t.Add(time.Duration(tok.Magnitude) * time.Hour)
		case Minute:
			t = t.Add(time.Duration(tok.Magnitude) * time.Minute)
		case Second:
			t = t.Add(time.Duration(tok.Magnitude) * time.Second)
		}
	}
	return t
}
