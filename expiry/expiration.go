package expiry

import "time"

type mode int

const (
	modeSession mode = iota
	modeAt
	modeIn
)

// Expiration selects one of three mutually exclusive expiration modes for a
// cookie: session-scoped (no expires attribute at all), an explicit absolute
// time, or a duration token string applied relative to the time of writing.
// The zero value is session-scoped.
type Expiration struct {
	mode   mode
	at     time.Time
	tokens []Token
}

// Session returns a session-scoped Expiration.
func Session() Expiration {
	return Expiration{mode: modeSession}
}

// At returns an Expiration with an explicit absolute time, used verbatim.
func At(t time.Time) Expiration {
	return Expiration{mode: modeAt, at: t}
}

// In returns an Expiration computed from a duration token string, e.g.
// "1y 6m". An unparseable string falls back to one year, per Add.
func In(tokens string) Expiration {
	return Expiration{mode: modeIn, tokens: Parse(tokens)}
}

// Time resolves the expiration against now. The boolean is false for
// session-scoped expirations, meaning no expires attribute should be written.
func (e Expiration) Time(now time.Time) (time.Time, bool) {
	switch e.mode {
	case modeAt:
		return e.at.UTC(), true
	case modeIn:
		return Add(now, e.tokens), true
	default:
		return time.Time{}, false
	}
}
