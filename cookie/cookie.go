// Package cookie builds and reads document.cookie-style header text: reading
// yields the whole semicolon-separated jar, writing submits one cookie
// assignment at a time. A Jar holds write-time attribute defaults
// (path/domain/secure/samesite/prefix) the way a cookie manager with fluent
// defaults would, and values are percent-encoded on the wire.
package cookie

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lmd-code/webstore/expiry"
)

// Source is the host cookie store: Read returns the full jar as
// "name=value; name2=value2" text, Write submits a single cookie assignment
// string with its attributes.
type Source interface {
	Read() (string, error)
	Write(assignment string) error
}

// SameSite is a cookie SameSite policy.
type SameSite string

const (
	SameSiteLax    SameSite = "Lax"
	SameSiteStrict SameSite = "Strict"
	SameSiteNone   SameSite = "None"
)

// ParseSameSite converts a case-insensitive policy name to a SameSite value.
// The empty string parses to the empty policy, meaning no attribute.
func ParseSameSite(s string) (SameSite, bool) {
	switch strings.ToLower(s) {
	case "":
		return "", true
	case "lax":
		return SameSiteLax, true
	case "strict":
		return SameSiteStrict, true
	case "none":
		return SameSiteNone, true
	}
	return "", false
}

// Item is one cookie as read from the Source.
type Item struct {
	Name  string
	Value string
}

// Jar writes cookies to and reads cookies from a Source, applying a fixed
// set of attributes configured at construction time.
type Jar struct {
	src      Source
	path     string
	domain   string
	prefix   string
	secure   bool
	sameSite SameSite
	logger   *slog.Logger

	now func() time.Time
}

// Option configures a Jar.
type Option func(*Jar)

// WithPath sets the path attribute written with every cookie.
func WithPath(path string) Option {
	return func(j *Jar) { j.path = path }
}

// WithDomain sets the domain attribute written with every cookie.
func WithDomain(domain string) Option {
	return func(j *Jar) { j.domain = domain }
}

// WithSecure sets the secure flag written with every cookie.
func WithSecure(secure bool) Option {
	return func(j *Jar) { j.secure = secure }
}

// WithSameSite sets the SameSite attribute written with every cookie.
// SameSite=None requires the secure flag; Set upgrades and warns when the
// jar is configured otherwise.
func WithSameSite(policy SameSite) Option {
	return func(j *Jar) { j.sameSite = policy }
}

// WithPrefix sets a name prefix (e.g. "__Secure-") prepended on write and
// stripped on read.
func WithPrefix(prefix string) Option {
	return func(j *Jar) { j.prefix = prefix }
}

// WithLogger sets the logger used for degradation warnings. Defaults to
// slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(j *Jar) {
		if l != nil {
			j.logger = l
		}
	}
}

// New creates a Jar over src.
func New(src Source, opts ...Option) *Jar {
	j := &Jar{
		src:    src,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	j.logger = j.logger.With("component", "cookie")
	return j
}

// Set writes one cookie. The value is percent-encoded; attributes are
// emitted only when configured; exp selects between session scope, an
// explicit time, and a duration token string. Write failures are logged,
// never returned.
func (j *Jar) Set(name, value string, exp expiry.Expiration) {
	j.write(j.render(name, value, exp))
}

// Render returns the assignment text Set would write, without writing it.
func (j *Jar) Render(name, value string, exp expiry.Expiration) string {
	return j.render(name, value, exp)
}

func (j *Jar) render(name, value string, exp expiry.Expiration) string {
	var b strings.Builder
	b.WriteString(j.prefix + name)
	b.WriteString("=")
	b.WriteString(url.QueryEscape(value))

	if t, ok := exp.Time(j.now()); ok {
		b.WriteString("; expires=")
		b.WriteString(t.Format(http.TimeFormat))
	}
	if j.path != "" {
		b.WriteString("; path=" + j.path)
	}
	if j.domain != "" {
		b.WriteString("; domain=" + j.domain)
	}

	secure := j.secure
	if j.sameSite == SameSiteNone && !secure {
		j.logger.Warn("SameSite=None requires the secure flag, upgrading", "cookie", name)
		secure = true
	}
	if secure {
		b.WriteString("; secure")
	}
	if j.sameSite != "" {
		b.WriteString("; SameSite=" + string(j.sameSite))
	}
	return b.String()
}

// Get reads one cookie by name, stripping the jar prefix and decoding the
// value. A Source failure or an undecodable value degrades to absent.
func (j *Jar) Get(name string) (string, bool) {
	for _, item := range j.All() {
		if item.Name == name {
			return item.Value, true
		}
	}
	return "", false
}

// All returns every cookie visible in the Source, in jar order. Cookies not
// carrying the jar prefix are skipped when a prefix is configured. A Jar
// constructed without a Source (render-only use) has no cookies.
func (j *Jar) All() []Item {
	if j.src == nil {
		return nil
	}

	text, err := j.src.Read()
	if err != nil {
		j.logger.Warn("cookie read failed", "err", err)
		return nil
	}

	var items []Item
	for _, part := range strings.Split(text, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, raw, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		if j.prefix != "" {
			trimmed, hadPrefix := strings.CutPrefix(name, j.prefix)
			if !hadPrefix {
				continue
			}
			name = trimmed
		}
		value, err := url.QueryUnescape(raw)
		if err != nil {
			j.logger.Warn("cookie value not decodable, skipping", "cookie", name, "err", err)
			continue
		}
		items = append(items, Item{Name: name, Value: value})
	}
	return items
}

// Delete expires one cookie by writing it with an empty value and an
// expiration in the past.
func (j *Jar) Delete(name string) {
	j.write(j.render(name, "", expiry.At(time.Unix(0, 0))))
}

func (j *Jar) write(assignment string) {
	if j.src == nil {
		j.logger.Warn("no cookie source configured, dropping write")
		return
	}
	if err := j.src.Write(assignment); err != nil {
		j.logger.Warn("cookie write failed", "err", err)
	}
}
