package cookie

import (
	"net/http"
	"strings"
	"sync"
	"time"
)

// MemorySource is an in-memory Source with browser-like semantics: each
// Write upserts a single cookie, a write carrying an expires attribute in
// the past removes it, and Read returns names and values only, in insertion
// order. It is the test stand-in for a host cookie store.
type MemorySource struct {
	mu      sync.Mutex
	order   []string
	cookies map[string]string

	now func() time.Time
}

// NewMemorySource returns an empty MemorySource.
func NewMemorySource() *MemorySource {
	return &MemorySource{
		cookies: make(map[string]string),
		now:     time.Now,
	}
}

// Read returns the jar as "name=value; name2=value2" text.
func (m *MemorySource) Read() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	parts := make([]string, 0, len(m.order))
	for _, name := range m.order {
		parts = append(parts, name+"="+m.cookies[name])
	}
	return strings.Join(parts, "; "), nil
}

// Write applies one cookie assignment.
func (m *MemorySource) Write(assignment string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	parts := strings.Split(assignment, ";")
	name, value, ok := strings.Cut(strings.TrimSpace(parts[0]), "=")
	if !ok || name == "" {
		return nil
	}

	if expiresAt, ok := parseExpires(parts[1:]); ok && expiresAt.Before(m.now()) {
		m.remove(name)
		return nil
	}

	if _, exists := m.cookies[name]; !exists {
		m.order = append(m.order, name)
	}
	m.cookies[name] = value
	return nil
}

func (m *MemorySource) remove(name string) {
	if _, exists := m.cookies[name]; !exists {
		return
	}
	delete(m.cookies, name)
	for i, n := range m.order {
		if n == name {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

func parseExpires(attrs []string) (time.Time, bool) {
	for _, attr := range attrs {
		k, v, ok := strings.Cut(strings.TrimSpace(attr), "=")
		if !ok || !strings.EqualFold(k, "expires") {
			continue
		}
		if t, err := http.ParseTime(v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
