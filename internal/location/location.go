package location

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
)

// ErrUnsupported is returned by ports that cannot rewrite the visible URL.
var ErrUnsupported = errors.New("location: url replacement unsupported")

// Port is the page URL as seen by the filter controller.
type Port interface {
	// Read returns a copy of the current query parameters.
	Read() url.Values
	// Replace rewrites the current query in place without adding a history entry.
	Replace(query url.Values) error
}

// Ensure History and Static implement Port at compile time.
var (
	_ Port = (*History)(nil)
	_ Port = (*Static)(nil)
)

// History is an in-memory browser history: a stack of URLs with a cursor.
type History struct {
	mu      sync.Mutex
	entries []*url.URL
	index   int
}

// NewHistory starts a history with a single entry for raw.
func NewHistory(raw string) (*History, error) {
	u, err := parseURL(raw)
	if err != nil {
		return nil, err
	}
	return &History{entries: []*url.URL{u}}, nil
}

// Read returns the current entry's query.
func (h *History) Read() url.Values {
	h.mu.Lock()
	defer h.mu.Unlock()
	q, err := url.ParseQuery(h.current().RawQuery)
	if err != nil {
		return url.Values{}
	}
	return q
}

// Replace swaps the current entry's query. The entry count does not change.
func (h *History) Replace(query url.Values) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	next := *h.current()
	next.RawQuery = query.Encode()
	h.entries[h.index] = &next
	return nil
}

// Navigate pushes raw, resolved against the current entry, discarding any
// forward entries. "?size=M" and "/sale?size=M" are both accepted.
func (h *History) Navigate(raw string) error {
	ref, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("parse url %q: %w", raw, err)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	next := h.current().ResolveReference(ref)
	h.entries = append(h.entries[:h.index+1], next)
	h.index++
	return nil
}

// Back moves to the previous entry. It reports false at the start of history.
func (h *History) Back() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.index == 0 {
		return false
	}
	h.index--
	return true
}

// Forward moves to the next entry. It reports false at the end of history.
func (h *History) Forward() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.index >= len(h.entries)-1 {
		return false
	}
	h.index++
	return true
}

// URL renders the current entry.
func (h *History) URL() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current().String()
}

// Len reports the number of history entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

func (h *History) current() *url.URL {
	return h.entries[h.index]
}

// Static is a read-only port for contexts without a history to rewrite.
type Static struct {
	query url.Values
}

// NewStatic parses raw and exposes its query read-only.
func NewStatic(raw string) (*Static, error) {
	u, err := parseURL(raw)
	if err != nil {
		return nil, err
	}
	return &Static{query: u.Query()}, nil
}

// Read returns a copy of the fixed query.
func (s *Static) Read() url.Values {
	out := make(url.Values, len(s.query))
	for key, values := range s.query {
		out[key] = append([]string(nil), values...)
	}
	return out
}

// Replace always fails with ErrUnsupported.
func (s *Static) Replace(url.Values) error {
	return ErrUnsupported
}

func parseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("url is empty")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse url %q: %w", raw, err)
	}
	return u, nil
}
