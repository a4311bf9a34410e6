// internal/filter/filter.go
package filter

import "strings"

// DefaultBannedWords are the substrings that mark a message as selling.
var DefaultBannedWords = []string{"sell", "selling", "for sale", "$", "venmo", "cashapp", "paypal"}

// Filter matches message text against a fixed list of banned substrings.
// It is read-only after New and safe for concurrent use.
type Filter struct {
	words []string
}

// New builds a Filter from words. Words are lower-cased; empty and
// duplicate entries are dropped while the original order is kept.
func New(words []string) *Filter {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return &Filter{words: out}
}

// Contains reports whether any banned word occurs anywhere in text,
// ignoring case. Empty text never matches.
func (f *Filter) Contains(text string) bool {
	_, ok := f.Match(text)
	return ok
}

// Match is Contains that also returns the first banned word (in list
// order) found in text.
func (f *Filter) Match(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	lower := strings.ToLower(text)
	for _, w := range f.words {
		if strings.Contains(lower, w) {
			return w, true
		}
	}
	return "", false
}

// Words returns a copy of the banned word list.
func (f *Filter) Words() []string {
	out := make([]string, len(f.words))
	copy(out, f.words)
	return out
}
