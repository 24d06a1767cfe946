package scan

import (
	"regexp"
	"sort"

	"honest/internal/core/lexicon"

	"golang.org/x/text/cases"
)

var fold = cases.Fold()

// Registry is a case-insensitive set of user-curated overused words.
// Each Scanner owns its own Registry so documents do not share word lists.
// Compiled word regexes are cached on add
type Registry struct {
	words map[string]*regexp.Regexp
}

// NewRegistry returns a registry seeded with the given words
func NewRegistry(seed []string) *Registry {
	r := &Registry{words: make(map[string]*regexp.Regexp, len(seed))}
	for _, w := range seed {
		r.Add(w)
	}
	return r
}

// DefaultRegistry returns a registry seeded from the lexicon's default list
func DefaultRegistry(lex *lexicon.Pack) *Registry {
	return NewRegistry(lex.DefaultCinnamon)
}

// Add folds and inserts the word, idempotent
func (r *Registry) Add(word string) {
	w := fold.String(word)
	if w == "" {
		return
	}
	if _, ok := r.words[w]; ok {
		return
	}
	re, err := lexicon.WordRe(w)
	if err != nil {
		return
	}
	r.words[w] = re
}

// Remove folds and deletes the word, no-op when absent
func (r *Registry) Remove(word string) {
	delete(r.words, fold.String(word))
}

// Has reports whether the folded word is present
func (r *Registry) Has(word string) bool {
	_, ok := r.words[fold.String(word)]
	return ok
}

// Words returns the current contents sorted for deterministic enumeration
func (r *Registry) Words() []string {
	out := make([]string, 0, len(r.words))
	for w := range r.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of words in the registry
func (r *Registry) Len() int { return len(r.words) }
