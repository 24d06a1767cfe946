// Package lexicon loads and compiles the embedded style lexicon.
// It prepares word-boundary regexes and phrase maps for the scanner passes
package lexicon

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

//go:embed lexicon.json
var embedded []byte

type rawJargon struct {
	Word  string `json:"word"`
	Plain string `json:"plain"`
}

type rawPhrase struct {
	Phrase string `json:"phrase"`
	Short  string `json:"short"`
}

type rawConfusableRule struct {
	Pattern    string `json:"pattern"`
	Suggestion string `json:"suggestion"`
	SkipSuffix string `json:"skip_suffix,omitempty"`
}

type rawConfusable struct {
	Pair  string              `json:"pair"`
	Rules []rawConfusableRule `json:"rules"`
}

type rawPack struct {
	Version         int             `json:"version"`
	Meta            map[string]any  `json:"meta"`
	PassivePatterns []string        `json:"passive_patterns"`
	WeakWords       []string        `json:"weak_words"`
	Jargon          []rawJargon     `json:"jargon"`
	WordyPhrases    []rawPhrase     `json:"wordy_phrases"`
	AdverbAllowlist []string        `json:"adverb_allowlist"`
	Confusables     []rawConfusable `json:"confusables"`
	DefaultCinnamon []string        `json:"default_cinnamon"`
}

// WordRule is a single word or phrase compiled to a boundary-anchored regex
type WordRule struct {
	Word        string
	Replacement string // plain alternative, empty for weak words
	Re          *regexp.Regexp
}

// ConfusableRule is one heuristic regex for a commonly confused pair
type ConfusableRule struct {
	Pair       string
	Suggestion string
	SkipSuffix string // when set, matches whose first capture group ends with this suffix are dropped
	Re         *regexp.Regexp
}

// Pack is the compiled lexicon consumed by the scanner
type Pack struct {
	Version int
	Meta    map[string]any

	Passive      []*regexp.Regexp
	WeakWords    []WordRule
	Jargon       []WordRule
	WordyPhrases []WordRule

	AdverbRe    *regexp.Regexp
	AdverbAllow map[string]struct{}

	Confusables []ConfusableRule

	DefaultCinnamon []string
}

// WordRe compiles a case-insensitive whole-word regex for w
func WordRe(w string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?i)\b` + regexp.QuoteMeta(w) + `\b`)
}

// Load returns the compiled pack from the embedded lexicon.json
func Load() (*Pack, error) {
	var rp rawPack
	if err := json.Unmarshal(embedded, &rp); err != nil {
		return nil, fmt.Errorf("lexicon: parse lexicon.json: %w", err)
	}
	if rp.Version != 1 {
		return nil, fmt.Errorf("lexicon: unsupported lexicon.json version %d (want 1)", rp.Version)
	}

	p := &Pack{
		Version:     rp.Version,
		Meta:        rp.Meta,
		AdverbAllow: make(map[string]struct{}, len(rp.AdverbAllowlist)),
	}

	for _, pat := range rp.PassivePatterns {
		re, err := regexp.Compile(`(?i)` + pat)
		if err != nil {
			return nil, fmt.Errorf("lexicon: compile passive %q: %w", pat, err)
		}
		p.Passive = append(p.Passive, re)
	}

	for _, w := range rp.WeakWords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		re, err := WordRe(w)
		if err != nil {
			return nil, fmt.Errorf("lexicon: compile weak word %q: %w", w, err)
		}
		p.WeakWords = append(p.WeakWords, WordRule{Word: w, Re: re})
	}

	for _, j := range rp.Jargon {
		w := strings.ToLower(strings.TrimSpace(j.Word))
		if w == "" {
			continue
		}
		re, err := WordRe(w)
		if err != nil {
			return nil, fmt.Errorf("lexicon: compile jargon %q: %w", w, err)
		}
		p.Jargon = append(p.Jargon, WordRule{Word: w, Replacement: j.Plain, Re: re})
	}

	for _, ph := range rp.WordyPhrases {
		w := strings.ToLower(strings.TrimSpace(ph.Phrase))
		if w == "" {
			continue
		}
		re, err := WordRe(w)
		if err != nil {
			return nil, fmt.Errorf("lexicon: compile phrase %q: %w", w, err)
		}
		p.WordyPhrases = append(p.WordyPhrases, WordRule{Word: w, Replacement: ph.Short, Re: re})
	}

	p.AdverbRe = regexp.MustCompile(`(?i)\b\w+ly\b`)
	for _, w := range rp.AdverbAllowlist {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			p.AdverbAllow[w] = struct{}{}
		}
	}

	for _, c := range rp.Confusables {
		for _, r := range c.Rules {
			re, err := regexp.Compile(`(?i)` + r.Pattern)
			if err != nil {
				return nil, fmt.Errorf("lexicon: compile confusable %q: %w", r.Pattern, err)
			}
			p.Confusables = append(p.Confusables, ConfusableRule{
				Pair:       c.Pair,
				Suggestion: r.Suggestion,
				SkipSuffix: r.SkipSuffix,
				Re:         re,
			})
		}
	}

	for _, w := range rp.DefaultCinnamon {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			p.DefaultCinnamon = append(p.DefaultCinnamon, w)
		}
	}

	return p, nil
}

// MustLoad is Load that panics on error, for use in main wiring and tests
func MustLoad() *Pack {
	p, err := Load()
	if err != nil {
		panic(err)
	}
	return p
}
