package scan

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"honest/internal/core/lexicon"
)

// longSentenceWords is the token count above which a sentence is flagged
const longSentenceWords = 20

var sentenceBreakRe = regexp.MustCompile(`[.!?]+`)

// Scanner runs the issue passes over document text.
// Each Scanner owns its configuration and cinnamon-word registry,
// so independent documents never cross-contaminate
type Scanner struct {
	lex *lexicon.Pack
	cfg *Config
	reg *Registry
}

// New creates a Scanner with all passes enabled and the default cinnamon list
func New(lex *lexicon.Pack) *Scanner {
	return &Scanner{
		lex: lex,
		cfg: NewConfig(),
		reg: DefaultRegistry(lex),
	}
}

// Config returns the scanner's pass configuration
func (s *Scanner) Config() *Config { return s.cfg }

// Registry returns the scanner's cinnamon-word registry
func (s *Scanner) Registry() *Registry { return s.reg }

// CheckText runs every enabled pass over text and returns the merged issues,
// stable-sorted ascending by Start so equal-start issues keep pass order.
// Offsets are code-point offsets into text
func (s *Scanner) CheckText(text string) []Issue {
	issues := []Issue{}
	if text == "" {
		return issues
	}

	om := newOffsetMap(text)

	for _, k := range Kinds() {
		if !s.cfg.Enabled(k) {
			continue
		}
		issues = append(issues, s.runPass(k, text, om)...)
	}

	sort.SliceStable(issues, func(i, j int) bool { return issues[i].Start < issues[j].Start })
	return issues
}

func (s *Scanner) runPass(k Kind, text string, om offsetMap) []Issue {
	switch k {
	case KindPassiveVoice:
		return s.passPassive(text, om)
	case KindWeakWords:
		return s.passWeakWords(text, om)
	case KindLongSentences:
		return s.passLongSentences(text, om)
	case KindJargon:
		return s.passJargon(text, om)
	case KindAdjectivesAdverbs:
		return s.passAdverbs(text, om)
	case KindSimpleAlternatives:
		return s.passSimpleAlternatives(text, om)
	case KindConfusedSynonyms:
		return s.passConfusedSynonyms(text, om)
	case KindRepeatedWords:
		return s.passRepeatedWords(text, om)
	case KindCinnamonWords:
		return s.passCinnamonWords(text, om)
	}
	return nil
}

func issueAt(k Kind, text string, om offsetMap, start, end int, suggestion string) Issue {
	return Issue{
		Kind:       k,
		Start:      om.Rune(start),
		End:        om.Rune(end),
		Text:       text[start:end],
		Suggestion: suggestion,
	}
}

func (s *Scanner) passPassive(text string, om offsetMap) []Issue {
	var out []Issue
	for _, re := range s.lex.Passive {
		for _, m := range re.FindAllStringIndex(text, -1) {
			out = append(out, issueAt(KindPassiveVoice, text, om, m[0], m[1],
				"Consider using active voice instead"))
		}
	}
	return out
}

func (s *Scanner) passWeakWords(text string, om offsetMap) []Issue {
	var out []Issue
	for _, wr := range s.lex.WeakWords {
		for _, m := range wr.Re.FindAllStringIndex(text, -1) {
			out = append(out, issueAt(KindWeakWords, text, om, m[0], m[1],
				fmt.Sprintf("Remove %q or replace with stronger wording", wr.Word)))
		}
	}
	return out
}

// passLongSentences splits on [.!?]+ and flags segments over the word limit.
// Spans are the segment's true extent in the original text
func (s *Scanner) passLongSentences(text string, om offsetMap) []Issue {
	var out []Issue
	start := 0
	breaks := sentenceBreakRe.FindAllStringIndex(text, -1)
	segs := make([][2]int, 0, len(breaks)+1)
	for _, b := range breaks {
		segs = append(segs, [2]int{start, b[0]})
		start = b[1]
	}
	segs = append(segs, [2]int{start, len(text)})

	for _, seg := range segs {
		sentence := text[seg[0]:seg[1]]
		n := len(strings.Fields(sentence))
		if n > longSentenceWords {
			out = append(out, Issue{
				Kind:       KindLongSentences,
				Start:      om.Rune(seg[0]),
				End:        om.Rune(seg[1]),
				Text:       strings.TrimSpace(sentence),
				Suggestion: fmt.Sprintf("Sentence is %d words. Consider breaking it up.", n),
			})
		}
	}
	return out
}

func (s *Scanner) passJargon(text string, om offsetMap) []Issue {
	var out []Issue
	for _, wr := range s.lex.Jargon {
		for _, m := range wr.Re.FindAllStringIndex(text, -1) {
			out = append(out, issueAt(KindJargon, text, om, m[0], m[1],
				fmt.Sprintf("Use %q instead", wr.Replacement)))
		}
	}
	return out
}

func (s *Scanner) passAdverbs(text string, om offsetMap) []Issue {
	var out []Issue
	for _, m := range s.lex.AdverbRe.FindAllStringIndex(text, -1) {
		word := strings.ToLower(text[m[0]:m[1]])
		if _, ok := s.lex.AdverbAllow[word]; ok {
			continue
		}
		out = append(out, issueAt(KindAdjectivesAdverbs, text, om, m[0], m[1],
			"Consider removing or replacing this adverb"))
	}
	return out
}

func (s *Scanner) passSimpleAlternatives(text string, om offsetMap) []Issue {
	var out []Issue
	for _, wr := range s.lex.WordyPhrases {
		for _, m := range wr.Re.FindAllStringIndex(text, -1) {
			out = append(out, issueAt(KindSimpleAlternatives, text, om, m[0], m[1],
				fmt.Sprintf("Replace with %q", wr.Replacement)))
		}
	}
	return out
}

func (s *Scanner) passConfusedSynonyms(text string, om offsetMap) []Issue {
	var out []Issue
	for _, cr := range s.lex.Confusables {
		if cr.SkipSuffix == "" {
			for _, m := range cr.Re.FindAllStringIndex(text, -1) {
				out = append(out, issueAt(KindConfusedSynonyms, text, om, m[0], m[1], cr.Suggestion))
			}
			continue
		}
		// rules with a skip suffix carry a capture group to test it against
		for _, m := range cr.Re.FindAllStringSubmatchIndex(text, -1) {
			if len(m) >= 4 && m[2] >= 0 {
				if strings.HasSuffix(strings.ToLower(text[m[2]:m[3]]), cr.SkipSuffix) {
					continue
				}
			}
			out = append(out, issueAt(KindConfusedSynonyms, text, om, m[0], m[1], cr.Suggestion))
		}
	}
	return out
}

// passRepeatedWords flags adjacent case-insensitively identical tokens.
// The span covers both tokens and the separating whitespace, carrying
// the true in-context offsets rather than re-locating by substring search
func (s *Scanner) passRepeatedWords(text string, om offsetMap) []Issue {
	var out []Issue
	toks := fieldsIdx(text)
	for i := 0; i+1 < len(toks); i++ {
		if !strings.EqualFold(toks[i].word, toks[i+1].word) {
			continue
		}
		out = append(out, issueAt(KindRepeatedWords, text, om, toks[i].start, toks[i+1].end,
			"Remove the repeated word"))
	}
	return out
}

func (s *Scanner) passCinnamonWords(text string, om offsetMap) []Issue {
	var out []Issue
	for _, word := range s.reg.Words() {
		re := s.reg.words[word]
		count := 0
		for _, m := range re.FindAllStringIndex(text, -1) {
			count++
			out = append(out, issueAt(KindCinnamonWords, text, om, m[0], m[1],
				fmt.Sprintf("Overused word (used %d times)", count)))
		}
	}
	return out
}

// token is a whitespace-delimited word with its byte extent
type token struct {
	word       string
	start, end int
}

// fieldsIdx is strings.Fields with byte offsets preserved
func fieldsIdx(text string) []token {
	var out []token
	start := -1
	for i, r := range text {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f' {
			if start >= 0 {
				out = append(out, token{word: text[start:i], start: start, end: i})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, token{word: text[start:], start: start, end: len(text)})
	}
	return out
}
