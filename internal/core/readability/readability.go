// Package readability computes text readability metrics.
// Every function is total: empty or degenerate text yields the
// zero-valued Metrics, never an error
package readability

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Metrics is one analysis result.
// For empty or degenerate text (zero sentences or zero words) all numeric
// fields are zero and Difficulty is "N/A"
type Metrics struct {
	Sentences          int     `json:"sentences"`
	Words              int     `json:"words"`
	Syllables          int     `json:"syllables"`
	Characters         int     `json:"characters"`
	FleschKincaidGrade float64 `json:"flesch_kincaid_grade"`
	FleschReadingEase  float64 `json:"flesch_reading_ease"`
	GunningFog         float64 `json:"gunning_fog"`
	AvgGrade           float64 `json:"avg_grade"`
	Difficulty         string  `json:"difficulty"`
	AvgWordLength      float64 `json:"avg_word_length"`
	AvgSentenceLength  float64 `json:"avg_sentence_length"`
}

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// Empty is the canonical zero-result sentinel
func Empty() Metrics {
	return Metrics{Difficulty: "N/A"}
}

// Analyze computes readability metrics for text
func Analyze(text string) Metrics {
	if strings.TrimSpace(text) == "" {
		return Empty()
	}

	sentences := CountSentences(text)
	words := CountWords(text)
	syllables := CountSyllables(text)
	characters := utf8.RuneCountInString(text)

	if sentences == 0 || words == 0 {
		return Empty()
	}

	fk := fleschKincaidGrade(sentences, words, syllables)
	ease := fleschReadingEase(sentences, words, syllables)
	fog := gunningFog(sentences, words, text)

	// Flesch Reading Ease is excluded from the average, it is inverse-scaled
	avgGrade := (fk + fog) / 2

	return Metrics{
		Sentences:          sentences,
		Words:              words,
		Syllables:          syllables,
		Characters:         characters,
		FleschKincaidGrade: round1(fk),
		FleschReadingEase:  round1(ease),
		GunningFog:         round1(fog),
		AvgGrade:           round1(avgGrade),
		Difficulty:         Difficulty(avgGrade),
		AvgWordLength:      round2(float64(words) / float64(characters) * 100),
		AvgSentenceLength:  round1(float64(words) / float64(sentences)),
	}
}

// CountSentences counts non-blank segments after splitting on [.!?]+
func CountSentences(text string) int {
	n := 0
	for _, s := range sentenceSplitRe.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			n++
		}
	}
	return n
}

// CountWords counts whitespace-delimited tokens
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// CountSyllables estimates syllables by counting non-vowel to vowel
// transitions over the lowercased text, treating aeiouy as vowels.
// A trailing e subtracts one, and the result floors at 1.
// The same heuristic serves whole text and single words
func CountSyllables(text string) int {
	text = strings.ToLower(text)
	count := 0
	prevVowel := false
	for _, r := range text {
		isVowel := strings.ContainsRune("aeiouy", r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}
	if strings.HasSuffix(text, "e") {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

// fleschKincaidGrade is 0.39*(words/sentences) + 11.8*(syllables/words) - 15.59, floored at 0
func fleschKincaidGrade(sentences, words, syllables int) float64 {
	grade := 0.39*(float64(words)/float64(sentences)) +
		11.8*(float64(syllables)/float64(words)) - 15.59
	return math.Max(0, grade)
}

// fleschReadingEase is 206.835 - 1.015*(words/sentences) - 84.6*(syllables/words), clamped to [0,100]
func fleschReadingEase(sentences, words, syllables int) float64 {
	score := 206.835 - 1.015*(float64(words)/float64(sentences)) -
		84.6*(float64(syllables)/float64(words))
	return math.Max(0, math.Min(100, score))
}

// gunningFog is 0.4*((words/sentences) + 100*(complex/words)) where a
// complex word estimates at 3+ syllables, floored at 0
func gunningFog(sentences, words int, text string) float64 {
	complexWords := 0
	for _, w := range strings.Fields(text) {
		if CountSyllables(w) >= 3 {
			complexWords++
		}
	}
	idx := 0.4 * ((float64(words) / float64(sentences)) +
		100*(float64(complexWords)/float64(words)))
	return math.Max(0, idx)
}

// Difficulty converts an average grade level to a qualitative label
func Difficulty(grade float64) string {
	switch {
	case grade < 6:
		return "Elementary"
	case grade < 9:
		return "Middle School"
	case grade < 13:
		return "High School"
	case grade < 16:
		return "College"
	default:
		return "Graduate"
	}
}

// FleschDescription describes a Flesch Reading Ease score
func FleschDescription(score float64) string {
	switch {
	case score >= 90:
		return "Very Easy"
	case score >= 80:
		return "Easy"
	case score >= 70:
		return "Fairly Easy"
	case score >= 60:
		return "Standard"
	case score >= 50:
		return "Fairly Difficult"
	case score >= 30:
		return "Difficult"
	default:
		return "Very Difficult"
	}
}

// GradeBand buckets an average grade for display coloring
type GradeBand uint8

const (
	// BandEasy is grade < 10
	BandEasy GradeBand = iota
	// BandModerate is grade 10..13
	BandModerate
	// BandHard is grade > 13
	BandHard
)

// Band returns the display band for a grade level
func Band(grade float64) GradeBand {
	switch {
	case grade < 10:
		return BandEasy
	case grade <= 13:
		return BandModerate
	default:
		return BandHard
	}
}

// Color returns the soft highlight color for the band as #RRGGBB hex
func (b GradeBand) Color() string {
	switch b {
	case BandEasy:
		return "#90EE90"
	case BandModerate:
		return "#FFE66D"
	default:
		return "#FFB3B3"
	}
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }
func round2(x float64) float64 { return math.Round(x*100) / 100 }
