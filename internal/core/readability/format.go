package readability

import (
	"fmt"
	"strings"
)

const rule = "----------------------"

// Format renders the verbose multi-line summary
func Format(m Metrics) string {
	if m.Words == 0 {
		return "No text to analyze"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "READABILITY ANALYSIS\n%s\n", rule)
	fmt.Fprintf(&b, "Difficulty: %s (Grade %v)\n", m.Difficulty, m.AvgGrade)
	fmt.Fprintf(&b, "Flesch Reading Ease: %v/100 (%s)\n%s\n",
		m.FleschReadingEase, FleschDescription(m.FleschReadingEase), rule)
	fmt.Fprintf(&b, "Words: %d | Sentences: %d\n", m.Words, m.Sentences)
	fmt.Fprintf(&b, "Avg. Sentence: %v words\n", m.AvgSentenceLength)
	fmt.Fprintf(&b, "Avg. Word Length: %v characters\n%s\n", m.AvgWordLength, rule)
	fmt.Fprintf(&b, "Flesch-Kincaid: %v\n", m.FleschKincaidGrade)
	fmt.Fprintf(&b, "Gunning Fog: %v", m.GunningFog)
	return b.String()
}

// FormatCompact renders the single-line summary used for selections
func FormatCompact(m Metrics) string {
	if m.Words == 0 {
		return "No text"
	}
	return fmt.Sprintf("%s (Grade %v) | %d words | Flesch: %v",
		m.Difficulty, m.AvgGrade, m.Words, m.FleschReadingEase)
}
