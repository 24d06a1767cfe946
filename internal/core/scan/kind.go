package scan

// Kind enumerates the closed set of scanner passes
type Kind uint8

const (
	// KindPassiveVoice flags auxiliary+participle constructions
	KindPassiveVoice Kind = iota
	// KindWeakWords flags filler words
	KindWeakWords
	// KindLongSentences flags sentences over the word limit
	KindLongSentences
	// KindJargon flags jargon with plain alternatives
	KindJargon
	// KindAdjectivesAdverbs flags -ly adverbs outside the allowlist
	KindAdjectivesAdverbs
	// KindSimpleAlternatives flags wordy phrases with short replacements
	KindSimpleAlternatives
	// KindConfusedSynonyms flags commonly confused word pairs
	KindConfusedSynonyms
	// KindRepeatedWords flags adjacent duplicate tokens
	KindRepeatedWords
	// KindCinnamonWords flags words in the overused-word registry
	KindCinnamonWords

	kindCount
)

var kindNames = [kindCount]string{
	KindPassiveVoice:       "passive_voice",
	KindWeakWords:          "weak_words",
	KindLongSentences:      "long_sentences",
	KindJargon:             "jargon",
	KindAdjectivesAdverbs:  "adjectives_adverbs",
	KindSimpleAlternatives: "simple_alternatives",
	KindConfusedSynonyms:   "confused_synonyms",
	KindRepeatedWords:      "repeated_words",
	KindCinnamonWords:      "cinnamon_words",
}

var kindLabels = [kindCount]string{
	KindPassiveVoice:       "Passive Voice",
	KindWeakWords:          "Weak Words",
	KindLongSentences:      "Long Sentences",
	KindJargon:             "Jargon",
	KindAdjectivesAdverbs:  "Adjectives/Adverbs",
	KindSimpleAlternatives: "Simple Alternatives",
	KindConfusedSynonyms:   "Confused Synonyms",
	KindRepeatedWords:      "Repeated Words",
	KindCinnamonWords:      "Cinnamon Words",
}

// kindColors are the highlight colors used by renderers, as #RRGGBB hex
var kindColors = [kindCount]string{
	KindPassiveVoice:       "#FFC800",
	KindWeakWords:          "#FF9600",
	KindLongSentences:      "#C896FF",
	KindJargon:             "#96C8FF",
	KindAdjectivesAdverbs:  "#96FF96",
	KindSimpleAlternatives: "#FF9696",
	KindConfusedSynonyms:   "#FFC896",
	KindRepeatedWords:      "#C8C8FF",
	KindCinnamonWords:      "#FFC8C8",
}

// String returns the stable snake_case name used on the wire and in configuration
func (k Kind) String() string {
	if k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Label returns the human-readable display name
func (k Kind) Label() string {
	if k >= kindCount {
		return "Unknown"
	}
	return kindLabels[k]
}

// Color returns the highlight color for the kind as #RRGGBB hex
func (k Kind) Color() string {
	if k >= kindCount {
		return "#FFFFFF"
	}
	return kindColors[k]
}

// MarshalText implements encoding.TextMarshaler using the wire name
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler from the wire name
func (k *Kind) UnmarshalText(b []byte) error {
	kk, ok := ParseKind(string(b))
	if !ok {
		return errUnknownKind(string(b))
	}
	*k = kk
	return nil
}

type errUnknownKind string

func (e errUnknownKind) Error() string { return "unknown issue kind " + string(e) }

// ParseKind maps a wire name to a Kind, reporting whether it is known
func ParseKind(name string) (Kind, bool) {
	for i := Kind(0); i < kindCount; i++ {
		if kindNames[i] == name {
			return i, true
		}
	}
	return 0, false
}

// Kinds returns all pass kinds in scan order
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}
