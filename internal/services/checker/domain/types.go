// Package domain holds the checker service types and DTOs
package domain

import (
	"honest/internal/core/readability"
	"honest/internal/core/scan"
)

// CheckInput is the request body for a full text check.
// Empty text is legal and yields the empty result
type CheckInput struct {
	Text string `json:"text" validate:"max=1048576"`
}

// ToggleInput enables or disables a scanner pass by wire name
type ToggleInput struct {
	Name    string `json:"name" validate:"required"`
	Enabled *bool  `json:"enabled" validate:"required"`
}

// WordInput carries a single cinnamon word
type WordInput struct {
	Word string `json:"word" validate:"required,max=64"`
}

// Issue is the wire shape of one detected issue, with display metadata
type Issue struct {
	Type       string `json:"issue_type"`
	Label      string `json:"label"`
	Color      string `json:"color"`
	Start      int    `json:"start"`
	End        int    `json:"end"`
	Text       string `json:"text"`
	Suggestion string `json:"suggestion,omitempty"`
}

// IssueFromScan converts a core issue to its wire shape
func IssueFromScan(in scan.Issue) Issue {
	return Issue{
		Type:       in.Kind.String(),
		Label:      in.Kind.Label(),
		Color:      in.Kind.Color(),
		Start:      in.Start,
		End:        in.End,
		Text:       in.Text,
		Suggestion: in.Suggestion,
	}
}

// CheckResult pairs the merged issue list with the readability metrics
type CheckResult struct {
	Issues      []Issue             `json:"issues"`
	Readability readability.Metrics `json:"readability"`
}

// ReadabilityResult is the metrics plus both renderings and a display band
type ReadabilityResult struct {
	Metrics readability.Metrics `json:"metrics"`
	Summary string              `json:"summary"`
	Compact string              `json:"compact"`
	Band    string              `json:"band"`
}

// Checks reports the per-pass toggle state
type Checks struct {
	Checks map[string]bool `json:"checks"`
}

// Words reports the current cinnamon word list
type Words struct {
	Words []string `json:"words"`
}
