// Package scan implements the writing-issue scanner passes over document text
package scan

// Issue is one detected problem instance.
// Start and End are a half-open code-point range into the scanned text,
// matching the indexing a cursor/selection surface uses.
// Issues from different passes may legitimately overlap
type Issue struct {
	Kind       Kind   `json:"issue_type"`
	Start      int    `json:"start"`
	End        int    `json:"end"`
	Text       string `json:"text"`
	Suggestion string `json:"suggestion,omitempty"`
}
