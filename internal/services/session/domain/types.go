// Package domain holds the live session protocol types
package domain

import (
	"honest/internal/core/readability"
	checkerdom "honest/internal/services/checker/domain"
)

// Inbound op names
const (
	OpTextChanged      = "text_changed"
	OpSelectionChanged = "selection_changed"
	OpSetCheck         = "set_check"
	OpAddCinnamon      = "add_cinnamon"
	OpRemoveCinnamon   = "remove_cinnamon"
	OpIgnore           = "ignore"
	OpShow             = "show"
	OpNext             = "next"
	OpPrevious         = "previous"
	OpRefresh          = "refresh"
	OpToggle           = "toggle"
)

// Outbound op names
const (
	OpIssues               = "issues"
	OpSelectionReadability = "selection_readability"
	OpCurrentIssue         = "current_issue"
	OpCinnamonWords        = "cinnamon_words"
)

// Inbound is a client message, the fields used depend on Op
type Inbound struct {
	Op      string `json:"op" validate:"required"`
	Text    string `json:"text,omitempty"`
	Name    string `json:"name,omitempty"`
	Enabled *bool  `json:"enabled,omitempty"`
	Word    string `json:"word,omitempty"`
	Index   *int   `json:"index,omitempty"`
}

// Outbound is a server push, the fields set depend on Op
type Outbound struct {
	Op          string               `json:"op"`
	Seq         uint64               `json:"seq,omitempty"`
	Issues      []checkerdom.Issue   `json:"issues,omitempty"`
	Readability *readability.Metrics `json:"readability,omitempty"`
	Summary     string               `json:"summary,omitempty"`
	Index       *int                 `json:"index,omitempty"`
	Issue       *checkerdom.Issue    `json:"issue,omitempty"`
	Words       []string             `json:"words,omitempty"`
}
