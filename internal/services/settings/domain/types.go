// Package domain holds the settings service types
package domain

import "encoding/json"

// Setting is one keyed JSON blob, used to persist editor-side state
// like cinnamon-word lists and check toggles between sessions
type Setting struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt string          `json:"updated_at,omitempty"`
}

// PutInput upserts a setting
type PutInput struct {
	Key   string          `json:"key" validate:"required,max=128"`
	Value json.RawMessage `json:"value" validate:"required"`
}
