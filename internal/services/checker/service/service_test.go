package service

import (
	"context"
	"testing"

	"honest/internal/core/lexicon"
	"honest/internal/platform/testkit"
)

func newSvc(t *testing.T) *Svc {
	t.Helper()
	return New(lexicon.MustLoad())
}

func TestNew_RequiresLexicon(t *testing.T) {
	testkit.MustPanic(t, func() { _ = New(nil) })
}

func TestCheck_IssuesAndReadability(t *testing.T) {
	s := newSvc(t)
	res, err := s.Check(context.Background(), "It was completed quickly.")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(res.Issues) != 2 {
		t.Fatalf("issues = %d, want 2: %+v", len(res.Issues), res.Issues)
	}
	if res.Issues[0].Type != "passive_voice" || res.Issues[0].Label != "Passive Voice" {
		t.Fatalf("issue[0] = %+v, want passive_voice", res.Issues[0])
	}
	if res.Issues[0].Color == "" {
		t.Fatalf("issue color missing")
	}
	if res.Readability.Words != 4 {
		t.Fatalf("readability words = %d, want 4", res.Readability.Words)
	}
}

func TestCheck_EmptyText(t *testing.T) {
	s := newSvc(t)
	res, err := s.Check(context.Background(), "")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(res.Issues) != 0 {
		t.Fatalf("issues = %+v, want none", res.Issues)
	}
	if res.Readability.Difficulty != "N/A" {
		t.Fatalf("difficulty = %q, want N/A", res.Readability.Difficulty)
	}
}

func TestCheck_CacheInvalidatesOnToggle(t *testing.T) {
	s := newSvc(t)
	ctx := context.Background()
	text := "We should utilize this."

	res, _ := s.Check(ctx, text)
	if len(res.Issues) != 1 || res.Issues[0].Type != "jargon" {
		t.Fatalf("before toggle: %+v, want one jargon issue", res.Issues)
	}

	s.SetCheckEnabled("jargon", false)
	res, _ = s.Check(ctx, text)
	if len(res.Issues) != 0 {
		t.Fatalf("after disable, cached result leaked: %+v", res.Issues)
	}

	s.SetCheckEnabled("jargon", true)
	res, _ = s.Check(ctx, text)
	if len(res.Issues) != 1 {
		t.Fatalf("after re-enable: %+v, want one jargon issue", res.Issues)
	}
}

func TestCheck_CacheInvalidatesOnRegistryChange(t *testing.T) {
	s := newSvc(t)
	ctx := context.Background()
	text := "the moist towel"

	res, _ := s.Check(ctx, text)
	if len(res.Issues) != 0 {
		t.Fatalf("unexpected issues: %+v", res.Issues)
	}

	s.AddCinnamonWord("moist")
	res, _ = s.Check(ctx, text)
	if len(res.Issues) != 1 || res.Issues[0].Type != "cinnamon_words" {
		t.Fatalf("after Add: %+v, want one cinnamon issue", res.Issues)
	}

	s.RemoveCinnamonWord("moist")
	res, _ = s.Check(ctx, text)
	if len(res.Issues) != 0 {
		t.Fatalf("after Remove, cached result leaked: %+v", res.Issues)
	}
}

func TestChecks_Snapshot(t *testing.T) {
	s := newSvc(t)
	s.SetCheckEnabled("weak_words", false)

	checks := s.Checks()
	if checks["weak_words"] {
		t.Fatalf("weak_words should be disabled")
	}
	if !checks["jargon"] {
		t.Fatalf("jargon should default enabled")
	}

	// unknown names are ignored, snapshot shape is stable
	s.SetCheckEnabled("nonsense_pass", false)
	if len(s.Checks()) != len(checks) {
		t.Fatalf("snapshot shape changed after unknown toggle")
	}
}

func TestCinnamonWords_Sorted(t *testing.T) {
	s := newSvc(t)
	s.AddCinnamonWord("zzz")
	s.AddCinnamonWord("aaa")

	words := s.CinnamonWords()
	if len(words) == 0 || words[0] != "aaa" || words[len(words)-1] != "zzz" {
		t.Fatalf("words = %v, want sorted with aaa first and zzz last", words)
	}
}

func TestReadability_Result(t *testing.T) {
	s := newSvc(t)
	res := s.Readability(context.Background(), "The cat sat.")
	if res.Metrics.Words != 3 {
		t.Fatalf("words = %d, want 3", res.Metrics.Words)
	}
	if res.Band != "easy" {
		t.Fatalf("band = %q, want easy", res.Band)
	}
	if res.Compact != "Elementary (Grade 0.6) | 3 words | Flesch: 100" {
		t.Fatalf("compact = %q", res.Compact)
	}
	if res.Summary == "" {
		t.Fatalf("summary missing")
	}

	if got := s.ReadabilityCompact(context.Background(), "   "); got != "No text" {
		t.Fatalf("compact for blank = %q, want %q", got, "No text")
	}
}
