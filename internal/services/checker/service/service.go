// Package service contains the writing-check workflows
package service

import (
	"context"
	"crypto/sha256"
	"fmt"
	"sync"

	"honest/internal/core/lexicon"
	"honest/internal/core/readability"
	"honest/internal/core/scan"
	"honest/internal/platform/logger"
	"honest/internal/services/checker/domain"

	lru "github.com/hashicorp/golang-lru/v2"
)

const cacheSize = 128

// Service defines the checker service contract
type Service interface {
	Check(ctx context.Context, text string) (domain.CheckResult, error)
	Readability(ctx context.Context, text string) domain.ReadabilityResult
	ReadabilityCompact(ctx context.Context, text string) string
	SetCheckEnabled(name string, enabled bool)
	Checks() map[string]bool
	AddCinnamonWord(word string)
	RemoveCinnamonWord(word string)
	CinnamonWords() []string
}

// Svc implements Service around a scanner instance.
// The scanner owns its configuration and registry, and a small LRU caches
// results keyed by text hash. The cache generation bumps on any toggle or
// registry change so stale results are never served
type Svc struct {
	mu      sync.Mutex
	scanner *scan.Scanner
	cache   *lru.Cache[string, domain.CheckResult]
	gen     uint64
	log     logger.Logger
}

// New creates a checker service with its own scanner instance
func New(lex *lexicon.Pack) *Svc {
	if lex == nil {
		panic("checker.Service requires a non nil lexicon")
	}
	cache, err := lru.New[string, domain.CheckResult](cacheSize)
	if err != nil {
		panic(err)
	}
	return &Svc{
		scanner: scan.New(lex),
		cache:   cache,
		log:     *logger.Named("checker"),
	}
}

// Scanner exposes the underlying scanner, used by session wiring
func (s *Svc) Scanner() *scan.Scanner { return s.scanner }

// Check runs every enabled pass and the readability analyzer over text
func (s *Svc) Check(ctx context.Context, text string) (domain.CheckResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.cacheKey(text)
	if res, ok := s.cache.Get(key); ok {
		return res, nil
	}

	issues := s.scanner.CheckText(text)
	out := make([]domain.Issue, 0, len(issues))
	for _, is := range issues {
		out = append(out, domain.IssueFromScan(is))
	}
	res := domain.CheckResult{
		Issues:      out,
		Readability: readability.Analyze(text),
	}
	s.cache.Add(key, res)

	s.log.Debug().Int("issues", len(out)).Int("chars", len(text)).Msg("check complete")
	return res, nil
}

// Readability analyzes text and returns metrics plus both renderings
func (s *Svc) Readability(_ context.Context, text string) domain.ReadabilityResult {
	m := readability.Analyze(text)
	band := "easy"
	switch readability.Band(m.AvgGrade) {
	case readability.BandModerate:
		band = "moderate"
	case readability.BandHard:
		band = "hard"
	}
	return domain.ReadabilityResult{
		Metrics: m,
		Summary: readability.Format(m),
		Compact: readability.FormatCompact(m),
		Band:    band,
	}
}

// ReadabilityCompact returns only the single-line summary, used for selections
func (s *Svc) ReadabilityCompact(_ context.Context, text string) string {
	return readability.FormatCompact(readability.Analyze(text))
}

// SetCheckEnabled toggles a pass by wire name, unknown names are a silent no-op
func (s *Svc) SetCheckEnabled(name string, enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scanner.Config().SetEnabledName(name, enabled)
	s.gen++
}

// Checks reports the current toggle state keyed by wire name
func (s *Svc) Checks() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scanner.Config().Snapshot()
}

// AddCinnamonWord inserts a word into the registry, idempotent
func (s *Svc) AddCinnamonWord(word string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scanner.Registry().Add(word)
	s.gen++
}

// RemoveCinnamonWord deletes a word from the registry, no-op when absent
func (s *Svc) RemoveCinnamonWord(word string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scanner.Registry().Remove(word)
	s.gen++
}

// CinnamonWords returns the registry contents sorted
func (s *Svc) CinnamonWords() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scanner.Registry().Words()
}

func (s *Svc) cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf("%d:%x", s.gen, sum)
}
