// Package service implements live writing-check sessions: a debounced
// rescan scheduler, the issue track store, and latest-wins result application
package service

import (
	"sync"
	"time"

	"honest/internal/core/lexicon"
	"honest/internal/core/readability"
	"honest/internal/core/scan"
	"honest/internal/platform/logger"
	checkerdom "honest/internal/services/checker/domain"
	"honest/internal/services/session/domain"

	"github.com/google/uuid"
)

// DefaultDebounce is the quiescence window before a rescan fires
const DefaultDebounce = 1000 * time.Millisecond

// Session is one live document. It owns its scanner instance, so check
// toggles and cinnamon words never leak across documents.
//
// Scans run off the caller's goroutine. Each scan request carries a
// monotonically increasing sequence number and its result is applied
// only if no newer result has been applied since
type Session struct {
	ID uuid.UUID

	// mu guards session state, scanMu serializes scanner access so a
	// running scan never races a config or registry mutation
	mu     sync.Mutex
	scanMu sync.Mutex

	scanner  *scan.Scanner
	emit     func(domain.Outbound)
	debounce time.Duration
	timer    *time.Timer

	enabled      bool
	text         string
	hasSelection bool
	closed       bool

	seq     uint64
	applied uint64

	// track store: last computed issues plus the current position
	issues  []scan.Issue
	metrics readability.Metrics
	cur     int

	log logger.Logger
}

func newSession(lex *lexicon.Pack, debounce time.Duration, emit func(domain.Outbound)) *Session {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	id := uuid.New()
	return &Session{
		ID:       id,
		scanner:  scan.New(lex),
		emit:     emit,
		debounce: debounce,
		enabled:  true,
		log:      logger.Named("session").With().Str("session_id", id.String()).Logger(),
	}
}

// TextChanged records the new document text and re-arms the quiescence
// timer. While a selection is active the timer is not re-armed, reading
// is treated as a pause signal
func (s *Session) TextChanged(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
	if s.closed || !s.enabled || s.hasSelection {
		return
	}
	s.rearmLocked()
}

// SelectionChanged records the selection and pushes the compact
// readability summary for it. It never triggers a full rescan
func (s *Session) SelectionChanged(sel string) {
	s.mu.Lock()
	s.hasSelection = sel != ""
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return
	}
	summary := readability.FormatCompact(readability.Analyze(sel))
	s.emit(domain.Outbound{Op: domain.OpSelectionReadability, Summary: summary})
}

// Refresh runs a full rescan now, bypassing the debounce window
func (s *Session) Refresh() {
	s.mu.Lock()
	if s.closed || !s.enabled {
		s.mu.Unlock()
		return
	}
	s.stopTimerLocked()
	n, text := s.nextScanLocked()
	s.mu.Unlock()
	go s.runScan(n, text)
}

// Toggle switches the analysis feature. Turning it off stops the timer
// and clears the issue list, leaving the check configuration and the
// cinnamon registry untouched. Turning it on rescans immediately
func (s *Session) Toggle(on bool) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.enabled = on
	if !on {
		s.stopTimerLocked()
		s.issues = nil
		s.cur = 0
		s.emitIssuesLocked()
		s.mu.Unlock()
		return
	}
	n, text := s.nextScanLocked()
	s.mu.Unlock()
	go s.runScan(n, text)
}

// SetCheckEnabled toggles a pass by wire name and rescans.
// Unknown names are a silent no-op
func (s *Session) SetCheckEnabled(name string, on bool) {
	s.scanMu.Lock()
	s.scanner.Config().SetEnabledName(name, on)
	s.scanMu.Unlock()
	s.Refresh()
}

// AddCinnamonWord inserts a word, pushes the new list, and rescans
func (s *Session) AddCinnamonWord(word string) {
	s.scanMu.Lock()
	s.scanner.Registry().Add(word)
	words := s.scanner.Registry().Words()
	s.scanMu.Unlock()
	s.emit(domain.Outbound{Op: domain.OpCinnamonWords, Words: words})
	s.Refresh()
}

// RemoveCinnamonWord deletes a word, pushes the new list, and rescans
func (s *Session) RemoveCinnamonWord(word string) {
	s.scanMu.Lock()
	s.scanner.Registry().Remove(word)
	words := s.scanner.Registry().Words()
	s.scanMu.Unlock()
	s.emit(domain.Outbound{Op: domain.OpCinnamonWords, Words: words})
	s.Refresh()
}

// Show clamps the index into range and pushes the issue at it
func (s *Session) Show(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showLocked(i)
}

// Next advances the current position, wrapping modulo the list length
func (s *Session) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.issues) == 0 {
		return
	}
	s.showLocked((s.cur + 1) % len(s.issues))
}

// Previous steps the current position back, wrapping modulo the list length
func (s *Session) Previous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.issues) == 0 {
		return
	}
	s.showLocked((s.cur - 1 + len(s.issues)) % len(s.issues))
}

// Ignore removes the issue at i from the track store only. Nothing records
// the dismissal, so the next rescan resurfaces the same pattern unless the
// text changed. Out-of-range indexes are a no-op
func (s *Session) Ignore(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.issues) {
		return
	}
	s.issues = append(s.issues[:i], s.issues[i+1:]...)
	s.emitIssuesLocked()
	if len(s.issues) > 0 {
		s.showLocked(min(i, len(s.issues)-1))
	}
}

// Close stops the timer and detaches the session
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimerLocked()
	s.closed = true
}

// rearmLocked restarts the quiescence timer from zero
func (s *Session) rearmLocked() {
	s.stopTimerLocked()
	s.timer = time.AfterFunc(s.debounce, s.fire)
}

func (s *Session) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// fire runs when the quiescence window elapses
func (s *Session) fire() {
	s.mu.Lock()
	if s.closed || !s.enabled {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	n, text := s.nextScanLocked()
	s.mu.Unlock()
	s.runScan(n, text)
}

func (s *Session) nextScanLocked() (uint64, string) {
	s.seq++
	return s.seq, s.text
}

// runScan computes issues and readability for the request and applies the
// result only if it is still the newest
func (s *Session) runScan(n uint64, text string) {
	s.scanMu.Lock()
	issues := s.scanner.CheckText(text)
	s.scanMu.Unlock()
	metrics := readability.Analyze(text)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || n <= s.applied {
		s.log.Debug().Uint64("seq", n).Uint64("applied", s.applied).Msg("stale scan discarded")
		return
	}
	s.applied = n
	s.issues = issues
	s.metrics = metrics
	s.cur = 0
	s.emitIssuesLocked()
	if len(s.issues) > 0 {
		s.showLocked(0)
	}
}

func (s *Session) showLocked(i int) {
	if len(s.issues) == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(s.issues) {
		i = len(s.issues) - 1
	}
	s.cur = i
	iss := checkerdom.IssueFromScan(s.issues[i])
	idx := i
	s.emit(domain.Outbound{Op: domain.OpCurrentIssue, Index: &idx, Issue: &iss})
}

func (s *Session) emitIssuesLocked() {
	out := make([]checkerdom.Issue, 0, len(s.issues))
	for _, is := range s.issues {
		out = append(out, checkerdom.IssueFromScan(is))
	}
	m := s.metrics
	s.emit(domain.Outbound{
		Op:          domain.OpIssues,
		Seq:         s.applied,
		Issues:      out,
		Readability: &m,
	})
}

// CinnamonWords returns the session registry contents
func (s *Session) CinnamonWords() []string {
	s.scanMu.Lock()
	defer s.scanMu.Unlock()
	return s.scanner.Registry().Words()
}
