// Package histlib implements the persistent download-history store.
// Records live in a single JSON file, ordered oldest first, and are
// presented newest first through an incrementally growing window.
package histlib

import (
	"bytes"
	"encoding/json"
	"log"
	"os"
	"sync"

	"github.com/spf13/afero"

	"github.com/histdl/histdl/pkg/logger"
)

const (
	// DefaultFileName is the backing file used when none is configured.
	DefaultFileName = "download_history.json"

	// DefaultPageSize is the number of records revealed per page.
	DefaultPageSize = 15

	// DefaultFileMode is the permission mode of the backing file.
	DefaultFileMode os.FileMode = 0644
)

// StoreOpts contains optional parameters for NewStore.
type StoreOpts struct {
	// FileName is the path of the backing JSON file.
	// Defaults to DefaultFileName.
	FileName string

	// PageSize is the number of records revealed per page.
	// Defaults to DefaultPageSize.
	PageSize int

	// Fs is the filesystem the store reads and writes.
	// Defaults to the OS filesystem.
	Fs afero.Fs

	// Logger receives warnings for swallowed load and persist failures.
	// Defaults to a StandardLogger around log.Default().
	Logger logger.Logger
}

// Store manages the ordered download history and its pagination state.
// The record slice is persistent; the visible count lives only for the
// session and resets to one page on every load.
type Store struct {
	records  []Record
	visible  int
	pageSize int
	fileName string
	fs       afero.Fs
	log      logger.Logger
	mu       *sync.RWMutex
}

// NewStore creates a store instance and loads the backing file.
// It never fails: a missing or unreadable file yields an empty history.
func NewStore(opts *StoreOpts) *Store {
	if opts == nil {
		opts = &StoreOpts{}
	}
	s := &Store{
		fileName: opts.FileName,
		pageSize: opts.PageSize,
		fs:       opts.Fs,
		log:      opts.Logger,
		mu:       new(sync.RWMutex),
	}
	if s.fileName == "" {
		s.fileName = DefaultFileName
	}
	if s.pageSize <= 0 {
		s.pageSize = DefaultPageSize
	}
	if s.fs == nil {
		s.fs = afero.NewOsFs()
	}
	if s.log == nil {
		s.log = logger.NewStandardLogger(log.Default())
	}
	s.Load()
	return s
}

// Load re-reads the backing file, replacing the in-memory records and
// resetting the visible count to one page. A missing, empty or corrupt
// file yields an empty history; Load never returns an error.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make([]Record, 0)
	s.visible = s.pageSize
	b, err := afero.ReadFile(s.fs, s.fileName)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warning("failed to read history file %q, starting empty: %v", s.fileName, err)
		}
		return
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return
	}
	var records []Record
	if err := json.Unmarshal(b, &records); err != nil {
		s.log.Warning("failed to decode history file %q, starting empty: %v", s.fileName, err)
		return
	}
	if records != nil {
		s.records = records
	}
}

// persist serializes all records to the backing file as 2-space
// indented JSON with non-ASCII and HTML characters left unescaped.
// The file is rewritten whole from a buffer. Failures are logged and
// swallowed. Callers must hold the write lock.
func (s *Store) persist() {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.records); err != nil {
		s.log.Warning("failed to encode history: %v", err)
		return
	}
	if err := afero.WriteFile(s.fs, s.fileName, buf.Bytes(), DefaultFileMode); err != nil {
		s.log.Warning("failed to save history to %q: %v", s.fileName, err)
	}
}

// Add appends a record as the newest entry and persists. The visible
// count becomes min(visible+1, len) so the new record is shown without
// revealing older hidden ones.
func (s *Store) Add(url, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, Record{Url: url, Status: status})
	s.persist()
	s.visible++
	if s.visible > len(s.records) {
		s.visible = len(s.records)
	}
}

// Clear removes all records and persists the empty list. The visible
// count is not reset; it only shrinks again through DeleteAt or Load.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make([]Record, 0)
	s.persist()
}

// Query returns the current view: the last visible records in
// newest-first order, filtered by search when it is non-empty.
// The filter applies to the revealed page only, never to hidden
// records. Query does not modify the store.
func (s *Store) Query(search string) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := s.visible
	if n > len(s.records) {
		n = len(s.records)
	}
	view := make([]Record, 0, n)
	for i := len(s.records) - 1; i >= len(s.records)-n; i-- {
		r := s.records[i]
		if !r.Matches(search) {
			continue
		}
		view = append(view, r)
	}
	return view
}

// HasMore reports whether hidden older records remain. It is always
// false while a search is active.
func (s *Store) HasMore(search string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visible < len(s.records) && search == ""
}

// ShowMore grows the visible window by one page. The count is not
// capped; Query bounds it against the record count.
func (s *Store) ShowMore() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible += s.pageSize
}

// DeleteAt removes the record shown at viewIndex of view, where view is
// a slice previously returned by Query. The row is resolved to its
// (url, status) identity and the oldest stored record with that
// identity is removed. It reports whether a record was removed; an
// index outside the view or an identity no longer stored leaves the
// history unchanged.
func (s *Store) DeleteAt(view []Record, viewIndex int) bool {
	if viewIndex < 0 || viewIndex >= len(view) {
		return false
	}
	target := view[viewIndex]
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.records {
		if !r.same(target) {
			continue
		}
		s.records = append(s.records[:i], s.records[i+1:]...)
		s.persist()
		if s.visible > len(s.records) {
			s.visible = len(s.records)
		}
		return true
	}
	return false
}

// Records returns a copy of all stored records, oldest first.
func (s *Store) Records() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]Record, len(s.records))
	copy(records, s.records)
	return records
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// VisibleCount returns the current size of the pagination window.
// The value may exceed Len after ShowMore.
func (s *Store) VisibleCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visible
}

// PageSize returns the configured page size.
func (s *Store) PageSize() int {
	return s.pageSize
}

// Path returns the path of the backing file.
func (s *Store) Path() string {
	return s.fileName
}
