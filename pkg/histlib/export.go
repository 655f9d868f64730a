package histlib

import (
	"bufio"
	"fmt"
	"io"
)

// Export writes every record to w in stored (oldest first) order, one
// block per record:
//
//	URL: <url>
//	Status: <status>
//
// followed by a blank line. Write errors are returned to the caller.
func (s *Store) Export(w io.Writer) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bw := bufio.NewWriter(w)
	for _, r := range s.records {
		if _, err := fmt.Fprintf(bw, "URL: %s\nStatus: %s\n\n", r.Url, r.Status); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// ExportFile writes the export format to path on the store's
// filesystem, replacing any existing file. Unlike routine persists,
// failures are returned, not logged.
func (s *Store) ExportFile(path string) error {
	if path == "" {
		return ErrExportPath
	}
	f, err := s.fs.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := s.Export(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}
	return nil
}
