package browserhist

import (
	"fmt"
	"path/filepath"
)

// Import reads download entries from the history database at sourcePath.
// It detects the format, copies the database aside so a running browser
// keeping the original locked does not break the read, parses the copy,
// and returns the entries plus source metadata. Entries come back oldest
// first; a positive limit keeps only the newest limit entries.
func Import(sourcePath string, limit int) ([]Entry, *Source, error) {
	format, err := DetectFormat(sourcePath)
	if err != nil {
		return nil, nil, err
	}

	source := &Source{
		Path:   sourcePath,
		Format: format,
	}

	var entries []Entry

	switch format {
	case FormatFirefox:
		source.Browser = "Firefox"
		entries, err = importSQLite(sourcePath, limit, ParseFirefox)
	case FormatChromium:
		source.Browser = "Chromium"
		entries, err = importSQLite(sourcePath, limit, ParseChromium)
	default:
		return nil, nil, fmt.Errorf("error: unsupported history database schema at %s", sourcePath)
	}

	if err != nil {
		return nil, nil, err
	}

	return entries, source, nil
}

// importSQLite copies a SQLite history file safely and parses it with the given parser.
func importSQLite(sourcePath string, limit int, parser func(string, int) ([]Entry, error)) ([]Entry, error) {
	tempDir, cleanup, err := SafeCopy(sourcePath)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	copiedPath := filepath.Join(tempDir, filepath.Base(sourcePath))
	return parser(copiedPath, limit)
}

// reverseEntries flips entries in place, turning newest-first query
// results into the oldest-first order callers append in.
func reverseEntries(entries []Entry) {
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
}
