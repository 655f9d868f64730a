package browserhist

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// firefoxMetaData is the downloads/metaData annotation payload.
type firefoxMetaData struct {
	State int `json:"state"`
}

// Firefox downloads/metaData state values.
const (
	firefoxStateFinished  = 1
	firefoxStateCancelled = 3
)

// ParseFirefox reads download entries from a Firefox places.sqlite file.
// Downloads live as downloads/metaData annotations on the visited page;
// the optional downloads/destinationFileURI annotation supplies the local
// target path. Entries are returned oldest first; a positive limit keeps
// only the newest limit entries.
// The dbPath should be a path to a copied (not in-use) SQLite database.
func ParseFirefox(dbPath string, limit int) ([]Entry, error) {
	dsn := fmt.Sprintf("file:%s?immutable=1", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("error: cannot open Firefox places database: %w", err)
	}
	defer db.Close()

	if limit <= 0 {
		limit = -1
	}
	rows, err := db.Query(`
        SELECT p.url, a.content, a.dateAdded,
               (SELECT a2.content
                  FROM moz_annos a2
                  JOIN moz_anno_attributes n2 ON a2.anno_attribute_id = n2.id
                 WHERE a2.place_id = a.place_id
                   AND n2.name = 'downloads/destinationFileURI'
                 LIMIT 1) AS dest
          FROM moz_annos a
          JOIN moz_anno_attributes n ON a.anno_attribute_id = n.id
          JOIN moz_places p ON a.place_id = p.id
         WHERE n.name = 'downloads/metaData'
         ORDER BY a.dateAdded DESC
         LIMIT ?
    `, limit)
	if err != nil {
		return nil, fmt.Errorf("error: failed to query Firefox downloads: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			pageUrl   string
			content   string
			dateAdded int64
			dest      sql.NullString
		)
		if err := rows.Scan(&pageUrl, &content, &dateAdded, &dest); err != nil {
			return nil, fmt.Errorf("error: failed to scan Firefox download row: %w", err)
		}
		var meta firefoxMetaData
		if err := json.Unmarshal([]byte(content), &meta); err != nil {
			// Not a readable download annotation, skip the row.
			continue
		}
		entries = append(entries, Entry{
			Url:     pageUrl,
			Path:    fileURIToPath(dest.String),
			State:   firefoxEntryState(meta.State),
			Started: time.Unix(dateAdded/1_000_000, 0),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error: failed to iterate Firefox download rows: %w", err)
	}

	reverseEntries(entries)
	return entries, nil
}

// firefoxEntryState maps a metaData state value to an EntryState.
// Failed, blocked and any unknown states count as failed.
func firefoxEntryState(state int) EntryState {
	switch state {
	case firefoxStateFinished:
		return StateComplete
	case firefoxStateCancelled:
		return StateCancelled
	default:
		return StateFailed
	}
}

// fileURIToPath converts a file:// destination URI to a local path.
// Non-file input is returned unchanged; empty input stays empty.
func fileURIToPath(uri string) string {
	if uri == "" {
		return ""
	}
	parsed, err := url.Parse(uri)
	if err != nil || parsed.Scheme != "file" {
		return uri
	}
	p := parsed.Path
	// Windows file URIs carry a leading slash before the drive letter.
	if len(p) >= 3 && p[0] == '/' && p[2] == ':' {
		p = p[1:]
	}
	return filepath.FromSlash(p)
}
