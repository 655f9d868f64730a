package browserhist

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// chromeEpochOffsetSeconds is the number of seconds between the Windows NT epoch
// (1601-01-01 00:00:00 UTC) and the Unix epoch (1970-01-01 00:00:00 UTC).
const chromeEpochOffsetSeconds int64 = 11_644_473_600

// chromeToUnix converts a Chromium timestamp (microseconds since 1601-01-01)
// to a Unix timestamp (seconds since 1970-01-01).
func chromeToUnix(chromeUSec int64) int64 {
	return (chromeUSec / 1_000_000) - chromeEpochOffsetSeconds
}

// Chromium downloads.state values.
const (
	chromeStateInProgress  = 0
	chromeStateComplete    = 1
	chromeStateCancelled   = 2
	chromeStateInterrupted = 3
)

// ParseChromium reads download entries from a Chromium History SQLite file.
// In-progress downloads are skipped: a running download is not history yet.
// The url is the last link of the redirect chain. Entries are returned
// oldest first; a positive limit keeps only the newest limit entries.
// The dbPath should be a path to a copied (not in-use) SQLite database.
func ParseChromium(dbPath string, limit int) ([]Entry, error) {
	dsn := fmt.Sprintf("file:%s?immutable=1", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("error: cannot open Chromium history database: %w", err)
	}
	defer db.Close()

	if limit <= 0 {
		limit = -1
	}
	rows, err := db.Query(`
        SELECT d.target_path, d.state, d.start_time,
               (SELECT u.url FROM downloads_url_chains u
                 WHERE u.id = d.id
                 ORDER BY u.chain_index DESC LIMIT 1) AS url
          FROM downloads d
         WHERE d.state != ?
         ORDER BY d.start_time DESC
         LIMIT ?
    `, chromeStateInProgress, limit)
	if err != nil {
		return nil, fmt.Errorf("error: failed to query Chromium downloads: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			target    string
			state     int
			startTime int64
			url       sql.NullString
		)
		if err := rows.Scan(&target, &state, &startTime, &url); err != nil {
			return nil, fmt.Errorf("error: failed to scan Chromium download row: %w", err)
		}
		if !url.Valid || url.String == "" {
			continue
		}
		entries = append(entries, Entry{
			Url:     url.String,
			Path:    target,
			State:   chromiumEntryState(state),
			Started: time.Unix(chromeToUnix(startTime), 0),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error: failed to iterate Chromium download rows: %w", err)
	}

	reverseEntries(entries)
	return entries, nil
}

// chromiumEntryState maps a downloads.state value to an EntryState.
// Interrupted and any unknown states count as failed.
func chromiumEntryState(state int) EntryState {
	switch state {
	case chromeStateComplete:
		return StateComplete
	case chromeStateCancelled:
		return StateCancelled
	default:
		return StateFailed
	}
}
