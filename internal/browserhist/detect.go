package browserhist

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

// sqliteMagic is the first 16 bytes of any SQLite database file.
var sqliteMagic = []byte("SQLite format 3\x00")

// DetectFormat determines the history database format of the file at the
// given path. It returns FormatChromium or FormatFirefox, or an error if
// the format cannot be determined.
func DetectFormat(path string) (StoreFormat, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FormatUnknown, fmt.Errorf("error: history database not found: %s", path)
	}
	if info.IsDir() {
		return FormatUnknown, fmt.Errorf("error: %s is a directory, expected a history database path", path)
	}
	if info.Size() == 0 {
		return FormatUnknown, fmt.Errorf("error: history database at %s is empty or corrupted", path)
	}

	// Read first 16 bytes to check for SQLite magic
	f, err := os.Open(path)
	if err != nil {
		return FormatUnknown, fmt.Errorf("error: cannot open history database: %w", err)
	}
	defer f.Close()

	header := make([]byte, 16)
	n, err := f.Read(header)
	if err != nil {
		return FormatUnknown, fmt.Errorf("error: cannot read history database: %w", err)
	}
	if n < 16 || string(header[:16]) != string(sqliteMagic) {
		return FormatUnknown, fmt.Errorf("error: %s is not a SQLite database", path)
	}

	return detectSQLiteFormat(path)
}

// detectSQLiteFormat opens the SQLite file and checks which download schema
// it carries. Both tables of a family must be present: a lone downloads
// table without its url-chains companion is not a Chromium history.
func detectSQLiteFormat(path string) (StoreFormat, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return FormatUnknown, fmt.Errorf("error: cannot open SQLite database: %w", err)
	}
	defer db.Close()

	if hasTables(db, "downloads", "downloads_url_chains") {
		return FormatChromium, nil
	}
	if hasTables(db, "moz_places", "moz_annos") {
		return FormatFirefox, nil
	}

	return FormatUnknown, fmt.Errorf("error: unsupported history database schema at %s", path)
}

// hasTables reports whether every named table exists in the database.
func hasTables(db *sql.DB, names ...string) bool {
	for _, name := range names {
		var tableName string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&tableName)
		if err != nil {
			return false
		}
	}
	return true
}
