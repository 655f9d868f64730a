package browserhist

import (
	"time"

	"github.com/histdl/histdl/common"
)

// StoreFormat identifies the schema of a browser history database.
type StoreFormat int

const (
	// FormatUnknown means the database format could not be detected.
	FormatUnknown StoreFormat = 0
	// FormatFirefox means a places.sqlite database with download annotations.
	FormatFirefox StoreFormat = 1
	// FormatChromium means a Chromium History database with a downloads table.
	FormatChromium StoreFormat = 2
)

// EntryState classifies how a browser download ended. Downloads still
// in progress are never imported.
type EntryState int

const (
	StateComplete EntryState = iota
	StateCancelled
	StateFailed
)

// Entry is one finished download taken from a browser history database.
type Entry struct {
	// Url is the download source url (the final url of a redirect chain).
	Url string
	// Path is the local target path the browser saved to. May be empty.
	Path string
	// State classifies the download outcome.
	State EntryState
	// Started is when the download began.
	Started time.Time
}

// StatusText maps the entry state to the history status vocabulary.
func (e Entry) StatusText() string {
	switch e.State {
	case StateComplete:
		return common.StatusComplete
	case StateCancelled:
		return common.StatusCancelled
	default:
		return common.StatusFailed
	}
}

// Source describes where entries were imported from.
type Source struct {
	// Path is the filesystem path of the history database.
	Path string
	// Format is the detected database format.
	Format StoreFormat
	// Browser is the detected browser name (e.g., "Firefox", "Chrome").
	Browser string
}
