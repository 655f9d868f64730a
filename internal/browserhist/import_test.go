package browserhist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestImport_Chromium(t *testing.T) {
	dir := t.TempDir()
	dbPath := createChromiumFixture(t, dir, []chromiumDownload{
		{"/dl/a.zip", chromeStateComplete, 1000, []string{"http://a.com/a.zip"}},
		{"/dl/b.zip", chromeStateCancelled, 2000, []string{"http://b.com/b.zip"}},
	})

	entries, source, err := Import(dbPath, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if source == nil {
		t.Fatal("expected non-nil source")
	}
	if source.Format != FormatChromium {
		t.Errorf("expected FormatChromium, got %d", source.Format)
	}
	if source.Browser != "Chromium" {
		t.Errorf("expected browser 'Chromium', got '%s'", source.Browser)
	}
	if source.Path != dbPath {
		t.Errorf("expected source path '%s', got '%s'", dbPath, source.Path)
	}
}

func TestImport_Firefox(t *testing.T) {
	dir := t.TempDir()
	dbPath := createFirefoxFixture(t, dir, []firefoxDownload{
		{"http://a.com/a.zip", `{"state":1}`, 1000, ""},
	})

	entries, source, err := Import(dbPath, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if source.Format != FormatFirefox {
		t.Errorf("expected FormatFirefox, got %d", source.Format)
	}
	if source.Browser != "Firefox" {
		t.Errorf("expected browser 'Firefox', got '%s'", source.Browser)
	}
}

func TestImport_LeavesSourceUntouched(t *testing.T) {
	dir := t.TempDir()
	dbPath := createChromiumFixture(t, dir, []chromiumDownload{
		{"/dl/a.zip", chromeStateComplete, 1000, []string{"http://a.com/a.zip"}},
	})
	before, err := os.ReadFile(dbPath)
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}

	if _, _, err := Import(dbPath, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after, err := os.ReadFile(dbPath)
	if err != nil {
		t.Fatalf("failed to re-read fixture: %v", err)
	}
	if string(before) != string(after) {
		t.Error("import modified the source database")
	}
}

func TestImport_FileNotFound(t *testing.T) {
	_, _, err := Import("/nonexistent/History", 0)
	if err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestImport_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	fpath := filepath.Join(dir, "empty")
	if err := os.WriteFile(fpath, []byte{}, 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, _, err := Import(fpath, 0)
	if err == nil {
		t.Fatal("expected error for empty file, got nil")
	}
}

func TestReverseEntries(t *testing.T) {
	entries := []Entry{
		{Url: "http://a.com"},
		{Url: "http://b.com"},
		{Url: "http://c.com"},
	}
	reverseEntries(entries)
	want := []string{"http://c.com", "http://b.com", "http://a.com"}
	for i, u := range want {
		if entries[i].Url != u {
			t.Errorf("entry %d: expected %q, got %q", i, u, entries[i].Url)
		}
	}

	// Reversing empty and single-element slices must not panic.
	reverseEntries(nil)
	one := []Entry{{Url: "http://a.com"}}
	reverseEntries(one)
	if one[0].Url != "http://a.com" {
		t.Errorf("single-element reverse changed the entry: %q", one[0].Url)
	}
}
