package browserhist

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// browserSpec describes a browser's download-history database candidate paths.
type browserSpec struct {
	// Name is the human-readable browser name (e.g., "Firefox").
	Name string
	// HistoryPaths contains direct history file candidates for Chromium-family
	// browsers. The first path that exists on disk is used.
	HistoryPaths []string
	// ProfilesIniPaths contains candidate paths to Firefox-style profiles.ini
	// files. Empty for Chromium-family browsers.
	ProfilesIniPaths []string
}

// parseProfilesIni parses a Firefox-style profiles.ini file and returns the
// absolute path to the default profile directory.
//
// Priority:
//  1. [Install*] section Default= key — used by modern Firefox
//  2. [Profile*] section with Default=1 — fallback for older profiles
//
// Returns an empty string (no error) if the file does not exist, cannot be
// read, or contains no identifiable default profile.
func parseProfilesIni(iniPath string) string {
	f, err := os.Open(iniPath)
	if err != nil {
		return ""
	}
	defer f.Close()

	iniDir := filepath.Dir(iniPath)

	var installDefault string
	var profileDefault string
	var inInstallSection bool
	var inProfileSection bool
	var currentPath string
	var currentIsDefault bool

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			// Flush previous Profile section if it had Default=1.
			if inProfileSection && currentIsDefault && profileDefault == "" {
				profileDefault = currentPath
			}
			sectionName := strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			inInstallSection = strings.HasPrefix(sectionName, "Install")
			inProfileSection = strings.HasPrefix(sectionName, "Profile")
			currentPath = ""
			currentIsDefault = false
			continue
		}
		k, v, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key := strings.TrimSpace(k)
		val := strings.TrimSpace(v)
		if inInstallSection && key == "Default" && installDefault == "" {
			installDefault = filepath.Join(iniDir, filepath.FromSlash(val))
		}
		if inProfileSection {
			if key == "Path" {
				currentPath = filepath.Join(iniDir, filepath.FromSlash(val))
			}
			if key == "Default" && val == "1" {
				currentIsDefault = true
			}
		}
	}
	// Flush the last section.
	if inProfileSection && currentIsDefault && profileDefault == "" {
		profileDefault = currentPath
	}

	if installDefault != "" {
		return installDefault
	}
	return profileDefault
}

// resolveSpecPath returns the first existing history database path for the
// given spec, or an empty string when none is found. Firefox-family specs
// resolve the default profile via profiles.ini and look for places.sqlite
// inside it; Chromium-family specs check their direct candidates.
func resolveSpecPath(spec browserSpec) string {
	if len(spec.ProfilesIniPaths) > 0 {
		for _, iniPath := range spec.ProfilesIniPaths {
			profileDir := parseProfilesIni(iniPath)
			if profileDir == "" {
				continue
			}
			histPath := filepath.Join(profileDir, "places.sqlite")
			if _, err := os.Stat(histPath); err != nil {
				continue
			}
			return histPath
		}
		return ""
	}
	for _, histPath := range spec.HistoryPaths {
		if _, err := os.Stat(histPath); err != nil {
			continue
		}
		return histPath
	}
	return ""
}

// detectWithSpecs scans the given browser specs in order and returns entries
// from the first valid history database found.
// This function exists as a testable seam; production code calls DetectBrowserEntries.
func detectWithSpecs(limit int, specs []browserSpec) ([]Entry, *Source, error) {
	for _, spec := range specs {
		histPath := resolveSpecPath(spec)
		if histPath == "" {
			continue
		}
		imported, source, err := Import(histPath, limit)
		if err != nil {
			continue
		}
		source.Browser = spec.Name
		return imported, source, nil
	}
	return nil, nil, fmt.Errorf(
		"no supported browser download history found (tried Firefox, LibreWolf, Chrome, Chromium, Edge, Brave)",
	)
}

// DetectBrowserEntries scans known browser history databases in priority order
// and returns download entries from the first available one.
//
// Priority: Firefox > LibreWolf > Chrome > Chromium > Edge > Brave.
//
// Returns an error if no supported browser history database is found.
func DetectBrowserEntries(limit int) ([]Entry, *Source, error) {
	return detectWithSpecs(limit, getBrowserHistoryPaths())
}

// ResolveBrowser returns the history database path and the canonical
// browser name for the named browser. The name is matched
// case-insensitively against the known browser specs.
func ResolveBrowser(name string) (path string, browser string, err error) {
	for _, spec := range getBrowserHistoryPaths() {
		if !strings.EqualFold(spec.Name, name) {
			continue
		}
		histPath := resolveSpecPath(spec)
		if histPath == "" {
			return "", "", fmt.Errorf("error: no %s download history found", spec.Name)
		}
		return histPath, spec.Name, nil
	}
	return "", "", fmt.Errorf("error: unsupported browser %q", name)
}
