//go:build unix

package browserhist

import (
	"os"
	"path/filepath"
	"runtime"
)

// getBrowserHistoryPathsForHome returns browser specs using the given homeDir.
// This is the testable variant; getBrowserHistoryPaths calls it with the real home.
func getBrowserHistoryPathsForHome(homeDir string) []browserSpec {
	isDarwin := runtime.GOOS == "darwin"

	var specs []browserSpec

	// Firefox
	var ffIniPaths []string
	if isDarwin {
		ffIniPaths = []string{
			filepath.Join(homeDir, "Library", "Application Support", "Firefox", "profiles.ini"),
		}
	} else {
		ffIniPaths = []string{
			filepath.Join(homeDir, ".mozilla", "firefox", "profiles.ini"),
			filepath.Join(homeDir, "snap", "firefox", "common", ".mozilla", "firefox", "profiles.ini"),
		}
	}
	specs = append(specs, browserSpec{Name: "Firefox", ProfilesIniPaths: ffIniPaths})

	// LibreWolf
	var lwIniPaths []string
	if isDarwin {
		lwIniPaths = []string{
			filepath.Join(homeDir, "Library", "Application Support", "librewolf", "profiles.ini"),
		}
	} else {
		lwIniPaths = []string{
			filepath.Join(homeDir, ".librewolf", "profiles.ini"),
		}
	}
	specs = append(specs, browserSpec{Name: "LibreWolf", ProfilesIniPaths: lwIniPaths})

	// Chrome
	var chromePaths []string
	if isDarwin {
		chromePaths = []string{
			filepath.Join(homeDir, "Library", "Application Support", "Google", "Chrome", "Default", "History"),
		}
	} else {
		chromePaths = []string{
			filepath.Join(homeDir, ".config", "google-chrome", "Default", "History"),
		}
	}
	specs = append(specs, browserSpec{Name: "Chrome", HistoryPaths: chromePaths})

	// Chromium
	var chromiumPaths []string
	if isDarwin {
		chromiumPaths = []string{
			filepath.Join(homeDir, "Library", "Application Support", "Chromium", "Default", "History"),
		}
	} else {
		chromiumPaths = []string{
			filepath.Join(homeDir, ".config", "chromium", "Default", "History"),
		}
	}
	specs = append(specs, browserSpec{Name: "Chromium", HistoryPaths: chromiumPaths})

	// Edge
	var edgePaths []string
	if isDarwin {
		edgePaths = []string{
			filepath.Join(homeDir, "Library", "Application Support", "Microsoft Edge", "Default", "History"),
		}
	} else {
		edgePaths = []string{
			filepath.Join(homeDir, ".config", "microsoft-edge", "Default", "History"),
		}
	}
	specs = append(specs, browserSpec{Name: "Edge", HistoryPaths: edgePaths})

	// Brave
	var bravePaths []string
	if isDarwin {
		bravePaths = []string{
			filepath.Join(homeDir, "Library", "Application Support", "BraveSoftware", "Brave-Browser", "Default", "History"),
		}
	} else {
		bravePaths = []string{
			filepath.Join(homeDir, ".config", "BraveSoftware", "Brave-Browser", "Default", "History"),
		}
	}
	specs = append(specs, browserSpec{Name: "Brave", HistoryPaths: bravePaths})

	return specs
}

// getBrowserHistoryPaths returns browser specs rooted at the real user home directory.
func getBrowserHistoryPaths() []browserSpec {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return getBrowserHistoryPathsForHome(homeDir)
}
