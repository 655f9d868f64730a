//go:build windows

package browserhist

import (
	"os"
	"path/filepath"
)

// getBrowserHistoryPathsForEnv returns browser specs using the given environment
// variable values. This is the testable variant; getBrowserHistoryPaths calls it
// with real values from os.Getenv.
func getBrowserHistoryPathsForEnv(localAppData, appData string) []browserSpec {
	var specs []browserSpec

	// Firefox profiles live under APPDATA (Roaming)
	specs = append(specs, browserSpec{
		Name: "Firefox",
		ProfilesIniPaths: []string{
			filepath.Join(appData, "Mozilla", "Firefox", "profiles.ini"),
		},
	})

	// LibreWolf profiles live under APPDATA (Roaming)
	specs = append(specs, browserSpec{
		Name: "LibreWolf",
		ProfilesIniPaths: []string{
			filepath.Join(appData, "LibreWolf", "profiles.ini"),
		},
	})

	// Chrome keeps History under LOCALAPPDATA
	specs = append(specs, browserSpec{
		Name: "Chrome",
		HistoryPaths: []string{
			filepath.Join(localAppData, "Google", "Chrome", "User Data", "Default", "History"),
		},
	})

	// Chromium keeps History under LOCALAPPDATA
	specs = append(specs, browserSpec{
		Name: "Chromium",
		HistoryPaths: []string{
			filepath.Join(localAppData, "Chromium", "User Data", "Default", "History"),
		},
	})

	// Edge keeps History under LOCALAPPDATA
	specs = append(specs, browserSpec{
		Name: "Edge",
		HistoryPaths: []string{
			filepath.Join(localAppData, "Microsoft", "Edge", "User Data", "Default", "History"),
		},
	})

	// Brave keeps History under LOCALAPPDATA
	specs = append(specs, browserSpec{
		Name: "Brave",
		HistoryPaths: []string{
			filepath.Join(localAppData, "BraveSoftware", "Brave-Browser", "User Data", "Default", "History"),
		},
	})

	return specs
}

// getBrowserHistoryPaths returns browser specs using real Windows environment variables.
func getBrowserHistoryPaths() []browserSpec {
	return getBrowserHistoryPathsForEnv(
		os.Getenv("LOCALAPPDATA"),
		os.Getenv("APPDATA"),
	)
}
