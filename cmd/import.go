package cmd

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/histdl/histdl/cmd/common"
	"github.com/histdl/histdl/internal/browserhist"
)

var (
	importBrowser   string
	importFile      string
	importLimit     int
	allowDuplicates bool

	impFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "browser, b",
			Usage:       "browser to read from: firefox, librewolf, chrome, chromium, edge or brave (default: auto)",
			Value:       "auto",
			Destination: &importBrowser,
		},
		cli.StringFlag{
			Name:        "file, F",
			Usage:       "read this history database instead of an installed browser's",
			Destination: &importFile,
		},
		cli.IntFlag{
			Name:        "limit, n",
			Usage:       "import at most this many newest downloads (default: all)",
			Destination: &importLimit,
		},
		cli.BoolFlag{
			Name:        "allow-duplicates, D",
			Usage:       "use this flag to keep records already present in the history (default: false)",
			Destination: &allowDuplicates,
		},
	}
)

func importHistory(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	env, err := newEnv()
	if err != nil {
		common.PrintRuntimeErr(ctx, "import", "setup", err)
		return nil
	}
	var (
		entries []browserhist.Entry
		source  *browserhist.Source
	)
	switch {
	case importFile != "":
		entries, source, err = browserhist.Import(importFile, importLimit)
	case importBrowser != "" && !strings.EqualFold(importBrowser, "auto"):
		var path, name string
		path, name, err = browserhist.ResolveBrowser(importBrowser)
		if err == nil {
			entries, source, err = browserhist.Import(path, importLimit)
		}
		if err == nil {
			source.Browser = name
		}
	default:
		entries, source, err = browserhist.DetectBrowserEntries(importLimit)
	}
	if err != nil {
		common.PrintRuntimeErr(ctx, "import", "read_history", err)
		return nil
	}
	added := mergeEntries(env, entries, allowDuplicates)
	from := source.Browser
	if from == "" {
		from = source.Path
	}
	if added == 0 {
		fmt.Printf("No new downloads to import from %s.\n", from)
		return nil
	}
	fmt.Printf("Imported %d download(s) from %s.\n", added, from)
	return nil
}

// mergeEntries appends entries to the history, skipping ones whose url
// and status are already recorded unless keepDuplicates is set. It
// returns the number of records actually added.
func mergeEntries(env *appEnv, entries []browserhist.Entry, keepDuplicates bool) int {
	seen := make(map[string]struct{})
	if !keepDuplicates {
		for _, r := range env.store.Records() {
			seen[r.Url+"\x00"+r.Status] = struct{}{}
		}
	}
	var added int
	for _, entry := range entries {
		status := entry.StatusText()
		key := entry.Url + "\x00" + status
		if _, dup := seen[key]; dup {
			continue
		}
		if !keepDuplicates {
			seen[key] = struct{}{}
		}
		env.panel.Add(entry.Url, status)
		added++
	}
	return added
}
