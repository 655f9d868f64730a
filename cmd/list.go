package cmd

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/histdl/histdl/cmd/common"
	"github.com/histdl/histdl/internal/panel"
)

var (
	searchTerm string
	pageCount  int
	showAll    bool

	viewFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "search, s",
			Usage:       "filter the visible records by url or status (default: none)",
			Destination: &searchTerm,
		},
		cli.IntFlag{
			Name:        "pages, p",
			Usage:       "number of history pages to reveal (default: 1)",
			Value:       1,
			Destination: &pageCount,
		},
		cli.BoolFlag{
			Name:        "all, a",
			Usage:       "use this flag to reveal the whole history (default: false)",
			Destination: &showAll,
		},
	}
)

const (
	urlColWidth    = 43
	statusColWidth = 19
	tableWidth     = 3 + urlColWidth + statusColWidth + 4
)

func list(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	env, err := newEnv()
	if err != nil {
		common.PrintRuntimeErr(ctx, "list", "setup", err)
		return nil
	}
	env.applyView(searchTerm, pageCount, showAll)
	rows := env.panel.Rows()
	if len(rows) == 0 {
		fmt.Println(env.text(panel.KeyEmptyHistory))
		return nil
	}
	txt := env.text(panel.KeyHistoryLabel) + ":"
	txt += "\n\n" + strings.Repeat("-", tableWidth)
	txt += fmt.Sprintf("\n|Num|%s|%s|",
		common.Beaut("URL", urlColWidth),
		common.Beaut("Status", statusColWidth),
	)
	txt += "\n|---|" + strings.Repeat("-", urlColWidth) + "|" + strings.Repeat("-", statusColWidth) + "|"
	for i, row := range rows {
		url := common.Beaut(common.Clip(row.Url, urlColWidth), urlColWidth)
		status := common.Beaut(common.Clip(row.Status, statusColWidth), statusColWidth)
		txt += fmt.Sprintf("\n| %d |%s|%s|", i+1, url, status)
	}
	txt += "\n" + strings.Repeat("-", tableWidth)
	fmt.Println(txt)
	if env.panel.CanLoadMore() {
		fmt.Printf("\n%s (%d/%d)\n",
			env.text(panel.KeyLoadMore),
			env.store.VisibleCount(),
			env.store.Len(),
		)
	}
	return nil
}
