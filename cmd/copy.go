package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/urfave/cli"

	"github.com/histdl/histdl/cmd/common"
)

func copyLink(ctx *cli.Context) error {
	arg := ctx.Args().First()
	if arg == "" {
		if ctx.Command.Name == "" {
			return common.Help(ctx)
		}
		return common.PrintErrWithCmdHelp(
			ctx,
			errors.New("no row number provided"),
		)
	} else if arg == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	num, err := strconv.Atoi(arg)
	if err != nil {
		return common.PrintErrWithCmdHelp(
			ctx,
			fmt.Errorf("invalid row number %q", arg),
		)
	}
	env, err := newEnv()
	if err != nil {
		common.PrintRuntimeErr(ctx, "copy", "setup", err)
		return nil
	}
	env.applyView(searchTerm, pageCount, showAll)
	rows := env.panel.Rows()
	idx := num - 1
	if idx < 0 || idx >= len(rows) {
		common.PrintRuntimeErr(ctx, "copy", "resolve_row",
			fmt.Errorf("row %d is not on the current view of %d rows", num, len(rows)))
		return nil
	}
	if err := env.panel.CopyLink(idx); err != nil {
		common.PrintRuntimeErr(ctx, "copy", "copy_link", err)
		return nil
	}
	fmt.Printf("%s: %s\n", env.panel.Toast().Message(), rows[idx].Url)
	return nil
}
