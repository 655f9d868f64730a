package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/histdl/histdl/cmd/common"
	"github.com/histdl/histdl/internal/panel"
)

var (
	forceClear bool

	clrFlags = []cli.Flag{
		cli.BoolFlag{
			Name:        "force, f",
			Usage:       "use this flag to skip the confirmation prompt (default: false)",
			Destination: &forceClear,
		},
	}
)

func clear(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	env, err := newEnv()
	if err != nil {
		common.PrintRuntimeErr(ctx, "clear", "setup", err)
		return nil
	}
	if !confirm(env.text(panel.KeyClearConfirm), "Cancelled clear operation!", forceClear) {
		return nil
	}
	env.panel.Clear()
	fmt.Println("Cleared all download history!")
	return nil
}
