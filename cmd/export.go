package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/histdl/histdl/cmd/common"
	"github.com/histdl/histdl/internal/panel"
)

func export(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	env, err := newEnv()
	if err != nil {
		common.PrintRuntimeErr(ctx, "export", "setup", err)
		return nil
	}
	if path == "" {
		path = env.cfg.Export.DefaultName
	}
	if err := env.panel.ExportTo(path); err != nil {
		fmt.Printf("%s: %s\n", env.text(panel.KeyExportFailed), err.Error())
		return nil
	}
	fmt.Println(env.panel.Toast().Message())
	return nil
}
