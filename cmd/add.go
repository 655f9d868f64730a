package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli"

	cmdCommon "github.com/histdl/histdl/cmd/common"
	"github.com/histdl/histdl/common"
)

func add(ctx *cli.Context) error {
	url := ctx.Args().First()
	if url == "" {
		if ctx.Command.Name == "" {
			return cmdCommon.Help(ctx)
		}
		return cmdCommon.PrintErrWithCmdHelp(
			ctx,
			errors.New("no url provided"),
		)
	} else if url == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	url = strings.TrimSpace(url)
	status := ctx.Args().Get(1)
	if status == "" {
		status = common.StatusComplete
	}
	env, err := newEnv()
	if err != nil {
		cmdCommon.PrintRuntimeErr(ctx, "add", "setup", err)
		return nil
	}
	env.panel.Add(url, status)
	fmt.Printf("Recorded %s [%s]\n", url, status)
	return nil
}
