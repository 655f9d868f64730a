package cmd

import (
	"fmt"
	"runtime"

	"github.com/urfave/cli"

	"github.com/histdl/histdl/cmd/common"
)

type BuildArgs struct {
	Version   string
	BuildType string
	Date      string
	Commit    string
}

func Execute(args []string, bArgs BuildArgs) error {
	app := cli.App{
		Name:                  "histdl",
		HelpName:              "histdl",
		Usage:                 "A download history manager.",
		Version:               fmt.Sprintf("%s-%s", bArgs.Version, bArgs.BuildType),
		UsageText:             "histdl <command> [arguments...]",
		Description:           DESCRIPTION,
		CustomAppHelpTemplate: HELP_TEMPL,
		OnUsageError:          common.UsageErrorCallback,
		Commands: []cli.Command{
			{
				Name:                   "list",
				Aliases:                []string{"l"},
				Usage:                  "display your download history",
				Action:                 list,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            ListDescription,
				UseShortOptionHandling: true,
				Flags:                  viewFlags,
			},
			{
				Name:                   "add",
				Aliases:                []string{"a"},
				Usage:                  "append a record to the history",
				Action:                 add,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            AddDescription,
				UseShortOptionHandling: true,
			},
			{
				Name:                   "delete",
				Aliases:                []string{"d"},
				Usage:                  "delete a record by its row number",
				Action:                 deleteRecord,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            DeleteDescription,
				UseShortOptionHandling: true,
				Flags:                  viewFlags,
			},
			{
				Name:                   "clear",
				Aliases:                []string{"c"},
				Usage:                  "clear the whole download history",
				Action:                 clear,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            ClearDescription,
				UseShortOptionHandling: true,
				Flags:                  clrFlags,
			},
			{
				Name:                   "export",
				Aliases:                []string{"e"},
				Usage:                  "export the history to a text file",
				Action:                 export,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            ExportDescription,
				UseShortOptionHandling: true,
			},
			{
				Name:                   "copy",
				Usage:                  "copy a record's url to the clipboard",
				Action:                 copyLink,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            CopyDescription,
				UseShortOptionHandling: true,
				Flags:                  viewFlags,
			},
			{
				Name:                   "open",
				Aliases:                []string{"o"},
				Usage:                  "open a record's url in the browser",
				Action:                 openLink,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            OpenDescription,
				UseShortOptionHandling: true,
				Flags:                  viewFlags,
			},
			{
				Name:                   "import",
				Aliases:                []string{"m"},
				Usage:                  "import downloads from a browser's history",
				Action:                 importHistory,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            ImportDescription,
				UseShortOptionHandling: true,
				Flags:                  impFlags,
			},
			{
				Name:    "help",
				Aliases: []string{"h"},
				Usage:   "prints the help message",
				Action:  common.Help,
			},
			{
				Name:               "version",
				Aliases:            []string{"v"},
				Usage:              "prints installed version of histdl",
				UsageText:          " ",
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             common.GetVersion,
			},
		},
		Action:                 list,
		Flags:                  viewFlags,
		UseShortOptionHandling: true,
		HideHelp:               true,
		HideVersion:            true,
	}
	common.VersionCmdStr = fmt.Sprintf("%s %s (%s_%s)\nBuild: %s=%s\n",
		app.Name,
		app.Version,
		runtime.GOOS,
		runtime.GOARCH,
		bArgs.Date, bArgs.Commit,
	)
	return app.Run(args)
}
