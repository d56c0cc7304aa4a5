package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/bluesky-social/bstree/util/cliutil"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	return newApp().Run(args)
}

func newApp() *cli.App {
	app := cli.App{
		Name:    "bst-tool",
		Usage:   "development tool for building and inspecting binary search trees",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (eg: warn, info, debug)",
				Value:   "warn",
				EnvVars: []string{"BST_LOG_LEVEL", "GO_LOG_LEVEL", "LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "type",
				Usage:   "type of tree values (int or string)",
				Value:   "int",
				EnvVars: []string{"BST_VALUE_TYPE"},
			},
		},
		Before: func(cctx *cli.Context) error {
			cliutil.ConfigLogger(cctx, cctx.App.ErrWriter)
			return nil
		},
	}
	app.Commands = []*cli.Command{
		cmdBuild,
		cmdPrint,
		cmdContains,
		cmdRemove,
		cmdVisit,
	}
	return &app
}
