package main

import (
	"os"

	"github.com/but80/grin/subcmd"
	"github.com/urfave/cli"
)

var version string

func init() {
	if version == "" {
		version = "unknown"
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "grin"
	app.Version = version
	app.Usage = "Compresses files with static Huffman coding (GRIN format)"
	app.Authors = []cli.Author{
		{
			Name:  "but80",
			Email: "mersenne.sister@gmail.com",
		},
	}
	app.HelpName = "grin"

	app.Commands = []cli.Command{
		subcmd.Encode,
		subcmd.Decode,
		subcmd.Dump,
	}

	app.Action = func(ctx *cli.Context) error {
		cli.ShowAppHelp(ctx)
		return nil
	}
	return app
}

func main() {
	newApp().Run(os.Args)
}
