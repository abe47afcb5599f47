package subcmd

import (
	"github.com/but80/grin/grin/container"
	"github.com/urfave/cli"
)

var Encode = cli.Command{
	Name:      "encode",
	Aliases:   []string{"e"},
	Usage:     "Compresses a file into GRIN format",
	ArgsUsage: "<infile> <outfile>",
	Flags:     codecFlags,
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 2 {
			cli.ShowCommandHelp(ctx, "encode")
			return cli.NewExitError("", 1)
		}
		setLogLevel(ctx)
		if err := runCodec(ctx, "encode", container.EncodeFile); err != nil {
			return exitError(err)
		}
		return nil
	},
}
