package subcmd

import (
	"github.com/but80/grin/grin/container"
	"github.com/urfave/cli"
)

var Decode = cli.Command{
	Name:      "decode",
	Aliases:   []string{"x"},
	Usage:     "Decompresses a GRIN format file",
	ArgsUsage: "<infile> <outfile>",
	Flags:     codecFlags,
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 2 {
			cli.ShowCommandHelp(ctx, "decode")
			return cli.NewExitError("", 1)
		}
		setLogLevel(ctx)
		if err := runCodec(ctx, "decode", container.DecodeFile); err != nil {
			return exitError(err)
		}
		return nil
	},
}
