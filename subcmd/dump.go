package subcmd

import (
	"encoding/json"
	"fmt"

	"github.com/but80/grin/grin/container"
	"github.com/golang/protobuf/proto"
	"github.com/urfave/cli"
)

var Dump = cli.Command{
	Name:      "dump",
	Aliases:   []string{"d"},
	Usage:     "Dumps the huffman tree of a GRIN format file",
	ArgsUsage: "<filename>",
	Flags: append([]cli.Flag{
		cli.BoolFlag{
			Name:  "json, j",
			Usage: `Dumps in JSON format`,
		},
		cli.BoolFlag{
			Name:  "protobuf, P",
			Usage: `Dumps in protobuf`,
		},
		cli.BoolFlag{
			Name:  "tree, t",
			Usage: `Dumps the tree only`,
		},
	}, logFlags...),
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 {
			cli.ShowCommandHelp(ctx, "dump")
			return cli.NewExitError("", 1)
		}
		setLogLevel(ctx)
		report, err := container.Inspect(ctx.Args().Get(0))
		if err != nil {
			return exitError(err)
		}
		var data fmt.Stringer = report
		if ctx.Bool("tree") {
			data = report.Tree
		}
		w := ctx.App.Writer
		if ctx.Bool("json") {
			j, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return exitError(err)
			}
			fmt.Fprintln(w, string(j))
		} else if ctx.Bool("protobuf") {
			b, err := proto.Marshal(report.ToPB())
			if err != nil {
				return exitError(err)
			}
			w.Write(b)
		} else {
			fmt.Fprintln(w, data.String())
		}
		return nil
	},
}
