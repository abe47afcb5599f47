package subcmd

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/ahmetalpbalkan/go-cursor"
	"github.com/but80/grin/grin/container"
	"github.com/but80/grin/grin/errs"
	"github.com/but80/grin/grin/log"
	"github.com/but80/grin/grin/util"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"github.com/xlab/closer"
)

var logFlags = []cli.Flag{
	cli.BoolFlag{
		Name:   "debug, d",
		Usage:  `Show debug messages`,
		EnvVar: "GRIN_DEBUG",
	},
	cli.BoolFlag{
		Name:  "quiet, q",
		Usage: `Suppress information messages`,
	},
	cli.BoolFlag{
		Name:  "silent, Q",
		Usage: `Do not output any messages`,
	},
}

var codecFlags = append([]cli.Flag{
	cli.BoolFlag{
		Name:  "force, f",
		Usage: `Overwrite the output file if it exists`,
	},
	cli.BoolFlag{
		Name:   "progress, p",
		Usage:  `Show progress`,
		EnvVar: "GRIN_PROGRESS",
	},
}, logFlags...)

func setLogLevel(ctx *cli.Context) {
	if ctx.Bool("debug") {
		log.Level = log.LogLevel_Debug
	} else if ctx.Bool("silent") {
		log.Level = log.LogLevel_None
	} else if ctx.Bool("quiet") {
		log.Level = log.LogLevel_Warn
	}
}

// progressOutput は、進捗表示の出力先です。
var progressOutput io.Writer = os.Stderr

func newProgress(label string) container.Monitor {
	var last time.Time
	return func(pass int, done, total int64) {
		now := time.Now()
		if done < total && now.Sub(last) < 100*time.Millisecond {
			return
		}
		last = now
		percent := int64(100)
		if 0 < total {
			percent = done * 100 / total
		}
		fmt.Fprint(progressOutput, "\r"+cursor.ClearEntireLine())
		fmt.Fprintf(progressOutput, "%s [pass %d] %3d%% (%d / %d bytes)", label, pass, percent, done, total)
	}
}

type codecFunc func(infile, outfile string, monitor container.Monitor) error

// runCodec は、出力先と同じディレクトリの一時ファイルに書き込み、成功したときだけ
// outfile へリネームします。中断された場合は一時ファイルを削除します。
func runCodec(ctx *cli.Context, label string, fn codecFunc) error {
	infile, outfile := ctx.Args().Get(0), ctx.Args().Get(1)
	if !ctx.Bool("force") {
		if _, err := os.Stat(outfile); err == nil {
			return errors.Errorf("%s already exists (use --force to overwrite)", outfile)
		}
	}

	tmp, err := ioutil.TempFile(filepath.Dir(outfile), "."+filepath.Base(outfile)+".tmp-*")
	if err != nil {
		return errs.Wrap(errs.ErrorKind_IO, err, "failed to create temporary file")
	}
	tmpfile := tmp.Name()
	tmp.Close()
	closer.Bind(func() {
		os.Remove(tmpfile)
	})

	var monitor container.Monitor
	if ctx.Bool("progress") && log.LogLevel_Info <= log.Level {
		monitor = newProgress(label)
	}
	log.Debugf("%s %s -> %s", label, infile, tmpfile)
	err = fn(infile, tmpfile, monitor)
	if monitor != nil {
		fmt.Fprintln(progressOutput)
	}
	if err != nil {
		os.Remove(tmpfile)
		return errors.WithStack(err)
	}
	if err := os.Rename(tmpfile, outfile); err != nil {
		os.Remove(tmpfile)
		return errs.Wrap(errs.ErrorKind_IO, err, "failed to rename output")
	}

	insize, outsize := fileSize(infile), fileSize(outfile)
	log.Infof("%s: %s (%d bytes) -> %s (%d bytes, %s)", label, infile, insize, outfile, outsize, util.Ratio(outsize, insize))
	return nil
}

func fileSize(file string) int64 {
	st, err := os.Stat(file)
	if err != nil {
		return 0
	}
	return st.Size()
}

func exitError(err error) error {
	log.Debugf("%+v", err)
	return cli.NewExitError(err, 1)
}
