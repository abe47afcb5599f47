package subcmd

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/but80/grin/grin/log"
	pb "github.com/but80/grin/pb/grin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

func newTestApp(out *bytes.Buffer) *cli.App {
	app := cli.NewApp()
	app.Name = "grin"
	app.Writer = out
	app.ErrWriter = out
	app.Commands = []cli.Command{Encode, Decode, Dump}
	return app
}

func setup(t *testing.T) (string, []byte) {
	oldLevel, oldOutput, oldExiter, oldProgress := log.Level, log.Output, cli.OsExiter, progressOutput
	log.Level = log.LogLevel_Info
	log.Output = ioutil.Discard
	cli.OsExiter = func(int) {}
	progressOutput = ioutil.Discard
	t.Cleanup(func() {
		log.Level, log.Output, cli.OsExiter, progressOutput = oldLevel, oldOutput, oldExiter, oldProgress
	})

	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	data := bytes.Repeat([]byte("she sells sea shells by the sea shore\n"), 100)
	require.NoError(t, ioutil.WriteFile(src, data, 0644))
	return src, data
}

func TestEncodeDecode(t *testing.T) {
	src, data := setup(t)
	grin := src + ".grin"
	dst := src + ".out"

	var out bytes.Buffer
	app := newTestApp(&out)
	require.NoError(t, app.Run([]string{"grin", "encode", "-p", src, grin}))
	require.NoError(t, app.Run([]string{"grin", "decode", "-Q", grin, dst}))

	got, err := ioutil.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(src), ".*.tmp-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestEncode_RefusesOverwrite(t *testing.T) {
	src, _ := setup(t)
	grin := src + ".grin"
	require.NoError(t, ioutil.WriteFile(grin, []byte("keep me"), 0644))

	var out bytes.Buffer
	app := newTestApp(&out)
	err := app.Run([]string{"grin", "encode", "-Q", src, grin})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "already exists"), err.Error())

	kept, err := ioutil.ReadFile(grin)
	require.NoError(t, err)
	assert.Equal(t, []byte("keep me"), kept)

	require.NoError(t, app.Run([]string{"grin", "encode", "-Q", "-f", src, grin}))
}

func TestDecode_FailureLeavesNoOutput(t *testing.T) {
	src, _ := setup(t)
	dst := src + ".out"

	var out bytes.Buffer
	app := newTestApp(&out)
	err := app.Run([]string{"grin", "decode", "-Q", src, dst})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "FormatError"), err.Error())

	_, err = os.Stat(dst)
	assert.True(t, os.IsNotExist(err))
}

func TestDump(t *testing.T) {
	src, _ := setup(t)
	grin := src + ".grin"
	var out bytes.Buffer
	app := newTestApp(&out)
	require.NoError(t, app.Run([]string{"grin", "encode", "-Q", src, grin}))

	out.Reset()
	require.NoError(t, app.Run([]string{"grin", "dump", grin}))
	assert.True(t, strings.HasPrefix(out.String(), "GRIN File: "+grin), out.String())

	out.Reset()
	require.NoError(t, app.Run([]string{"grin", "dump", "-t", grin}))
	assert.True(t, strings.HasPrefix(out.String(), "Huffman Tree: "), out.String())

	out.Reset()
	require.NoError(t, app.Run([]string{"grin", "dump", "-j", grin}))
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, float64(1846), decoded["magic"])

	out.Reset()
	require.NoError(t, app.Run([]string{"grin", "dump", "-P", grin}))
	var table pb.CodeTable
	require.NoError(t, table.LoadBytes(out.Bytes()))
	assert.Equal(t, uint32(1846), table.GetMagic())
}
