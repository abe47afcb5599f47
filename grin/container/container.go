package container

import (
	"bytes"
	"io"
	"os"

	"github.com/but80/grin/grin/bitio"
	"github.com/but80/grin/grin/errs"
	"github.com/but80/grin/grin/huffman"
	"github.com/but80/grin/grin/log"
	"github.com/pkg/errors"
)

const (
	// Magic は、GRIN ファイルの先頭 32 ビットに置かれる値です。
	Magic = 1846

	MagicBits = 32
)

// Encode は、in を GRIN 形式に圧縮して out に書き込みます。
// 出現回数を数えるため、in は2回読まれます。
func Encode(in io.ReadSeeker, out io.Writer) error {
	log.Debugf("counting frequencies")
	freqs, err := huffman.NewFrequencyTable(bitio.NewBitReader(in))
	if err != nil {
		return errors.WithStack(err)
	}
	log.Enter()
	log.Debugf("%d bytes, %d distinct symbols", freqs.Total(), len(freqs)-1)
	log.Leave()

	tree := huffman.NewTree(freqs)
	log.Debugf("built huffman tree: %d leaves, height %d", tree.NumLeaves(), tree.Height())

	if _, err := in.Seek(0, io.SeekStart); err != nil {
		return errs.Wrap(errs.ErrorKind_IO, err, "failed to rewind input")
	}

	w := bitio.NewBitWriter(out)
	if err := w.WriteBits(Magic, MagicBits); err != nil {
		return errors.WithStack(err)
	}
	if err := tree.Serialize(w); err != nil {
		return errors.WithStack(err)
	}
	headerBits := w.BitsWritten()
	if err := tree.Encode(bitio.NewBitReader(in), w); err != nil {
		return errors.WithStack(err)
	}
	log.Enter()
	log.Debugf("header %d bits, payload %d bits", headerBits, w.BitsWritten()-headerBits)
	log.Leave()
	return nil
}

// ReadHeader は、マジックナンバーを検査してから木を読み込みます。
// マジックナンバーが一致しない場合、木は読まれません。
func ReadHeader(rdr *bitio.BitReader) (*huffman.Tree, error) {
	magic, err := rdr.ReadBits(MagicBits)
	if err != nil {
		if errs.Is(err, errs.ErrorKind_TruncatedStream) {
			return nil, errs.Errorf(errs.ErrorKind_Format, "too short for a GRIN file")
		}
		return nil, errors.WithStack(err)
	}
	if magic != Magic {
		return nil, errs.Errorf(errs.ErrorKind_Format, "magic number must be %d, got %d", Magic, magic)
	}
	tree, err := huffman.ReadTree(rdr)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	log.Debugf("read huffman tree: %d leaves, height %d", tree.NumLeaves(), tree.Height())
	return tree, nil
}

// Decode は、GRIN 形式の in を展開して out に書き込みます。
func Decode(in io.Reader, out io.Writer) error {
	rdr := bitio.NewBitReader(in)
	tree, err := ReadHeader(rdr)
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(tree.Decode(rdr, bitio.NewBitWriter(out)))
}

func EncodeBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(bytes.NewReader(data), &buf); err != nil {
		return nil, errors.WithStack(err)
	}
	return buf.Bytes(), nil
}

func DecodeBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Decode(bytes.NewReader(data), &buf); err != nil {
		return nil, errors.WithStack(err)
	}
	return buf.Bytes(), nil
}

// EncodeFile は、infile を圧縮して outfile に書き込みます。
// monitor が nil でなければ、入力の読み出し状況が通知されます。
// 失敗した場合、outfile の内容は保証されません。
func EncodeFile(infile, outfile string, monitor Monitor) error {
	return withFiles(infile, outfile, monitor, func(in io.ReadSeeker, out io.Writer) error {
		return Encode(in, out)
	})
}

// DecodeFile は、infile を展開して outfile に書き込みます。
// 失敗した場合、outfile の内容は保証されません。
func DecodeFile(infile, outfile string, monitor Monitor) error {
	return withFiles(infile, outfile, monitor, func(in io.ReadSeeker, out io.Writer) error {
		return Decode(in, out)
	})
}

func withFiles(infile, outfile string, monitor Monitor, fn func(in io.ReadSeeker, out io.Writer) error) (err error) {
	fh, err := os.Open(infile)
	if err != nil {
		return errs.Wrap(errs.ErrorKind_IO, err, "failed to open input")
	}
	defer fh.Close()

	var in io.ReadSeeker = fh
	if monitor != nil {
		st, err := fh.Stat()
		if err != nil {
			return errs.Wrap(errs.ErrorKind_IO, err, "failed to stat input")
		}
		in = newMonitoredReader(fh, st.Size(), monitor)
	}

	out, err := os.Create(outfile)
	if err != nil {
		return errs.Wrap(errs.ErrorKind_IO, err, "failed to create output")
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = errs.Wrap(errs.ErrorKind_IO, cerr, "failed to close output")
		}
	}()

	return errors.WithStack(fn(in, out))
}
