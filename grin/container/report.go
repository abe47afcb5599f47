package container

import (
	"fmt"
	"os"
	"strings"

	"github.com/but80/grin/grin/bitio"
	"github.com/but80/grin/grin/errs"
	"github.com/but80/grin/grin/huffman"
	"github.com/but80/grin/grin/util"
	pb "github.com/but80/grin/pb/grin"
	"github.com/pkg/errors"
)

// Report は、GRIN ファイルのヘッダ情報です。
type Report struct {
	File       string              `json:"file"`
	FileSize   int64               `json:"file_size"`
	Magic      uint32              `json:"magic"`
	HeaderBits int                 `json:"header_bits"`
	NumLeaves  int                 `json:"num_leaves"`
	Height     int                 `json:"height"`
	Codes      []huffman.CodeEntry `json:"codes"`
	Tree       *huffman.Tree       `json:"-"`
}

// Inspect は、GRIN ファイルのヘッダを読み込みます。ペイロードは読みません。
func Inspect(file string) (*Report, error) {
	fh, err := os.Open(file)
	if err != nil {
		return nil, errs.Wrap(errs.ErrorKind_IO, err, "failed to open input")
	}
	defer fh.Close()

	st, err := fh.Stat()
	if err != nil {
		return nil, errs.Wrap(errs.ErrorKind_IO, err, "failed to stat input")
	}
	tree, err := ReadHeader(bitio.NewBitReader(fh))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return newReport(file, st.Size(), tree), nil
}

func newReport(file string, size int64, tree *huffman.Tree) *Report {
	return &Report{
		File:       file,
		FileSize:   size,
		Magic:      Magic,
		HeaderBits: MagicBits + tree.SerializedBits(),
		NumLeaves:  tree.NumLeaves(),
		Height:     tree.Height(),
		Codes:      tree.Codes(),
		Tree:       tree,
	}
}

func (r *Report) String() string {
	result := fmt.Sprintf("GRIN File: %s, %d bytes", r.File, r.FileSize)
	sub := []string{
		fmt.Sprintf("Magic = %d %s", r.Magic, util.Hex([]byte{byte(r.Magic >> 24), byte(r.Magic >> 16), byte(r.Magic >> 8), byte(r.Magic)})),
		fmt.Sprintf("Header = %d bits", r.HeaderBits),
		r.Tree.String(),
	}
	codes := []string{}
	for _, e := range r.Codes {
		codes = append(codes, fmt.Sprintf("%s = %s", e.Symbol, e.Code))
	}
	sub = append(sub, "Codes:\n"+util.Indent(strings.Join(codes, "\n"), "\t"))
	return result + "\n" + util.Indent(strings.Join(sub, "\n"), "\t")
}

func (r *Report) ToPB() *pb.CodeTable {
	result := &pb.CodeTable{
		Magic:     r.Magic,
		NumLeaves: uint32(r.NumLeaves),
		Height:    uint32(r.Height),
		FileSize:  r.FileSize,
		Codes:     make([]*pb.CodeEntry, 0, len(r.Codes)),
	}
	for _, e := range r.Codes {
		result.Codes = append(result.Codes, &pb.CodeEntry{
			Symbol: uint32(e.Symbol),
			Code:   e.Code.Bits(),
			Size:   uint32(e.Size),
		})
	}
	return result
}
