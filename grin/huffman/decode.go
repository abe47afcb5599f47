package huffman

import (
	"github.com/but80/grin/grin/bitio"
	"github.com/but80/grin/grin/errs"
	"github.com/pkg/errors"
)

// Decode は、EOF の葉に到達するまで符号を読み、各記号の下位8ビットを書き込んでから
// out をクローズします。EOF より前に入力が尽きた場合は TruncatedStream エラーです。
func (t *Tree) Decode(in *bitio.BitReader, out *bitio.BitWriter) error {
	for {
		j := t.root
		for {
			node, ok := j.(*Internal)
			if !ok {
				break
			}
			b, err := in.ReadBit()
			if err != nil {
				return errors.WithStack(err)
			}
			if b {
				j = node.Right
			} else {
				j = node.Left
			}
		}
		leaf := j.(*Leaf)
		if leaf.Symbol == EOF {
			break
		}
		if j == t.root {
			return errs.Errorf(errs.ErrorKind_Format, "single-leaf tree without EOF")
		}
		if err := out.WriteBits(uint32(leaf.Symbol)&0xFF, 8); err != nil {
			return errors.WithStack(err)
		}
	}
	return errors.WithStack(out.Close())
}
