package huffman

import (
	"github.com/but80/grin/grin/bitio"
	"github.com/but80/grin/grin/errs"
	"github.com/pkg/errors"
)

// Encode は、入力の各バイトの符号と、最後に EOF の符号を一度だけ書き込み、
// out をクローズします。木は同じ入力の出現回数表から構築されている必要があります。
func (t *Tree) Encode(in *bitio.BitReader, out *bitio.BitWriter) error {
	if t.IsSingleLeaf() {
		// The only leaf is EOF and its code is empty.
		if in.HasMore() {
			return errs.Errorf(errs.ErrorKind_InternalCodeTable, "no code for data bytes in a single-leaf tree")
		}
		if err := in.Err(); err != nil {
			return errors.WithStack(err)
		}
		return errors.WithStack(out.Close())
	}

	for in.HasMore() {
		b, err := in.ReadBits(8)
		if err != nil {
			return errors.WithStack(err)
		}
		if err := t.emit(out, Symbol(b)); err != nil {
			return err
		}
	}
	if err := in.Err(); err != nil {
		return errors.WithStack(err)
	}
	if err := t.emit(out, EOF); err != nil {
		return err
	}
	return errors.WithStack(out.Close())
}

func (t *Tree) emit(out *bitio.BitWriter, symbol Symbol) error {
	code, ok := t.codes[symbol]
	if !ok {
		return errs.Errorf(errs.ErrorKind_InternalCodeTable, "no code for symbol %s", symbol)
	}
	return errors.WithStack(code.Emit(out))
}
