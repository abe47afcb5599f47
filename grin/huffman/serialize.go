package huffman

import (
	"github.com/but80/grin/grin/bitio"
	"github.com/but80/grin/grin/errs"
	"github.com/pkg/errors"
)

// Serialize は、木を前順で書き出します。
// 内部節点は 1、葉は 0 に続けて 9 ビットの記号です。
func (t *Tree) Serialize(w *bitio.BitWriter) error {
	return errors.WithStack(writetree(w, t.root))
}

func writetree(w *bitio.BitWriter, node Node) error {
	switch n := node.(type) {
	case *Internal:
		if err := w.WriteBit(true); err != nil {
			return err
		}
		if err := writetree(w, n.Left); err != nil {
			return err
		}
		return writetree(w, n.Right)
	case *Leaf:
		if err := w.WriteBit(false); err != nil {
			return err
		}
		return w.WriteBits(uint32(n.Symbol), SymbolBits)
	}
	return errs.Errorf(errs.ErrorKind_InternalCodeTable, "unexpected node %T", node)
}

type treeReader struct {
	reader *bitio.BitReader
	seen   [NumSymbols]bool
}

// ReadTree は、Serialize で書き出された木を読み込みます。
func ReadTree(rdr *bitio.BitReader) (*Tree, error) {
	d := &treeReader{reader: rdr}
	root, err := d.readtree(0)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if !d.seen[EOF] {
		return nil, errs.Errorf(errs.ErrorKind_Format, "huffman tree has no EOF leaf")
	}
	return newTree(root), nil
}

func (d *treeReader) readtree(depth int) (Node, error) {
	if MaxCodeSize < depth {
		return nil, errs.Errorf(errs.ErrorKind_Format, "huffman tree deeper than %d", MaxCodeSize)
	}
	bit, err := d.reader.ReadBit()
	if err != nil {
		return nil, err
	}
	if bit {
		left, err := d.readtree(depth + 1) // read left branch
		if err != nil {
			return nil, err
		}
		right, err := d.readtree(depth + 1) // read right branch
		if err != nil {
			return nil, err
		}
		return &Internal{Left: left, Right: right}, nil
	}
	value, err := d.reader.ReadBits(SymbolBits)
	if err != nil {
		return nil, err
	}
	symbol := Symbol(value)
	if EOF < symbol {
		return nil, errs.Errorf(errs.ErrorKind_Format, "invalid symbol %d in huffman tree", value)
	}
	if d.seen[symbol] {
		return nil, errs.Errorf(errs.ErrorKind_Format, "duplicate symbol %s in huffman tree", symbol)
	}
	d.seen[symbol] = true
	return &Leaf{Symbol: symbol}, nil
}

// SerializedBits は、Serialize が書き出すビット数です。
func (t *Tree) SerializedBits() int {
	leaves := t.NumLeaves()
	return (leaves - 1) + leaves*(1+SymbolBits)
}
