package bitio

import (
	"bufio"
	"io"

	"github.com/but80/grin/grin/errs"
	"github.com/pkg/errors"
)

// BitWriter は、ビット単位の書き込みを蓄積し、8ビット揃うごとにバイトとして出力します。
type BitWriter struct {
	writer  *bufio.Writer
	buf     uint8
	nbits   int
	written int64
	closed  bool
}

func NewBitWriter(w io.Writer) *BitWriter {
	return &BitWriter{writer: bufio.NewWriter(w)}
}

func (w *BitWriter) WriteBit(bit bool) error {
	if w.closed {
		return errors.New("write to closed BitWriter")
	}
	w.buf <<= 1
	if bit {
		w.buf |= 1
	}
	w.nbits++
	w.written++
	if w.nbits == 8 {
		return w.flushByte()
	}
	return nil
}

// WriteBits は、value の下位 n ビット (1..32) を上位ビットから順に書き込みます。
func (w *BitWriter) WriteBits(value uint32, n int) error {
	if n < 1 || 32 < n {
		return errors.Errorf("bit count out of range: %d", n)
	}
	if w.closed {
		return errors.New("write to closed BitWriter")
	}
	for 0 < n {
		take := 8 - w.nbits
		if n < take {
			take = n
		}
		chunk := uint8(value>>uint(n-take)) & (1<<uint(take) - 1)
		w.buf = w.buf<<uint(take) | chunk
		w.nbits += take
		w.written += int64(take)
		n -= take
		if w.nbits == 8 {
			if err := w.flushByte(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *BitWriter) flushByte() error {
	err := w.writer.WriteByte(w.buf)
	w.buf = 0
	w.nbits = 0
	if err != nil {
		return errs.Wrap(errs.ErrorKind_IO, err, "failed to write")
	}
	return nil
}

// BitsWritten は、パディングを除いて書き込まれたビット数を返します。
func (w *BitWriter) BitsWritten() int64 {
	return w.written
}

// Close は、端数のビットを 0 で埋めて出力し、バッファをフラッシュします。
// 出力先自体はクローズしません。
func (w *BitWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if 0 < w.nbits {
		w.buf <<= uint(8 - w.nbits)
		if err := w.flushByte(); err != nil {
			return err
		}
	}
	if err := w.writer.Flush(); err != nil {
		return errs.Wrap(errs.ErrorKind_IO, err, "failed to flush")
	}
	return nil
}
