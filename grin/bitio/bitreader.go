package bitio

import (
	"bufio"
	"io"

	"github.com/but80/grin/grin/errs"
	"github.com/pkg/errors"
)

// BitReader は、バイト列を上位ビットから順に読み出すリーダです。
type BitReader struct {
	reader *bufio.Reader
	buf    uint8
	rest   int
	err    error
}

func NewBitReader(rdr io.Reader) *BitReader {
	br, ok := rdr.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(rdr)
	}
	return &BitReader{reader: br}
}

func (r *BitReader) fill() error {
	b, err := r.reader.ReadByte()
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errs.Errorf(errs.ErrorKind_TruncatedStream, "no more bits to read")
	}
	if err != nil {
		r.err = err
		return errs.Wrap(errs.ErrorKind_IO, err, "failed to read")
	}
	r.buf = b
	r.rest = 8
	return nil
}

func (r *BitReader) ReadBit() (bool, error) {
	if r.rest == 0 {
		if err := r.fill(); err != nil {
			return false, err
		}
	}
	/*
	   buf 01234567  rest=8
	   buf 1234567-  rest=7
	   buf 234567--  rest=6
	   ..
	   buf 7-------  rest=1
	   buf --------  rest=0
	*/
	result := r.buf&0x80 != 0
	r.buf <<= 1
	r.rest--
	return result, nil
}

// ReadBits は、n ビット (1..32) を上位ビットから順に連結した値を返します。
func (r *BitReader) ReadBits(n int) (uint32, error) {
	if n < 1 || 32 < n {
		return 0, errors.Errorf("bit count out of range: %d", n)
	}
	result := uint32(0)
	for 0 < n {
		if r.rest == 0 {
			if err := r.fill(); err != nil {
				return 0, err
			}
		}
		take := n
		if r.rest < take {
			take = r.rest
		}
		result = result<<uint(take) | uint32(r.buf>>uint(8-take))
		r.buf <<= uint(take)
		r.rest -= take
		n -= take
	}
	return result, nil
}

// HasMore は、未読のビットが1つ以上残っているときに true を返します。
// 読み出しエラーが発生した場合は false を返し、エラーは Err で取得できます。
func (r *BitReader) HasMore() bool {
	if 0 < r.rest {
		return true
	}
	if r.err != nil {
		return false
	}
	_, err := r.reader.Peek(1)
	if err != nil && err != io.EOF {
		r.err = err
	}
	return err == nil
}

// Err は、HasMore などで発生した EOF 以外の読み出しエラーを返します。
func (r *BitReader) Err() error {
	if r.err == nil {
		return nil
	}
	return errs.Wrap(errs.ErrorKind_IO, r.err, "failed to read")
}
