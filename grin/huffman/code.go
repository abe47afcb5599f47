package huffman

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/but80/grin/grin/bitio"
	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// MaxCodeSize is the height of the tallest possible tree over NumSymbols leaves.
const MaxCodeSize = NumSymbols - 1

// Code represents a sequence of bits, first bit first.
type Code struct {
	// Size holds the number of valid bits.
	Size int

	// words holds the bits, most significant bit of words[0] first.
	words [MaxCodeSize / 64]uint64
}

// Append returns c followed by one more bit.
func (c Code) Append(bit bool) Code {
	assert.Assertf(c.Size < MaxCodeSize, "code size %d >= MaxCodeSize %d", c.Size, MaxCodeSize)
	if bit {
		c.words[c.Size/64] |= uint64(1) << (63 - uint(c.Size%64))
	}
	c.Size++
	return c
}

// Bit returns the i'th bit of c.
func (c Code) Bit(i int) bool {
	assert.Assertf(0 <= i && i < c.Size, "bit index %d out of range [0, %d)", i, c.Size)
	return (c.words[i/64]>>(63-uint(i%64)))&1 != 0
}

// HasPrefix reports whether p is a prefix of c.
func (c Code) HasPrefix(p Code) bool {
	if c.Size < p.Size {
		return false
	}
	for i := 0; i < p.Size; i++ {
		if c.Bit(i) != p.Bit(i) {
			return false
		}
	}
	return true
}

// Emit writes the bits of c to w, up to 32 at a time.  An empty code writes
// nothing.
func (c Code) Emit(w *bitio.BitWriter) error {
	for off := 0; off < c.Size; off += 32 {
		n := c.Size - off
		if 32 < n {
			n = 32
		}
		shift := uint(64 - off%64 - n)
		v := (c.words[off/64] >> shift) & (uint64(1)<<uint(n) - 1)
		if err := w.WriteBits(uint32(v), n); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

// Bits returns the bits of c as a string of '0' and '1'.
func (c Code) Bits() string {
	var sb strings.Builder
	sb.Grow(c.Size)
	for i := 0; i < c.Size; i++ {
		if c.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// String returns the quoted bit string of c.
func (c Code) String() string {
	return strconv.Quote(c.Bits())
}

func (c Code) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Bits())
}

// ParseCode is the inverse of Code.Bits.
func ParseCode(bits string) (Code, error) {
	var c Code
	if MaxCodeSize < len(bits) {
		return c, errors.Errorf("code too long: %d bits", len(bits))
	}
	for _, ch := range bits {
		switch ch {
		case '0':
			c = c.Append(false)
		case '1':
			c = c.Append(true)
		default:
			return Code{}, errors.Errorf("invalid bit %q in code %q", ch, bits)
		}
	}
	return c, nil
}

// CodeEntry pairs a leaf symbol with its derived code.
type CodeEntry struct {
	Symbol Symbol `json:"symbol"`
	Code   Code   `json:"code"`
	Size   int    `json:"size"`
}
