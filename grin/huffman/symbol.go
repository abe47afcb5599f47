package huffman

import "fmt"

// Symbol は、0..255 のバイト値、または終端記号 EOF を表します。
type Symbol uint16

const (
	// EOF は、ストリームの終端を表す記号です。バイト値と衝突することはありません。
	EOF Symbol = 256

	// NumSymbols は、アルファベットの大きさです。
	NumSymbols = 257

	// SymbolBits は、シリアライズされた木の葉に記録される記号のビット数です。
	SymbolBits = 9
)

func (s Symbol) String() string {
	switch {
	case s == EOF:
		return "EOF"
	case 0x20 <= s && s < 0x7F:
		return fmt.Sprintf("0x%02X %q", int(s), rune(s))
	case s < EOF:
		return fmt.Sprintf("0x%02X", int(s))
	}
	return fmt.Sprintf("invalid(%d)", int(s))
}
