package huffman

import (
	"fmt"
	"sort"
	"strings"

	"github.com/but80/grin/grin/bitio"
	"github.com/pkg/errors"
)

// FrequencyTable は、記号ごとの出現回数です。
type FrequencyTable map[Symbol]uint64

// NewFrequencyTable は、入力を8ビットずつ最後まで読んで出現回数を数え、
// 最後に EOF を回数 1 で追加します。
func NewFrequencyTable(rdr *bitio.BitReader) (FrequencyTable, error) {
	freqs := FrequencyTable{}
	for rdr.HasMore() {
		b, err := rdr.ReadBits(8)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		freqs[Symbol(b)]++
	}
	if err := rdr.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	freqs[EOF] = 1
	return freqs, nil
}

func CountBytes(data []byte) FrequencyTable {
	freqs := FrequencyTable{}
	for _, b := range data {
		freqs[Symbol(b)]++
	}
	freqs[EOF] = 1
	return freqs
}

func (f FrequencyTable) Symbols() []Symbol {
	result := make([]Symbol, 0, len(f))
	for s := range f {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// Total は、EOF を除いた入力バイト数を返します。
func (f FrequencyTable) Total() uint64 {
	total := uint64(0)
	for s, n := range f {
		if s != EOF {
			total += n
		}
	}
	return total
}

func (f FrequencyTable) String() string {
	s := []string{}
	for _, sym := range f.Symbols() {
		s = append(s, fmt.Sprintf("%s: %d", sym, f[sym]))
	}
	return fmt.Sprintf("Frequency Table: %d symbols, %d bytes\n\t", len(f), f.Total()) +
		strings.Join(s, "\n\t")
}
