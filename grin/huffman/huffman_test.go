package huffman

import (
	"bytes"
	"testing"

	"github.com/but80/grin/grin/bitio"
	"github.com/stretchr/testify/require"
)

func mustCode(t *testing.T, bits string) Code {
	t.Helper()
	c, err := ParseCode(bits)
	require.NoError(t, err)
	return c
}

func codeMap(tree *Tree) map[Symbol]string {
	result := map[Symbol]string{}
	for _, e := range tree.Codes() {
		result[e.Symbol] = e.Code.Bits()
	}
	return result
}

func serialize(t *testing.T, tree *Tree) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := bitio.NewBitWriter(&buf)
	require.NoError(t, tree.Serialize(w))
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func bitsToBytes(t *testing.T, bits string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := bitio.NewBitWriter(&buf)
	for _, ch := range bits {
		require.NoError(t, w.WriteBit(ch == '1'))
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}
