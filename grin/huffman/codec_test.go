package huffman

import (
	"bytes"
	"testing"

	"github.com/but80/grin/grin/bitio"
	"github.com/but80/grin/grin/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(tree *Tree, data []byte) ([]byte, error) {
	var buf bytes.Buffer
	err := tree.Encode(bitio.NewBitReader(bytes.NewReader(data)), bitio.NewBitWriter(&buf))
	return buf.Bytes(), err
}

func decode(tree *Tree, data []byte) ([]byte, error) {
	var buf bytes.Buffer
	err := tree.Decode(bitio.NewBitReader(bytes.NewReader(data)), bitio.NewBitWriter(&buf))
	return buf.Bytes(), err
}

func TestTree_EncodeTwoLeaves(t *testing.T) {
	tree := NewTree(FrequencyTable{'A': 3, EOF: 1})
	got, err := encode(tree, []byte("AAA"))
	require.NoError(t, err)
	// "1" x 3 + EOF "0"
	assert.Equal(t, []byte{0xE0}, got)

	out, err := decode(tree, got)
	require.NoError(t, err)
	assert.Equal(t, []byte("AAA"), out)
}

func TestTree_EncodeFourLeaves(t *testing.T) {
	data := []byte("AABACAABA")
	tree := NewTree(CountBytes(data))
	got, err := encode(tree, data)
	require.NoError(t, err)

	out, err := decode(tree, got)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestTree_EncodeAllBytes(t *testing.T) {
	data := make([]byte, 0, 256*3)
	for i := 0; i < 256; i++ {
		for j := 0; j <= i%3; j++ {
			data = append(data, byte(i))
		}
	}
	tree := NewTree(CountBytes(data))
	got, err := encode(tree, data)
	require.NoError(t, err)
	out, err := decode(tree, got)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestTree_SingleLeaf(t *testing.T) {
	tree := NewTree(FrequencyTable{EOF: 1})

	got, err := encode(tree, nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	out, err := decode(tree, nil)
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = encode(tree, []byte("A"))
	assert.True(t, errs.Is(err, errs.ErrorKind_InternalCodeTable), "%v", err)
}

func TestTree_EncodeMissingCode(t *testing.T) {
	tree := NewTree(CountBytes([]byte("AB")))
	_, err := encode(tree, []byte("ABC"))
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrorKind_InternalCodeTable), "%v", err)
}

func TestTree_DecodeTruncated(t *testing.T) {
	tree := NewTree(FrequencyTable{'A': 3, EOF: 1})
	_, err := decode(tree, []byte{0xFF})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrorKind_TruncatedStream), "%v", err)

	_, err = decode(tree, nil)
	assert.True(t, errs.Is(err, errs.ErrorKind_TruncatedStream), "%v", err)
}

func TestTree_DecodeStopsAtEOF(t *testing.T) {
	tree := NewTree(FrequencyTable{'A': 3, EOF: 1})
	// "1 1 0" then bits that must never be read
	out, err := decode(tree, []byte{0xDF, 0xFF})
	require.NoError(t, err)
	assert.Equal(t, []byte("AA"), out)
}
