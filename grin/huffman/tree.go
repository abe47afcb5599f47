package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/but80/grin/grin/util"
	"github.com/chronos-tachyon/assert"
)

// Tree は、ハフマン木と、そこから導出した符号表です。
type Tree struct {
	root  Node
	codes map[Symbol]Code
}

// NewTree は、出現回数表からハフマン木を構築します。
// 出現回数が等しい場合は、含まれる最小の記号が小さい部分木を優先します。
func NewTree(freqs FrequencyTable) *Tree {
	_, hasEOF := freqs[EOF]
	assert.Assertf(hasEOF, "frequency table has no EOF entry")

	h := nodeHeap{list: make([]nodeAndFreq, 0, len(freqs))}
	for _, symbol := range freqs.Symbols() {
		freq := freqs[symbol]
		assert.Assertf(symbol <= EOF, "symbol %d > EOF", int(symbol))
		assert.Assertf(freq != 0, "symbol %s has frequency 0", symbol)
		h.list = append(h.list, nodeAndFreq{node: &Leaf{Symbol: symbol}, freq: freq, min: symbol})
	}
	heap.Init(&h)

	for 1 < h.Len() {
		a := heap.Pop(&h).(nodeAndFreq)
		b := heap.Pop(&h).(nodeAndFreq)
		lowest := a.min
		if b.min < lowest {
			lowest = b.min
		}
		heap.Push(&h, nodeAndFreq{
			node: &Internal{Left: a.node, Right: b.node},
			freq: a.freq + b.freq,
			min:  lowest,
		})
	}

	return newTree(heap.Pop(&h).(nodeAndFreq).node)
}

func newTree(root Node) *Tree {
	t := &Tree{root: root, codes: map[Symbol]Code{}}
	t.deriveCodes(root, Code{})
	return t
}

// deriveCodes は、左の辺を 0、右の辺を 1 として葉までの符号を記録します。
// 根が葉の場合、その符号は空です。
func (t *Tree) deriveCodes(node Node, code Code) {
	switch n := node.(type) {
	case *Leaf:
		t.codes[n.Symbol] = code
	case *Internal:
		t.deriveCodes(n.Left, code.Append(false))
		t.deriveCodes(n.Right, code.Append(true))
	}
}

func (t *Tree) Root() Node {
	return t.root
}

// IsSingleLeaf は、根自体が葉である (空の入力から構築された) ときに true を返します。
func (t *Tree) IsSingleLeaf() bool {
	_, ok := t.root.(*Leaf)
	return ok
}

func (t *Tree) Code(symbol Symbol) (Code, bool) {
	c, ok := t.codes[symbol]
	return c, ok
}

// Codes は、記号の昇順に並べた符号表を返します。
func (t *Tree) Codes() []CodeEntry {
	result := make([]CodeEntry, 0, len(t.codes))
	for s, c := range t.codes {
		result = append(result, CodeEntry{Symbol: s, Code: c, Size: c.Size})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Symbol < result[j].Symbol })
	return result
}

func (t *Tree) NumLeaves() int {
	return len(t.codes)
}

// Height は、最も長い符号のビット数です。
func (t *Tree) Height() int {
	h := 0
	for _, c := range t.codes {
		if h < c.Size {
			h = c.Size
		}
	}
	return h
}

func (t *Tree) String() string {
	result := fmt.Sprintf("Huffman Tree: %d leaves, height %d", t.NumLeaves(), t.Height())
	return result + "\n" + util.Indent(nodeString(t.root), "\t")
}

func nodeString(node Node) string {
	switch n := node.(type) {
	case *Leaf:
		return "Leaf " + n.Symbol.String()
	case *Internal:
		sub := []string{nodeString(n.Left), nodeString(n.Right)}
		return "Internal\n" + util.Indent(strings.Join(sub, "\n"), "\t")
	}
	return "(nil)"
}

// Dump writes a programmer-readable listing of the code table to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tNumLeaves() = %d\n", t.NumLeaves())
	fmt.Fprintf(&buf, "\tHeight() = %d\n", t.Height())
	for _, e := range t.Codes() {
		fmt.Fprintf(&buf, "\tCode(%d) = %s\n", int(e.Symbol), e.Code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type nodeAndFreq + type nodeHeap {{{

type nodeAndFreq struct {
	node Node
	freq uint64
	min  Symbol
}

type nodeHeap struct {
	list []nodeAndFreq
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.min < b.min
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndFreq))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list[last] = nodeAndFreq{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
