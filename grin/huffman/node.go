package huffman

// Node は、*Leaf または *Internal のいずれかです。
type Node interface {
	node()
}

type Leaf struct {
	Symbol Symbol
}

type Internal struct {
	Left, Right Node
}

func (*Leaf) node()     {}
func (*Internal) node() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)
