package grin

import (
	"github.com/golang/protobuf/proto"
)

// Lookup は、記号に対応するエントリを探します。
func (t *CodeTable) Lookup(symbol uint32) (*CodeEntry, bool) {
	for _, e := range t.GetCodes() {
		if e.Symbol == symbol {
			return e, true
		}
	}
	return nil, false
}

// LoadBytes は、バイト列から符号表をロードします。
func (t *CodeTable) LoadBytes(b []byte) error {
	var loaded CodeTable
	err := proto.Unmarshal(b, &loaded)
	if err != nil {
		return err
	}
	*t = loaded
	return nil
}
