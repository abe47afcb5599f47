// Messages for grin.proto.

package grin

import (
	fmt "fmt"
	math "math"

	proto "github.com/golang/protobuf/proto"
)

// Reference imports to suppress errors if they are not otherwise used.
var _ = proto.Marshal
var _ = fmt.Errorf
var _ = math.Inf

// This is a compile-time assertion to ensure that this generated file
// is compatible with the proto package it is being compiled against.
// A compilation error at this line likely means your copy of the
// proto package needs to be updated.
const _ = proto.ProtoPackageIsVersion3 // please upgrade the proto package

// CodeEntry is one leaf of a GRIN huffman tree.
type CodeEntry struct {
	Symbol               uint32   `protobuf:"varint,1,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Code                 string   `protobuf:"bytes,2,opt,name=code,proto3" json:"code,omitempty"`
	Size                 uint32   `protobuf:"varint,3,opt,name=size,proto3" json:"size,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *CodeEntry) Reset()         { *m = CodeEntry{} }
func (m *CodeEntry) String() string { return proto.CompactTextString(m) }
func (*CodeEntry) ProtoMessage()    {}

func (m *CodeEntry) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_CodeEntry.Unmarshal(m, b)
}
func (m *CodeEntry) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_CodeEntry.Marshal(b, m, deterministic)
}
func (m *CodeEntry) XXX_Merge(src proto.Message) {
	xxx_messageInfo_CodeEntry.Merge(m, src)
}
func (m *CodeEntry) XXX_Size() int {
	return xxx_messageInfo_CodeEntry.Size(m)
}
func (m *CodeEntry) XXX_DiscardUnknown() {
	xxx_messageInfo_CodeEntry.DiscardUnknown(m)
}

var xxx_messageInfo_CodeEntry proto.InternalMessageInfo

func (m *CodeEntry) GetSymbol() uint32 {
	if m != nil {
		return m.Symbol
	}
	return 0
}

func (m *CodeEntry) GetCode() string {
	if m != nil {
		return m.Code
	}
	return ""
}

func (m *CodeEntry) GetSize() uint32 {
	if m != nil {
		return m.Size
	}
	return 0
}

// CodeTable describes the header of a GRIN file.
type CodeTable struct {
	Magic                uint32       `protobuf:"varint,1,opt,name=magic,proto3" json:"magic,omitempty"`
	NumLeaves            uint32       `protobuf:"varint,2,opt,name=num_leaves,json=numLeaves,proto3" json:"num_leaves,omitempty"`
	Height               uint32       `protobuf:"varint,3,opt,name=height,proto3" json:"height,omitempty"`
	Codes                []*CodeEntry `protobuf:"bytes,4,rep,name=codes,proto3" json:"codes,omitempty"`
	FileSize             int64        `protobuf:"varint,5,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	XXX_NoUnkeyedLiteral struct{}     `json:"-"`
	XXX_unrecognized     []byte       `json:"-"`
	XXX_sizecache        int32        `json:"-"`
}

func (m *CodeTable) Reset()         { *m = CodeTable{} }
func (m *CodeTable) String() string { return proto.CompactTextString(m) }
func (*CodeTable) ProtoMessage()    {}

func (m *CodeTable) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_CodeTable.Unmarshal(m, b)
}
func (m *CodeTable) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_CodeTable.Marshal(b, m, deterministic)
}
func (m *CodeTable) XXX_Merge(src proto.Message) {
	xxx_messageInfo_CodeTable.Merge(m, src)
}
func (m *CodeTable) XXX_Size() int {
	return xxx_messageInfo_CodeTable.Size(m)
}
func (m *CodeTable) XXX_DiscardUnknown() {
	xxx_messageInfo_CodeTable.DiscardUnknown(m)
}

var xxx_messageInfo_CodeTable proto.InternalMessageInfo

func (m *CodeTable) GetMagic() uint32 {
	if m != nil {
		return m.Magic
	}
	return 0
}

func (m *CodeTable) GetNumLeaves() uint32 {
	if m != nil {
		return m.NumLeaves
	}
	return 0
}

func (m *CodeTable) GetHeight() uint32 {
	if m != nil {
		return m.Height
	}
	return 0
}

func (m *CodeTable) GetCodes() []*CodeEntry {
	if m != nil {
		return m.Codes
	}
	return nil
}

func (m *CodeTable) GetFileSize() int64 {
	if m != nil {
		return m.FileSize
	}
	return 0
}

func init() {
	proto.RegisterType((*CodeEntry)(nil), "grin.CodeEntry")
	proto.RegisterType((*CodeTable)(nil), "grin.CodeTable")
}
