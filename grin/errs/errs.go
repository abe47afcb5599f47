package errs

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

type ErrorKind int

const (
	ErrorKind_Unknown ErrorKind = iota
	ErrorKind_IO
	ErrorKind_Format
	ErrorKind_TruncatedStream
	ErrorKind_InternalCodeTable
)

func (k ErrorKind) String() string {
	s := "undefined"
	switch k {
	case ErrorKind_Unknown:
		s = "Unknown"
	case ErrorKind_IO:
		s = "IOError"
	case ErrorKind_Format:
		s = "FormatError"
	case ErrorKind_TruncatedStream:
		s = "TruncatedStreamError"
	case ErrorKind_InternalCodeTable:
		s = "InternalCodeTableError"
	}
	return s
}

func (k ErrorKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Error は、種別付きのエラーです。
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Err.Error()
}

// Cause は、github.com/pkg/errors の Cause から参照されます。
func (e *Error) Cause() error {
	return e.Err
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf は、指定した種別の新しいエラーをスタックトレース付きで作成します。
func Errorf(kind ErrorKind, format string, args ...interface{}) error {
	return errors.WithStack(&Error{Kind: kind, Err: fmt.Errorf(format, args...)})
}

// Wrap は、既存のエラーに種別を付与します。err が nil のときは nil を返します。
func Wrap(kind ErrorKind, err error, message string) error {
	if err == nil {
		return nil
	}
	return errors.WithStack(&Error{Kind: kind, Err: errors.WithMessage(err, message)})
}

// KindOf は、err の連鎖から最も外側の種別を取り出します。
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrorKind_Unknown
}

// Is は、err の種別が kind であるかを判定します。
func Is(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}
