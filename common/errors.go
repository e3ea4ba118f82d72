package common

import (
	"fmt"

	"github.com/go-faster/errors"
)

var (
	ErrResourceExhausted = errors.New("resource exhausted")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrNotImplemented    = errors.New("not implemented")
	ErrIndexOutOfRange   = errors.New("index out of range")
)

// IndexOutOfRangeError is returned when a bit or parameter slot of an
// instruction is accessed outside its fixed size.
type IndexOutOfRangeError struct {
	What  string
	Index int
	Len   int
}

func NewIndexOutOfRangeError(what string, index, length int) *IndexOutOfRangeError {
	return &IndexOutOfRangeError{
		What:  what,
		Index: index,
		Len:   length,
	}
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%s index %d is out of range/len:%d", e.What, e.Index, e.Len)
}

func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
