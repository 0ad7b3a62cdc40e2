package membuf

import "errors"

var (
	ErrAllocateFailed = errors.New("allocate failed")
	ErrOutOfRange     = errors.New("out of range")
)
