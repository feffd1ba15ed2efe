package errors

import (
	"fmt"
)

var (
	ErrInvalidConfig   = fmt.Errorf("zora: invalid config")
	ErrNotFound        = fmt.Errorf("zora: not found")
	ErrInvalidParams   = fmt.Errorf("zora: invalid params")
	ErrInternal        = fmt.Errorf("zora: internal error")
	ErrInvalidRequest  = fmt.Errorf("zora: invalid request")
	ErrUnsupportedPart = fmt.Errorf("zora: unsupported message part")
	ErrMissingFileData = fmt.Errorf("zora: missing file data")
)
