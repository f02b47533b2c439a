package bridge

import (
	"errors"
)

var (
	ErrSheetNotFound   = errors.New("sheet not found")
	ErrSheetIndex      = errors.New("sheet index out of range")
	ErrInvalidCell     = errors.New("invalid cell address")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrNoFolder        = errors.New("destination folder not specified")
)
