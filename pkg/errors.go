package pkg

import "errors"

var (
	ErrUnknownSymbol      = errors.New("symbol not found in code table")
	ErrInvalidEncoding    = errors.New("invalid encoded payload")
	ErrMalformedTree      = errors.New("malformed tree data")
	ErrTruncatedTree      = errors.New("truncated tree data")
	ErrMalformedContainer = errors.New("malformed container")
	ErrInvalidText        = errors.New("text is not valid UTF-8")
	ErrNotContainer       = errors.New("file is not a .hmc container")
)
