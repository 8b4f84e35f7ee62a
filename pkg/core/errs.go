package core

import "errors"

var (
	ErrUnknownXKind  = errors.New("unknown x value kind")
	ErrInvalidXValue = errors.New("invalid x value")
)
