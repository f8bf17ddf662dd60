package ir

import "errors"

var (
	ErrNoPath  = errors.New("no such path")
	ErrBadPath = errors.New("bad path")
)
