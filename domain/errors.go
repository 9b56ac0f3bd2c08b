package domain

import "errors"

var (
	ErrInvalidChain = errors.New("invalid chain")
)
