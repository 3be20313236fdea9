package domain

import "errors"

var (
	ErrInvalidCatalog = errors.New("invalid catalog")
	ErrInvalidScope   = errors.New("invalid scope")
)
