package config

import "errors"

var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrMissingOption  = errors.New("missing configuration option")
	ErrInvalidConfig  = errors.New("invalid configuration")
)
