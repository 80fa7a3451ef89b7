package config

import "errors"

// ErrInvalidConfig is returned when the options fail validation.
var ErrInvalidConfig = errors.New("invalid configuration")
