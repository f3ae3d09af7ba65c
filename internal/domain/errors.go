package domain

import "errors"

// ErrInvalidInput marks a truly invalid call (nil record). Ordinary
// "no match" outcomes are values, never errors.
var ErrInvalidInput = errors.New("invalid input")
