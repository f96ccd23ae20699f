package worldgen

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when there is nothing to generate: a
	// non-positive world size, an empty biome list or a biome without octaves.
	ErrEmptyInput = errors.New("empty generation input")
	// ErrInvalidParameter is returned when a biome field is out of its domain.
	ErrInvalidParameter = errors.New("invalid biome parameter")
)

// ParamError names the biome field that failed validation.
type ParamError struct {
	Index  int
	Name   string
	Field  string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("biome %d (%s): %s %s", e.Index, e.Name, e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidParameter.
func (e *ParamError) Unwrap() error {
	return ErrInvalidParameter
}
