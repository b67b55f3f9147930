package config

import (
	"errors"
	"fmt"
)

// Error classes returned by the loader. Use errors.Is to test for them.
var (
	ErrParse               = errors.New("invalid descriptor structure")
	ErrInvalidDescriptor   = errors.New("invalid descriptor")
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)

// ParseError reports a descriptor that could not be read or is not well-formed YAML
// of the expected shape.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Invalid YAML structure in `%s`: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// MissingFieldError reports a required key that is absent (or empty, for name).
type MissingFieldError struct {
	Path  string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Missing tag `%s` in `%s`", e.Field, e.Path)
}

func (e *MissingFieldError) Is(target error) bool { return target == ErrInvalidDescriptor }

// LengthMismatchError reports src and dest lists of different lengths.
type LengthMismatchError struct {
	Path         string
	Sources      int
	Destinations int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("Tags `src` (%d entries) and `dest` (%d entries) differ in length in `%s`",
		e.Sources, e.Destinations, e.Path)
}

func (e *LengthMismatchError) Is(target error) bool { return target == ErrInvalidDescriptor }

// UnsupportedPlatformError reports a descriptor without rules for the current platform.
type UnsupportedPlatformError struct {
	Path     string
	Platform string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("Current platform (%s) not found in `%s`", e.Platform, e.Path)
}

func (e *UnsupportedPlatformError) Is(target error) bool { return target == ErrUnsupportedPlatform }
