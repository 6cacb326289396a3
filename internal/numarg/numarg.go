// Copyright (c) 2026 FFI-Example Team
// FFI-Example - native integer routines over the C ABI
// This source code is licensed under the MIT license found in the LICENSE file.

// Package numarg parses unsigned decimal command-line arguments and
// classifies the ways they can be wrong.
package numarg

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrInvalidNumber = errors.New("invalid number")
	ErrOutOfRange    = errors.New("number out of range")
)

// Kind is a coarse classification of a parse failure.
type Kind string

const (
	KindInvalid    Kind = "invalid"
	KindOutOfRange Kind = "out_of_range"
)

// Error describes why an argument could not be parsed.
type Error struct {
	Arg  string
	Kind Kind
	Bits int
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case KindOutOfRange:
		return fmt.Sprintf("%q: %v (max %d bits)", e.Arg, ErrOutOfRange, e.Bits)
	default:
		return fmt.Sprintf("%q: %v", e.Arg, ErrInvalidNumber)
	}
}

// Unwrap returns the underlying strconv error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidNumber:
		return e.Kind == KindInvalid
	case ErrOutOfRange:
		return e.Kind == KindOutOfRange
	}
	return false
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ne *Error
	if errors.As(err, &ne) {
		return ne.Kind == kind
	}
	return false
}

// ParseUint32 parses s as a base-10 uint32.
func ParseUint32(s string) (uint32, error) {
	v, err := parse(s, 32)
	return uint32(v), err
}

// ParseUint64 parses s as a base-10 uint64.
func ParseUint64(s string) (uint64, error) {
	return parse(s, 64)
}

func parse(s string, bits int) (uint64, error) {
	trimmed := strings.TrimSpace(s)
	// Plain ASCII digits only: no sign, no base prefix, no separators.
	if trimmed == "" || strings.TrimLeft(trimmed, "0123456789") != "" {
		return 0, &Error{Arg: s, Kind: KindInvalid, Bits: bits}
	}
	v, err := strconv.ParseUint(trimmed, 10, bits)
	if err != nil {
		kind := KindInvalid
		if errors.Is(err, strconv.ErrRange) {
			kind = KindOutOfRange
		}
		return 0, &Error{Arg: s, Kind: kind, Bits: bits, Err: err}
	}
	return v, nil
}
