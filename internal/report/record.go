// Copyright (c) 2026 FFI-Example Team
// FFI-Example - native integer routines over the C ABI
// This source code is licensed under the MIT license found in the LICENSE file.

// Package report turns routine results into records and renders batches of
// them as localized text, JSON or YAML.
package report

import (
	"strconv"

	"github.com/mmycin/FFI-Example/core/numeric"
	"github.com/mmycin/FFI-Example/internal/i18n"
)

// Record is one evaluated number.
type Record interface {
	// Verdict reports whether the record is a positive result, used to pick
	// the text style. Records without a yes/no outcome return true.
	Verdict() bool
	// Text returns the localized one-line description.
	Text() string
}

// PrimeResult is the outcome of a primality check.
type PrimeResult struct {
	Number  uint32 `json:"number" yaml:"number"`
	IsPrime bool   `json:"is_prime" yaml:"is_prime"`
}

// EvenResult is the outcome of a parity check.
type EvenResult struct {
	Number uint32 `json:"number" yaml:"number"`
	IsEven bool   `json:"is_even" yaml:"is_even"`
}

// FactorialResult holds n and n!.
type FactorialResult struct {
	Number    uint64 `json:"number" yaml:"number"`
	Factorial uint64 `json:"factorial" yaml:"factorial"`
}

// Prime evaluates n.
func Prime(n uint32) PrimeResult {
	return PrimeResult{Number: n, IsPrime: numeric.IsPrime(n)}
}

// Even evaluates n.
func Even(n uint32) EvenResult {
	return EvenResult{Number: n, IsEven: numeric.IsEven(n)}
}

// Factorial evaluates n, failing with numeric.ErrFactorialOverflow past 20.
func Factorial(n uint64) (FactorialResult, error) {
	v, err := numeric.FactorialChecked(n)
	if err != nil {
		return FactorialResult{}, err
	}
	return FactorialResult{Number: n, Factorial: v}, nil
}

func (r PrimeResult) Verdict() bool { return r.IsPrime }

func (r PrimeResult) Text() string {
	id := "result.not_prime"
	if r.IsPrime {
		id = "result.prime"
	}
	return i18n.T(id, map[string]any{"Number": r.Number})
}

func (r EvenResult) Verdict() bool { return r.IsEven }

func (r EvenResult) Text() string {
	id := "result.odd"
	if r.IsEven {
		id = "result.even"
	}
	return i18n.T(id, map[string]any{"Number": r.Number})
}

func (r FactorialResult) Verdict() bool { return true }

func (r FactorialResult) Text() string {
	return i18n.T("result.factorial", map[string]any{
		"Number": r.Number,
		"Value":  strconv.FormatUint(r.Factorial, 10),
	})
}
