// Copyright (c) 2026 FFI-Example Team
// FFI-Example - native integer routines over the C ABI
// This source code is licensed under the MIT license found in the LICENSE file.

package numeric

import "errors"

// MaxFactorialInput is the largest n whose factorial fits in a uint64.
const MaxFactorialInput = 20

// ErrFactorialOverflow is returned by FactorialChecked when n! does not fit
// in 64 bits.
var ErrFactorialOverflow = errors.New("factorial overflows uint64")

// Factorial returns n! in native uint64 arithmetic. For n > MaxFactorialInput
// the product wraps modulo 2^64; use FactorialChecked to detect that.
func Factorial(n uint64) uint64 {
	acc := uint64(1)
	for i := uint64(2); i <= n; i++ {
		acc *= i
		// 66! and above contain at least 64 factors of two.
		if acc == 0 {
			break
		}
	}
	return acc
}

// FactorialChecked returns n! or ErrFactorialOverflow when n > MaxFactorialInput.
func FactorialChecked(n uint64) (uint64, error) {
	if n > MaxFactorialInput {
		return 0, ErrFactorialOverflow
	}
	return Factorial(n), nil
}
