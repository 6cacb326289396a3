// Copyright (c) 2026 FFI-Example Team
// FFI-Example - native integer routines over the C ABI
// This source code is licensed under the MIT license found in the LICENSE file.

//go:build cgo

// Command libfactorial builds the factorial shared library exporting
//
//	uint64_t factorial(uint64_t n);
//
// Results for n > 20 wrap modulo 2^64.
package main

// #include <stdint.h>
import "C"

import "github.com/mmycin/FFI-Example/core/numeric"

//export factorial
func factorial(n C.uint64_t) C.uint64_t {
	return C.uint64_t(numeric.Factorial(uint64(n)))
}

func main() {}
