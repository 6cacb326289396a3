// Copyright (c) 2026 FFI-Example Team
// FFI-Example - native integer routines over the C ABI
// This source code is licensed under the MIT license found in the LICENSE file.

//go:build cgo

// Command libprime builds the prime shared library:
//
//	go build -buildmode=c-shared -o libs/bin/prime.so ./cmd/libprime
//
// It exports a single symbol with the C calling convention:
//
//	bool is_prime(uint32_t n);
package main

// #include <stdbool.h>
// #include <stdint.h>
import "C"

import "github.com/mmycin/FFI-Example/core/numeric"

//export is_prime
func is_prime(n C.uint32_t) C.bool {
	return C.bool(numeric.IsPrime(uint32(n)))
}

// main is required by -buildmode=c-shared and never runs.
func main() {}
