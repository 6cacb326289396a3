// Copyright (c) 2026 FFI-Example Team
// FFI-Example - native integer routines over the C ABI
// This source code is licensed under the MIT license found in the LICENSE file.

//go:build cgo

// Command liboddeven builds the oddeven shared library exporting
//
//	bool is_even(uint32_t n);
package main

// #include <stdbool.h>
// #include <stdint.h>
import "C"

import "github.com/mmycin/FFI-Example/core/numeric"

//export is_even
func is_even(n C.uint32_t) C.bool {
	return C.bool(numeric.IsEven(uint32(n)))
}

func main() {}
