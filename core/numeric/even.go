// Copyright (c) 2026 FFI-Example Team
// FFI-Example - native integer routines over the C ABI
// This source code is licensed under the MIT license found in the LICENSE file.

package numeric

// IsEven reports whether n is divisible by two.
func IsEven(n uint32) bool {
	return n%2 == 0
}
