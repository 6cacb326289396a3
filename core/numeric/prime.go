// Copyright (c) 2026 FFI-Example Team
// FFI-Example - native integer routines over the C ABI
// This source code is licensed under the MIT license found in the LICENSE file.

package numeric

// IsPrime reports whether n is prime using trial division up to √n.
//
// The divisor is squared in 64-bit arithmetic: for 32-bit operands 65536²
// wraps to zero, which would keep the loop running past √n for primes close
// to math.MaxUint32.
func IsPrime(n uint32) bool {
	if n < 2 {
		return false
	}
	m := uint64(n)
	for i := uint64(2); i*i <= m; i++ {
		if m%i == 0 {
			return false
		}
	}
	return true
}
