// Copyright (c) 2026 FFI-Example Team
// FFI-Example - native integer routines over the C ABI
// This source code is licensed under the MIT license found in the LICENSE file.

package numeric

import (
	"math"
	"testing"
)

// naivePrime checks every candidate divisor below n.
func naivePrime(n uint32) bool {
	if n < 2 {
		return false
	}
	for d := uint32(2); d < n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func TestIsPrime_KnownValues(t *testing.T) {
	cases := []struct {
		n    uint32
		want bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{9, false},
		{17, true},
		{25, false},
		{97, true},
		{7919, true},
		{65521, true},
		{65537, true},
		{65521 * 65521, false},
		{2147483647, true},
		{4294967291, true},
		{math.MaxUint32, false},
	}
	for _, tc := range cases {
		if got := IsPrime(tc.n); got != tc.want {
			t.Fatalf("IsPrime(%d) = %v, want %v", tc.n, got, tc.want)
		}
	}
}

func TestIsPrime_MatchesNaiveDivisorScan(t *testing.T) {
	for n := uint32(0); n < 5000; n++ {
		if got, want := IsPrime(n), naivePrime(n); got != want {
			t.Fatalf("IsPrime(%d) = %v, naive scan says %v", n, got, want)
		}
	}
}

func TestIsPrime_Idempotent(t *testing.T) {
	for _, n := range []uint32{0, 2, 4294967291, math.MaxUint32} {
		first := IsPrime(n)
		for i := 0; i < 3; i++ {
			if IsPrime(n) != first {
				t.Fatalf("IsPrime(%d) changed between calls", n)
			}
		}
	}
}

func TestIsPrime_TopOfRange(t *testing.T) {
	// Every value in this window needs divisors up to 65535, so a wrapping
	// bound would show up as a wrong answer here.
	primes := 0
	for n := uint32(math.MaxUint32 - 100); ; n++ {
		if IsPrime(n) {
			primes++
		}
		if n == math.MaxUint32 {
			break
		}
	}
	// 4294967197, 4294967231, 4294967279, 4294967291
	if primes != 4 {
		t.Fatalf("expected 4 primes in the top 101 values, got %d", primes)
	}
}

func BenchmarkIsPrime(b *testing.B) {
	for i := 0; i < b.N; i++ {
		IsPrime(104729)
	}
}

func BenchmarkIsPrime_LargestUint32Prime(b *testing.B) {
	for i := 0; i < b.N; i++ {
		IsPrime(4294967291)
	}
}
