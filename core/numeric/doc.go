// Copyright (c) 2026 FFI-Example Team
// FFI-Example - native integer routines over the C ABI
// This source code is licensed under the MIT license found in the LICENSE file.

// Package numeric holds the pure integer routines exported by the shared
// libraries under cmd/. Every function here is total over its input domain
// (FactorialChecked aside), allocation free and safe for concurrent use.
package numeric
