// Copyright (c) 2026 FFI-Example Team
// FFI-Example - native integer routines over the C ABI
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the ffi-example command line using Cobra. It wires
// configuration, logging and localisation, then delegates every computation
// to core/numeric through internal/report. CLI code should stay thin.
package cli
