// Copyright (c) 2026 FFI-Example Team
// FFI-Example - native integer routines over the C ABI
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for FFI-Example.
//
// Usage:
//
//	go run . isprime 17
//	./ffi-example [command] [flags]
//
// The shared libraries themselves are built from ./cmd/lib*. See --help for
// the available commands.
package main

import (
	"os"

	"github.com/mmycin/FFI-Example/internal/logging"
	"github.com/mmycin/FFI-Example/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
