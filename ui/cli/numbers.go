// Copyright (c) 2026 FFI-Example Team
// FFI-Example - native integer routines over the C ABI
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mmycin/FFI-Example/core/numeric"
	"github.com/mmycin/FFI-Example/internal/i18n"
	"github.com/mmycin/FFI-Example/internal/logging"
	"github.com/mmycin/FFI-Example/internal/numarg"
	"github.com/mmycin/FFI-Example/internal/report"
	"github.com/mmycin/FFI-Example/util/slicest"
)

// localizedError carries a translated message while keeping the cause
// reachable for errors.Is and errors.As.
type localizedError struct {
	msg string
	err error
}

func (e *localizedError) Error() string { return e.msg }
func (e *localizedError) Unwrap() error { return e.err }

// argError translates a numarg parse failure.
func argError(arg string, err error) error {
	id := "error.invalid_number"
	if numarg.IsKind(err, numarg.KindOutOfRange) {
		id = "error.out_of_range"
	}
	return &localizedError{msg: i18n.T(id, arg), err: err}
}

// parseAll32 parses every argument before any work is done, so a bad
// argument produces no partial output.
func parseAll32(args []string) ([]uint32, error) {
	return slicest.MapX(args, func(arg string) (uint32, error) {
		n, err := numarg.ParseUint32(arg)
		if err != nil {
			return 0, argError(arg, err)
		}
		return n, nil
	})
}

func parseAll64(args []string) ([]uint64, error) {
	return slicest.MapX(args, func(arg string) (uint64, error) {
		n, err := numarg.ParseUint64(arg)
		if err != nil {
			return 0, argError(arg, err)
		}
		return n, nil
	})
}

// render writes records to the command's stdout using the configured format.
func (a *app) render(cmd *cobra.Command, records []report.Record) error {
	out := cmd.OutOrStdout()
	return report.NewRenderer(a.format, a.color, out).Render(out, records)
}

func (a *app) newIsPrimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "isprime N [N...]",
		Short: "Check whether numbers are prime",
		Long: `Checks each uint32 argument for primality by trial division up to its
square root. Arguments are decimal numbers from 0 to 4294967295.`,
		Example: "  ffi-example isprime 17\n  ffi-example isprime -o json 2 3 4",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseAll32(args)
			if err != nil {
				return err
			}
			return a.render(cmd, slicest.Map(nums, func(n uint32) report.Record {
				r := report.Prime(n)
				logging.Debugf("isprime %d -> %v", n, r.IsPrime)
				return r
			}))
		},
	}
}

func (a *app) newIsEvenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "iseven N [N...]",
		Short: "Check whether numbers are even",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseAll32(args)
			if err != nil {
				return err
			}
			return a.render(cmd, slicest.Map(nums, func(n uint32) report.Record {
				return report.Even(n)
			}))
		},
	}
}

func (a *app) newFactorialCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factorial N [N...]",
		Short: "Compute n! for n up to 20",
		Long: `Computes the factorial of each argument. Values above 20 do not fit in
64 bits and are rejected; the shared library instead wraps modulo 2^64.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseAll64(args)
			if err != nil {
				return err
			}
			records, err := slicest.MapXI(nums, func(i int, n uint64) (report.Record, error) {
				r, err := report.Factorial(n)
				if errors.Is(err, numeric.ErrFactorialOverflow) {
					return nil, &localizedError{
						msg: i18n.T("error.factorial_overflow", args[i], numeric.MaxFactorialInput),
						err: err,
					}
				}
				return r, err
			})
			if err != nil {
				return err
			}
			return a.render(cmd, records)
		},
	}
}
