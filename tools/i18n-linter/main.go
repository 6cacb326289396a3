// Copyright (c) 2026 FFI-Example Team
// FFI-Example - native integer routines over the C ABI
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the message catalogues for consistency. It scans the Go
// sources for message IDs, then reports IDs missing from the primary locale,
// IDs missing from the other locales, and orphaned IDs nobody uses.
//
// Run it from the repository root:
//
//	go run ./tools/i18n-linter
package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

// keyRe matches i18n.T("id") calls and `id := "id"` style assignments used to
// pick a message before translating it.
var keyRe = regexp.MustCompile(`i18n\.T\("([^"]+)"|\bid\s*:?=\s*"([a-z_]+\.[a-z_.]+)"`)

func main() {
	ok, err := run(projectRoot, filepath.Join(projectRoot, localesDir), os.Stdout)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	if !ok {
		os.Exit(1)
	}
}

// run performs all checks, writing a report to w. It returns false when a
// key is missing anywhere; orphaned keys only produce a warning.
func run(root, locales string, w io.Writer) (bool, error) {
	usedKeys, err := findUsedKeys(root)
	if err != nil {
		return false, fmt.Errorf("finding used keys: %w", err)
	}
	fmt.Fprintf(w, "✅ Found %d unique translation keys used in source code.\n", len(usedKeys))

	primaryKeys, err := loadKeysFromLocale(filepath.Join(locales, primaryLocale))
	if err != nil {
		return false, fmt.Errorf("loading primary locale %s: %w", primaryLocale, err)
	}
	localeFiles, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return false, fmt.Errorf("finding locale files: %w", err)
	}

	ok := true

	fmt.Fprintln(w, "--- Keys used in code but missing from the primary locale ---")
	if missing := difference(usedKeys, primaryKeys); len(missing) > 0 {
		ok = false
		for _, key := range missing {
			fmt.Fprintf(w, "  - Missing: %s\n", key)
		}
	} else {
		fmt.Fprintln(w, "  ✨ None found.")
	}

	fmt.Fprintln(w, "--- Orphaned keys (in primary locale but not used in code) ---")
	if orphaned := difference(primaryKeys, usedKeys); len(orphaned) > 0 {
		for _, key := range orphaned {
			fmt.Fprintf(w, "  - Orphaned: %s\n", key)
		}
	} else {
		fmt.Fprintln(w, "  ✨ None found.")
	}

	fmt.Fprintln(w, "--- Keys missing from secondary locales ---")
	for _, file := range localeFiles {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			fmt.Fprintf(w, "  - ❌ Error loading %s: %v\n", file, err)
			ok = false
			continue
		}
		missing := difference(primaryKeys, keys)
		if len(missing) == 0 {
			fmt.Fprintf(w, "  %s: ✨ all keys present.\n", filepath.Base(file))
			continue
		}
		ok = false
		for _, key := range missing {
			fmt.Fprintf(w, "  %s: missing %s\n", filepath.Base(file), key)
		}
	}

	if ok {
		fmt.Fprintln(w, "✅ All translation files are consistent!")
	} else {
		fmt.Fprintln(w, "❌ Found issues that need to be addressed.")
	}
	return ok, nil
}

// findUsedKeys scans non-test .go files under root for message IDs.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			switch d.Name() {
			case "tools", "_examples", ".git":
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, match := range keyRe.FindAllStringSubmatch(string(content), -1) {
			if match[1] != "" {
				keys[match[1]] = struct{}{}
			} else if match[2] != "" {
				keys[match[2]] = struct{}{}
			}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale reads a YAML catalogue and returns a flat set of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts a nested map into dot-separated keys.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}

// difference returns the sorted keys of a that are not in b.
func difference(a, b map[string]struct{}) []string {
	var out []string
	for key := range a {
		if _, ok := b[key]; !ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}
