// Copyright (c) 2026 FFI-Example Team
// FFI-Example - native integer routines over the C ABI
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	cfg "github.com/mmycin/FFI-Example/internal/config"
)

// isolate points the user config directory at a fresh temp dir and runs the
// test from another empty directory so no stray ffi-example.yaml is found.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return home
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	isolate(t)

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	want := cfg.Config{Language: "en", Output: "text", Color: "auto", Log: cfg.LogConfig{Level: "warn"}}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "custom.yaml")
	content := "language: de\noutput: json\nlog:\n  level: debug\n"
	if err := os.WriteFile(file, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Language != "de" || got.Output != "json" || got.Log.Level != "debug" {
		t.Fatalf("file values not applied: %+v", got)
	}
	if got.Color != "auto" {
		t.Fatalf("expected default color to survive, got %q", got.Color)
	}
}

func TestLoadConfig_MissingExplicitFileFails(t *testing.T) {
	isolate(t)
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	if _, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &missing); err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}

func TestLoadConfig_MalformedFileFails(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(file, []byte("output: [json\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file); err == nil {
		t.Fatalf("expected parse error for malformed config")
	}
}

func TestLoadConfig_UserConfigDiscovered(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, "ffi-example")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "ffi-example.yaml"), []byte("output: yaml\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Output != "yaml" {
		t.Fatalf("expected output from user config, got %q", got.Output)
	}
}

func TestLoadConfig_Precedence(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "p.yaml")
	content := "language: de\noutput: json\ncolor: never\n"
	if err := os.WriteFile(file, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	t.Setenv("FFI_EXAMPLE_OUTPUT", "yaml")
	t.Setenv("FFI_EXAMPLE_LOG_LEVEL", "error")

	cmd := &cobra.Command{}
	cmd.Flags().String("color", "auto", "")
	if err := cmd.Flags().Set("color", "always"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Language != "de" {
		t.Fatalf("file should beat defaults, got %q", got.Language)
	}
	if got.Output != "yaml" {
		t.Fatalf("env should beat file, got %q", got.Output)
	}
	if got.Log.Level != "error" {
		t.Fatalf("nested env key not applied, got %q", got.Log.Level)
	}
	if got.Color != "always" {
		t.Fatalf("flag should beat file, got %q", got.Color)
	}
}

func TestWriteConfigFile_RoundTrip(t *testing.T) {
	isolate(t)

	c := cfg.Config{Language: "de", Output: "json", Color: "never", Log: cfg.LogConfig{Level: "info"}}
	path, err := cfg.WriteConfigFile(&c, false)
	if err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}
	want, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	if path != want {
		t.Fatalf("expected %s, got %s", want, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var back cfg.Config
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != c {
		t.Fatalf("round trip mismatch: %+v vs %+v", back, c)
	}

	loaded, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if loaded != c {
		t.Fatalf("written config not picked up: %+v", loaded)
	}
}
