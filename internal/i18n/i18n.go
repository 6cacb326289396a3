// Copyright (c) 2026 FFI-Example Team
// FFI-Example - native integer routines over the C ABI
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n provides localized CLI messages. Catalogues are YAML files
// embedded from the locales directory and loaded into a go-i18n bundle.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/mmycin/FFI-Example/internal/logging"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   string
)

// Init loads every embedded catalogue and selects lang. Unknown languages
// fall back to English.
func Init(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		logging.Errorf("i18n: reading embedded locales: %v", err)
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			logging.Errorf("i18n: reading %s: %v", f.Name(), err)
			continue
		}
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			logging.Errorf("i18n: parsing %s: %v", f.Name(), err)
		}
	}

	current = resolve(lang)
	localizer = i18n.NewLocalizer(bundle, current)
	logging.Debugf("i18n: language set to %s", current)
}

// resolve maps lang to one of the bundle's tags.
func resolve(lang string) string {
	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return language.English.String()
	}
	matcher := language.NewMatcher(bundle.LanguageTags())
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.English.String()
	}
	base, _ := bundle.LanguageTags()[idx].Base()
	return base.String()
}

// SetLang switches the active language.
func SetLang(lang string) {
	Init(lang)
}

// GetLang returns the active language code.
func GetLang() string {
	if localizer == nil {
		Init("en")
	}
	return current
}

// AvailableLocales returns the sorted language codes of the embedded catalogues.
func AvailableLocales() []string {
	if bundle == nil {
		Init("en")
	}
	out := make([]string, 0, len(bundle.LanguageTags()))
	for _, tag := range bundle.LanguageTags() {
		base, _ := tag.Base()
		out = append(out, base.String())
	}
	sort.Strings(out)
	return out
}

// T translates messageID. A single map argument is used as template data;
// any other arguments are applied fmt-style to the translated text. Unknown
// IDs are returned unchanged.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init("en")
	}
	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		if data, ok := args[0].(map[string]any); ok {
			cfg.TemplateData = data
			args = nil
		}
	}
	msg, err := localizer.Localize(cfg)
	if err != nil {
		return messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}
