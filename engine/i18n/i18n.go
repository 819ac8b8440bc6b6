// Package i18n implements the display-string lookup chain: game-specific
// table, then engine defaults, then the literal fallback template, with
// {param} substitution applied only on the final chosen template.
package i18n

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Table maps string keys to templates for one language.
type Table map[string]string

// engineDefaults are the built-in UI strings shipped with the engine.
var engineDefaults = map[string]Table{
	"en": {
		"ui.check":         "Check",
		"ui.cancel":        "Cancel",
		"ui.reset":         "Reset",
		"ui.step_progress": "Step {step} of {total}",
		"ui.missing_step":  "Missing step: {ref}",
		"ui.solved":        "Solved!",
		"ui.wrong":         "That's not right yet.",
		"ui.inventory":     "You are carrying: {items}.",
		"ui.empty_handed":  "You are carrying nothing.",
	},
	"cs": {
		"ui.check":         "Ověřit",
		"ui.cancel":        "Zrušit",
		"ui.reset":         "Znovu",
		"ui.step_progress": "Krok {step} z {total}",
		"ui.solved":        "Vyřešeno!",
		"ui.wrong":         "To zatím nesedí.",
	},
}

// Resolver resolves display strings for one selected language.
type Resolver struct {
	game     map[string]Table
	defaults map[string]Table
	lang     string
}

// New creates a resolver for the preferred language tag. The language is
// matched against the union of game and default tables; an unmatched
// preference falls back to English.
func New(pref string, game map[string]Table) *Resolver {
	r := &Resolver{game: game, defaults: engineDefaults}
	r.lang = r.match(pref)
	return r
}

// match picks the best available language for the preference.
func (r *Resolver) match(pref string) string {
	available := map[string]bool{"en": true}
	for lang := range r.game {
		available[lang] = true
	}
	for lang := range r.defaults {
		available[lang] = true
	}

	langs := make([]string, 0, len(available))
	for lang := range available {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	tags := make([]language.Tag, 0, len(langs))
	for _, l := range langs {
		tag, err := language.Parse(l)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 || pref == "" {
		return "en"
	}

	matcher := language.NewMatcher(tags)
	_, idx, conf := matcher.Match(language.Make(pref))
	if conf == language.No {
		return "en"
	}
	return langs[idx]
}

// Language returns the selected language tag.
func (r *Resolver) Language() string { return r.lang }

// Resolve looks key up through the chain and substitutes params into the
// final template. Earlier tiers win even when the template is empty-valued;
// only a missing key falls through.
func (r *Resolver) Resolve(key, fallback string, params map[string]string) string {
	if tbl, ok := r.game[r.lang]; ok {
		if tpl, ok := tbl[key]; ok {
			return Substitute(tpl, params)
		}
	}
	if tbl, ok := r.defaults[r.lang]; ok {
		if tpl, ok := tbl[key]; ok {
			return Substitute(tpl, params)
		}
	}
	// English defaults as a last table before the literal fallback.
	if r.lang != "en" {
		if tpl, ok := r.defaults["en"][key]; ok {
			return Substitute(tpl, params)
		}
	}
	return Substitute(fallback, params)
}

// Substitute replaces {name} placeholders with parameter values.
func Substitute(tpl string, params map[string]string) string {
	out := tpl
	for k, v := range params {
		out = strings.ReplaceAll(out, "{"+k+"}", v)
	}
	return out
}
