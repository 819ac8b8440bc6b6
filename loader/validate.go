package loader

import (
	"fmt"
	"os"
	"strings"

	"github.com/raven2cz/escape-game-engine-sub001/engine/state"
	"github.com/raven2cz/escape-game-engine-sub001/types"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// Known effect types.
var validEffectTypes = map[string]bool{
	"say":            true,
	"goto":           true,
	"give_item":      true,
	"remove_item":    true,
	"set_flag":       true,
	"reveal_hotspot": true,
	"hide_hotspot":   true,
	"run_puzzle":     true,
	"emit_event":     true,
}

// Known condition types.
var validConditionTypes = map[string]bool{
	"has_item": true,
	"flag_set": true,
	"flag_not": true,
	"solved":   true,
	"not":      true,
}

// Kinds shipped with the engine. An unknown kind is not an error at runtime
// (it degrades to the inert fallback), but content referencing one almost
// certainly holds a typo, so it warns here.
var builtinKinds = map[string]bool{
	"phrase": true, "code": true, "quiz": true, "order": true,
	"match": true, "group": true, "choice": true, "list": true,
	"cloze": true,
}

// validate checks the compiled defs for referential integrity and
// consistency.
func validate(defs *state.Defs) error {
	ve := &ValidationError{}

	if defs.Game.Title == "" {
		ve.Errors = append(ve.Errors, "Game.Title is required")
	}

	if defs.Game.Start == "" {
		ve.Errors = append(ve.Errors, "Game.Start is required")
	} else if _, ok := defs.Scenes[defs.Game.Start]; !ok {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"start scene %q not found in defined scenes", defs.Game.Start))
	}

	for sceneID, scene := range defs.Scenes {
		seen := map[string]bool{}
		for _, hs := range scene.Hotspots {
			if seen[hs.ID] {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"scene %q has duplicate hotspot ID %q", sceneID, hs.ID))
			}
			seen[hs.ID] = true

			validateConditions(hs.Requires, defs, ve)
			validateEffects(hs.Effects, defs, ve)
			for itemID, effs := range hs.ItemEffects {
				if _, ok := defs.Items[itemID]; !ok {
					ve.Errors = append(ve.Errors, fmt.Sprintf(
						"scene %q hotspot %q use_item references undefined item %q",
						sceneID, hs.ID, itemID))
				}
				validateEffects(effs, defs, ve)
			}
		}
	}

	for _, handler := range defs.Handlers {
		validateConditions(handler.Conditions, defs, ve)
		validateEffects(handler.Effects, defs, ve)
	}

	for id, cfg := range defs.Puzzles {
		validatePuzzle(id, cfg, defs, ve)
	}

	// List steps must not cycle back into themselves, directly or through
	// another list.
	for id, cfg := range defs.Puzzles {
		if cfg.Kind != "list" {
			continue
		}
		if cycle := findStepCycle(id, defs.Puzzles, map[string]bool{}); cycle != "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"list puzzle %q step chain cycles through %q", id, cycle))
		}
	}

	for _, w := range ve.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func validatePuzzle(id string, cfg types.PuzzleConfig, defs *state.Defs, ve *ValidationError) {
	if !builtinKinds[cfg.Kind] {
		ve.Warnings = append(ve.Warnings, fmt.Sprintf(
			"puzzle %q uses unregistered kind %q (will render inert)", id, cfg.Kind))
	}

	tokenIDs := map[string]bool{}
	for _, tok := range cfg.Tokens {
		if tok.ID == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf("puzzle %q has a token without id", id))
			continue
		}
		if tokenIDs[tok.ID] {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"puzzle %q has duplicate token ID %q", id, tok.ID))
		}
		tokenIDs[tok.ID] = true
	}

	switch cfg.Kind {
	case "quiz", "order":
		for _, sol := range cfg.Solutions {
			if !tokenIDs[sol] {
				ve.Warnings = append(ve.Warnings, fmt.Sprintf(
					"puzzle %q solution references unknown token %q", id, sol))
			}
		}

	case "match":
		if cfg.Layout != "" && cfg.Layout != "columns" && cfg.Layout != "dragdrop" {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"puzzle %q has unknown match layout %q", id, cfg.Layout))
		}
		if cfg.Layout != "dragdrop" {
			for _, tok := range cfg.Tokens {
				if tok.Side != "left" && tok.Side != "right" {
					ve.Warnings = append(ve.Warnings, fmt.Sprintf(
						"puzzle %q token %q has no column side", id, tok.ID))
				}
			}
		}

	case "group":
		groupIDs := map[string]bool{}
		for _, g := range cfg.Groups {
			groupIDs[g.ID] = true
		}
		for tok, group := range cfg.SolutionMap {
			if !tokenIDs[tok] {
				ve.Warnings = append(ve.Warnings, fmt.Sprintf(
					"puzzle %q solution references unknown token %q", id, tok))
			}
			if !groupIDs[group] {
				ve.Warnings = append(ve.Warnings, fmt.Sprintf(
					"puzzle %q solution references unknown group %q", id, group))
			}
		}

	case "choice":
		for _, tok := range cfg.Tokens {
			if len(tok.Choices) == 0 {
				ve.Warnings = append(ve.Warnings, fmt.Sprintf(
					"puzzle %q choice token %q has no choices", id, tok.ID))
			}
		}

	case "list":
		for _, step := range cfg.Steps {
			if _, ok := defs.Puzzles[step]; !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"list puzzle %q references undefined step %q", id, step))
			}
		}

	case "cloze":
		gaps := map[string]bool{}
		for _, seg := range clozeGaps(cfg.Text) {
			gaps[seg] = true
		}
		for gap, tok := range cfg.SolutionMap {
			if !gaps[gap] {
				ve.Warnings = append(ve.Warnings, fmt.Sprintf(
					"puzzle %q solution references unknown gap %q", id, gap))
			}
			if !tokenIDs[tok] {
				ve.Warnings = append(ve.Warnings, fmt.Sprintf(
					"puzzle %q solution references unknown token %q", id, tok))
			}
		}
	}
}

// clozeGaps extracts the {gap} placeholder names from cloze text.
func clozeGaps(text string) []string {
	var gaps []string
	for {
		open := strings.IndexByte(text, '{')
		if open < 0 {
			return gaps
		}
		end := strings.IndexByte(text[open:], '}')
		if end < 0 {
			return gaps
		}
		gaps = append(gaps, text[open+1:open+end])
		text = text[open+end+1:]
	}
}

// findStepCycle walks a list puzzle's step graph depth-first and returns
// the ID closing a cycle, or "".
func findStepCycle(id string, puzzles map[string]types.PuzzleConfig, visiting map[string]bool) string {
	if visiting[id] {
		return id
	}
	cfg, ok := puzzles[id]
	if !ok || cfg.Kind != "list" {
		return ""
	}
	visiting[id] = true
	for _, step := range cfg.Steps {
		if cycle := findStepCycle(step, puzzles, visiting); cycle != "" {
			return cycle
		}
	}
	visiting[id] = false
	return ""
}

func validateConditions(conditions []types.Condition, defs *state.Defs, ve *ValidationError) {
	for _, cond := range conditions {
		if !validConditionTypes[cond.Type] {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"unknown condition type %q", cond.Type))
		}

		switch cond.Type {
		case "has_item":
			if item, ok := cond.Params["item"].(string); ok {
				if _, ok := defs.Items[item]; !ok {
					ve.Errors = append(ve.Errors, fmt.Sprintf(
						"condition has_item references undefined item %q", item))
				}
			}
		case "solved":
			if puzzle, ok := cond.Params["puzzle"].(string); ok {
				if _, ok := defs.Puzzles[puzzle]; !ok {
					ve.Errors = append(ve.Errors, fmt.Sprintf(
						"condition solved references undefined puzzle %q", puzzle))
				}
			}
		case "not":
			if cond.Inner != nil {
				validateConditions([]types.Condition{*cond.Inner}, defs, ve)
			}
		}
	}
}

func validateEffects(effects []types.Effect, defs *state.Defs, ve *ValidationError) {
	for _, eff := range effects {
		if !validEffectTypes[eff.Type] {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"unknown effect type %q", eff.Type))
		}

		switch eff.Type {
		case "goto":
			if scene, ok := eff.Params["scene"].(string); ok {
				if _, ok := defs.Scenes[scene]; !ok {
					ve.Errors = append(ve.Errors, fmt.Sprintf(
						"effect goto references undefined scene %q", scene))
				}
			}
		case "give_item", "remove_item":
			if item, ok := eff.Params["item"].(string); ok {
				if _, ok := defs.Items[item]; !ok {
					ve.Errors = append(ve.Errors, fmt.Sprintf(
						"effect %s references undefined item %q", eff.Type, item))
				}
			}
		case "reveal_hotspot", "hide_hotspot":
			scene, _ := eff.Params["scene"].(string)
			hotspot, _ := eff.Params["hotspot"].(string)
			if scene != "" && hotspot != "" {
				def, ok := defs.Scenes[scene]
				if !ok {
					ve.Errors = append(ve.Errors, fmt.Sprintf(
						"effect %s references undefined scene %q", eff.Type, scene))
					continue
				}
				found := false
				for _, hs := range def.Hotspots {
					if hs.ID == hotspot {
						found = true
						break
					}
				}
				if !found {
					ve.Errors = append(ve.Errors, fmt.Sprintf(
						"effect %s references undefined hotspot %q in scene %q",
						eff.Type, hotspot, scene))
				}
			}
		case "run_puzzle":
			if ref, ok := eff.Params["ref"].(string); ok {
				if _, ok := defs.Puzzles[ref]; !ok {
					ve.Errors = append(ve.Errors, fmt.Sprintf(
						"effect run_puzzle references undefined puzzle %q", ref))
				}
			}
			if solved, ok := eff.Params["on_solved"].([]any); ok {
				validateEffects(anyToEffects(solved), defs, ve)
			}
		}
	}
}

// anyToEffects re-types compiled on_solved effect maps for validation.
func anyToEffects(raw []any) []types.Effect {
	var effs []types.Effect
	for _, v := range raw {
		m, ok := v.(map[string]any)
		if !ok {
			continue
		}
		eff := types.Effect{Params: map[string]any{}}
		for k, pv := range m {
			if k == "type" {
				eff.Type, _ = pv.(string)
				continue
			}
			eff.Params[k] = pv
		}
		effs = append(effs, eff)
	}
	return effs
}
