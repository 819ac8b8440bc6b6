// Package rules evaluates the condition predicates that gate hotspots,
// item interactions, and event handlers.
package rules

import (
	"github.com/raven2cz/escape-game-engine-sub001/engine/state"
	"github.com/raven2cz/escape-game-engine-sub001/types"
)

// EvalAll returns true if every condition holds. An empty list holds.
func EvalAll(conditions []types.Condition, s *types.State, defs *state.Defs) bool {
	for _, cond := range conditions {
		if !Eval(cond, s, defs) {
			return false
		}
	}
	return true
}

// Eval evaluates a single condition. Unknown condition types evaluate to
// false so malformed content blocks rather than opens gates.
func Eval(cond types.Condition, s *types.State, defs *state.Defs) bool {
	switch cond.Type {
	case "has_item":
		item, _ := cond.Params["item"].(string)
		return state.HasItem(s, item)

	case "flag_set":
		flag, _ := cond.Params["flag"].(string)
		return state.GetFlag(s, flag)

	case "flag_not":
		flag, _ := cond.Params["flag"].(string)
		return !state.GetFlag(s, flag)

	case "solved":
		puzzle, _ := cond.Params["puzzle"].(string)
		return state.IsSolved(s, puzzle)

	case "not":
		if cond.Inner == nil {
			return false
		}
		return !Eval(*cond.Inner, s, defs)

	default:
		return false
	}
}
