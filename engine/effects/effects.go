// Package effects applies the atomic state mutation instructions produced
// by hotspot clicks, solved puzzles, and event handlers.
package effects

import (
	"github.com/raven2cz/escape-game-engine-sub001/engine/state"
	"github.com/raven2cz/escape-game-engine-sub001/types"
)

// Context carries the provenance of the effects being applied.
type Context struct {
	SceneID   string
	HotspotID string
}

// PuzzleLaunch is a request to mount a puzzle. Launching needs the runner
// and the host container, so it is returned to the engine rather than
// executed here.
type PuzzleLaunch struct {
	Ref      string
	Block    bool
	OnSolved []types.Effect
}

// Apply executes the effects against the state. It returns emitted events,
// output lines, and any puzzle launch requests, in source order.
func Apply(s *types.State, defs *state.Defs, effs []types.Effect, ctx Context) ([]types.Event, []string, []PuzzleLaunch) {
	var events []types.Event
	var output []string
	var launches []PuzzleLaunch

	for _, eff := range effs {
		switch eff.Type {
		case "say":
			if text, ok := eff.Params["text"].(string); ok {
				output = append(output, text)
			}

		case "goto":
			if scene, ok := eff.Params["scene"].(string); ok {
				if _, exists := defs.Scenes[scene]; exists {
					s.Scene = scene
					events = append(events, types.Event{
						Type: "scene_entered",
						Data: map[string]any{"scene": scene},
					})
				}
			}

		case "give_item":
			if item, ok := eff.Params["item"].(string); ok {
				if !state.HasItem(s, item) {
					s.Inventory = append(s.Inventory, item)
					events = append(events, types.Event{
						Type: "item_taken",
						Data: map[string]any{"item": item},
					})
				}
			}

		case "remove_item":
			if item, ok := eff.Params["item"].(string); ok {
				for i, id := range s.Inventory {
					if id == item {
						s.Inventory = append(s.Inventory[:i], s.Inventory[i+1:]...)
						break
					}
				}
			}

		case "set_flag":
			flag, _ := eff.Params["flag"].(string)
			value, _ := eff.Params["value"].(bool)
			if flag != "" {
				s.Flags[flag] = value
			}

		case "reveal_hotspot":
			scene, _ := eff.Params["scene"].(string)
			hotspot, _ := eff.Params["hotspot"].(string)
			if scene == "" {
				scene = ctx.SceneID
			}
			if hotspot != "" {
				state.SetRevealed(s, scene, hotspot, true)
			}

		case "hide_hotspot":
			scene, _ := eff.Params["scene"].(string)
			hotspot, _ := eff.Params["hotspot"].(string)
			if scene == "" {
				scene = ctx.SceneID
			}
			if hotspot != "" {
				state.SetRevealed(s, scene, hotspot, false)
			}

		case "run_puzzle":
			ref, _ := eff.Params["ref"].(string)
			block, _ := eff.Params["block"].(bool)
			launch := PuzzleLaunch{Ref: ref, Block: block}
			if solved, ok := eff.Params["on_solved"].([]any); ok {
				launch.OnSolved = toEffects(solved)
			}
			launches = append(launches, launch)

		case "emit_event":
			if event, ok := eff.Params["event"].(string); ok {
				events = append(events, types.Event{Type: event, Data: map[string]any{}})
			}
		}
	}

	return events, output, launches
}

// toEffects converts a compiled []any of effect maps back into typed
// effects. Lua nesting flattens run_puzzle's on_solved list to generic
// values; this restores it.
func toEffects(raw []any) []types.Effect {
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
		if eff.Type != "" {
			effs = append(effs, eff)
		}
	}
	return effs
}
