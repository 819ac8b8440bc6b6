// Package engine provides the scene and hotspot dispatcher that wires
// clicks, conditions, effects, events, and puzzle launches into single
// interactions.
package engine

import (
	"sort"
	"strings"

	"github.com/raven2cz/escape-game-engine-sub001/engine/assets"
	"github.com/raven2cz/escape-game-engine-sub001/engine/effects"
	"github.com/raven2cz/escape-game-engine-sub001/engine/events"
	"github.com/raven2cz/escape-game-engine-sub001/engine/i18n"
	"github.com/raven2cz/escape-game-engine-sub001/engine/rules"
	"github.com/raven2cz/escape-game-engine-sub001/engine/state"
	"github.com/raven2cz/escape-game-engine-sub001/puzzle"
	"github.com/raven2cz/escape-game-engine-sub001/types"
)

// Engine holds the game definitions, mutable state, and the currently
// mounted puzzle, if any. It implements puzzle.Host.
type Engine struct {
	Defs  *state.Defs
	State *types.State

	strings  *i18n.Resolver
	assets   *assets.Resolver
	registry *puzzle.Registry

	runner    *puzzle.Runner
	container *puzzle.Container
	active    effects.PuzzleLaunch

	// pending accumulates output produced by deferred puzzle resolution
	// callbacks; front-ends receive it with the triggering interaction.
	pending types.Result
}

// New creates an engine from definitions.
func New(defs *state.Defs) *Engine {
	tables := map[string]i18n.Table{}
	for lang, tbl := range defs.Strings {
		tables[lang] = i18n.Table(tbl)
	}
	return &Engine{
		Defs:     defs,
		State:    state.NewState(defs),
		strings:  i18n.New(defs.Game.Language, tables),
		assets:   &assets.Resolver{Base: defs.Game.Assets},
		registry: puzzle.Default,
	}
}

// ResolveString implements puzzle.Host.
func (e *Engine) ResolveString(key, fallback string, params map[string]string) string {
	return e.strings.Resolve(key, fallback, params)
}

// ResolveAsset implements puzzle.Host.
func (e *Engine) ResolveAsset(path string) string {
	return e.assets.Resolve(path)
}

// PuzzleActive reports whether a puzzle is currently mounted.
func (e *Engine) PuzzleActive() bool { return e.runner != nil }

// Container returns the mount surface of the active puzzle, or nil.
func (e *Engine) Container() *puzzle.Container { return e.container }

// Runner returns the active puzzle runner, or nil.
func (e *Engine) Runner() *puzzle.Runner { return e.runner }

// Look describes the current scene: description plus visible hotspots.
func (e *Engine) Look() types.Result {
	var result types.Result
	scene, ok := e.Defs.Scenes[e.State.Scene]
	if !ok {
		result.Output = append(result.Output, e.strings.Resolve("ui.nowhere", "You are somewhere unknown.", nil))
		return result
	}

	desc := e.strings.Resolve("scene."+scene.ID+".description", scene.Description, nil)
	result.Output = append(result.Output, desc)

	hotspots := state.VisibleHotspots(e.State, e.Defs, scene.ID)
	if len(hotspots) > 0 {
		var names []string
		for _, h := range hotspots {
			names = append(names, e.hotspotName(h))
		}
		result.Output = append(result.Output, e.strings.Resolve("ui.you_notice",
			"You notice: {spots}.", map[string]string{"spots": strings.Join(names, ", ")}))
	}
	return result
}

// Inventory lists the carried items.
func (e *Engine) Inventory() types.Result {
	var result types.Result
	if len(e.State.Inventory) == 0 {
		result.Output = append(result.Output, e.strings.Resolve("ui.empty_handed", "You are carrying nothing.", nil))
		return result
	}
	var names []string
	for _, id := range e.State.Inventory {
		names = append(names, e.itemName(id))
	}
	result.Output = append(result.Output, e.strings.Resolve("ui.inventory",
		"You are carrying: {items}.", map[string]string{"items": strings.Join(names, ", ")}))
	return result
}

// Examine describes an inventory item.
func (e *Engine) Examine(nameOrID string) types.Result {
	var result types.Result
	for _, id := range e.State.Inventory {
		item := e.Defs.Items[id]
		if id == nameOrID || strings.EqualFold(item.Name, nameOrID) {
			desc := e.strings.Resolve("item."+id+".description", item.Description, nil)
			if desc == "" {
				desc = e.strings.Resolve("ui.nothing_special", "You see nothing special about it.", nil)
			}
			result.Output = append(result.Output, desc)
			return result
		}
	}
	result.Output = append(result.Output, e.strings.Resolve("ui.dont_have", "You don't have that.", nil))
	return result
}

// Click processes a hotspot click in the current scene.
func (e *Engine) Click(nameOrID string) types.Result {
	return e.interact(nameOrID, "")
}

// UseItem applies an inventory item to a hotspot.
func (e *Engine) UseItem(itemNameOrID, hotspotNameOrID string) types.Result {
	itemID := e.resolveItem(itemNameOrID)
	if itemID == "" {
		return types.Result{Output: []string{e.strings.Resolve("ui.dont_have", "You don't have that.", nil)}}
	}
	return e.interact(hotspotNameOrID, itemID)
}

// interact is the shared click pipeline.
func (e *Engine) interact(nameOrID, itemID string) types.Result {
	var result types.Result

	// 1. A mounted puzzle captures all input until it resolves or cancels.
	if e.runner != nil {
		result.Output = append(result.Output, e.strings.Resolve("ui.puzzle_open",
			"Finish or cancel the open puzzle first.", nil))
		return result
	}

	// 2. Resolve the hotspot among the visible ones.
	hotspot, ok := state.FindHotspot(e.Defs, e.State.Scene, nameOrID)
	if !ok || !state.HotspotVisible(e.State, hotspot, e.State.Scene) {
		result.Output = append(result.Output, e.strings.Resolve("ui.dont_see",
			"You don't see that here.", nil))
		return result
	}

	e.State.ClickLog = append(e.State.ClickLog, e.State.Scene+"/"+hotspot.ID)

	// 3. Gate on conditions.
	if !rules.EvalAll(hotspot.Requires, e.State, e.Defs) {
		result.Output = append(result.Output, e.strings.Resolve("ui.locked",
			"You can't do that yet.", nil))
		return result
	}

	// 4. Select the effect list: item use or plain click.
	effs := hotspot.Effects
	if itemID != "" {
		itemEffs, ok := hotspot.ItemEffects[itemID]
		if !ok {
			result.Output = append(result.Output, e.strings.Resolve("ui.no_use",
				"That doesn't work here.", nil))
			return result
		}
		effs = itemEffs
	}

	// 5. Apply effects, then single-pass event handlers.
	ctx := effects.Context{SceneID: e.State.Scene, HotspotID: hotspot.ID}
	e.applyAll(&result, effs, ctx)

	return result
}

// applyAll applies effects, dispatches resulting events once, and performs
// at most one puzzle launch (only one puzzle can be mounted at a time).
func (e *Engine) applyAll(result *types.Result, effs []types.Effect, ctx effects.Context) {
	evts, output, launches := effects.Apply(e.State, e.Defs, effs, ctx)
	result.Effects = append(result.Effects, effs...)
	result.Events = append(result.Events, evts...)
	result.Output = append(result.Output, output...)

	eventEffs := events.Dispatch(evts, e.State, e.Defs)
	if len(eventEffs) > 0 {
		evts2, output2, launches2 := effects.Apply(e.State, e.Defs, eventEffs, ctx)
		result.Effects = append(result.Effects, eventEffs...)
		result.Events = append(result.Events, evts2...)
		result.Output = append(result.Output, output2...)
		launches = append(launches, launches2...)
	}

	for _, l := range launches {
		if e.runner != nil {
			break
		}
		result.Output = append(result.Output, e.launch(l)...)
	}
}

// launch mounts the referenced puzzle into a fresh container.
func (e *Engine) launch(l effects.PuzzleLaunch) []string {
	r, err := puzzle.NewRunner(puzzle.Options{
		Ref:      l.Ref,
		Puzzles:  e.Defs.Puzzles,
		Instance: types.InstanceOptions{BlockUntilSolved: l.Block},
		Host:     e,
		Registry: e.registry,
		OnResolve: func(res types.PuzzleResult) {
			e.onPuzzleResolved(l, res)
		},
	})
	if err != nil {
		return []string{e.strings.Resolve("ui.puzzle_missing",
			"Puzzle config not found: {ref}", map[string]string{"ref": l.Ref})}
	}

	e.runner = r
	e.container = puzzle.NewContainer()
	e.active = l
	r.MountInto(e.container)

	cfg := r.Config()
	title := e.strings.Resolve("puzzle."+cfg.ID+".title", cfg.Title, nil)
	if title == "" {
		title = cfg.ID
	}
	return []string{e.strings.Resolve("ui.puzzle_opened", "A puzzle blocks your way: {title}", map[string]string{"title": title})}
}

// onPuzzleResolved runs from the container's deferred queue after a
// validation or cancel reached the host.
func (e *Engine) onPuzzleResolved(l effects.PuzzleLaunch, res types.PuzzleResult) {
	cfg := e.runner.Config()
	e.teardownPuzzle()

	if !res.OK {
		e.pending.Output = append(e.pending.Output, e.strings.Resolve("ui.puzzle_closed",
			"You step back from the puzzle.", nil))
		return
	}

	if cfg.ID != "" {
		e.State.Solved[cfg.ID] = true
	}
	e.pending.Output = append(e.pending.Output, e.strings.Resolve("ui.solved", "Solved!", nil))

	solvedEvent := types.Event{Type: "puzzle_solved", Data: map[string]any{"puzzle": cfg.ID}}
	e.pending.Events = append(e.pending.Events, solvedEvent)

	ctx := effects.Context{SceneID: e.State.Scene}
	e.applyAll(&e.pending, l.OnSolved, ctx)

	eventEffs := events.Dispatch([]types.Event{solvedEvent}, e.State, e.Defs)
	if len(eventEffs) > 0 {
		e.applyAll(&e.pending, eventEffs, ctx)
	}
}

func (e *Engine) teardownPuzzle() {
	if e.runner != nil {
		e.runner.Unmount()
	}
	e.runner = nil
	e.container = nil
	e.active = effects.PuzzleLaunch{}
}

// takePending returns and clears output accumulated by deferred callbacks.
func (e *Engine) takePending() types.Result {
	out := e.pending
	e.pending = types.Result{}
	return out
}

// PuzzlePick activates (clicks) a puzzle element by ID.
func (e *Engine) PuzzlePick(id string) types.Result {
	return e.puzzleInteract(func(c *puzzle.Container) bool {
		return c.Activate(id)
	})
}

// PuzzleInput delivers text or a selection to a puzzle element by ID.
func (e *Engine) PuzzleInput(id, value string) types.Result {
	return e.puzzleInteract(func(c *puzzle.Container) bool {
		return c.SetInput(id, value)
	})
}

// PuzzleType delivers text to the first input field of the puzzle.
func (e *Engine) PuzzleType(text string) types.Result {
	return e.puzzleInteract(func(c *puzzle.Container) bool {
		for _, el := range flatten(c) {
			if el.Kind == puzzle.ElemField {
				return c.SetInput(el.ID, text)
			}
		}
		return false
	})
}

// PuzzleCheck activates the check affordance.
func (e *Engine) PuzzleCheck() types.Result { return e.PuzzlePick("check") }

// PuzzleCancel activates the cancel affordance.
func (e *Engine) PuzzleCancel() types.Result { return e.PuzzlePick("cancel") }

func (e *Engine) puzzleInteract(fn func(*puzzle.Container) bool) types.Result {
	var result types.Result
	if e.container == nil {
		result.Output = append(result.Output, e.strings.Resolve("ui.no_puzzle", "No puzzle is open.", nil))
		return result
	}
	if !fn(e.container) {
		result.Output = append(result.Output, e.strings.Resolve("ui.no_such_element", "Nothing happens.", nil))
	}
	// Deferred resolution callbacks may have run during the drain.
	p := e.takePending()
	result.Effects = append(result.Effects, p.Effects...)
	result.Events = append(result.Events, p.Events...)
	result.Output = append(result.Output, p.Output...)
	return result
}

// flatten collects all elements of a container tree depth-first.
func flatten(c *puzzle.Container) []*puzzle.Element {
	var all []*puzzle.Element
	for _, el := range c.Elements() {
		all = append(all, el)
		if child := el.Child(); child != nil {
			all = append(all, flatten(child)...)
		}
	}
	return all
}

// hotspotName returns the display name of a hotspot.
func (e *Engine) hotspotName(h types.HotspotDef) string {
	name := h.Name
	if name == "" {
		name = h.ID
	}
	return e.strings.Resolve("hotspot."+h.ID+".name", name, nil)
}

// itemName returns the display name of an item.
func (e *Engine) itemName(id string) string {
	name := id
	if item, ok := e.Defs.Items[id]; ok && item.Name != "" {
		name = item.Name
	}
	return e.strings.Resolve("item."+id+".name", name, nil)
}

// resolveItem matches an inventory item by ID or name. Empty when absent.
func (e *Engine) resolveItem(nameOrID string) string {
	for _, id := range e.State.Inventory {
		if id == nameOrID {
			return id
		}
	}
	for _, id := range e.State.Inventory {
		if item, ok := e.Defs.Items[id]; ok && strings.EqualFold(item.Name, nameOrID) {
			return id
		}
	}
	return ""
}

// SolvedPuzzles returns the sorted IDs of solved puzzles.
func (e *Engine) SolvedPuzzles() []string {
	var ids []string
	for id, ok := range e.State.Solved {
		if ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
