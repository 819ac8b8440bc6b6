package engine

import (
	"strings"
	"testing"

	"github.com/raven2cz/escape-game-engine-sub001/engine/state"
	"github.com/raven2cz/escape-game-engine-sub001/types"
)

// testGame builds a small two-scene escape room: a cellar with a crate
// holding a key, a locked safe puzzle gating a door to the attic.
func testGame() *state.Defs {
	return &state.Defs{
		Game: types.GameDef{Title: "Cellar Escape", Start: "cellar"},
		Scenes: map[string]types.SceneDef{
			"cellar": {
				ID:          "cellar",
				Description: "A damp cellar. A single bulb hums overhead.",
				Hotspots: []types.HotspotDef{
					{
						ID: "crate", Name: "Old Crate",
						Effects: []types.Effect{
							{Type: "say", Params: map[string]any{"text": "You pry the crate open."}},
							{Type: "give_item", Params: map[string]any{"item": "key"}},
						},
					},
					{
						ID: "safe", Name: "Wall Safe",
						Effects: []types.Effect{
							{Type: "run_puzzle", Params: map[string]any{
								"ref":   "safe_code",
								"block": true,
								"on_solved": []any{
									map[string]any{"type": "reveal_hotspot", "hotspot": "door"},
								},
							}},
						},
					},
					{
						ID: "door", Name: "Iron Door", Hidden: true,
						Requires: []types.Condition{
							{Type: "has_item", Params: map[string]any{"item": "key"}},
						},
						Effects: []types.Effect{
							{Type: "goto", Params: map[string]any{"scene": "attic"}},
						},
						ItemEffects: map[string][]types.Effect{
							"key": {
								{Type: "say", Params: map[string]any{"text": "The key turns."}},
								{Type: "goto", Params: map[string]any{"scene": "attic"}},
							},
						},
					},
				},
			},
			"attic": {ID: "attic", Description: "Dusty rafters and daylight."},
		},
		Items: map[string]types.ItemDef{
			"key": {ID: "key", Name: "Brass Key", Description: "Small and tarnished."},
		},
		Puzzles: map[string]types.PuzzleConfig{
			"safe_code": {ID: "safe_code", Kind: "code", Title: "Wall Safe", Solution: "1905"},
		},
	}
}

func TestEngine_LookDescribesSceneAndHotspots(t *testing.T) {
	e := New(testGame())
	res := e.Look()

	joined := strings.Join(res.Output, "\n")
	if !strings.Contains(joined, "damp cellar") {
		t.Errorf("Look output missing description: %v", res.Output)
	}
	if !strings.Contains(joined, "Old Crate") {
		t.Errorf("Look output missing hotspots: %v", res.Output)
	}
	if strings.Contains(joined, "Iron Door") {
		t.Errorf("hidden hotspot should not be listed: %v", res.Output)
	}
}

func TestEngine_ClickAppliesEffects(t *testing.T) {
	e := New(testGame())
	res := e.Click("crate")

	if !strings.Contains(strings.Join(res.Output, "\n"), "pry the crate") {
		t.Errorf("output = %v", res.Output)
	}
	if !state.HasItem(e.State, "key") {
		t.Error("key not in inventory after click")
	}
}

func TestEngine_ClickByName(t *testing.T) {
	e := New(testGame())
	res := e.Click("old crate")
	if !state.HasItem(e.State, "key") {
		t.Errorf("name lookup failed: %v", res.Output)
	}
}

func TestEngine_ClickUnknownHotspot(t *testing.T) {
	e := New(testGame())
	res := e.Click("piano")
	if !strings.Contains(strings.Join(res.Output, "\n"), "don't see") {
		t.Errorf("output = %v", res.Output)
	}
}

func TestEngine_HiddenHotspotNotClickable(t *testing.T) {
	e := New(testGame())
	res := e.Click("door")
	if e.State.Scene != "cellar" {
		t.Error("hidden hotspot must not be reachable")
	}
	if !strings.Contains(strings.Join(res.Output, "\n"), "don't see") {
		t.Errorf("output = %v", res.Output)
	}
}

func TestEngine_RequiresGate(t *testing.T) {
	defs := testGame()
	// Make the door visible but keep its key requirement.
	hs := defs.Scenes["cellar"].Hotspots
	hs[2].Hidden = false

	e := New(defs)
	res := e.Click("door")
	if e.State.Scene != "cellar" {
		t.Error("condition gate should block the transition")
	}
	if !strings.Contains(strings.Join(res.Output, "\n"), "can't") {
		t.Errorf("output = %v", res.Output)
	}

	e.Click("crate") // take the key
	e.Click("door")
	if e.State.Scene != "attic" {
		t.Error("transition should succeed with the key")
	}
}

func TestEngine_InventoryAndExamine(t *testing.T) {
	e := New(testGame())

	res := e.Inventory()
	if !strings.Contains(strings.Join(res.Output, "\n"), "nothing") {
		t.Errorf("empty inventory output = %v", res.Output)
	}

	e.Click("crate")
	res = e.Inventory()
	if !strings.Contains(strings.Join(res.Output, "\n"), "Brass Key") {
		t.Errorf("inventory output = %v", res.Output)
	}

	res = e.Examine("brass key")
	if !strings.Contains(strings.Join(res.Output, "\n"), "tarnished") {
		t.Errorf("examine output = %v", res.Output)
	}

	res = e.Examine("crowbar")
	if !strings.Contains(strings.Join(res.Output, "\n"), "don't have") {
		t.Errorf("examine unknown output = %v", res.Output)
	}
}

func TestEngine_UseItemOnHotspot(t *testing.T) {
	defs := testGame()
	defs.Scenes["cellar"].Hotspots[2].Hidden = false

	e := New(defs)
	e.Click("crate")
	res := e.UseItem("brass key", "iron door")

	if e.State.Scene != "attic" {
		t.Errorf("use item failed: %v", res.Output)
	}
	if !strings.Contains(strings.Join(res.Output, "\n"), "key turns") {
		t.Errorf("output = %v", res.Output)
	}
}

func TestEngine_UseItemNotCarried(t *testing.T) {
	e := New(testGame())
	res := e.UseItem("crowbar", "crate")
	if !strings.Contains(strings.Join(res.Output, "\n"), "don't have") {
		t.Errorf("output = %v", res.Output)
	}
}

func TestEngine_PuzzleFlowEndToEnd(t *testing.T) {
	e := New(testGame())

	res := e.Click("safe")
	if !e.PuzzleActive() {
		t.Fatal("puzzle should be mounted after the click")
	}
	if !strings.Contains(strings.Join(res.Output, "\n"), "Wall Safe") {
		t.Errorf("launch output = %v", res.Output)
	}

	// Scene input is captured while the puzzle is open.
	res = e.Click("crate")
	if state.HasItem(e.State, "key") {
		t.Error("scene click should be blocked while a puzzle is open")
	}
	if !strings.Contains(strings.Join(res.Output, "\n"), "puzzle") {
		t.Errorf("output = %v", res.Output)
	}

	// Wrong code is held: puzzle stays open, nothing resolves.
	e.PuzzleType("0000")
	res = e.PuzzleCheck()
	if !e.PuzzleActive() {
		t.Fatal("held puzzle should stay mounted on a wrong answer")
	}

	// Correct code resolves, marks solved, and runs on_solved effects.
	e.PuzzleType("1905")
	res = e.PuzzleCheck()
	if e.PuzzleActive() {
		t.Fatal("puzzle should unmount after solving")
	}
	if !e.State.Solved["safe_code"] {
		t.Error("puzzle not marked solved")
	}
	if !strings.Contains(strings.Join(res.Output, "\n"), "Solved") {
		t.Errorf("output = %v", res.Output)
	}

	// on_solved revealed the door.
	door, _ := state.FindHotspot(e.Defs, "cellar", "door")
	if !state.HotspotVisible(e.State, door, "cellar") {
		t.Error("on_solved reveal did not apply")
	}
}

func TestEngine_PuzzleCancelClosesWithoutSolving(t *testing.T) {
	e := New(testGame())
	e.Click("safe")

	res := e.PuzzleCancel()
	if e.PuzzleActive() {
		t.Fatal("cancel should unmount the puzzle")
	}
	if e.State.Solved["safe_code"] {
		t.Error("cancel must not mark the puzzle solved")
	}
	if !strings.Contains(strings.Join(res.Output, "\n"), "step back") {
		t.Errorf("output = %v", res.Output)
	}

	// The puzzle can be reopened and solved later.
	e.Click("safe")
	if !e.PuzzleActive() {
		t.Error("puzzle should reopen after cancel")
	}
}

func TestEngine_PuzzleSolvedEventHandler(t *testing.T) {
	defs := testGame()
	defs.Handlers = []types.EventHandler{{
		EventType: "puzzle_solved",
		Effects: []types.Effect{
			{Type: "say", Params: map[string]any{"text": "Something shifts in the wall."}},
		},
	}}

	e := New(defs)
	e.Click("safe")
	e.PuzzleType("1905")
	res := e.PuzzleCheck()

	if !strings.Contains(strings.Join(res.Output, "\n"), "Something shifts") {
		t.Errorf("handler output missing: %v", res.Output)
	}
}

func TestEngine_MissingPuzzleRefDegrades(t *testing.T) {
	defs := testGame()
	hs := defs.Scenes["cellar"].Hotspots
	hs[1].Effects = []types.Effect{
		{Type: "run_puzzle", Params: map[string]any{"ref": "ghost"}},
	}

	e := New(defs)
	res := e.Click("safe")
	if e.PuzzleActive() {
		t.Error("unresolvable ref must not mount a puzzle")
	}
	if len(res.Output) == 0 {
		t.Error("expected an output notice")
	}
}

func TestEngine_PuzzleInputWithoutPuzzle(t *testing.T) {
	e := New(testGame())
	res := e.PuzzleCheck()
	if !strings.Contains(strings.Join(res.Output, "\n"), "No puzzle") {
		t.Errorf("output = %v", res.Output)
	}
}

func TestEngine_ClickLog(t *testing.T) {
	e := New(testGame())
	e.Click("crate")
	e.Click("crate")

	if len(e.State.ClickLog) != 2 {
		t.Fatalf("ClickLog = %v", e.State.ClickLog)
	}
	if e.State.ClickLog[0] != "cellar/crate" {
		t.Errorf("ClickLog[0] = %q", e.State.ClickLog[0])
	}
}

func TestEngine_SolvedPuzzlesSorted(t *testing.T) {
	e := New(testGame())
	e.State.Solved["b"] = true
	e.State.Solved["a"] = true
	got := e.SolvedPuzzles()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("SolvedPuzzles = %v", got)
	}
}
