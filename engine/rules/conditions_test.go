package rules

import (
	"testing"

	"github.com/raven2cz/escape-game-engine-sub001/engine/state"
	"github.com/raven2cz/escape-game-engine-sub001/types"
)

func testSetup() (*types.State, *state.Defs) {
	defs := &state.Defs{
		Game:   types.GameDef{Start: "cellar"},
		Scenes: map[string]types.SceneDef{"cellar": {ID: "cellar"}},
		Items:  map[string]types.ItemDef{"key": {ID: "key"}},
	}
	return state.NewState(defs), defs
}

func cond(typ string, params map[string]any) types.Condition {
	return types.Condition{Type: typ, Params: params}
}

func TestEval_HasItem(t *testing.T) {
	s, defs := testSetup()
	c := cond("has_item", map[string]any{"item": "key"})

	if Eval(c, s, defs) {
		t.Error("has_item should fail on empty inventory")
	}
	s.Inventory = append(s.Inventory, "key")
	if !Eval(c, s, defs) {
		t.Error("has_item should pass after pickup")
	}
}

func TestEval_Flags(t *testing.T) {
	s, defs := testSetup()

	if Eval(cond("flag_set", map[string]any{"flag": "lit"}), s, defs) {
		t.Error("flag_set on unset flag")
	}
	if !Eval(cond("flag_not", map[string]any{"flag": "lit"}), s, defs) {
		t.Error("flag_not on unset flag should pass")
	}

	s.Flags["lit"] = true
	if !Eval(cond("flag_set", map[string]any{"flag": "lit"}), s, defs) {
		t.Error("flag_set on set flag should pass")
	}
	if Eval(cond("flag_not", map[string]any{"flag": "lit"}), s, defs) {
		t.Error("flag_not on set flag should fail")
	}
}

func TestEval_Solved(t *testing.T) {
	s, defs := testSetup()
	c := cond("solved", map[string]any{"puzzle": "safe"})

	if Eval(c, s, defs) {
		t.Error("solved should fail before solving")
	}
	s.Solved["safe"] = true
	if !Eval(c, s, defs) {
		t.Error("solved should pass after solving")
	}
}

func TestEval_Not(t *testing.T) {
	s, defs := testSetup()
	inner := cond("has_item", map[string]any{"item": "key"})
	c := types.Condition{Type: "not", Inner: &inner}

	if !Eval(c, s, defs) {
		t.Error("not(has_item) should pass on empty inventory")
	}
	s.Inventory = append(s.Inventory, "key")
	if Eval(c, s, defs) {
		t.Error("not(has_item) should fail with the key")
	}
}

func TestEval_NotWithoutInner(t *testing.T) {
	s, defs := testSetup()
	if Eval(types.Condition{Type: "not"}, s, defs) {
		t.Error("malformed not should evaluate false")
	}
}

func TestEval_UnknownTypeIsFalse(t *testing.T) {
	s, defs := testSetup()
	if Eval(cond("alignment_check", nil), s, defs) {
		t.Error("unknown condition type must evaluate false")
	}
}

func TestEvalAll(t *testing.T) {
	s, defs := testSetup()
	s.Inventory = append(s.Inventory, "key")

	all := []types.Condition{
		cond("has_item", map[string]any{"item": "key"}),
		cond("flag_not", map[string]any{"flag": "alarm"}),
	}
	if !EvalAll(all, s, defs) {
		t.Error("all conditions hold, EvalAll should pass")
	}

	s.Flags["alarm"] = true
	if EvalAll(all, s, defs) {
		t.Error("one failing condition should fail EvalAll")
	}

	if !EvalAll(nil, s, defs) {
		t.Error("empty condition list holds")
	}
}
