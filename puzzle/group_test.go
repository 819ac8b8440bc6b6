package puzzle

import (
	"testing"

	"github.com/raven2cz/escape-game-engine-sub001/types"
)

func groupConfig() types.PuzzleConfig {
	return types.PuzzleConfig{
		ID: "sorting", Kind: "group",
		Groups: []types.GroupDef{
			{ID: "metal", Label: "Metal"},
			{ID: "wood", Label: "Wood"},
		},
		Tokens: []types.Token{
			{ID: "nail", Text: "Nail"},
			{ID: "plank", Text: "Plank"},
			{ID: "screw", Text: "Screw"},
		},
		SolutionMap: map[string]string{"nail": "metal", "screw": "metal", "plank": "wood"},
	}
}

func TestGroup_EmptySolutionNeverCorrect(t *testing.T) {
	cfg := groupConfig()
	cfg.SolutionMap = nil
	_, c, cap := mountConfig(t, cfg, types.InstanceOptions{})

	c.Activate("check")
	if res, ok := cap.last(); !ok || res.OK {
		t.Error("missing solution map must never validate correct")
	}
}

func TestGroup_AssignAndValidate(t *testing.T) {
	_, c, cap := mountConfig(t, groupConfig(), types.InstanceOptions{})

	c.Activate("nail")
	c.Activate("group:metal")
	c.Activate("screw")
	c.Activate("group:metal")
	c.Activate("plank")
	c.Activate("group:wood")
	c.Activate("check")

	if res, _ := cap.last(); !res.OK {
		t.Errorf("expected correct grouping, got %v", cap.results)
	}
}

func TestGroup_MisplacedTokenIsWrong(t *testing.T) {
	_, c, cap := mountConfig(t, groupConfig(), types.InstanceOptions{})

	c.Activate("nail")
	c.Activate("group:wood")
	c.Activate("screw")
	c.Activate("group:metal")
	c.Activate("plank")
	c.Activate("group:wood")
	c.Activate("check")

	if res, _ := cap.last(); res.OK {
		t.Error("misplaced token must not validate correct")
	}
}

func TestGroup_UnassignedTokenIsWrong(t *testing.T) {
	_, c, cap := mountConfig(t, groupConfig(), types.InstanceOptions{})

	c.Activate("nail")
	c.Activate("group:metal")
	c.Activate("screw")
	c.Activate("group:metal")
	c.Activate("check")

	if res, _ := cap.last(); res.OK {
		t.Error("pool leftovers must not validate correct")
	}
}

func TestGroup_ClickAssignedReturnsToPool(t *testing.T) {
	_, c, _ := mountConfig(t, groupConfig(), types.InstanceOptions{})

	c.Activate("nail")
	c.Activate("group:wood")
	c.Activate("nail") // no selection: back to pool

	if c.Find("nail").Area != "pool" {
		t.Errorf("nail area = %q, want pool", c.Find("nail").Area)
	}
}

func TestGroup_AssignWithoutSelectionIsNoop(t *testing.T) {
	_, c, _ := mountConfig(t, groupConfig(), types.InstanceOptions{})

	c.Activate("group:metal")
	for _, id := range []string{"nail", "plank", "screw"} {
		if c.Find(id).Area != "pool" {
			t.Errorf("%s moved without a selection", id)
		}
	}
}

func TestGroup_HeadersOnGrid(t *testing.T) {
	_, c, _ := mountConfig(t, groupConfig(), types.InstanceOptions{})

	// Two groups on a vertical layout: 2 cols × 1 row.
	m := c.Find("group:metal")
	w := c.Find("group:wood")
	if m.Pos == nil || w.Pos == nil {
		t.Fatal("group headers should carry grid positions")
	}
	if m.Pos.Top != 0 || w.Pos.Top != 0 {
		t.Errorf("two groups should share a single row: %v %v", *m.Pos, *w.Pos)
	}
	if m.Pos.Left == w.Pos.Left {
		t.Error("group headers should occupy distinct columns")
	}
}
