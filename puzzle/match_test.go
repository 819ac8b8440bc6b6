package puzzle

import (
	"testing"

	"github.com/raven2cz/escape-game-engine-sub001/types"
)

func columnsConfig() types.PuzzleConfig {
	return types.PuzzleConfig{
		ID: "pairs", Kind: "match",
		Tokens: []types.Token{
			{ID: "sun", Text: "Sun", Side: "left"},
			{ID: "moon", Text: "Moon", Side: "left"},
			{ID: "day", Text: "Day", Side: "right"},
			{ID: "night", Text: "Night", Side: "right"},
		},
		SolutionMap: map[string]string{"sun": "day", "moon": "night"},
	}
}

func dragdropConfig(n int) types.PuzzleConfig {
	cfg := types.PuzzleConfig{ID: "scatter", Kind: "match", Layout: "dragdrop"}
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	for i := 0; i < n; i++ {
		cfg.Tokens = append(cfg.Tokens, types.Token{ID: names[i], Text: names[i]})
	}
	return cfg
}

func TestMatch_ColumnsCorrectPairs(t *testing.T) {
	_, c, cap := mountConfig(t, columnsConfig(), types.InstanceOptions{})

	c.Activate("sun")
	c.Activate("day")
	c.Activate("night")
	c.Activate("moon")
	c.Activate("check")

	if res, _ := cap.last(); !res.OK {
		t.Errorf("expected correct pairs, got %v", cap.results)
	}
}

func TestMatch_EmptySolutionNeverCorrect(t *testing.T) {
	cfg := columnsConfig()
	cfg.SolutionMap = nil
	_, c, cap := mountConfig(t, cfg, types.InstanceOptions{})

	c.Activate("check")
	if res, ok := cap.last(); !ok || res.OK {
		t.Error("missing solution map must never validate correct")
	}
}

func TestMatch_DirectionIndependent(t *testing.T) {
	_, c, cap := mountConfig(t, columnsConfig(), types.InstanceOptions{})

	// Pair right→left; solution map is left→right.
	c.Activate("day")
	c.Activate("sun")
	c.Activate("night")
	c.Activate("moon")
	c.Activate("check")

	if res, _ := cap.last(); !res.OK {
		t.Errorf("pair direction should not matter, got %v", cap.results)
	}
}

func TestMatch_SameColumnMovesSelection(t *testing.T) {
	_, c, _ := mountConfig(t, columnsConfig(), types.InstanceOptions{})

	c.Activate("sun")
	c.Activate("moon") // same column: selection moves, no pair

	if c.Find("sun").Selected {
		t.Error("sun should be deselected")
	}
	if !c.Find("moon").Selected {
		t.Error("moon should hold the selection")
	}
	if c.Find("sun").Pair != 0 || c.Find("moon").Pair != 0 {
		t.Error("same-column click must not realize a pair")
	}
}

func TestMatch_ReclickDeselects(t *testing.T) {
	_, c, _ := mountConfig(t, columnsConfig(), types.InstanceOptions{})

	c.Activate("sun")
	c.Activate("sun")
	if c.Find("sun").Selected {
		t.Error("re-click should deselect")
	}
}

func TestMatch_DissolvePair(t *testing.T) {
	_, c, cap := mountConfig(t, columnsConfig(), types.InstanceOptions{})

	c.Activate("sun")
	c.Activate("night") // wrong pair
	c.Activate("moon")
	c.Activate("day") // wrong pair

	c.Activate("check")
	if res, _ := cap.last(); res.OK {
		t.Fatal("crossed pairs must not validate")
	}

	// Dissolve and re-pair correctly.
	c.Activate("sun")   // dissolves sun↔night
	c.Activate("moon")  // dissolves moon↔day
	c.Activate("sun")   // select
	c.Activate("day")   // pair
	c.Activate("moon")  // select
	c.Activate("night") // pair
	c.Activate("check")

	if res, _ := cap.last(); !res.OK {
		t.Errorf("re-paired solution should validate, got %v", cap.results)
	}
}

func TestMatch_IncompleteIsWrong(t *testing.T) {
	_, c, cap := mountConfig(t, columnsConfig(), types.InstanceOptions{})

	c.Activate("sun")
	c.Activate("day")
	c.Activate("check")

	if res, _ := cap.last(); res.OK {
		t.Error("one of two pairs must not validate correct")
	}
}

func TestMatch_DragdropDistinctPositions(t *testing.T) {
	_, c, _ := mountConfig(t, dragdropConfig(10), types.InstanceOptions{})

	seen := map[[2]int]bool{}
	count := 0
	for _, el := range c.Elements() {
		if el.Kind != ElemToken {
			continue
		}
		count++
		if el.Pos == nil {
			t.Fatalf("token %s has no position", el.ID)
		}
		key := [2]int{el.Pos.Left, el.Pos.Top}
		if seen[key] {
			t.Errorf("token %s shares position %v", el.ID, key)
		}
		seen[key] = true
	}
	if count != 10 {
		t.Fatalf("mounted %d tokens, want 10", count)
	}
}

func TestMatch_DragdropAnyTwoTokensPair(t *testing.T) {
	cfg := dragdropConfig(2)
	cfg.SolutionMap = map[string]string{"a": "b"}
	_, c, cap := mountConfig(t, cfg, types.InstanceOptions{})

	c.Activate("a")
	c.Activate("b")

	if c.Find("a").Pair == 0 || c.Find("a").Pair != c.Find("b").Pair {
		t.Fatal("dragdrop tokens should share a pair tag")
	}

	// Partner snapped next to the first token.
	a, b := c.Find("a"), c.Find("b")
	if b.Pos.Left != a.Pos.Left+2*scatterMargin || b.Pos.Top != a.Pos.Top {
		t.Errorf("partner position = %v, want beside %v", *b.Pos, *a.Pos)
	}

	c.Activate("check")
	if res, _ := cap.last(); !res.OK {
		t.Errorf("expected correct, got %v", cap.results)
	}
}
