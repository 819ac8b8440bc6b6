package puzzle

import (
	"testing"

	"github.com/raven2cz/escape-game-engine-sub001/types"
)

func clozeConfig() types.PuzzleConfig {
	return types.PuzzleConfig{
		ID: "verse", Kind: "cloze",
		Text: "The {g1} rises in the {g2}.",
		Tokens: []types.Token{
			{ID: "sun", Text: "sun"},
			{ID: "east", Text: "east"},
			{ID: "west", Text: "west"},
		},
		SolutionMap: map[string]string{"g1": "sun", "g2": "east"},
	}
}

func TestParseCloze(t *testing.T) {
	segs := parseCloze("a {x} b {y}")
	var gaps, literals int
	for _, s := range segs {
		if s.gapID != "" {
			gaps++
		} else {
			literals++
		}
	}
	if gaps != 2 {
		t.Errorf("gaps = %d, want 2", gaps)
	}
	if literals != 2 {
		t.Errorf("literals = %d, want 2", literals)
	}
}

func TestParseCloze_NoGaps(t *testing.T) {
	segs := parseCloze("plain text")
	if len(segs) != 1 || segs[0].literal != "plain text" {
		t.Errorf("segs = %+v", segs)
	}
}

func TestCloze_PlaceAndValidate(t *testing.T) {
	_, c, cap := mountConfig(t, clozeConfig(), types.InstanceOptions{})

	c.Activate("sun")
	c.Activate("g1")
	c.Activate("east")
	c.Activate("g2")
	c.Activate("check")

	if res, _ := cap.last(); !res.OK {
		t.Errorf("expected correct placement, got %v", cap.results)
	}
}

func TestCloze_WrongTokenInGap(t *testing.T) {
	_, c, cap := mountConfig(t, clozeConfig(), types.InstanceOptions{})

	c.Activate("sun")
	c.Activate("g1")
	c.Activate("west")
	c.Activate("g2")
	c.Activate("check")

	if res, _ := cap.last(); res.OK {
		t.Error("wrong token must not validate correct")
	}
}

func TestCloze_FilledGapEmptiesBackToBank(t *testing.T) {
	_, c, _ := mountConfig(t, clozeConfig(), types.InstanceOptions{})

	c.Activate("west")
	c.Activate("g1")
	if c.Find("west").Area != "placed" {
		t.Fatalf("west area = %q, want placed", c.Find("west").Area)
	}

	c.Activate("g1") // unplace
	if c.Find("west").Area != "bank" {
		t.Errorf("west area = %q, want bank", c.Find("west").Area)
	}
	if c.Find("g1").Value != "" {
		t.Errorf("gap value = %q, want empty", c.Find("g1").Value)
	}
}

func TestCloze_PlacedTokenCannotBeSelected(t *testing.T) {
	_, c, _ := mountConfig(t, clozeConfig(), types.InstanceOptions{})

	c.Activate("sun")
	c.Activate("g1")
	c.Activate("sun") // placed, not in bank: no-op
	if c.Find("sun").Selected {
		t.Error("placed token should not be selectable")
	}
}

func TestCloze_GapHoldsOneToken(t *testing.T) {
	_, c, _ := mountConfig(t, clozeConfig(), types.InstanceOptions{})

	c.Activate("sun")
	c.Activate("g1")
	c.Activate("west")
	c.Activate("g1") // filled gap: empties instead of replacing

	if c.Find("g1").Value != "" {
		t.Errorf("gap value = %q, want emptied", c.Find("g1").Value)
	}
	if c.Find("sun").Area != "bank" {
		t.Errorf("sun area = %q, want bank", c.Find("sun").Area)
	}
}

func TestCloze_EmptySolutionNeverCorrect(t *testing.T) {
	cfg := types.PuzzleConfig{ID: "blank", Kind: "cloze", Text: "no gaps here"}
	_, c, cap := mountConfig(t, cfg, types.InstanceOptions{})

	c.Activate("check")
	if res, ok := cap.last(); !ok || res.OK {
		t.Error("missing solution map must never validate correct")
	}
}
