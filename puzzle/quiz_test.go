package puzzle

import (
	"testing"

	"github.com/raven2cz/escape-game-engine-sub001/types"
)

func quizConfig(multi bool) types.PuzzleConfig {
	return types.PuzzleConfig{
		ID: "q", Kind: "quiz", MultiSelect: multi,
		Tokens: []types.Token{
			{ID: "red", Text: "Red"},
			{ID: "green", Text: "Green"},
			{ID: "blue", Text: "Blue"},
		},
		Solutions: []string{"green"},
	}
}

func TestQuiz_SingleSelectClearsPriorPick(t *testing.T) {
	_, c, cap := mountConfig(t, quizConfig(false), types.InstanceOptions{})

	c.Activate("red")
	c.Activate("green")

	if c.Find("red").Selected {
		t.Error("red should deselect when green is picked")
	}
	if !c.Find("green").Selected {
		t.Error("green should be selected")
	}

	c.Activate("check")
	if res, _ := cap.last(); !res.OK {
		t.Errorf("expected correct result, got %v", cap.results)
	}
}

func TestQuiz_SingleSelectReclickDeselects(t *testing.T) {
	_, c, _ := mountConfig(t, quizConfig(false), types.InstanceOptions{})

	c.Activate("green")
	c.Activate("green")

	if c.Find("green").Selected {
		t.Error("re-clicking the selection should deselect it")
	}
}

func TestQuiz_MultiSelectToggle(t *testing.T) {
	cfg := quizConfig(true)
	cfg.Solutions = []string{"red", "blue"}
	_, c, cap := mountConfig(t, cfg, types.InstanceOptions{})

	c.Activate("red")
	c.Activate("green")
	c.Activate("blue")
	c.Activate("green") // toggle off

	c.Activate("check")
	if res, _ := cap.last(); !res.OK {
		t.Errorf("expected {red,blue} correct, got %v", cap.results)
	}
}

func TestQuiz_SupersetIsWrong(t *testing.T) {
	cfg := quizConfig(true)
	_, c, cap := mountConfig(t, cfg, types.InstanceOptions{})

	c.Activate("green")
	c.Activate("red")
	c.Activate("check")

	if res, _ := cap.last(); res.OK {
		t.Error("superset of the solution must not validate correct")
	}
}

func TestQuiz_EmptySolutionsNeverCorrect(t *testing.T) {
	cfg := quizConfig(false)
	cfg.Solutions = nil
	_, c, cap := mountConfig(t, cfg, types.InstanceOptions{})

	c.Activate("check")
	if res, ok := cap.last(); !ok || res.OK {
		t.Error("missing solution set must never validate correct")
	}

	c.Activate("red")
	c.Activate("check")
	if res, _ := cap.last(); res.OK {
		t.Error("missing solution set must never validate correct, regardless of selection")
	}
}
