package puzzle

import (
	"testing"

	"github.com/raven2cz/escape-game-engine-sub001/types"
)

// capture records every result that reaches the host callback.
type capture struct {
	results []types.PuzzleResult
}

func (c *capture) last() (types.PuzzleResult, bool) {
	if len(c.results) == 0 {
		return types.PuzzleResult{}, false
	}
	return c.results[len(c.results)-1], true
}

// mountConfig runs a config through the full runner lifecycle and returns the
// mounted container plus the captured host results.
func mountConfig(t *testing.T, cfg types.PuzzleConfig, opts types.InstanceOptions) (*Runner, *Container, *capture) {
	t.Helper()
	cap := &capture{}
	r, err := NewRunner(Options{
		Config:   &cfg,
		Instance: opts,
		OnResolve: func(res types.PuzzleResult) {
			cap.results = append(cap.results, res)
		},
	})
	if err != nil {
		t.Fatalf("NewRunner failed: %v", err)
	}
	c := NewContainer()
	r.MountInto(c)
	return r, c, cap
}

func TestBaseFallback_NeverCorrect(t *testing.T) {
	_, c, cap := mountConfig(t, types.PuzzleConfig{ID: "mystery", Kind: "hologram"}, types.InstanceOptions{})

	// Unknown kind mounts an empty surface with no check affordance.
	if c.Find("check") != nil {
		t.Error("fallback kind should not mount chrome")
	}
	if len(cap.results) != 0 {
		t.Errorf("expected no results, got %v", cap.results)
	}
}

func TestChrome_CheckAndCancel(t *testing.T) {
	cfg := types.PuzzleConfig{
		ID: "door", Kind: "phrase", Title: "The Door", Prompt: "Speak, friend.",
		Solution: "mellon",
	}
	_, c, cap := mountConfig(t, cfg, types.InstanceOptions{})

	if c.Find("check") == nil || c.Find("cancel") == nil {
		t.Fatal("expected check and cancel buttons")
	}

	c.SetInput("answer", "mellon")
	c.Activate("check")
	res, ok := cap.last()
	if !ok || !res.OK {
		t.Errorf("expected correct result, got %v", cap.results)
	}
}

func TestChrome_CancelAlwaysResolvesFalse(t *testing.T) {
	cfg := types.PuzzleConfig{ID: "vault", Kind: "code", Solution: "4512"}
	_, c, cap := mountConfig(t, cfg, types.InstanceOptions{BlockUntilSolved: true})

	c.Activate("cancel")
	res, ok := cap.last()
	if !ok {
		t.Fatal("cancel should always reach the host")
	}
	if res.OK {
		t.Error("cancel must resolve ok=false")
	}
}

func TestSubstitute(t *testing.T) {
	got := substitute("Step {step} of {total}", map[string]string{"step": "2", "total": "5"})
	if got != "Step 2 of 5" {
		t.Errorf("substitute = %q", got)
	}
}

func TestEnvString_NilHostUsesFallback(t *testing.T) {
	env := Env{}
	got := env.String("ui.check", "Check {x}", map[string]string{"x": "now"})
	if got != "Check now" {
		t.Errorf("String = %q", got)
	}
}
