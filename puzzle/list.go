package puzzle

import (
	"strconv"

	"github.com/raven2cz/escape-game-engine-sub001/types"
)

// listPuzzle runs a queue of puzzle references sequentially, one mounted
// sub-instance at a time. Each step resolves through its own nested runner;
// the list advances only on a correct result and reports completion to its
// own caller once all steps are exhausted. A failing step pauses the
// sequence — it is reported upward (subject to this list's own held policy)
// while the current step stays mounted for retry.
type listPuzzle struct {
	base
	step int
	sub  *Runner
	slot *Container
}

func (p *listPuzzle) Mount(c *Container) {
	p.c = c
	p.step = 0
	if p.cfg.Title != "" {
		c.Add(&Element{Kind: ElemLabel, Area: "header", Text: p.env.String("puzzle."+p.cfg.ID+".title", p.cfg.Title, nil)})
	}
	c.Add(&Element{ID: "progress", Kind: ElemLabel, Area: "header", Text: p.progress()})
	p.slot = c.Slot("step")
	p.mountStep()
}

func (p *listPuzzle) progress() string {
	params := map[string]string{
		"step":  strconv.Itoa(p.step + 1),
		"total": strconv.Itoa(len(p.cfg.Steps)),
	}
	return p.env.String("ui.step_progress", "Step {step} of {total}", params)
}

// mountStep constructs and mounts the runner for the current step. Steps
// inherit the list's own instance options, so a blocking list blocks each
// step in place.
func (p *listPuzzle) mountStep() {
	if p.step >= len(p.cfg.Steps) {
		return
	}
	ref := p.cfg.Steps[p.step]
	sub, err := NewRunner(Options{
		Ref:       ref,
		Puzzles:   p.env.Puzzles,
		Instance:  p.opts,
		Host:      p.env.Host,
		Registry:  p.env.Registry,
		OnResolve: p.onStep,
	})
	if err != nil {
		// Unresolvable step: degrade to an inert notice, never correct.
		p.slot.Add(&Element{Kind: ElemLabel, Area: "header", Text: p.env.String("ui.missing_step", "Missing step: {ref}", map[string]string{"ref": ref})})
		return
	}
	p.sub = sub
	sub.MountInto(p.slot)
}

// onStep receives each sub-instance result from the nested runner's
// deferred dispatch — never inside the sub-puzzle's own input handler.
func (p *listPuzzle) onStep(res types.PuzzleResult) {
	if !res.OK {
		// A blocking step runner already held its failed validations, so a
		// not-ok result here can only be the step's cancel affordance. Route
		// it as a cancel so the outer hold policy cannot swallow it.
		if p.opts.BlockUntilSolved {
			p.env.cancel()
			return
		}
		p.env.notify(types.PuzzleResult{OK: false, Value: p.step})
		return
	}

	// Teardown-then-construct: the prior sub-instance is fully unmounted
	// before the next step mounts.
	p.sub.Unmount()
	p.sub = nil
	p.slot.Clear()
	p.step++

	if p.step >= len(p.cfg.Steps) {
		p.env.notify(types.PuzzleResult{OK: true, Value: p.step})
		return
	}
	if el := p.c.Find("progress"); el != nil {
		el.Text = p.progress()
	}
	p.mountStep()
}

// Validate reflects sequence completion; an empty step list is trivially
// complete.
func (p *listPuzzle) Validate() types.PuzzleResult {
	return types.PuzzleResult{OK: p.step >= len(p.cfg.Steps), Value: p.step}
}

func (p *listPuzzle) Unmount() {
	if p.sub != nil {
		p.sub.Unmount()
		p.sub = nil
	}
	p.slot = nil
	p.base.Unmount()
}
