package puzzle

import (
	"sort"

	"github.com/raven2cz/escape-game-engine-sub001/types"
)

// quizPuzzle renders a clickable token set. Single-select clears the prior
// pick on every click; multi-select toggles membership. Validation compares
// the selected ID set against the solution set, order-independent.
type quizPuzzle struct {
	base
	selected map[string]bool
}

func (p *quizPuzzle) Mount(c *Container) {
	p.c = c
	p.selected = map[string]bool{}
	for _, tok := range p.cfg.Tokens {
		id := tok.ID
		el := c.Add(&Element{
			ID:   id,
			Kind: ElemToken,
			Area: "board",
			Text: p.env.String("token."+id, tok.Text, nil),
		})
		el.OnActivate = func() { p.click(id) }
	}
	p.mountChrome(c, p)
}

func (p *quizPuzzle) click(id string) {
	if p.cfg.MultiSelect {
		p.selected[id] = !p.selected[id]
	} else {
		wasSelected := p.selected[id]
		p.selected = map[string]bool{}
		if !wasSelected {
			p.selected[id] = true
		}
	}
	p.refresh()
}

func (p *quizPuzzle) refresh() {
	if p.c == nil {
		return
	}
	for _, el := range p.c.Elements() {
		if el.Kind == ElemToken {
			el.Selected = p.selected[el.ID]
		}
	}
}

func (p *quizPuzzle) Validate() types.PuzzleResult {
	// No solution set configured: no correct answer possible.
	if len(p.cfg.Solutions) == 0 {
		return types.PuzzleResult{OK: false, Value: []string(nil)}
	}

	want := map[string]bool{}
	for _, id := range p.cfg.Solutions {
		want[id] = true
	}

	var picked []string
	for id, on := range p.selected {
		if on {
			picked = append(picked, id)
		}
	}
	sort.Strings(picked)

	if len(picked) != len(want) {
		return types.PuzzleResult{OK: false, Value: picked}
	}
	for _, id := range picked {
		if !want[id] {
			return types.PuzzleResult{OK: false, Value: picked}
		}
	}
	return types.PuzzleResult{OK: true, Value: picked}
}

func (p *quizPuzzle) Unmount() {
	p.selected = nil
	p.base.Unmount()
}
