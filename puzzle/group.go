package puzzle

import "github.com/raven2cz/escape-game-engine-sub001/types"

// groupPuzzle sorts tokens from an unassigned pool into labeled group areas
// laid out on a computed grid. Select a token, then click a group header to
// assign it; clicking an assigned token with nothing selected returns it to
// the pool. Validation requires the full token→group map to equal the
// solution map exactly.
type groupPuzzle struct {
	base
	selected   string
	assignment map[string]string
}

func (p *groupPuzzle) Mount(c *Container) {
	p.c = c
	p.selected = ""
	p.assignment = map[string]string{}

	cols, _ := GroupGrid(len(p.cfg.Groups), p.cfg.Direction)
	for i, g := range p.cfg.Groups {
		gid := g.ID
		el := c.Add(&Element{
			ID:   "group:" + gid,
			Kind: ElemButton,
			Area: "group:" + gid,
			Text: p.env.String("group."+gid, g.Label, nil),
		})
		// Grid cell of this group area, row-major.
		el.Pos = &types.Point{Left: i % cols, Top: i / cols}
		el.OnActivate = func() { p.assign(gid) }
	}

	for _, tok := range p.cfg.Tokens {
		id := tok.ID
		el := c.Add(&Element{
			ID:   id,
			Kind: ElemToken,
			Area: "pool",
			Text: p.env.String("token."+id, tok.Text, nil),
		})
		el.OnActivate = func() { p.click(id) }
	}
	p.mountChrome(c, p)
}

func (p *groupPuzzle) click(id string) {
	el := p.c.Find(id)
	if el == nil {
		return
	}

	if p.selected == id {
		p.selected = ""
		el.Selected = false
		return
	}

	// An assigned token clicked with no selection goes back to the pool.
	if p.selected == "" && el.Area != "pool" {
		delete(p.assignment, id)
		el.Area = "pool"
		return
	}

	if prev := p.c.Find(p.selected); prev != nil {
		prev.Selected = false
	}
	p.selected = id
	el.Selected = true
}

// assign moves the selected token into the given group area and records the
// token→group mapping.
func (p *groupPuzzle) assign(groupID string) {
	if p.selected == "" {
		return
	}
	el := p.c.Find(p.selected)
	if el == nil {
		p.selected = ""
		return
	}
	p.assignment[el.ID] = groupID
	el.Area = "group:" + groupID
	el.Selected = false
	p.selected = ""
}

func (p *groupPuzzle) Validate() types.PuzzleResult {
	assigned := map[string]string{}
	for k, v := range p.assignment {
		assigned[k] = v
	}

	// No solution map configured: no correct answer possible.
	if len(p.cfg.SolutionMap) == 0 {
		return types.PuzzleResult{OK: false, Value: assigned}
	}
	if len(assigned) != len(p.cfg.SolutionMap) {
		return types.PuzzleResult{OK: false, Value: assigned}
	}
	for tok, group := range p.cfg.SolutionMap {
		if assigned[tok] != group {
			return types.PuzzleResult{OK: false, Value: assigned}
		}
	}
	return types.PuzzleResult{OK: true, Value: assigned}
}

func (p *groupPuzzle) Unmount() {
	p.selected = ""
	p.assignment = nil
	p.base.Unmount()
}
