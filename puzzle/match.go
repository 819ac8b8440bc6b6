package puzzle

import "github.com/raven2cz/escape-game-engine-sub001/types"

// matchPuzzle associates tokens into pairs. Two presentation modes share the
// pairing state machine:
//
//   - "columns" (default): two fixed columns by token side; a pair needs one
//     token from each column.
//   - "dragdrop": all tokens start scattered at randomized non-overlapping
//     positions on a free-form board; any two tokens may pair, and the
//     partner snaps next to the first.
//
// Clicking an unpaired token selects it; clicking a second eligible token
// realizes the pair and tags both with a shared pair index. Clicking a
// paired token dissolves that pair. Validation compares the realized pair
// set against the solution map, direction- and order-independent.
type matchPuzzle struct {
	base
	selected string
	pairs    map[string]string // one entry per realized pair, first→second
	nextPair int
}

func (p *matchPuzzle) dragdrop() bool {
	return p.cfg.Layout == "dragdrop"
}

func (p *matchPuzzle) Mount(c *Container) {
	p.c = c
	p.selected = ""
	p.pairs = map[string]string{}
	p.nextPair = 0

	var positions []types.Point
	if p.dragdrop() {
		bounds := defaultBoard
		if p.cfg.Board != nil {
			bounds = *p.cfg.Board
		}
		rng := NewRNG(seedFor(p.cfg.ID, p.cfg.Seed))
		positions = ScatterPositions(rng, len(p.cfg.Tokens), bounds)
	}

	for i, tok := range p.cfg.Tokens {
		id := tok.ID
		el := c.Add(&Element{
			ID:   id,
			Kind: ElemToken,
			Text: p.env.String("token."+id, tok.Text, nil),
		})
		if p.dragdrop() {
			el.Area = "board"
			pos := positions[i]
			el.Pos = &pos
		} else {
			el.Area = "column:" + tok.Side
		}
		el.OnActivate = func() { p.click(id) }
	}
	p.mountChrome(c, p)
}

func (p *matchPuzzle) click(id string) {
	el := p.c.Find(id)
	if el == nil {
		return
	}

	// A paired token dissolves its pair.
	if el.Pair != 0 {
		p.dissolve(el.Pair)
		return
	}

	// First pick of a pair.
	if p.selected == "" {
		p.selected = id
		el.Selected = true
		return
	}

	// Clicking the selection again deselects it.
	if p.selected == id {
		p.selected = ""
		el.Selected = false
		return
	}

	first := p.c.Find(p.selected)
	if first == nil {
		p.selected = ""
		return
	}

	// Columns mode pairs across columns only; a same-side click just moves
	// the selection.
	if !p.dragdrop() && first.Area == el.Area {
		first.Selected = false
		p.selected = id
		el.Selected = true
		return
	}

	p.nextPair++
	p.pairs[first.ID] = el.ID
	first.Pair = p.nextPair
	el.Pair = p.nextPair
	first.Selected = false
	p.selected = ""

	// On the free-form board the partner snaps next to the first token.
	if p.dragdrop() && first.Pos != nil {
		el.Pos = &types.Point{Left: first.Pos.Left + 2*scatterMargin, Top: first.Pos.Top}
	}
}

func (p *matchPuzzle) dissolve(tag int) {
	for _, el := range p.c.Elements() {
		if el.Kind == ElemToken && el.Pair == tag {
			el.Pair = 0
			delete(p.pairs, el.ID)
		}
	}
}

func (p *matchPuzzle) Validate() types.PuzzleResult {
	realized := map[string]string{}
	for a, b := range p.pairs {
		realized[a] = b
	}

	// No solution map configured: no correct answer possible.
	if len(p.cfg.SolutionMap) == 0 {
		return types.PuzzleResult{OK: false, Value: realized}
	}
	if len(realized) != len(p.cfg.SolutionMap) {
		return types.PuzzleResult{OK: false, Value: realized}
	}
	for k, v := range p.cfg.SolutionMap {
		if realized[k] != v && realized[v] != k {
			return types.PuzzleResult{OK: false, Value: realized}
		}
	}
	return types.PuzzleResult{OK: true, Value: realized}
}

func (p *matchPuzzle) Unmount() {
	p.selected = ""
	p.pairs = nil
	p.base.Unmount()
}
