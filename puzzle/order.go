package puzzle

import "github.com/raven2cz/escape-game-engine-sub001/types"

// orderPuzzle presents a shuffled token pool and an ordered target sequence.
// Clicking a pool token appends it to the end of the sequence; a reset
// button returns everything to the pool. Validation is position-sensitive.
type orderPuzzle struct {
	base
	sequence []string
}

func (p *orderPuzzle) Mount(c *Container) {
	p.c = c
	p.sequence = nil

	rng := NewRNG(seedFor(p.cfg.ID, p.cfg.Seed))
	shuffled := make([]types.Token, len(p.cfg.Tokens))
	copy(shuffled, p.cfg.Tokens)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	for _, tok := range shuffled {
		id := tok.ID
		el := c.Add(&Element{
			ID:   id,
			Kind: ElemToken,
			Area: "pool",
			Text: p.env.String("token."+id, tok.Text, nil),
		})
		el.OnActivate = func() { p.click(id) }
	}

	c.Add(&Element{
		ID:         "reset",
		Kind:       ElemButton,
		Area:       "controls",
		Text:       p.env.String("ui.reset", "Reset", nil),
		OnActivate: p.reset,
	})
	p.mountChrome(c, p)
}

// click moves a pool token to the end of the sequence. Tokens already in
// the sequence stay put; reset is the only way back.
func (p *orderPuzzle) click(id string) {
	el := p.c.Find(id)
	if el == nil || el.Area != "pool" {
		return
	}
	el.Area = "sequence"
	p.sequence = append(p.sequence, id)
}

func (p *orderPuzzle) reset() {
	p.sequence = nil
	for _, el := range p.c.Elements() {
		if el.Kind == ElemToken {
			el.Area = "pool"
		}
	}
}

func (p *orderPuzzle) Validate() types.PuzzleResult {
	seq := append([]string(nil), p.sequence...)
	// No solution sequence configured: no correct answer possible.
	if len(p.cfg.Solutions) == 0 {
		return types.PuzzleResult{OK: false, Value: seq}
	}
	if len(seq) != len(p.cfg.Solutions) {
		return types.PuzzleResult{OK: false, Value: seq}
	}
	for i, id := range p.cfg.Solutions {
		if seq[i] != id {
			return types.PuzzleResult{OK: false, Value: seq}
		}
	}
	return types.PuzzleResult{OK: true, Value: seq}
}

func (p *orderPuzzle) Unmount() {
	p.sequence = nil
	p.base.Unmount()
}
