package puzzle

import "github.com/raven2cz/escape-game-engine-sub001/types"

// codePuzzle is a masked text field with exact string comparison — PIN
// semantics, so no case folding and no whitespace normalization.
type codePuzzle struct {
	base
	input string
}

func (p *codePuzzle) Mount(c *Container) {
	p.c = c
	c.Add(&Element{
		ID:      "code",
		Kind:    ElemField,
		Area:    "board",
		Masked:  true,
		OnInput: func(v string) { p.input = v },
	})
	p.mountChrome(c, p)
}

func (p *codePuzzle) Validate() types.PuzzleResult {
	if p.cfg.Solution == "" {
		return types.PuzzleResult{OK: false, Value: p.input}
	}
	return types.PuzzleResult{OK: p.input == p.cfg.Solution, Value: p.input}
}
