package puzzle

import "github.com/raven2cz/escape-game-engine-sub001/types"

// choicePuzzle renders one labeled dropdown per token, populated from that
// token's own choices. Every row must select its token's solution value;
// the result is a single aggregate boolean — no partial credit.
type choicePuzzle struct {
	base
	picks map[string]string
}

func (p *choicePuzzle) Mount(c *Container) {
	p.c = c
	p.picks = map[string]string{}
	for _, tok := range p.cfg.Tokens {
		id := tok.ID
		c.Add(&Element{
			Kind: ElemLabel,
			Area: "board",
			Text: p.env.String("token."+id, tok.Text, nil),
		})
		c.Add(&Element{
			ID:      id,
			Kind:    ElemSelect,
			Area:    "board",
			Options: tok.Choices,
			OnInput: func(v string) { p.picks[id] = v },
		})
	}
	p.mountChrome(c, p)
}

func (p *choicePuzzle) Validate() types.PuzzleResult {
	ok := true
	for _, tok := range p.cfg.Tokens {
		if tok.Solution == "" || p.picks[tok.ID] != tok.Solution {
			ok = false
			break
		}
	}
	return types.PuzzleResult{OK: ok, Value: p.picks}
}

func (p *choicePuzzle) Unmount() {
	p.picks = nil
	p.base.Unmount()
}
