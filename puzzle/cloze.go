package puzzle

import (
	"strings"

	"github.com/raven2cz/escape-game-engine-sub001/types"
)

// clozePuzzle renders inline text with placeholder gaps next to a token
// bank. Select a bank token, then click a gap to place it; clicking a filled
// gap returns its token to the bank. A gap holds at most one token and a
// token occupies at most one gap. Validation compares the full gap→token
// placement map against the solution map.
type clozePuzzle struct {
	base
	selected string
	placed   map[string]string // gap ID → token ID
}

// clozeSegment is one piece of the parsed cloze text: either a literal run
// or a gap placeholder.
type clozeSegment struct {
	literal string
	gapID   string
}

// parseCloze splits text on {gap} placeholders.
func parseCloze(text string) []clozeSegment {
	var segs []clozeSegment
	for len(text) > 0 {
		open := strings.IndexByte(text, '{')
		if open < 0 {
			segs = append(segs, clozeSegment{literal: text})
			break
		}
		end := strings.IndexByte(text[open:], '}')
		if end < 0 {
			segs = append(segs, clozeSegment{literal: text})
			break
		}
		if open > 0 {
			segs = append(segs, clozeSegment{literal: text[:open]})
		}
		segs = append(segs, clozeSegment{gapID: text[open+1 : open+end]})
		text = text[open+end+1:]
	}
	return segs
}

func (p *clozePuzzle) Mount(c *Container) {
	p.c = c
	p.selected = ""
	p.placed = map[string]string{}

	for _, seg := range parseCloze(p.cfg.Text) {
		if seg.gapID == "" {
			c.Add(&Element{Kind: ElemLabel, Area: "text", Text: seg.literal})
			continue
		}
		gid := seg.gapID
		el := c.Add(&Element{ID: gid, Kind: ElemGap, Area: "text"})
		el.OnActivate = func() { p.clickGap(gid) }
	}

	for _, tok := range p.cfg.Tokens {
		id := tok.ID
		el := c.Add(&Element{
			ID:   id,
			Kind: ElemToken,
			Area: "bank",
			Text: p.env.String("token."+id, tok.Text, nil),
		})
		el.OnActivate = func() { p.clickToken(id) }
	}
	p.mountChrome(c, p)
}

func (p *clozePuzzle) clickToken(id string) {
	el := p.c.Find(id)
	if el == nil || el.Area != "bank" {
		return
	}
	if prev := p.c.Find(p.selected); prev != nil {
		prev.Selected = false
	}
	if p.selected == id {
		p.selected = ""
		return
	}
	p.selected = id
	el.Selected = true
}

func (p *clozePuzzle) clickGap(gapID string) {
	gap := p.c.Find(gapID)
	if gap == nil {
		return
	}

	// A filled gap empties back into the bank.
	if tokID, ok := p.placed[gapID]; ok {
		delete(p.placed, gapID)
		gap.Value = ""
		gap.Text = ""
		if tok := p.c.Find(tokID); tok != nil {
			tok.Area = "bank"
		}
		return
	}

	if p.selected == "" {
		return
	}
	tok := p.c.Find(p.selected)
	if tok == nil {
		p.selected = ""
		return
	}

	p.placed[gapID] = tok.ID
	gap.Value = tok.ID
	gap.Text = tok.Text
	tok.Area = "placed"
	tok.Selected = false
	p.selected = ""
}

func (p *clozePuzzle) Validate() types.PuzzleResult {
	placed := map[string]string{}
	for k, v := range p.placed {
		placed[k] = v
	}

	// No solution map configured: no correct answer possible.
	if len(p.cfg.SolutionMap) == 0 {
		return types.PuzzleResult{OK: false, Value: placed}
	}
	if len(placed) != len(p.cfg.SolutionMap) {
		return types.PuzzleResult{OK: false, Value: placed}
	}
	for gap, tok := range p.cfg.SolutionMap {
		if placed[gap] != tok {
			return types.PuzzleResult{OK: false, Value: placed}
		}
	}
	return types.PuzzleResult{OK: true, Value: placed}
}

func (p *clozePuzzle) Unmount() {
	p.selected = ""
	p.placed = nil
	p.base.Unmount()
}
