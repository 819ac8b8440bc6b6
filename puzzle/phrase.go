package puzzle

import (
	"strings"

	"github.com/raven2cz/escape-game-engine-sub001/types"
)

// phrasePuzzle is a single free-text field validated against the configured
// solution with case folding and whitespace normalization.
type phrasePuzzle struct {
	base
	input string
}

func (p *phrasePuzzle) Mount(c *Container) {
	p.c = c
	c.Add(&Element{
		ID:      "answer",
		Kind:    ElemField,
		Area:    "board",
		OnInput: func(v string) { p.input = v },
	})
	p.mountChrome(c, p)
}

func (p *phrasePuzzle) Validate() types.PuzzleResult {
	// No solution configured — never correct, but still answerable.
	if p.cfg.Solution == "" {
		return types.PuzzleResult{OK: false, Value: p.input}
	}
	ok := normalizePhrase(p.input) == normalizePhrase(p.cfg.Solution)
	return types.PuzzleResult{OK: ok, Value: p.input}
}

// normalizePhrase lowercases and collapses all whitespace runs to single
// spaces, trimming the ends.
func normalizePhrase(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
