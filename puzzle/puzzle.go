// Package puzzle implements the embedded puzzle framework: a kind registry,
// a uniform configure → mount → validate → unmount lifecycle, and the nine
// built-in interaction kinds (phrase, code, quiz, order, match, group,
// choice, list, cloze).
package puzzle

import (
	"strings"

	"github.com/raven2cz/escape-game-engine-sub001/types"
)

// Host is the capability set the game engine supplies to puzzles.
type Host interface {
	// ResolveString resolves a display string: game-specific table first,
	// then engine defaults, then the literal fallback template, with
	// {param} substitution applied on the final choice.
	ResolveString(key, fallback string, params map[string]string) string

	// ResolveAsset resolves a content path against the game's asset base.
	// Absolute URLs pass through unchanged.
	ResolveAsset(path string) string
}

// Env carries everything a kind needs from its runner: host capabilities,
// the puzzle lookup table (for nested refs), the registry, and the
// completion callbacks back into the runner.
type Env struct {
	Host     Host
	Puzzles  map[string]types.PuzzleConfig
	Registry *Registry

	// Notify reports a validation result to the runner. The runner decides
	// whether the host hears about it (held-puzzle policy).
	Notify func(types.PuzzleResult)

	// Cancel reports an explicit cancel. Never held.
	Cancel func()
}

// String resolves a display string, tolerating a nil host.
func (e Env) String(key, fallback string, params map[string]string) string {
	if e.Host == nil {
		return substitute(fallback, params)
	}
	return e.Host.ResolveString(key, fallback, params)
}

// Asset resolves an asset path, tolerating a nil host.
func (e Env) Asset(path string) string {
	if e.Host == nil {
		return path
	}
	return e.Host.ResolveAsset(path)
}

func (e Env) notify(res types.PuzzleResult) {
	if e.Notify != nil {
		e.Notify(res)
	}
}

func (e Env) cancel() {
	if e.Cancel != nil {
		e.Cancel()
	}
}

// substitute applies {param} substitution to a template.
func substitute(tpl string, params map[string]string) string {
	out := tpl
	for k, v := range params {
		out = strings.ReplaceAll(out, "{"+k+"}", v)
	}
	return out
}

// Puzzle is the lifecycle contract every kind implements.
//
// Configure stores the descriptor without side effects. Mount renders the
// interactive surface into the container and wires handlers. Validate is
// synchronous and reads only runtime state. Unmount detaches everything and
// is a no-op after the first call.
type Puzzle interface {
	Configure(cfg types.PuzzleConfig, opts types.InstanceOptions, env Env)
	Mount(c *Container)
	Validate() types.PuzzleResult
	Unmount()
}

// base holds the state shared by every kind and doubles as the inert
// fallback implementation returned for unregistered kinds.
type base struct {
	cfg  types.PuzzleConfig
	opts types.InstanceOptions
	env  Env
	c    *Container
}

func (b *base) Configure(cfg types.PuzzleConfig, opts types.InstanceOptions, env Env) {
	b.cfg = cfg
	b.opts = opts
	b.env = env
}

func (b *base) Mount(c *Container) {
	b.c = c
}

// Validate of the fallback kind never reports success: an unknown kind
// degrades to an inert surface rather than an error.
func (b *base) Validate() types.PuzzleResult {
	return types.PuzzleResult{OK: false}
}

func (b *base) Unmount() {
	if b.c != nil {
		b.c.Clear()
		b.c = nil
	}
}

// mountChrome renders the shared puzzle chrome: title and prompt labels plus
// the check and cancel buttons. Check validates the outer kind and notifies
// the runner; cancel is the escape hatch that bypasses the held policy.
func (b *base) mountChrome(c *Container, p Puzzle) {
	if b.cfg.Title != "" {
		c.Add(&Element{Kind: ElemLabel, Area: "header", Text: b.env.String("puzzle."+b.cfg.ID+".title", b.cfg.Title, nil)})
	}
	if b.cfg.Prompt != "" {
		c.Add(&Element{Kind: ElemLabel, Area: "header", Text: b.env.String("puzzle."+b.cfg.ID+".prompt", b.cfg.Prompt, nil)})
	}
	c.Add(&Element{
		ID:   "check",
		Kind: ElemButton,
		Area: "controls",
		Text: b.env.String("ui.check", "Check", nil),
		OnActivate: func() {
			b.env.notify(p.Validate())
		},
	})
	c.Add(&Element{
		ID:   "cancel",
		Kind: ElemButton,
		Area: "controls",
		Text: b.env.String("ui.cancel", "Cancel", nil),
		OnActivate: func() {
			b.env.cancel()
		},
	})
}
