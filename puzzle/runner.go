package puzzle

import (
	"errors"

	"github.com/raven2cz/escape-game-engine-sub001/types"
)

// ErrConfigNotFound is returned by NewRunner when a puzzle reference cannot
// be resolved against the supplied lookup table.
var ErrConfigNotFound = errors.New("Puzzle config not found")

// Options configures a single runner invocation. Exactly one of Config and
// Ref is expected to be usable.
type Options struct {
	Config   *types.PuzzleConfig
	Ref      string
	Puzzles  map[string]types.PuzzleConfig
	Instance types.InstanceOptions
	Host     Host
	Registry *Registry // nil selects Default
	// OnResolve receives the final result. Dispatched on the container's
	// deferred queue, never inside the triggering interaction handler.
	OnResolve func(types.PuzzleResult)
}

// Runner binds a config to a kind instance and a host container, and brokers
// the resolution callback including the hold-until-correct policy.
type Runner struct {
	cfg      types.PuzzleConfig
	opts     Options
	instance Puzzle
	c        *Container
	resolved bool
}

// NewRunner resolves the config (inline or by reference), instantiates the
// kind via the registry, and configures the instance. The returned runner is
// not yet mounted.
func NewRunner(opts Options) (*Runner, error) {
	var cfg types.PuzzleConfig
	switch {
	case opts.Config != nil:
		cfg = *opts.Config
	default:
		found, ok := opts.Puzzles[opts.Ref]
		if !ok {
			return nil, ErrConfigNotFound
		}
		cfg = found
	}

	reg := opts.Registry
	if reg == nil {
		reg = Default
	}

	r := &Runner{cfg: cfg, opts: opts}
	r.instance = reg.Get(cfg.Kind)()
	r.instance.Configure(cfg, opts.Instance, Env{
		Host:     opts.Host,
		Puzzles:  opts.Puzzles,
		Registry: reg,
		Notify:   r.notify,
		Cancel:   r.cancel,
	})
	return r, nil
}

// Puzzle returns the kind instance for introspection and testing.
func (r *Runner) Puzzle() Puzzle { return r.instance }

// Config returns the resolved config.
func (r *Runner) Config() types.PuzzleConfig { return r.cfg }

// MountInto renders the puzzle into the given container.
func (r *Runner) MountInto(c *Container) {
	r.c = c
	r.instance.Mount(c)
}

// Unmount tears the puzzle down. Idempotent.
func (r *Runner) Unmount() {
	r.instance.Unmount()
	r.c = nil
}

// notify intercepts the instance's completion signal. Correct results are
// always forwarded. Incorrect results are swallowed under BlockUntilSolved:
// the puzzle stays mounted and interactive until a correct validation or a
// host unmount — the held-puzzle state.
func (r *Runner) notify(res types.PuzzleResult) {
	if !res.OK && r.opts.Instance.BlockUntilSolved {
		return
	}
	r.dispatch(res, res.OK)
}

// cancel is the escape hatch: always ok=false, never held.
func (r *Runner) cancel() {
	r.dispatch(types.PuzzleResult{OK: false}, true)
}

// dispatch forwards a result to OnResolve through the container's deferred
// queue. A terminal result (solve or cancel) latches the runner: late clicks
// on a finished puzzle cannot re-fire the callback.
func (r *Runner) dispatch(res types.PuzzleResult, terminal bool) {
	if r.resolved || r.opts.OnResolve == nil {
		return
	}
	if terminal {
		r.resolved = true
	}
	onResolve := r.opts.OnResolve
	if r.c != nil {
		r.c.Defer(func() { onResolve(res) })
		return
	}
	onResolve(res)
}
