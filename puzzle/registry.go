package puzzle

// Registry maps kind names to puzzle constructors. Registration is
// last-write-wins; lookup never fails — unregistered names fall back to the
// inert base implementation so malformed content degrades instead of
// crashing.
type Registry struct {
	kinds map[string]func() Puzzle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{kinds: map[string]func() Puzzle{}}
}

// Register binds a kind name to a constructor, overwriting any existing
// binding.
func (r *Registry) Register(name string, newFn func() Puzzle) {
	r.kinds[name] = newFn
}

// Get returns the constructor bound to name, or the base fallback.
func (r *Registry) Get(name string) func() Puzzle {
	if fn, ok := r.kinds[name]; ok {
		return fn
	}
	return func() Puzzle { return &base{} }
}

// Kinds returns the registered kind names.
func (r *Registry) Kinds() []string {
	names := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		names = append(names, name)
	}
	return names
}

// Builtin returns a registry populated with the nine built-in kinds.
func Builtin() *Registry {
	r := NewRegistry()
	r.Register("phrase", func() Puzzle { return &phrasePuzzle{} })
	r.Register("code", func() Puzzle { return &codePuzzle{} })
	r.Register("quiz", func() Puzzle { return &quizPuzzle{} })
	r.Register("order", func() Puzzle { return &orderPuzzle{} })
	r.Register("match", func() Puzzle { return &matchPuzzle{} })
	r.Register("group", func() Puzzle { return &groupPuzzle{} })
	r.Register("choice", func() Puzzle { return &choicePuzzle{} })
	r.Register("list", func() Puzzle { return &listPuzzle{} })
	r.Register("cloze", func() Puzzle { return &clozePuzzle{} })
	return r
}

// Default is the process-wide registry, populated once at startup. Puzzle
// kinds are a fixed load-time extension point, not a per-session concern;
// tests that need isolation construct their own registry.
var Default = Builtin()
