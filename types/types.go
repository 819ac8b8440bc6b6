// Package types defines the shared data structures for the escape game
// engine. This package contains only type definitions — no logic, no methods.
package types

// Point is an absolute position on a free-form puzzle board.
type Point struct {
	Left int
	Top  int
}

// Rect is a rectangular region (hotspot area or board bounds).
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Token is an atomic interactive unit within a puzzle. Identity is by ID;
// Text is display-only.
type Token struct {
	ID       string
	Text     string
	Side     string   // match columns mode: "left" or "right"
	Solution string   // choice kind: the correct value for this token's row
	Choices  []string // choice kind: the dropdown options for this token
}

// GroupDef is one labeled target area of a group puzzle.
type GroupDef struct {
	ID    string
	Label string
}

// PuzzleConfig is the immutable declarative descriptor of a puzzle.
// Which fields are used depends on Kind; unused fields are ignored.
type PuzzleConfig struct {
	ID          string
	Kind        string
	Title       string
	Prompt      string
	Solution    string            // phrase, code
	Solutions   []string          // quiz (set), order (sequence)
	SolutionMap map[string]string // match (pairs), group (token→group), cloze (gap→token)
	Tokens      []Token
	Groups      []GroupDef
	Steps       []string // list kind: puzzle refs, in order
	Text        string   // cloze kind: inline text with {gap} placeholders
	Layout      string   // match kind: "columns" (default) or "dragdrop"
	Direction   string   // group kind: "vertical" (default) or "horizontal"
	MultiSelect bool     // quiz kind
	Background  string
	Board       *Rect // dragdrop board bounds (default applied when nil)
	Seed        int64 // layout/shuffle seed; 0 = derived from config ID
}

// InstanceOptions govern a single runner invocation.
type InstanceOptions struct {
	// BlockUntilSolved suppresses the host notification for incorrect
	// validations, keeping the puzzle mounted for retry. Cancellation
	// is never suppressed.
	BlockUntilSolved bool
}

// PuzzleResult is the sole payload of the resolution callback.
// OK=false signals cancellation or an unheld failed validation.
type PuzzleResult struct {
	OK    bool
	Value any
}

// Condition is a predicate gating a hotspot or handler.
type Condition struct {
	Type   string         // "has_item", "flag_set", "flag_not", "solved", "not"
	Params map[string]any // condition-specific parameters
	Inner  *Condition     // for "not": the negated inner condition
}

// Effect is a single atomic instruction produced by a hotspot click,
// a solved puzzle, or an event handler.
type Effect struct {
	Type   string
	Params map[string]any
}

// Event is emitted after effects are applied.
type Event struct {
	Type string
	Data map[string]any
}

// Result is the output of a single engine interaction.
type Result struct {
	Effects []Effect
	Events  []Event
	Output  []string
}

// HotspotDef is one clickable region of a scene.
type HotspotDef struct {
	ID       string
	Name     string
	Rect     Rect
	Hidden   bool // not clickable until revealed
	Requires []Condition
	Effects  []Effect
	// ItemEffects maps an inventory item ID to the effects of using
	// that item on this hotspot.
	ItemEffects map[string][]Effect
}

// SceneDef is one screen of the game.
type SceneDef struct {
	ID          string
	Title       string
	Description string
	Background  string
	Hotspots    []HotspotDef
}

// ItemDef is a collectible inventory item.
type ItemDef struct {
	ID          string
	Name        string
	Description string
	Icon        string
}

// GameDef holds game metadata.
type GameDef struct {
	Title    string
	Author   string
	Version  string
	Start    string // starting scene ID
	Intro    string
	Assets   string // base asset path
	Language string // preferred language tag, e.g. "en" or "cs"
}

// EventHandler reacts to an engine event with additional effects.
type EventHandler struct {
	EventType  string
	Conditions []Condition
	Effects    []Effect
}

// State is the complete mutable game state.
type State struct {
	Scene     string
	Inventory []string
	Flags     map[string]bool
	Solved    map[string]bool // puzzle ID → solved
	Revealed  map[string]bool // "scene/hotspot" → visibility override
	ClickLog  []string
}
