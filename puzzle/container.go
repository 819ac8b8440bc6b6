package puzzle

import "github.com/raven2cz/escape-game-engine-sub001/types"

// ElementKind classifies an interactive element on a mount surface.
type ElementKind int

const (
	ElemLabel ElementKind = iota
	ElemToken
	ElemGap
	ElemField
	ElemButton
	ElemSelect
	ElemSlot
)

// Element is one rendered unit on a container. Front-ends read the public
// fields to draw it; interaction goes through Container.Activate and
// Container.SetInput so the deferred queue is drained after every handler.
type Element struct {
	ID       string
	Kind     ElementKind
	Text     string
	Area     string       // rendering region: "board", "pool", "bank", "group:<id>", ...
	Pos      *types.Point // absolute position on free-form boards
	Masked   bool         // field: render input as dots
	Selected bool
	Disabled bool
	Options  []string // select: available values
	Value    string   // field/select/gap: current value
	Pair     int      // match: shared pair tag, 0 = unpaired

	OnActivate func()
	OnInput    func(value string)

	child *Container // slot only
}

// Child returns the nested container of a slot element, or nil.
func (e *Element) Child() *Container { return e.child }

// taskQueue is the deferred-callback queue shared by a container tree.
// Tasks posted during a drain are processed in the same drain, so callbacks
// are totally ordered by interaction order and never run reentrantly inside
// the handler that posted them.
type taskQueue struct {
	pending  []func()
	draining bool
}

func (q *taskQueue) post(fn func()) {
	q.pending = append(q.pending, fn)
}

func (q *taskQueue) drain() {
	if q.draining {
		return
	}
	q.draining = true
	for len(q.pending) > 0 {
		fn := q.pending[0]
		q.pending = q.pending[1:]
		fn()
	}
	q.draining = false
}

// Container is the mount surface a puzzle renders into. A mounted puzzle
// instance owns exactly one container subtree; Clear is the single point of
// release and leaves no handlers behind.
type Container struct {
	els   []*Element
	queue *taskQueue
}

// NewContainer creates an empty root container with its own deferred queue.
func NewContainer() *Container {
	return &Container{queue: &taskQueue{}}
}

// Add appends an element and returns it.
func (c *Container) Add(e *Element) *Element {
	c.els = append(c.els, e)
	return e
}

// Slot adds a child container rendered in place of the element.
// The child shares the root's deferred queue.
func (c *Container) Slot(id string) *Container {
	child := &Container{queue: c.queue}
	c.Add(&Element{ID: id, Kind: ElemSlot, child: child})
	return child
}

// Clear removes every element, handler, and child. Safe to call repeatedly.
func (c *Container) Clear() {
	for _, e := range c.els {
		e.OnActivate = nil
		e.OnInput = nil
		if e.child != nil {
			e.child.Clear()
			e.child = nil
		}
	}
	c.els = nil
}

// Elements returns the direct elements of this container.
func (c *Container) Elements() []*Element { return c.els }

// Find locates an element by ID, searching slot children depth-first.
func (c *Container) Find(id string) *Element {
	for _, e := range c.els {
		if e.ID == id {
			return e
		}
		if e.child != nil {
			if found := e.child.Find(id); found != nil {
				return found
			}
		}
	}
	return nil
}

// Defer schedules fn on the deferred-callback queue. The queue is drained
// after the current interaction handler returns.
func (c *Container) Defer(fn func()) {
	c.queue.post(fn)
}

// Flush drains any pending deferred callbacks. Front-ends call this after
// host-driven lifecycle calls; interactions drain automatically.
func (c *Container) Flush() {
	c.queue.drain()
}

// Activate simulates a click on the element with the given ID. Returns false
// if the element does not exist, is disabled, or has no activation handler.
func (c *Container) Activate(id string) bool {
	e := c.Find(id)
	if e == nil || e.Disabled || e.OnActivate == nil {
		return false
	}
	e.OnActivate()
	c.queue.drain()
	return true
}

// SetInput delivers a text or selection change to a field or select element.
func (c *Container) SetInput(id, value string) bool {
	e := c.Find(id)
	if e == nil || e.Disabled || e.OnInput == nil {
		return false
	}
	e.Value = value
	e.OnInput(value)
	c.queue.drain()
	return true
}
