// Package property implements the reactive value cells that widget items
// store their state in.
//
// A [Property] holds a value of one concrete type and optionally a binding,
// a closure that recomputes the value on demand. Reading a property while
// another property's binding is being evaluated records a dependency, so a
// write automatically marks every transitively dependent property dirty.
// Bindings are lazy: a dirty property recomputes the next time it is read.
//
// Properties can also change over time. SetAnimated replaces an
// instantaneous write with an interpolated run over an easing curve, and
// SetAnimatedBinding / SetAnimatedBindingForTransition animate every value
// change a binding produces. Animated reads sample the [animation.Clock]
// lazily; nothing in this package schedules frames.
//
// All of this is single-threaded by design: properties live inside widget
// items owned by the UI loop, and every operation here must run on that
// loop. There are no locks.
package property

// dependent is anything that must be marked dirty when a property it read
// during evaluation changes. Only properties implement it, but the
// indirection keeps dependency sets free of type parameters.
type dependent interface {
	invalidate()
}

// activeEval is the property whose binding is currently being evaluated.
// Reads that happen while it is set register a dependency edge. Evaluation
// can nest (a binding reading a dirty bound property), so evaluate keeps
// the previous value on its stack frame.
var activeEval dependent

// Property is a reactive cell holding a value of type T.
//
// The zero value is a valid property holding T's zero value, which is what
// lets widget items embed properties directly in their struct layout.
type Property[T any] struct {
	value       T
	binding     func() T
	dirty       bool
	dependents  map[dependent]struct{}
	peers       []*Property[T]
	anim        *animState[T]
	propagating bool
}

// New returns a property initialized to v.
func New[T any](v T) *Property[T] {
	return &Property[T]{value: v}
}

// Get returns the property's current value, evaluating a dirty binding or
// sampling a running animation first. If called during another binding's
// evaluation, Get records that binding as a dependent of this property.
func (p *Property[T]) Get() T {
	p.registerDependency()
	if p.anim != nil {
		return p.animatedValue()
	}
	if p.dirty && p.binding != nil {
		p.evaluate()
	}
	return p.value
}

// Set writes v instantly, removing any binding or running animation, and
// marks dependents dirty. The value also propagates to two-way peers.
func (p *Property[T]) Set(v T) {
	p.binding = nil
	p.anim = nil
	p.assign(v)
}

// SetBinding attaches a binding that recomputes the value on demand.
// The property becomes dirty immediately; the binding runs on next read.
// Any running animation is dropped.
func (p *Property[T]) SetBinding(binding func() T) {
	p.anim = nil
	p.binding = binding
	p.dirty = true
	p.notifyDependents()
}

// HasBinding reports whether a binding (animated or not) is attached.
func (p *Property[T]) HasBinding() bool {
	if p.anim != nil && p.anim.binding != nil {
		return true
	}
	return p.binding != nil
}

// LinkTwoWay establishes bidirectional value propagation between a and b.
// At link time a adopts b's current value; afterward a write to either cell
// is visible through the other. Both cells stay owned by their items; the
// link holds plain pointers and both must outlive it.
func LinkTwoWay[T any](a, b *Property[T]) {
	a.peers = append(a.peers, b)
	b.peers = append(b.peers, a)
	a.Set(b.Get())
}

// registerDependency records the currently evaluating binding, if any, as a
// dependent of this property.
func (p *Property[T]) registerDependency() {
	if activeEval == nil || activeEval == dependent(p) {
		return
	}
	if p.dependents == nil {
		p.dependents = make(map[dependent]struct{})
	}
	p.dependents[activeEval] = struct{}{}
}

// evaluate runs the binding with dependency tracking active and stores the
// result. Peers receive the recomputed value so linked cells stay equal.
func (p *Property[T]) evaluate() {
	prev := activeEval
	activeEval = p
	v := p.binding()
	activeEval = prev

	p.dirty = false
	p.value = v
	p.propagating = true
	for _, peer := range p.peers {
		peer.assign(v)
	}
	p.propagating = false
}

// assign stores a value, wakes dependents, and pushes the value to two-way
// peers. The propagating flag breaks cycles in linked cell graphs.
func (p *Property[T]) assign(v T) {
	if p.propagating {
		return
	}
	p.propagating = true
	p.value = v
	p.dirty = false
	p.notifyDependents()
	for _, peer := range p.peers {
		peer.assign(v)
	}
	p.propagating = false
}

// invalidate marks the property dirty and cascades to its dependents.
// Called when something this property's binding read has changed.
func (p *Property[T]) invalidate() {
	if p.dirty {
		return
	}
	p.dirty = true
	p.notifyDependents()
}

// notifyDependents invalidates every recorded dependent. The set is cleared
// first; dependents re-register when their bindings next evaluate, so edges
// from stale evaluations disappear on their own.
func (p *Property[T]) notifyDependents() {
	if len(p.dependents) == 0 {
		return
	}
	deps := p.dependents
	p.dependents = nil
	for d := range deps {
		d.invalidate()
	}
}
