package property

import (
	"time"

	"github.com/go-drift/prism/pkg/animation"
)

// animState carries everything a property needs to produce time-varying
// values: the interpolation endpoints, the animation description, and for
// animated bindings the closure to re-run on each reactivation.
type animState[T any] struct {
	from, to T
	anim     animation.PropertyAnimation
	start    time.Time
	lerp     animation.Lerp[T]

	// binding is set for animated bindings; nil for a direct animated set.
	binding func() T
	// transition supplies a fresh animation and start instant on every
	// reactivation. Only set together with binding.
	transition func() (animation.PropertyAnimation, time.Time)
}

// SetAnimated transitions the property from its current value to v over the
// described animation instead of writing instantly. The lerp function
// defines interpolation for T. Any binding is removed, as with Set.
func (p *Property[T]) SetAnimated(v T, anim animation.PropertyAnimation, lerp animation.Lerp[T]) {
	from := p.Get()
	p.binding = nil
	p.dirty = false
	p.anim = &animState[T]{
		from:  from,
		to:    v,
		anim:  anim,
		start: animation.Now(),
		lerp:  lerp,
	}
	p.notifyDependents()
}

// SetAnimatedBinding attaches a binding whose output changes are animated
// over a fixed animation. Each time the binding is invalidated and the
// property is next read, the value runs from where it currently is to the
// binding's new output.
func (p *Property[T]) SetAnimatedBinding(binding func() T, anim animation.PropertyAnimation, lerp animation.Lerp[T]) {
	cur := p.Get()
	p.binding = nil
	p.anim = &animState[T]{
		from:    cur,
		to:      cur,
		anim:    anim,
		lerp:    lerp,
		binding: binding,
	}
	p.dirty = true
	p.notifyDependents()
}

// SetAnimatedBindingForTransition attaches a binding whose output changes
// are animated, with the animation itself chosen afresh on every
// reactivation: the supplier returns the animation and its start instant
// each time the binding re-fires. This is what state-machine transitions
// use, where the curve depends on which state edge fired.
func (p *Property[T]) SetAnimatedBindingForTransition(binding func() T, supplier func() (animation.PropertyAnimation, time.Time), lerp animation.Lerp[T]) {
	cur := p.Get()
	p.binding = nil
	p.anim = &animState[T]{
		from:       cur,
		to:         cur,
		lerp:       lerp,
		binding:    binding,
		transition: supplier,
	}
	p.dirty = true
	p.notifyDependents()
}

// animatedValue samples the running animation at the current clock time.
// A dirty animated binding reactivates first: the binding recomputes the
// target and the animation restarts from the currently displayed value.
func (p *Property[T]) animatedValue() T {
	s := p.anim
	if s.binding != nil && p.dirty {
		p.reactivate()
	}
	progress, done := s.anim.Progress(animation.Now().Sub(s.start))
	v := s.lerp(s.from, s.to, progress)
	if done {
		p.value = v
		if s.binding == nil {
			// A direct animated set is finished for good; an animated
			// binding stays attached for the next reactivation.
			p.anim = nil
		}
	}
	return v
}

// reactivate re-runs an animated binding: the new target comes from the
// binding (with dependency tracking active), the start value is whatever
// the animation currently displays, and for transitions the supplier picks
// the animation and start instant.
func (p *Property[T]) reactivate() {
	s := p.anim
	progress, _ := s.anim.Progress(animation.Now().Sub(s.start))
	current := s.lerp(s.from, s.to, progress)

	prev := activeEval
	activeEval = p
	target := s.binding()
	activeEval = prev
	p.dirty = false

	s.from = current
	s.to = target
	if s.transition != nil {
		s.anim, s.start = s.transition()
	} else {
		s.start = animation.Now()
	}
}
