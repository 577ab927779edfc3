package rtti

import (
	"time"

	"github.com/go-drift/prism/pkg/animation"
)

// bindingKind discriminates the AnimatedBindingKind variants.
type bindingKind int

const (
	bindingNotAnimated bindingKind = iota
	bindingAnimated
	bindingTransition
)

// AnimatedBindingKind describes how the output changes of a just-attached
// binding are presented: applied instantly, animated over a fixed
// animation, or animated over a transition whose animation and start
// instant are supplied afresh on every reactivation.
//
// The zero value is NotAnimated. A kind is consumed by the one SetBinding
// call it is passed to.
type AnimatedBindingKind struct {
	kind       bindingKind
	animation  animation.PropertyAnimation
	transition func() (animation.PropertyAnimation, time.Time)
}

// NotAnimated presents binding output changes instantly.
func NotAnimated() AnimatedBindingKind {
	return AnimatedBindingKind{}
}

// Animated presents every binding output change by animating from the
// current value over the given fixed animation.
func Animated(a animation.PropertyAnimation) AnimatedBindingKind {
	return AnimatedBindingKind{kind: bindingAnimated, animation: a}
}

// Transition presents binding output changes by animating over whatever
// animation the supplier returns at reactivation time, started at the
// instant the supplier reports. The supplier runs once per reactivation,
// so state-machine transitions can pick a different curve per state edge.
func Transition(supplier func() (animation.PropertyAnimation, time.Time)) AnimatedBindingKind {
	return AnimatedBindingKind{kind: bindingTransition, transition: supplier}
}

// IsAnimated reports whether the kind is anything other than NotAnimated.
func (k AnimatedBindingKind) IsAnimated() bool {
	return k.kind != bindingNotAnimated
}

// AsAnimation returns the fixed animation if the kind is Animated.
func (k AnimatedBindingKind) AsAnimation() (animation.PropertyAnimation, bool) {
	return k.animation, k.kind == bindingAnimated
}
