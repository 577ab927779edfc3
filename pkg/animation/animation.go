// Package animation provides the timing primitives consumed by animated
// properties: easing curve descriptors, per-type linear interpolation, and
// an injectable clock.
//
// # Core Components
//
//   - [PropertyAnimation]: a plain-data description of one animated change
//     (duration, delay, easing, iteration count). Properties and the
//     reflection bridge pass it around without interpreting it.
//
//   - [EasingCurve]: easing as data. Evaluate maps linear progress through
//     the curve; [CubicBezier] builds CSS-compatible custom curves.
//
//   - [Lerp]: linear interpolation for one concrete value type. The
//     package-level registry ([RegisterLerp], [LerpFor]) records which types
//     can be animated at all; accessor tables consult it once when they are
//     built.
//
//   - [Clock]: the time source. Tests install a [ManualClock] via [SetClock]
//     to step animations deterministically.
//
// The package does not schedule frames. Animated properties sample the
// clock lazily when they are read; driving reads at a frame rate is the
// embedder's concern.
package animation

import "time"

// DefaultDuration is used when a PropertyAnimation has no duration set.
const DefaultDuration = 200 * time.Millisecond

// PropertyAnimation describes how one animated property change should run.
// It is pure data: the property engine interprets it, nothing here ticks.
type PropertyAnimation struct {
	// Duration is the length of one iteration. Zero means DefaultDuration.
	Duration time.Duration
	// Delay postpones the start of the first iteration.
	Delay time.Duration
	// Easing shapes progress within an iteration. Zero value is linear.
	Easing EasingCurve
	// Iterations is the number of times the animation runs. Zero means one.
	Iterations int
}

// EffectiveDuration returns the duration of one iteration with the zero
// value defaulted.
func (a PropertyAnimation) EffectiveDuration() time.Duration {
	if a.Duration <= 0 {
		return DefaultDuration
	}
	return a.Duration
}

// EffectiveIterations returns the iteration count with the zero value
// defaulted.
func (a PropertyAnimation) EffectiveIterations() int {
	if a.Iterations <= 0 {
		return 1
	}
	return a.Iterations
}

// Progress returns the eased progress of the animation at the given elapsed
// time since its start instant, and whether the animation has finished.
// Elapsed time inside the delay window reports progress 0.
func (a PropertyAnimation) Progress(elapsed time.Duration) (float64, bool) {
	elapsed -= a.Delay
	if elapsed < 0 {
		return 0, false
	}
	duration := a.EffectiveDuration()
	total := duration * time.Duration(a.EffectiveIterations())
	if elapsed >= total {
		return 1, true
	}
	t := float64(elapsed%duration) / float64(duration)
	return a.Easing.Evaluate(t), false
}
