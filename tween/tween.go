// Package tween schedules time-bounded interpolations of float values. A
// Manager owns a set of tweens and is stepped once per frame with the frame
// delta; callbacks run synchronously inside Manager.Update.
package tween

import (
	"time"

	"github.com/milk9111/stargate/vmath"
)

// Forever makes a tween repeat until killed.
const Forever = -1

// Options configures a tween. Zero values mean: no delay, linear easing,
// play once.
type Options struct {
	Duration time.Duration
	Delay    time.Duration
	Ease     EaseFunc
	// Repeat counts extra plays after the first; Forever loops.
	Repeat int
	// Yoyo reverses direction on every repeat.
	Yoyo bool

	OnUpdate   func()
	OnComplete func()
}

// Tween interpolates len(to) values. The start values are read from get
// when the delay has elapsed, unless the tween was built with explicit
// from values.
type Tween struct {
	get func() []float64
	set func([]float64)

	from, to  []float64
	relative  []float64
	fixedFrom bool
	buf       []float64

	opts Options

	waited    time.Duration
	clock     time.Duration
	iteration int
	reversed  bool
	started   bool
	done      bool
}

// New builds a tween over arbitrary values.
func New(get func() []float64, set func([]float64), to []float64, opts Options) *Tween {
	if opts.Ease == nil {
		opts.Ease = Linear
	}
	return &Tween{
		get:  get,
		set:  set,
		to:   append([]float64(nil), to...),
		buf:  make([]float64, len(to)),
		opts: opts,
	}
}

// FromTo builds a tween with explicit start values. The start values are
// written immediately so the target does not flash its resting value
// during the delay.
func FromTo(set func([]float64), from, to []float64, opts Options) *Tween {
	t := New(nil, set, to, opts)
	t.from = append([]float64(nil), from...)
	t.fixedFrom = true
	if set != nil {
		set(append([]float64(nil), from...))
	}
	return t
}

// Float tweens *ptr to target.
func Float(ptr *float64, target float64, opts Options) *Tween {
	return New(
		func() []float64 { return []float64{*ptr} },
		func(v []float64) { *ptr = v[0] },
		[]float64{target},
		opts,
	)
}

// Vec tweens *ptr to target.
func Vec(ptr *vmath.Vec3, target vmath.Vec3, opts Options) *Tween {
	return New(
		func() []float64 { return ptr.Components() },
		func(v []float64) { *ptr = vmath.FromComponents(v) },
		target.Components(),
		opts,
	)
}

// VecBy tweens *ptr by a relative offset measured from its value at start.
func VecBy(ptr *vmath.Vec3, delta vmath.Vec3, opts Options) *Tween {
	t := Vec(ptr, vmath.Vec3{}, opts)
	t.relative = delta.Components()
	return t
}

// Done reports whether the tween finished or was killed.
func (t *Tween) Done() bool { return t == nil || t.done }

// Kill stops the tween without running OnComplete.
func (t *Tween) Kill() {
	if t != nil {
		t.done = true
	}
}

// Step advances the tween by dt and reports whether it finished.
func (t *Tween) Step(dt time.Duration) bool {
	if t == nil || t.done {
		return true
	}
	if !t.started {
		t.waited += dt
		if t.waited < t.opts.Delay {
			return false
		}
		dt = t.waited - t.opts.Delay
		t.start()
	}

	if t.opts.Duration <= 0 {
		t.apply(1)
		return t.finish()
	}

	t.clock += dt
	for t.clock >= t.opts.Duration {
		if t.opts.Repeat != Forever && t.iteration >= t.opts.Repeat {
			t.apply(1)
			return t.finish()
		}
		t.clock -= t.opts.Duration
		t.iteration++
		if t.opts.Yoyo {
			t.reversed = !t.reversed
		}
	}
	t.apply(float64(t.clock) / float64(t.opts.Duration))
	return false
}

func (t *Tween) start() {
	t.started = true
	if !t.fixedFrom {
		if t.get != nil {
			t.from = append([]float64(nil), t.get()...)
		} else {
			t.from = make([]float64, len(t.to))
		}
	}
	if t.relative != nil {
		t.to = make([]float64, len(t.from))
		for i := range t.from {
			if i < len(t.relative) {
				t.to[i] = t.from[i] + t.relative[i]
			}
		}
		t.buf = make([]float64, len(t.to))
	}
}

func (t *Tween) apply(p float64) {
	if t.reversed {
		p = 1 - p
	}
	e := t.opts.Ease(p)
	for i := range t.to {
		from := 0.0
		if i < len(t.from) {
			from = t.from[i]
		}
		t.buf[i] = from + (t.to[i]-from)*e
	}
	if t.set != nil {
		t.set(t.buf)
	}
	if t.opts.OnUpdate != nil {
		t.opts.OnUpdate()
	}
}

func (t *Tween) finish() bool {
	t.done = true
	if t.opts.OnComplete != nil {
		t.opts.OnComplete()
	}
	return true
}

// Call runs fn once after delay.
func Call(delay time.Duration, fn func()) *Tween {
	return New(nil, nil, nil, Options{Delay: delay, OnComplete: fn})
}
