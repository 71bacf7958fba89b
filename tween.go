package flicker

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenProp names one float64 field to animate and its end value.
type TweenProp struct {
	Field *float64
	To    float64
}

// Tween animates one or more float64 fields of an owner object with gween.
// The scene updates registered tweens once per frame and drops them when
// Complete reports true. Owner identifies the tween for GetTween, StopTweens,
// PauseTweens and ResumeTweens.
//
// If the owner is a *Node that gets disposed, the tween completes immediately
// without writing.
type Tween struct {
	// Delay postpones the start; start values are captured when it elapses.
	Delay float32
	// Repeat replays the tween this many more times; -1 repeats forever.
	Repeat int
	// Yoyo reverses direction on each repeat.
	Yoyo bool

	OnUpdate   func(*Tween)
	OnComplete func()

	owner    any
	props    []TweenProp
	from     []float64
	tweens   []*gween.Tween
	duration float32
	fn       ease.TweenFunc

	// steps and seq are set for sequences built by NewTweenSequence.
	steps []TweenStep
	seq   *gween.Sequence

	elapsedDelay float32
	started      bool
	reversed     bool
	paused       bool
	complete     bool
}

// NewTween creates a tween animating props over duration seconds.
// A nil fn defaults to ease.Linear.
func NewTween(owner any, duration float32, fn ease.TweenFunc, props ...TweenProp) *Tween {
	if fn == nil {
		fn = ease.Linear
	}
	return &Tween{
		owner:    owner,
		props:    props,
		duration: duration,
		fn:       fn,
	}
}

// Update advances the tween by dt seconds and writes the current values.
func (t *Tween) Update(dt float32) {
	if t.complete || t.paused {
		return
	}
	if n, ok := t.owner.(*Node); ok && n.IsDisposed() {
		t.complete = true
		return
	}

	if !t.started {
		t.elapsedDelay += dt
		if t.elapsedDelay < t.Delay {
			return
		}
		dt = t.elapsedDelay - t.Delay
		t.start()
	}

	if t.seq != nil {
		t.updateSequence(dt)
		return
	}

	done := true
	for i, tw := range t.tweens {
		val, finished := tw.Update(dt)
		*t.props[i].Field = float64(val)
		if !finished {
			done = false
		}
	}
	if t.OnUpdate != nil {
		t.OnUpdate(t)
	}
	if !done {
		return
	}

	if t.Repeat != 0 {
		if t.Repeat > 0 {
			t.Repeat--
		}
		if t.Yoyo {
			t.reversed = !t.reversed
			t.build()
		} else {
			for i, tw := range t.tweens {
				tw.Reset()
				*t.props[i].Field = t.from[i]
			}
		}
		return
	}
	t.finish()
}

// start captures the current field values and builds the gween tweens.
func (t *Tween) start() {
	t.started = true
	t.from = make([]float64, len(t.props))
	for i, p := range t.props {
		t.from[i] = *p.Field
	}
	if t.steps != nil {
		t.buildSequence()
		return
	}
	t.build()
}

// buildSequence chains one gween tween per step, each starting where the
// previous one ends.
func (t *Tween) buildSequence() {
	t.seq = gween.NewSequence()
	begin := t.from[0]
	for _, st := range t.steps {
		fn := st.Ease
		if fn == nil {
			fn = t.fn
		}
		t.seq.Add(gween.New(float32(begin), float32(st.To), st.Duration, fn))
		begin = st.To
	}
}

func (t *Tween) updateSequence(dt float32) {
	if len(t.steps) == 0 {
		t.finish()
		return
	}
	val, _, done := t.seq.Update(dt)
	*t.props[0].Field = float64(val)
	if t.OnUpdate != nil {
		t.OnUpdate(t)
	}
	if !done {
		return
	}
	if t.Repeat != 0 {
		if t.Repeat > 0 {
			t.Repeat--
		}
		t.seq.Reset()
		*t.props[0].Field = t.from[0]
		return
	}
	t.finish()
}

func (t *Tween) build() {
	if cap(t.tweens) < len(t.props) {
		t.tweens = make([]*gween.Tween, len(t.props))
	}
	t.tweens = t.tweens[:len(t.props)]
	for i, p := range t.props {
		begin, end := t.from[i], p.To
		if t.reversed {
			begin, end = end, begin
		}
		t.tweens[i] = gween.New(float32(begin), float32(end), t.duration, t.fn)
	}
}

func (t *Tween) finish() {
	t.complete = true
	if t.OnComplete != nil {
		t.OnComplete()
	}
}

// Stop ends the tween. With doComplete the fields jump to their end values
// and OnComplete runs.
func (t *Tween) Stop(doComplete bool) {
	if t.complete {
		return
	}
	if !doComplete {
		t.complete = true
		return
	}
	for i, p := range t.props {
		end := p.To
		if t.reversed && t.from != nil {
			end = t.from[i]
		}
		*p.Field = end
	}
	t.finish()
}

// TweenStep is one segment of a tween sequence. A nil Ease uses the
// sequence's default easing.
type TweenStep struct {
	To       float64
	Duration float32
	Ease     ease.TweenFunc
}

// NewTweenSequence creates a tween moving field through each step in turn,
// starting from its value when the tween starts. Repeat replays the whole
// sequence; Yoyo is ignored. A nil fn defaults to ease.Linear.
func NewTweenSequence(owner any, field *float64, fn ease.TweenFunc, steps ...TweenStep) *Tween {
	if fn == nil {
		fn = ease.Linear
	}
	to := *field
	var total float32
	for _, st := range steps {
		to = st.To
		total += st.Duration
	}
	return &Tween{
		owner:    owner,
		props:    []TweenProp{{Field: field, To: to}},
		duration: total,
		fn:       fn,
		steps:    append([]TweenStep{}, steps...),
	}
}

// Pause freezes the tween in place.
func (t *Tween) Pause() {
	t.paused = true
}

// Resume continues a paused tween.
func (t *Tween) Resume() {
	t.paused = false
}

// Paused reports whether the tween is paused.
func (t *Tween) Paused() bool {
	return t.paused
}

// Complete reports whether the tween has finished or was stopped.
func (t *Tween) Complete() bool {
	return t.complete
}

// Owner returns the object the tween was registered for.
func (t *Tween) Owner() any {
	return t.owner
}

// TweenPosition creates a tween moving node to (toX, toY).
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *Tween {
	return NewTween(node, duration, fn,
		TweenProp{Field: &node.X, To: toX},
		TweenProp{Field: &node.Y, To: toY},
	)
}

// TweenScale creates a tween scaling node to (toSX, toSY).
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *Tween {
	return NewTween(node, duration, fn,
		TweenProp{Field: &node.ScaleX, To: toSX},
		TweenProp{Field: &node.ScaleY, To: toSY},
	)
}

// TweenAlpha creates a tween fading node.Alpha to the target value.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *Tween {
	return NewTween(node, duration, fn, TweenProp{Field: &node.Alpha, To: to})
}

// TweenRotation creates a tween turning node.Rotation to the target value.
func TweenRotation(node *Node, to float64, duration float32, fn ease.TweenFunc) *Tween {
	return NewTween(node, duration, fn, TweenProp{Field: &node.Rotation, To: to})
}

// TweenColor creates a tween animating all four components of node.Color.
func TweenColor(node *Node, to Color, duration float32, fn ease.TweenFunc) *Tween {
	return NewTween(node, duration, fn,
		TweenProp{Field: &node.Color.R, To: to.R},
		TweenProp{Field: &node.Color.G, To: to.G},
		TweenProp{Field: &node.Color.B, To: to.B},
		TweenProp{Field: &node.Color.A, To: to.A},
	)
}
