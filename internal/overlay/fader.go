package overlay

import (
	"context"
	"time"

	"fyne.io/fyne/v2"
	"github.com/looplab/fsm"
	"github.com/rs/zerolog"
)

// Fade animation timing. A full sweep between zero and full opacity takes
// the reference duration; shorter sweeps scale down proportionally.
const (
	// FadeTick is the animation frame interval (about 30 Hz).
	FadeTick = 33 * time.Millisecond

	// FadeReference is the duration of a full 1.0 to 0.0 opacity sweep.
	FadeReference = 300 * time.Millisecond
)

// Fader states
const (
	StateHidden    = "hidden"
	StateFadingIn  = "fading_in"
	StateSteady    = "steady"
	StateFadingOut = "fading_out"
)

// Fader events
const (
	eventShow     = "show"      // hidden -> fading_in on pointer activity
	eventActivity = "activity"  // steady/fading_out -> fading_in
	eventTimeout  = "timeout"   // steady/fading_in -> fading_out
	eventFadedIn  = "faded_in"  // fading_in -> steady
	eventFadedOut = "faded_out" // fading_out -> steady
	eventVanished = "vanished"  // fading_out -> hidden (target opacity was 0)
)

// Fader fsm callbacks
const (
	onFadingIn  = "enter_" + StateFadingIn
	onFadingOut = "enter_" + StateFadingOut
	onHidden    = "enter_" + StateHidden
)

// fadeAnimation is the transient state of one linear opacity sweep. At most
// one exists per fader; starting a new sweep stops the old one.
type fadeAnimation struct {
	current   float32
	target    float32
	increment float32
	ticker    Stopper
}

// Fader keeps a canvas object fully opaque while the pointer is over it (or
// any watched descendant) and fades it toward a minimum opacity after a
// period with no pointer activity. Objects that honor the fader read
// Opacity during their refresh and composite their rendering at that alpha.
//
// All methods must be called from the UI thread; the clock marshals timer
// callbacks back onto it.
type Fader struct {
	log    zerolog.Logger
	object fyne.CanvasObject
	clock  Clock

	minOpacity float32
	timeout    time.Duration

	opacity     float32
	machine     *fsm.FSM
	animation   *fadeAnimation
	inactivity  Stopper
	insideCount int
	handles     []watchHandle
}

// FaderOption configures a fader at construction time
type FaderOption func(*Fader)

// WithClock substitutes the clock used for animation ticks and the
// inactivity timeout. Tests use this to drive fades deterministically.
func WithClock(clock Clock) FaderOption {
	return func(f *Fader) { f.clock = clock }
}

// WithLogger sets the logger used for state transition tracing
func WithLogger(log zerolog.Logger) FaderOption {
	return func(f *Fader) { f.log = log }
}

// NewFader creates a fader for the given object. The object starts visible
// at minOpacity; the first pointer activity fades it to full opacity, and
// timeout of inactivity with the pointer outside fades it back down.
//
// The fader registers itself once with every ActivityNotifier in the
// object's current tree. Descendants added later are not covered; release
// and construct a new fader if the tree changes.
func NewFader(object fyne.CanvasObject, minOpacity float32, timeout time.Duration, opts ...FaderOption) *Fader {
	f := &Fader{
		log:        zerolog.Nop(),
		object:     object,
		clock:      NewDriverClock(),
		minOpacity: minOpacity,
		timeout:    timeout,
		opacity:    minOpacity,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.machine = fsm.NewFSM(
		StateSteady,
		fsm.Events{
			{Name: eventShow, Src: []string{StateHidden}, Dst: StateFadingIn},
			{Name: eventActivity, Src: []string{StateSteady, StateFadingOut}, Dst: StateFadingIn},
			{Name: eventTimeout, Src: []string{StateSteady, StateFadingIn}, Dst: StateFadingOut},
			{Name: eventFadedIn, Src: []string{StateFadingIn}, Dst: StateSteady},
			{Name: eventFadedOut, Src: []string{StateFadingOut}, Dst: StateSteady},
			{Name: eventVanished, Src: []string{StateFadingOut}, Dst: StateHidden},
		},
		fsm.Callbacks{
			"after_event": func(ctx context.Context, e *fsm.Event) {
				f.log.Debug().Msgf("fader: %s -> %s (trigger: %s)", e.Src, e.Dst, e.Event)
			},
			onFadingIn: func(ctx context.Context, e *fsm.Event) {
				f.startAnimation(1)
			},
			onFadingOut: func(ctx context.Context, e *fsm.Event) {
				f.startAnimation(f.minOpacity)
			},
			onHidden: func(ctx context.Context, e *fsm.Event) {
				f.object.Hide()
			},
		},
	)

	f.handles = watchTree(object, f)
	return f
}

// Opacity returns the current rendering alpha in [minOpacity, 1]
func (f *Fader) Opacity() float32 {
	return f.opacity
}

// SetOpacity overrides the current rendering alpha without animating
func (f *Fader) SetOpacity(opacity float32) {
	f.opacity = opacity
}

// State returns the current fade state, one of the State constants
func (f *Fader) State() string {
	return f.machine.Current()
}

// PointerIn implements PointerListener
func (f *Fader) PointerIn() {
	f.insideCount++
}

// PointerOut implements PointerListener
func (f *Fader) PointerOut() {
	if f.insideCount > 0 {
		f.insideCount--
	}
}

// PointerMoved implements PointerListener. Every move or drag counts as
// activity: a hidden object is shown and faded in, a dim or fading-out
// object reverses toward full opacity, and the inactivity timer restarts.
func (f *Fader) PointerMoved() {
	switch {
	case f.machine.Current() == StateHidden:
		f.opacity = f.minOpacity
		f.object.Show()
		f.event(eventShow)

	case f.opacity != 1:
		// Skip when an animation is already heading to full opacity.
		if f.animation == nil || f.animation.target != 1 {
			f.event(eventActivity)
		}
	}

	f.rearmInactivity()
}

// Release stops all timers and unregisters every pointer listener installed
// at construction. The fader must not be used afterwards.
func (f *Fader) Release() {
	f.stopAnimation()
	if f.inactivity != nil {
		f.inactivity.Stop()
		f.inactivity = nil
	}
	for _, h := range f.handles {
		h.notifier.UnregisterPointerListener(h.id)
	}
	f.handles = nil
}

// pointerInside reports whether the pointer is currently over the object or
// one of its watched descendants. An object that has never seen the pointer
// reports false.
func (f *Fader) pointerInside() bool {
	return f.insideCount > 0
}

// rearmInactivity restarts the one-shot inactivity timer
func (f *Fader) rearmInactivity() {
	if f.inactivity != nil {
		f.inactivity.Stop()
	}
	f.inactivity = f.clock.After(f.timeout, f.inactivityTimeout)
}

// inactivityTimeout fires after the timeout with no pointer activity and
// starts the fade-out unless the pointer is resting inside the object
func (f *Fader) inactivityTimeout() {
	if f.pointerInside() {
		return
	}
	f.event(eventTimeout)
}

// startAnimation begins a linear sweep from the current opacity to target,
// replacing any sweep in progress. The duration scales with the opacity
// distance so that partial sweeps keep the same fade rate.
func (f *Fader) startAnimation(target float32) {
	f.stopAnimation()

	distance := f.opacity - target
	if distance < 0 {
		distance = -distance
	}
	duration := time.Duration(float64(FadeReference) * float64(distance) / float64(1-f.minOpacity))

	// A sweep always takes at least one tick so that completion is reported
	// from the tick callback, never from inside a state transition.
	steps := float32(duration / FadeTick)
	if steps < 1 {
		steps = 1
	}

	animation := &fadeAnimation{
		current:   f.opacity,
		target:    target,
		increment: (target - f.opacity) / steps,
	}
	f.animation = animation
	animation.ticker = f.clock.Every(FadeTick, f.animationTick)
}

// stopAnimation cancels the in-progress sweep, if any
func (f *Fader) stopAnimation() {
	if f.animation != nil {
		f.animation.ticker.Stop()
		f.animation = nil
	}
}

// animationTick advances the sweep by one increment, clamping at the target
func (f *Fader) animationTick() {
	animation := f.animation
	if animation == nil {
		return
	}

	animation.current += animation.increment
	overshotDown := animation.increment < 0 && animation.current < animation.target
	overshotUp := animation.increment > 0 && animation.current > animation.target
	if overshotDown || overshotUp {
		animation.current = animation.target
	}

	f.applyOpacity(animation.current)

	if animation.current == animation.target {
		animation.ticker.Stop()
		f.animation = nil
		f.animationDone(animation.target)
	}
}

// applyOpacity stores the new alpha and repaints the object, hiding it
// entirely when the alpha reaches zero
func (f *Fader) applyOpacity(opacity float32) {
	f.opacity = opacity
	if opacity == 0 {
		f.object.Hide()
	} else {
		f.object.Refresh()
	}
}

// animationDone settles the state machine after a sweep reaches its target
func (f *Fader) animationDone(target float32) {
	switch f.machine.Current() {
	case StateFadingIn:
		f.event(eventFadedIn)
	case StateFadingOut:
		if target == 0 {
			f.event(eventVanished)
		} else {
			f.event(eventFadedOut)
		}
	}
}

// event fires a state machine event, ignoring triggers that are not legal
// in the current state
func (f *Fader) event(name string) {
	if !f.machine.Can(name) {
		return
	}
	if err := f.machine.Event(context.Background(), name); err != nil {
		f.log.Error().Err(err).Str("event", name).Msg("fader: state transition failed")
	}
}
