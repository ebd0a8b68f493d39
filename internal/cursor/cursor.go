package cursor

import "math"

// Offscreen is where the cursor rests when no pointer is present
const Offscreen = -1000.0

// Ripple is an expanding ring left behind by a fast pointer move
type Ripple struct {
	X, Y      float64
	Age       int
	MaxAge    int
	MaxRadius float64
}

// Radius grows linearly from 0 at birth to MaxRadius at MaxAge
func (r Ripple) Radius() float64 {
	return r.MaxRadius * float64(r.Age) / float64(r.MaxAge)
}

// Fade goes from 1 at birth to 0 at MaxAge
func (r Ripple) Fade() float64 {
	return 1 - float64(r.Age)/float64(r.MaxAge)
}

// Cursor tracks the raw pointer and an eased copy of it
type Cursor struct {
	X, Y             float64 // eased position read by particles
	TargetX, TargetY float64 // latest raw input
	Radius           float64

	ease       float64
	rippleDist float64
	rippleLife int
	rippleSize float64
	ripples    []Ripple
	present    bool
}

// Options tunes easing and ripple creation
type Options struct {
	Radius         float64
	Ease           float64
	RippleDistance float64 // raw move per event above which a ripple spawns
	RippleLife     int
	RippleRadius   float64
}

func New(opts Options) *Cursor {
	return &Cursor{
		X:          Offscreen,
		Y:          Offscreen,
		TargetX:    Offscreen,
		TargetY:    Offscreen,
		Radius:     opts.Radius,
		ease:       opts.Ease,
		rippleDist: opts.RippleDistance,
		rippleLife: opts.RippleLife,
		rippleSize: opts.RippleRadius,
	}
}

// Move records a raw pointer position. It spawns a ripple when the pointer
// jumped far since the last event. No integration happens here.
func (c *Cursor) Move(x, y float64) {
	if c.present && c.rippleDist > 0 && c.rippleLife > 0 {
		if math.Hypot(x-c.TargetX, y-c.TargetY) > c.rippleDist {
			c.AddRipple(x, y)
		}
	}
	if !c.present {
		// Entering snaps the eased position so particles don't see a sweep
		// from offscreen across the window.
		c.X, c.Y = x, y
	}
	c.TargetX, c.TargetY = x, y
	c.present = true
}

// Leave parks the cursor offscreen
func (c *Cursor) Leave() {
	c.X, c.Y = Offscreen, Offscreen
	c.TargetX, c.TargetY = Offscreen, Offscreen
	c.present = false
}

// Present reports whether a pointer is over the window
func (c *Cursor) Present() bool { return c.present }

// AddRipple enqueues a ripple of age 0 at (x, y)
func (c *Cursor) AddRipple(x, y float64) {
	c.ripples = append(c.ripples, Ripple{X: x, Y: y, MaxAge: c.rippleLife, MaxRadius: c.rippleSize})
}

// Update eases the position and ages ripples, dropping expired ones
func (c *Cursor) Update() {
	c.X += (c.TargetX - c.X) * c.ease
	c.Y += (c.TargetY - c.Y) * c.ease

	alive := c.ripples[:0]
	for _, r := range c.ripples {
		r.Age++
		if r.Age <= r.MaxAge {
			alive = append(alive, r)
		}
	}
	c.ripples = alive
}

// Ripples returns the live ripples
func (c *Cursor) Ripples() []Ripple { return c.ripples }
