package particle

import (
	"image/color"
	"math"

	"github.com/olivierh59500/linkhub-particles/internal/config"
	"github.com/olivierh59500/linkhub-particles/internal/geom"
	"github.com/olivierh59500/linkhub-particles/internal/sampler"
)

// Behavior is the per-frame motion and look of a particle
type Behavior int

const (
	BehaviorFlow Behavior = iota
	BehaviorFluid
	BehaviorHome
	BehaviorActive
)

func (b Behavior) String() string {
	switch b {
	case BehaviorFlow:
		return "flow"
	case BehaviorFluid:
		return "fluid"
	case BehaviorHome:
		return "home"
	case BehaviorActive:
		return "active"
	}
	return "unknown"
}

// Select picks the behavior for this frame: Active while targets exist,
// otherwise the idle motion of the current theme's style.
func Select(ctx *Context) Behavior {
	if len(ctx.Targets) > 0 {
		return BehaviorActive
	}
	switch ctx.Style.Motion {
	case config.MotionFluid:
		return BehaviorFluid
	case config.MotionHome:
		return BehaviorHome
	}
	return BehaviorFlow
}

// Update returns p advanced by one frame
func (b Behavior) Update(p Particle, ctx *Context) Particle {
	switch b {
	case BehaviorActive:
		return updateActive(p, ctx)
	case BehaviorFluid:
		return updateFluid(p, ctx)
	case BehaviorHome:
		return updateHome(p, ctx)
	}
	return updateFlow(p, ctx)
}

func updateActive(p Particle, ctx *Context) Particle {
	if len(ctx.Targets) == 0 {
		return p
	}
	t := ctx.Targets[p.Index%len(ctx.Targets)]
	p.X += (t.X - p.X) * ctx.Ease
	p.Y += (t.Y - p.Y) * ctx.Ease

	wave := 0.8
	if ctx.Kind == sampler.KindText {
		wave = 0.2
	}
	h := math.Mod(p.X*wave+float64(ctx.Frame)*3, 360)
	if h < 0 {
		h += 360
	}
	p.Color = Hue(h, ctx.Style.ActiveLightness)
	return p
}

func updateFlow(p Particle, ctx *Context) Particle {
	st := &ctx.Style.Flow

	// Repel from the cursor
	var mvx, mvy float64
	dx, dy := ctx.Pointer.X-p.X, ctx.Pointer.Y-p.Y
	d := math.Hypot(dx, dy)
	if r := ctx.Radius * st.RepelScale; d > 0 && d < r {
		f := (1 - d/r) * st.RepelForce
		mvx = -dx / d * f
		mvy = -dy / d * f
	}

	n := ctx.Noise.Noise2D(p.X*st.Scale+p.Speed*st.ZOffset, p.Y*st.Scale+float64(ctx.Frame)*st.TimeScale)
	angle := n * math.Pi * st.AngleMul
	speed := p.Speed * st.BaseSpeed
	tx := math.Cos(angle)*speed + mvx
	ty := math.Sin(angle)*speed + mvy

	inertia := st.Inertia
	if st.InertiaBySpeed {
		inertia *= p.Speed
	}
	p.VX += (tx - p.VX) * inertia
	p.VY += (ty - p.VY) * inertia
	p.X += p.VX
	p.Y += p.VY

	p = applyBounds(p, ctx, st.Margin)
	p.Color = p.BaseColor
	return p
}

func updateFluid(p Particle, ctx *Context) Particle {
	st := &ctx.Style.Fluid
	t := float64(ctx.Frame)

	// Color bleeds between three noise bands
	nc := ctx.Noise.Noise2D(p.X*st.ColorScale, p.Y*st.ColorScale+t*st.ColorTime)
	if len(ctx.Palette) >= 3 {
		switch {
		case nc < -st.ColorBand:
			p.Color = ctx.Palette[0]
		case nc > st.ColorBand:
			p.Color = ctx.Palette[1]
		default:
			p.Color = ctx.Palette[2]
		}
	}

	// Attract with a tangential swirl; too close means no force
	var ax, ay float64
	dx, dy := ctx.Pointer.X-p.X, ctx.Pointer.Y-p.Y
	d := math.Hypot(dx, dy)
	if d > st.MinDistance && d > 0 {
		force := st.Pull / (d + st.PullOffset)
		ux, uy := dx/d, dy/d
		ax = ux*force - uy*force*st.Swirl
		ay = uy*force + ux*force*st.Swirl
	}

	p.VX *= st.Viscosity
	p.VY *= st.Viscosity
	p.VX += ax * st.Accel
	p.VY += ay * st.Accel

	flow := ctx.Noise.Noise2D(p.X*st.DriftScale, p.Y*st.DriftScale+t*st.DriftTime) * math.Pi * 4
	p.VX += math.Cos(flow) * st.Drift
	p.VY += math.Sin(flow) * st.Drift

	p.X += p.VX
	p.Y += p.VY
	return applyBounds(p, ctx, 0)
}

func updateHome(p Particle, ctx *Context) Particle {
	st := &ctx.Style.Home

	dx, dy := ctx.Pointer.X-p.X, ctx.Pointer.Y-p.Y
	d := math.Hypot(dx, dy)
	switch {
	case d < ctx.Radius && d > 0:
		force := (ctx.Radius - d) / ctx.Radius
		p.X -= dx / d * force * p.Density
		p.Y -= dy / d * force * p.Density
	case d >= ctx.Radius:
		p.X -= (p.X - p.BaseX) * st.Return
		p.Y -= (p.Y - p.BaseY) * st.Return
	}

	if st.DriftPeriod > 0 {
		phase := float64(ctx.Frame) / st.DriftPeriod
		p.BaseX += math.Sin(phase) * st.Drift
		p.BaseY += math.Cos(phase) * st.Drift
	}

	p = applyBounds(p, ctx, 0)
	p.Color = p.BaseColor
	return p
}

// applyBounds wraps or reflects p at the window edges per the style
func applyBounds(p Particle, ctx *Context, margin float64) Particle {
	w, h := ctx.Width, ctx.Height
	switch ctx.Style.Bounds {
	case config.BoundsWrap:
		if p.X < -margin {
			p.X = w + margin
		} else if p.X > w+margin {
			p.X = -margin
		}
		if p.Y < -margin {
			p.Y = h + margin
		} else if p.Y > h+margin {
			p.Y = -margin
		}
	case config.BoundsBounce:
		if p.X < 0 || p.X > w {
			p.VX = -p.VX
		}
		if p.Y < 0 || p.Y > h {
			p.VY = -p.VY
		}
		p.X = math.Max(0, math.Min(w, p.X))
		p.Y = math.Max(0, math.Min(h, p.Y))
	}
	return p
}

var highlight = color.NRGBA{R: 255, G: 255, B: 255}

// Draw renders p unless it sits over a protected region. Active particles
// are only hidden by the protected regions inset by ActiveInset.
func (b Behavior) Draw(p Particle, ctx *Context, c Canvas) {
	inset := 0.0
	if b == BehaviorActive {
		inset = ctx.ActiveInset
	}
	if Hidden(p.X, p.Y, ctx.Protected, inset) {
		return
	}

	switch b {
	case BehaviorFlow:
		drawDash(p, ctx, c)
	case BehaviorFluid:
		st := &ctx.Style.Fluid
		s := p.Size * st.SizeMul
		c.FillCircle(p.X, p.Y, s, p.Color)
		hl := highlight
		hl.A = alphaByte(st.Highlight)
		c.FillCircle(p.X-s*0.3, p.Y-s*0.3, s*0.3, hl)
	default:
		c.FillCircle(p.X, p.Y, p.Size, p.Color)
	}
}

// drawDash draws a short stroke trailing behind the velocity
func drawDash(p Particle, ctx *Context, c Canvas) {
	st := &ctx.Style.Flow
	speed := math.Hypot(p.VX, p.VY)
	trail := st.TrailBase + speed*st.TrailSpeed
	col := p.Color

	var width float64
	if st.FadeBySpeed {
		width = math.Max(0.5, p.Size*p.Speed)
		col.A = uint8(float64(col.A) * math.Max(0.2, math.Min(1, p.Speed)))
	} else {
		width = math.Min(p.Size, speed*1.5)
	}
	if width <= 0 {
		return
	}
	c.StrokeLine(p.X, p.Y, p.X-p.VX*trail, p.Y-p.VY*trail, width, col)
}

// Hidden reports whether (x, y) is strictly inside any region shrunk
// horizontally by inset
func Hidden(x, y float64, regions []geom.Rect, inset float64) bool {
	for _, r := range regions {
		if r.Inset(inset, 0).Contains(x, y) {
			return true
		}
	}
	return false
}
