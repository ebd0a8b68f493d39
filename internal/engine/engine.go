package engine

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/olivierh59500/linkhub-particles/internal/config"
	"github.com/olivierh59500/linkhub-particles/internal/cursor"
	"github.com/olivierh59500/linkhub-particles/internal/geom"
	"github.com/olivierh59500/linkhub-particles/internal/layout"
	"github.com/olivierh59500/linkhub-particles/internal/noise"
	"github.com/olivierh59500/linkhub-particles/internal/particle"
	"github.com/olivierh59500/linkhub-particles/internal/sampler"
)

const rippleWidth = 1.5

// Options are the collaborators the engine does not build itself
type Options struct {
	Field      noise.Field        // nil builds cfg.Noise from the seed
	Rasterizer sampler.Rasterizer // required
	Rand       *rand.Rand         // nil seeds from cfg.Seed or the clock
	Avatar     image.Image
}

// Engine owns the particle pool and advances it one frame at a time
type Engine struct {
	cfg       config.Config
	rng       *rand.Rand
	field     noise.Field
	sampler   *sampler.Sampler
	cursor    *cursor.Cursor
	palettes  map[config.Theme]particle.Palette
	ripple    map[config.Theme]color.NRGBA
	avatar    image.Image
	particles []particle.Particle
	layout    layout.Layout
	theme     config.Theme
	targets   []geom.Point
	kind      sampler.Kind
	hovered   *layout.Element
	behavior  particle.Behavior
	ctx       particle.Context
	width     int
	height    int
	frame     int
}

// New builds an engine with an empty pool. Call Resize before Update.
func New(cfg config.Config, opts Options) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Rasterizer == nil {
		return nil, fmt.Errorf("engine: rasterizer is required")
	}

	rng := opts.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	field := opts.Field
	if field == nil {
		var err error
		if field, err = noise.New(cfg.Noise, rng.Int63()); err != nil {
			return nil, err
		}
	}

	e := &Engine{
		cfg:      cfg,
		rng:      rng,
		field:    field,
		sampler:  sampler.New(opts.Rasterizer, cfg.SampleSize, cfg.Threshold),
		palettes: make(map[config.Theme]particle.Palette),
		ripple:   make(map[config.Theme]color.NRGBA),
		avatar:   opts.Avatar,
		theme:    cfg.Theme,
	}
	for _, t := range []config.Theme{config.ThemeDark, config.ThemeLight} {
		style := e.cfg.Style(t)
		pal, err := particle.ParsePalette(style.Palette, style.Alpha)
		if err != nil {
			return nil, err
		}
		e.palettes[t] = pal
		fg, err := particle.ParseColor(style.Foreground, 0.5)
		if err != nil {
			return nil, err
		}
		e.ripple[t] = fg
	}
	e.cursor = cursor.New(cursor.Options{
		Radius:         cfg.CursorRadius,
		Ease:           cfg.CursorEase,
		RippleDistance: cfg.RippleDistance,
		RippleLife:     cfg.RippleLife,
		RippleRadius:   cfg.RippleRadius,
	})
	return e, nil
}

// Resize rebuilds the pool for a new window size. Same size is a no-op.
func (e *Engine) Resize(w, h int) {
	if w == e.width && h == e.height && e.particles != nil {
		return
	}
	e.width, e.height = w, h
	e.layout = layout.Compute(float64(w), float64(h), &e.cfg)

	style := e.cfg.Style(e.theme)
	pal := e.palettes[e.theme]
	e.particles = make([]particle.Particle, e.cfg.Particles)
	for i := range e.particles {
		e.particles[i] = particle.Spawn(i, e.rng, float64(w), float64(h), &e.cfg, style, pal)
	}

	// Targets were placed for the old size
	if e.hovered != nil {
		e.HoverEnter(*e.hovered)
	}
}

// PointerMove records raw pointer input
func (e *Engine) PointerMove(x, y float64) {
	e.cursor.Move(x, y)
}

// PointerLeave parks the cursor and drops any hover
func (e *Engine) PointerLeave() {
	e.cursor.Leave()
	e.HoverLeave()
}

// HoverAt fires enter and leave as the pointer crosses card elements
func (e *Engine) HoverAt(x, y float64) {
	el, ok := e.layout.HitTest(x, y)
	switch {
	case !ok:
		e.HoverLeave()
	case e.hovered == nil || e.hovered.Target != el.Target || e.hovered.Index != el.Index:
		e.HoverLeave()
		e.HoverEnter(el)
	}
}

// HoverEnter samples the element's shape and switches to active mode
func (e *Engine) HoverEnter(el layout.Element) {
	hovered := el
	e.hovered = &hovered
	e.kind = el.Kind()
	e.targets = e.sampler.Sample(e.source(el), e.layout.Region())
}

// HoverLeave returns to idle mode
func (e *Engine) HoverLeave() {
	e.hovered = nil
	e.kind = sampler.KindNone
	e.targets = nil
}

func (e *Engine) source(el layout.Element) sampler.Source {
	p := &e.cfg.Profile
	src := sampler.Source{Kind: el.Kind()}
	switch el.Target {
	case layout.TargetAvatar:
		src.Image = e.avatar
	case layout.TargetName:
		src.Lines = p.Name
	case layout.TargetSocial:
		if el.Index < len(p.Socials) {
			src.Glyph = p.Socials[el.Index]
		}
	case layout.TargetLink:
		if el.Index < len(p.Links) {
			src.Label = p.Links[el.Index]
		}
	}
	return src
}

// Hovered returns the element currently under the pointer
func (e *Engine) Hovered() (layout.Element, bool) {
	if e.hovered == nil {
		return layout.Element{}, false
	}
	return *e.hovered, true
}

// SetAvatar replaces the image sampled for the avatar shape
func (e *Engine) SetAvatar(img image.Image) {
	e.avatar = img
	if e.hovered != nil && e.hovered.Target == layout.TargetAvatar {
		e.HoverEnter(*e.hovered)
	}
}

// Avatar returns the current avatar image, possibly nil
func (e *Engine) Avatar() image.Image { return e.avatar }

// ToggleTheme flips between light and dark
func (e *Engine) ToggleTheme() {
	e.SetTheme(e.theme.Toggle())
}

// SetTheme switches theme and repaints every particle from its palette
func (e *Engine) SetTheme(t config.Theme) {
	if t == e.theme {
		return
	}
	e.theme = t
	pal := e.palettes[t]
	for i := range e.particles {
		e.particles[i].Repaint(e.rng, pal)
	}
	log.Printf("theme: %s", t)
}

// Update advances the simulation by one frame
func (e *Engine) Update() {
	e.frame++
	e.layout = layout.Compute(float64(e.width), float64(e.height), &e.cfg)
	e.cursor.Update()

	e.ctx = particle.Context{
		Width:       float64(e.width),
		Height:      float64(e.height),
		Frame:       e.frame,
		Pointer:     geom.Point{X: e.cursor.X, Y: e.cursor.Y},
		Radius:      e.cursor.Radius,
		Theme:       e.theme,
		Style:       e.cfg.Style(e.theme),
		Palette:     e.palettes[e.theme],
		Targets:     e.targets,
		Kind:        e.kind,
		Noise:       e.field,
		Ease:        e.cfg.Ease,
		Protected:   e.layout.Protected(),
		ActiveInset: e.cfg.ActiveInset,
	}
	e.behavior = particle.Select(&e.ctx)
	for i := range e.particles {
		e.particles[i] = e.behavior.Update(e.particles[i], &e.ctx)
	}
}

// Draw renders particles, then ripples, onto c
func (e *Engine) Draw(c particle.Canvas) {
	if e.ctx.Style == nil {
		return
	}
	for _, p := range e.particles {
		e.behavior.Draw(p, &e.ctx, c)
	}
	base := e.ripple[e.theme]
	for _, r := range e.cursor.Ripples() {
		col := base
		col.A = uint8(float64(col.A) * r.Fade())
		c.StrokeCircle(r.X, r.Y, r.Radius(), rippleWidth, col)
	}
}

func (e *Engine) Particles() []particle.Particle { return e.particles }
func (e *Engine) Targets() []geom.Point          { return e.targets }
func (e *Engine) Kind() sampler.Kind             { return e.kind }
func (e *Engine) Active() bool                   { return len(e.targets) > 0 }
func (e *Engine) Behavior() particle.Behavior    { return e.behavior }
func (e *Engine) Theme() config.Theme            { return e.theme }
func (e *Engine) Layout() *layout.Layout         { return &e.layout }
func (e *Engine) Cursor() *cursor.Cursor         { return e.cursor }
func (e *Engine) Frame() int                     { return e.frame }
func (e *Engine) Config() *config.Config         { return &e.cfg }
func (e *Engine) Size() (int, int)               { return e.width, e.height }
