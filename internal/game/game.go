package game

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olivierh59500/linkhub-particles/internal/config"
	"github.com/olivierh59500/linkhub-particles/internal/engine"
	"github.com/olivierh59500/linkhub-particles/internal/layout"
	"github.com/olivierh59500/linkhub-particles/internal/particle"
	"github.com/olivierh59500/linkhub-particles/internal/sampler"
)

// Options configures the window-side state
type Options struct {
	ConfigPath string // target of the save and load keys
	Avatar     image.Image
	Debug      bool
}

type themeColors struct {
	bg, fg, panel, accent color.NRGBA
}

// Game adapts the engine to Ebitengine
type Game struct {
	engine     *engine.Engine
	raster     *sampler.FontRasterizer
	configPath string
	colors     map[config.Theme]themeColors
	avatarImg  *ebiten.Image
	avatarCh   chan avatarResult
	picking    bool
	paused     bool
	debug      bool

	// input edge detection
	prevX, prevY int
	touchIDs     []ebiten.TouchID
	touchID      ebiten.TouchID
	touching     bool
}

// New builds the engine and window state for cfg
func New(cfg config.Config, opts Options) (*Game, error) {
	raster, err := sampler.NewFontRasterizer()
	if err != nil {
		return nil, err
	}
	g := &Game{
		raster:     raster,
		configPath: opts.ConfigPath,
		avatarCh:   make(chan avatarResult, 1),
		debug:      opts.Debug,
		prevX:      -1,
		prevY:      -1,
	}
	if err := g.apply(cfg, opts.Avatar); err != nil {
		return nil, err
	}
	return g, nil
}

// apply replaces the engine, keeping the window size and avatar
func (g *Game) apply(cfg config.Config, avatar image.Image) error {
	e, err := engine.New(cfg, engine.Options{Rasterizer: g.raster, Avatar: avatar})
	if err != nil {
		return err
	}
	colors := make(map[config.Theme]themeColors)
	for _, t := range []config.Theme{config.ThemeDark, config.ThemeLight} {
		if colors[t], err = parseThemeColors(cfg.Style(t), t); err != nil {
			return err
		}
	}
	if g.engine != nil {
		if w, h := g.engine.Size(); w > 0 && h > 0 {
			e.Resize(w, h)
		}
	}
	g.engine = e
	g.colors = colors
	g.setAvatar(avatar)
	return nil
}

func parseThemeColors(s *config.Style, t config.Theme) (themeColors, error) {
	bg, err := particle.ParseColor(s.Background, 1)
	if err != nil {
		return themeColors{}, err
	}
	fg, err := particle.ParseColor(s.Foreground, 1)
	if err != nil {
		return themeColors{}, err
	}
	tc := themeColors{bg: bg, fg: fg, accent: fg}
	tc.accent.A = 40
	if t == config.ThemeDark {
		tc.panel = color.NRGBA{R: 18, G: 20, B: 36, A: 215}
	} else {
		tc.panel = color.NRGBA{R: 255, G: 255, B: 255, A: 215}
	}
	return tc, nil
}

func (g *Game) setAvatar(img image.Image) {
	if img == nil {
		g.avatarImg = nil
		return
	}
	g.avatarImg = ebiten.NewImageFromImage(img)
	g.engine.SetAvatar(img)
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	g.drainAvatar()
	g.handleInput()

	if g.paused {
		return nil
	}
	g.engine.Update()
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	tc := g.colors[g.engine.Theme()]
	screen.Fill(tc.bg)

	g.engine.Draw(screenCanvas{dst: screen})
	g.drawCard(screen, tc)

	if g.debug {
		mode := g.engine.Behavior().String()
		if g.paused {
			mode += " (paused)"
		}
		msg := fmt.Sprintf("TPS %.0f  FPS %.0f\nparticles %d  targets %d\nmode %s  theme %s  preset %s",
			ebiten.ActualTPS(), ebiten.ActualFPS(),
			len(g.engine.Particles()), len(g.engine.Targets()),
			mode, g.engine.Theme(), g.engine.Config().Preset)
		ebitenutil.DebugPrintAt(screen, msg, 8, 8)
	}
}

// Layout tracks the window size; a change rebuilds the particle pool
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.engine.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// handleInput processes keyboard, mouse and touch input
func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.engine.ToggleTheme()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) && !g.picking {
		g.picking = true
		go pickAvatar(g.avatarCh)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.saveConfig()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.loadConfig()
	}

	if g.handleTouch() {
		return
	}
	g.handleMouse()
}

// handleTouch follows the first touch until it is released. It reports
// whether touch input owned the pointer this tick.
func (g *Game) handleTouch() bool {
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		g.clickAt(x, y)
		if !g.touching {
			g.touching = true
			g.touchID = id
		}
	}
	if !g.touching {
		return false
	}

	if inpututil.IsTouchJustReleased(g.touchID) {
		g.touching = false
		g.prevX, g.prevY = -1, -1
		g.engine.PointerLeave()
		return true
	}
	x, y := ebiten.TouchPosition(g.touchID)
	g.pointerAt(x, y)
	return true
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	w, h := g.engine.Size()
	if mx < 0 || my < 0 || mx >= w || my >= h {
		if g.engine.Cursor().Present() {
			g.engine.PointerLeave()
		}
		g.prevX, g.prevY = -1, -1
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.clickAt(mx, my)
	}
	g.pointerAt(mx, my)
}

// pointerAt forwards a pointer position only when it moved
func (g *Game) pointerAt(x, y int) {
	if x == g.prevX && y == g.prevY {
		return
	}
	g.prevX, g.prevY = x, y
	g.engine.PointerMove(float64(x), float64(y))
	g.engine.HoverAt(float64(x), float64(y))
}

// clickAt toggles the theme from its button and copies the address of a
// clicked social or link
func (g *Game) clickAt(x, y int) {
	fx, fy := float64(x), float64(y)
	l := g.engine.Layout()
	if l.ThemeButton.Contains(fx, fy) {
		g.engine.ToggleTheme()
		return
	}
	el, ok := l.HitTest(fx, fy)
	if !ok {
		return
	}
	p := &g.engine.Config().Profile
	var label string
	switch {
	case el.Target == layout.TargetSocial && el.Index < len(p.Socials):
		label = p.Socials[el.Index]
	case el.Target == layout.TargetLink && el.Index < len(p.Links):
		label = p.Links[el.Index]
	default:
		return
	}
	href := p.Href(label)
	if err := clipboard.WriteAll(href); err != nil {
		log.Printf("clipboard: %v", err)
		return
	}
	log.Printf("copied %s", href)
}

func (g *Game) drainAvatar() {
	select {
	case res := <-g.avatarCh:
		g.picking = false
		if res.err != nil {
			if res.path != "" {
				log.Printf("avatar: %v", res.err)
			}
			return
		}
		log.Printf("avatar: %s", res.path)
		g.setAvatar(res.img)
	default:
	}
}

func (g *Game) saveConfig() {
	cfg := *g.engine.Config()
	cfg.Theme = g.engine.Theme()
	if err := cfg.Save(g.configPath); err != nil {
		log.Printf("save config: %v", err)
		return
	}
	log.Printf("config saved to %s", g.configPath)
}

func (g *Game) loadConfig() {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		log.Printf("load config: %v", err)
		return
	}
	if err := g.apply(cfg, g.engine.Avatar()); err != nil {
		log.Printf("apply config: %v", err)
		return
	}
	log.Printf("config loaded from %s (preset %s)", g.configPath, cfg.Preset)
}
