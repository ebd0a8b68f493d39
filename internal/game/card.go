package game

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/olivierh59500/linkhub-particles/internal/config"
	"github.com/olivierh59500/linkhub-particles/internal/geom"
	"github.com/olivierh59500/linkhub-particles/internal/layout"
)

// drawCard renders the profile card over the particles
func (g *Game) drawCard(screen *ebiten.Image, tc themeColors) {
	l := g.engine.Layout()
	p := &g.engine.Config().Profile
	hovered, isHover := g.engine.Hovered()

	fillRect(screen, l.Panel, tc.panel)

	// Avatar
	a := l.Avatar
	c := a.Center()
	if g.avatarImg != nil {
		b := g.avatarImg.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(a.Width()/float64(b.Dx()), a.Height()/float64(b.Dy()))
		op.GeoM.Translate(a.MinX, a.MinY)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(g.avatarImg, op)
	} else {
		vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(a.Width()/2), tc.accent, true)
		vector.DrawFilledCircle(screen, float32(c.X), float32(a.MinY+a.Height()*0.38), float32(a.Width()*0.2), tc.fg, true)
	}
	if isHover && hovered.Target == layout.TargetAvatar {
		vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(a.Width()/2+4), 2, tc.fg, true)
	}

	g.drawText(screen, true, 30, strings.Join(p.Name, " "), l.Name, tc.fg)
	g.drawText(screen, false, 15, p.Bio, l.Bio, tc.fg)

	for i, r := range l.Socials {
		width := float32(1)
		if isHover && hovered.Target == layout.TargetSocial && hovered.Index == i {
			width = 2.5
		}
		vector.StrokeRect(screen, float32(r.MinX), float32(r.MinY), float32(r.Width()), float32(r.Height()), width, tc.fg, true)
		if i < len(p.Socials) {
			g.drawText(screen, true, 22, p.Socials[i], r, tc.fg)
		}
	}

	for i, r := range l.Links {
		fill := tc.accent
		if isHover && hovered.Target == layout.TargetLink && hovered.Index == i {
			fill.A *= 2
		}
		fillRect(screen, r, fill)
		if i < len(p.Links) {
			g.drawText(screen, true, 18, p.Links[i], r, tc.fg)
		}
	}

	// Theme button
	tb := l.ThemeButton
	vector.StrokeRect(screen, float32(tb.MinX), float32(tb.MinY), float32(tb.Width()), float32(tb.Height()), 1.5, tc.fg, true)
	label := "L"
	if g.engine.Theme() == config.ThemeDark {
		label = "D"
	}
	g.drawText(screen, true, 18, label, tb, tc.fg)
}

// drawText centers s inside r
func (g *Game) drawText(screen *ebiten.Image, bold bool, size float64, s string, r geom.Rect, clr color.Color) {
	if s == "" {
		return
	}
	face, err := g.raster.Face(bold, size)
	if err != nil {
		return
	}
	w := font.MeasureString(face, s).Round()
	m := face.Metrics()
	c := r.Center()
	x := int(c.X) - w/2
	y := int(c.Y) + (m.Ascent.Round()-m.Descent.Round())/2
	text.Draw(screen, s, face, x, y, clr)
}

func fillRect(screen *ebiten.Image, r geom.Rect, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.MinX), float32(r.MinY), float32(r.Width()), float32(r.Height()), clr, true)
}
