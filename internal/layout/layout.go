package layout

import (
	"math"

	"github.com/olivierh59500/linkhub-particles/internal/config"
	"github.com/olivierh59500/linkhub-particles/internal/geom"
	"github.com/olivierh59500/linkhub-particles/internal/sampler"
)

// Card content metrics, in pixels
const (
	padding      = 28.0
	avatarSize   = 110.0
	nameHeight   = 44.0
	bioHeight    = 24.0
	socialSize   = 48.0
	socialGap    = 16.0
	linkHeight   = 52.0
	linkGap      = 12.0
	sectionGap   = 22.0
	themeButton  = 40.0
	themeMargin  = 16.0
	minPanelTopY = 16.0
)

// Target identifies what a hoverable element is
type Target int

const (
	TargetAvatar Target = iota
	TargetName
	TargetSocial
	TargetLink
)

// Element is a hoverable part of the card
type Element struct {
	Target Target
	Index  int // position within socials or links
	Rect   geom.Rect
}

// Kind is the sampler kind the element turns into
func (e Element) Kind() sampler.Kind {
	switch e.Target {
	case TargetAvatar:
		return sampler.KindAvatar
	case TargetName:
		return sampler.KindText
	}
	return sampler.KindIcon
}

// Layout is the card geometry for one window size
type Layout struct {
	Width, Height float64
	Card          geom.Rect // full-height column behind the card
	Panel         geom.Rect // visible card body
	Avatar        geom.Rect
	Name          geom.Rect
	Bio           geom.Rect
	Socials       []geom.Rect
	Links         []geom.Rect
	ThemeButton   geom.Rect
	Elements      []Element
}

// Compute lays the card out for a w x h window
func Compute(w, h float64, cfg *config.Config) Layout {
	cw := math.Min(cfg.CardMaxWidth, w*cfg.CardWidthFrac)
	cl := (w - cw) / 2
	l := Layout{
		Width:       w,
		Height:      h,
		Card:        geom.Rect{MinX: cl, MinY: 0, MaxX: cl + cw, MaxY: h},
		ThemeButton: geom.RectXYWH(w-themeMargin-themeButton, themeMargin, themeButton, themeButton),
	}

	nSocial := len(cfg.Profile.Socials)
	nLinks := len(cfg.Profile.Links)
	content := avatarSize + sectionGap + nameHeight + bioHeight + sectionGap
	if nSocial > 0 {
		content += socialSize + sectionGap
	}
	content += float64(nLinks)*(linkHeight+linkGap) - linkGap
	panelH := content + 2*padding
	top := math.Max(minPanelTopY, (h-panelH)/2)
	l.Panel = geom.RectXYWH(cl, top, cw, panelH)

	cx := cl + cw/2
	inner := cw - 2*padding
	y := top + padding

	l.Avatar = geom.RectXYWH(cx-avatarSize/2, y, avatarSize, avatarSize)
	y += avatarSize + sectionGap
	l.Name = geom.RectXYWH(cl+padding, y, inner, nameHeight)
	y += nameHeight
	l.Bio = geom.RectXYWH(cl+padding, y, inner, bioHeight)
	y += bioHeight + sectionGap

	if nSocial > 0 {
		rowW := float64(nSocial)*socialSize + float64(nSocial-1)*socialGap
		x := cx - rowW/2
		for i := 0; i < nSocial; i++ {
			l.Socials = append(l.Socials, geom.RectXYWH(x, y, socialSize, socialSize))
			x += socialSize + socialGap
		}
		y += socialSize + sectionGap
	}
	for i := 0; i < nLinks; i++ {
		l.Links = append(l.Links, geom.RectXYWH(cl+padding, y, inner, linkHeight))
		y += linkHeight + linkGap
	}

	l.Elements = append(l.Elements,
		Element{Target: TargetAvatar, Rect: l.Avatar},
		Element{Target: TargetName, Rect: l.Name},
	)
	for i, r := range l.Socials {
		l.Elements = append(l.Elements, Element{Target: TargetSocial, Index: i, Rect: r})
	}
	for i, r := range l.Links {
		l.Elements = append(l.Elements, Element{Target: TargetLink, Index: i, Rect: r})
	}
	return l
}

// Protected returns the regions particles must not draw over
func (l *Layout) Protected() []geom.Rect {
	return []geom.Rect{l.Card, l.ThemeButton}
}

// HitTest returns the hoverable element under (x, y)
func (l *Layout) HitTest(x, y float64) (Element, bool) {
	for _, e := range l.Elements {
		if e.Rect.Contains(x, y) {
			return e, true
		}
	}
	return Element{}, false
}

// Region is the sampler placement region for this layout
func (l *Layout) Region() sampler.Region {
	return sampler.Region{
		Width:     l.Width,
		Height:    l.Height,
		CardLeft:  l.Card.MinX,
		CardRight: l.Card.MaxX,
	}
}
