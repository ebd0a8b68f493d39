package sampler

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	ErrNoImage     = errors.New("no avatar image")
	ErrEmptySource = errors.New("nothing to rasterize")
)

type faceKey struct {
	bold bool
	size float64
}

// FontRasterizer draws glyphs and labels with the Go fonts and scales
// avatar images. Faces are cached per size.
type FontRasterizer struct {
	bold   *opentype.Font
	medium *opentype.Font
	faces  map[faceKey]font.Face
}

func NewFontRasterizer() (*FontRasterizer, error) {
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	medium, err := opentype.Parse(gomedium.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse medium font: %w", err)
	}
	return &FontRasterizer{
		bold:   bold,
		medium: medium,
		faces:  make(map[faceKey]font.Face),
	}, nil
}

// Face returns a cached face at the given pixel size
func (r *FontRasterizer) Face(bold bool, size float64) (font.Face, error) {
	key := faceKey{bold: bold, size: size}
	if f, ok := r.faces[key]; ok {
		return f, nil
	}
	src := r.medium
	if bold {
		src = r.bold
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face %.0fpx: %w", size, err)
	}
	r.faces[key] = f
	return f, nil
}

// Rasterize implements Rasterizer
func (r *FontRasterizer) Rasterize(src Source, size int) (*image.Alpha, error) {
	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	s := float64(size)

	switch src.Kind {
	case KindIcon:
		if src.Glyph != "" {
			return dst, r.drawCentered(dst, true, s*0.8, src.Glyph, s/2, s/2)
		}
		if src.Label != "" {
			return dst, r.drawCentered(dst, true, s*0.25, src.Label, s/2, s/2)
		}
		return nil, ErrEmptySource

	case KindText:
		if len(src.Lines) == 0 {
			return nil, ErrEmptySource
		}
		mid := float64(len(src.Lines)-1) / 2
		for i, line := range src.Lines {
			cy := s * (0.5 + (float64(i)-mid)*0.3)
			if err := r.drawCentered(dst, false, s*0.22, line, s/2, cy); err != nil {
				return nil, err
			}
		}
		return dst, nil

	case KindAvatar:
		if src.Image == nil || src.Image.Bounds().Empty() {
			return nil, ErrNoImage
		}
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src.Image, src.Image.Bounds(), xdraw.Over, nil)
		return dst, nil
	}
	return nil, fmt.Errorf("%w: kind %s", ErrEmptySource, src.Kind)
}

// drawCentered draws s with its advance box centered on (cx, cy)
func (r *FontRasterizer) drawCentered(dst *image.Alpha, bold bool, px float64, s string, cx, cy float64) error {
	face, err := r.Face(bold, px)
	if err != nil {
		return err
	}
	d := &font.Drawer{Dst: dst, Src: image.Opaque, Face: face}
	w := fixedToFloat(d.MeasureString(s))
	m := face.Metrics()
	baseline := cy + (fixedToFloat(m.Ascent)-fixedToFloat(m.Descent))/2
	d.Dot = fixed.Point26_6{X: floatToFixed(cx - w/2), Y: floatToFixed(baseline)}
	d.DrawString(s)
	return nil
}

// Silhouette is the fallback avatar: a head disc over a shoulder ellipse
func Silhouette(size int) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	s := float64(size)
	hx, hy, hr := s/2, s*0.35, s*0.22
	ex, ey, erx, ery := s/2, s, s*0.45, s*0.35

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			fx, fy := float64(x), float64(y)
			head := (fx-hx)*(fx-hx)+(fy-hy)*(fy-hy) <= hr*hr
			nx, ny := (fx-ex)/erx, (fy-ey)/ery
			body := fy <= ey && nx*nx+ny*ny <= 1
			if head || body {
				dst.SetAlpha(x, y, color.Alpha{A: 255})
			}
		}
	}
	return dst
}

func fixedToFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }
func floatToFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(v * 64) }
