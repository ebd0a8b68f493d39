package sampler

import (
	"image"
	"log"
	"math"

	"github.com/olivierh59500/linkhub-particles/internal/geom"
)

// Kind is what a hovered element turns into
type Kind int

const (
	KindNone Kind = iota
	KindIcon
	KindAvatar
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindIcon:
		return "icon"
	case KindAvatar:
		return "avatar"
	case KindText:
		return "text"
	}
	return "none"
}

// Source describes what to rasterize
type Source struct {
	Kind  Kind
	Glyph string      // icon drawn as one large glyph
	Label string      // icon drawn as button text
	Lines []string    // text mode lines
	Image image.Image // avatar
}

// Rasterizer renders a source into a size x size alpha bitmap
type Rasterizer interface {
	Rasterize(src Source, size int) (*image.Alpha, error)
}

// Region is the screen space the point cloud is placed into
type Region struct {
	Width, Height float64
	CardLeft      float64
	CardRight     float64
}

const (
	avatarScale = 130.0
	iconScale   = 110.0
	iconBands   = 3
	iconGap     = 60.0
	textEdge    = 10.0
)

// Sampler turns hover sources into screen-space target points
type Sampler struct {
	r         Rasterizer
	size      int
	threshold uint8
}

func New(r Rasterizer, size int, threshold uint8) *Sampler {
	return &Sampler{r: r, size: size, threshold: threshold}
}

// Sample rasterizes src and maps the point cloud into region. A failed
// avatar falls back to a silhouette; any other failure yields no points.
func (s *Sampler) Sample(src Source, region Region) []geom.Point {
	bmp, err := s.r.Rasterize(src, s.size)
	if err != nil {
		if src.Kind != KindAvatar {
			log.Printf("sampler: %s rasterize failed: %v", src.Kind, err)
			return nil
		}
		log.Printf("sampler: avatar rasterize failed, using silhouette: %v", err)
		bmp = Silhouette(s.size)
	}
	return Place(Points(bmp, s.threshold, Stride(src.Kind)), src.Kind, region)
}

// Stride is the grid step used when scanning a bitmap of kind k
func Stride(k Kind) int {
	if k == KindAvatar {
		return 1
	}
	return 2
}

// Points returns the normalized position of every cell whose alpha exceeds
// threshold, scanning rows top to bottom with the given stride.
func Points(bmp *image.Alpha, threshold uint8, stride int) []geom.Point {
	if bmp == nil {
		return nil
	}
	if stride < 1 {
		stride = 1
	}
	b := bmp.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	var pts []geom.Point
	for y := b.Min.Y; y < b.Max.Y; y += stride {
		for x := b.Min.X; x < b.Max.X; x += stride {
			if bmp.AlphaAt(x, y).A > threshold {
				pts = append(pts, geom.Point{
					X: float64(x-b.Min.X) / w,
					Y: float64(y-b.Min.Y) / h,
				})
			}
		}
	}
	return pts
}

// Place maps normalized points into the two regions flanking the card.
// Left copies come before right copies.
func Place(pts []geom.Point, kind Kind, r Region) []geom.Point {
	if len(pts) == 0 {
		return nil
	}
	lx := r.CardLeft / 2
	rx := r.CardRight + (r.Width-r.CardRight)/2
	cy := r.Height / 2

	switch kind {
	case KindText:
		sc := math.Min(120, math.Max(60, r.CardLeft*0.45))
		res := make([]geom.Point, 0, len(pts)*2)
		for _, p := range pts {
			x := math.Max(textEdge, math.Min(lx+(p.X-0.5)*sc, r.CardLeft-textEdge))
			res = append(res, geom.Point{X: x, Y: cy + (p.Y-0.5)*sc})
		}
		for _, p := range pts {
			x := math.Min(r.Width-textEdge, math.Max(rx+(p.X-0.5)*sc, r.CardRight+textEdge))
			res = append(res, geom.Point{X: x, Y: cy + (p.Y-0.5)*sc})
		}
		return res

	case KindAvatar:
		return mirror(pts, lx, rx, cy, avatarScale, nil)

	case KindIcon:
		res := make([]geom.Point, 0, len(pts)*2*iconBands)
		startY := r.Height * 0.2
		for i := 0; i < iconBands; i++ {
			res = mirror(pts, lx, rx, startY+float64(i)*(iconScale+iconGap), iconScale, res)
		}
		return res
	}
	return nil
}

func mirror(pts []geom.Point, lx, rx, cy, sc float64, res []geom.Point) []geom.Point {
	for _, p := range pts {
		res = append(res, geom.Point{X: lx + (p.X-0.5)*sc, Y: cy + (p.Y-0.5)*sc})
	}
	for _, p := range pts {
		res = append(res, geom.Point{X: rx + (p.X-0.5)*sc, Y: cy + (p.Y-0.5)*sc})
	}
	return res
}
