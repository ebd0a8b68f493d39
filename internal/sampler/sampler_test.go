package sampler

import (
	"errors"
	"image"
	"image/color"
	"reflect"
	"testing"

	"github.com/olivierh59500/linkhub-particles/internal/geom"
)

// fakeRasterizer returns a fixed bitmap or error
type fakeRasterizer struct {
	bmp   *image.Alpha
	err   error
	calls int
}

func (f *fakeRasterizer) Rasterize(src Source, size int) (*image.Alpha, error) {
	f.calls++
	return f.bmp, f.err
}

// square returns a size x size bitmap with an opaque block [x0,x1) x [y0,y1)
func square(size, x0, y0, x1, y1 int) *image.Alpha {
	bmp := image.NewAlpha(image.Rect(0, 0, size, size))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			bmp.SetAlpha(x, y, color.Alpha{A: 255})
		}
	}
	return bmp
}

var testRegion = Region{Width: 1600, Height: 900, CardLeft: 500, CardRight: 1100}

func TestPointsThresholdAndStride(t *testing.T) {
	bmp := image.NewAlpha(image.Rect(0, 0, 4, 4))
	bmp.SetAlpha(0, 0, color.Alpha{A: 200})
	bmp.SetAlpha(1, 0, color.Alpha{A: 255})
	bmp.SetAlpha(2, 2, color.Alpha{A: 128}) // not above threshold
	bmp.SetAlpha(3, 3, color.Alpha{A: 129})

	got := Points(bmp, 128, 1)
	want := []geom.Point{{X: 0, Y: 0}, {X: 0.25, Y: 0}, {X: 0.75, Y: 0.75}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("stride 1: got %v, want %v", got, want)
	}

	got = Points(bmp, 128, 2)
	want = []geom.Point{{X: 0, Y: 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("stride 2: got %v, want %v", got, want)
	}
}

// TestPointsDeterministic verifies repeated sampling yields identical lists
func TestPointsDeterministic(t *testing.T) {
	bmp := Silhouette(100)
	a := Points(bmp, 128, 2)
	b := Points(bmp, 128, 2)
	if len(a) == 0 {
		t.Fatal("silhouette produced no points")
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("sampling the same bitmap twice differed")
	}
	for _, p := range a {
		if p.X < 0 || p.X >= 1 || p.Y < 0 || p.Y >= 1 {
			t.Fatalf("point outside unit square: %v", p)
		}
	}
}

func TestStride(t *testing.T) {
	if Stride(KindAvatar) != 1 || Stride(KindIcon) != 2 || Stride(KindText) != 2 {
		t.Error("avatar samples every pixel, others every second pixel")
	}
}

func TestPlaceAvatarMirrored(t *testing.T) {
	pts := []geom.Point{{X: 0.5, Y: 0.5}, {X: 0, Y: 0}}
	got := Place(pts, KindAvatar, testRegion)
	if len(got) != 4 {
		t.Fatalf("expected 4 points, got %d", len(got))
	}
	// centers of the side regions
	if got[0] != (geom.Point{X: 250, Y: 450}) {
		t.Errorf("left center = %v", got[0])
	}
	if got[2] != (geom.Point{X: 1350, Y: 450}) {
		t.Errorf("right center = %v", got[2])
	}
	if got[1] != (geom.Point{X: 250 - 65, Y: 450 - 65}) {
		t.Errorf("left corner = %v", got[1])
	}
}

func TestPlaceTextStaysOutsideCard(t *testing.T) {
	// A narrow window pushes scaled text against the card edges
	r := Region{Width: 700, Height: 600, CardLeft: 50, CardRight: 650}
	pts := []geom.Point{{X: 0, Y: 0.5}, {X: 1, Y: 0.5}}
	got := Place(pts, KindText, r)
	if len(got) != 4 {
		t.Fatalf("expected 4 points, got %d", len(got))
	}
	for _, p := range got[:2] {
		if p.X < 10 || p.X > r.CardLeft-10 {
			t.Errorf("left text point %v inside card or off screen", p)
		}
	}
	for _, p := range got[2:] {
		if p.X < r.CardRight+10 || p.X > r.Width-10 {
			t.Errorf("right text point %v inside card or off screen", p)
		}
	}
}

func TestPlaceIconBands(t *testing.T) {
	got := Place([]geom.Point{{X: 0.5, Y: 0.5}}, KindIcon, testRegion)
	if len(got) != 6 {
		t.Fatalf("expected 3 bands x 2 sides, got %d", len(got))
	}
	wantY := []float64{180, 180, 350, 350, 520, 520}
	for i, p := range got {
		if p.Y != wantY[i] {
			t.Errorf("point %d y=%v, want %v", i, p.Y, wantY[i])
		}
	}
}

func TestPlaceEmpty(t *testing.T) {
	if got := Place(nil, KindAvatar, testRegion); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestSampleAvatarFallsBackToSilhouette(t *testing.T) {
	s := New(&fakeRasterizer{err: ErrNoImage}, 100, 128)
	got := s.Sample(Source{Kind: KindAvatar}, testRegion)
	want := Place(Points(Silhouette(100), 128, 1), KindAvatar, testRegion)
	if len(got) == 0 {
		t.Fatal("avatar failure must fall back to the silhouette")
	}
	if !reflect.DeepEqual(got, want) {
		t.Error("fallback points do not match the silhouette")
	}
}

func TestSampleOtherFailuresAreEmpty(t *testing.T) {
	s := New(&fakeRasterizer{err: errors.New("tainted")}, 100, 128)
	for _, k := range []Kind{KindIcon, KindText} {
		if got := s.Sample(Source{Kind: k}, testRegion); len(got) != 0 {
			t.Errorf("%s failure: expected no points, got %d", k, len(got))
		}
	}
}

func TestSampleUsesStride(t *testing.T) {
	fake := &fakeRasterizer{bmp: square(10, 0, 0, 4, 4)}
	s := New(fake, 10, 128)

	icon := s.Sample(Source{Kind: KindIcon, Glyph: "x"}, testRegion)
	if len(icon) != 4*2*3 {
		t.Errorf("icon: expected 4 points x 6 copies, got %d", len(icon))
	}
	avatar := s.Sample(Source{Kind: KindAvatar}, testRegion)
	if len(avatar) != 16*2 {
		t.Errorf("avatar: expected 16 points x 2 copies, got %d", len(avatar))
	}
	if fake.calls != 2 {
		t.Errorf("expected 2 rasterize calls, got %d", fake.calls)
	}
}

func TestSilhouetteShape(t *testing.T) {
	bmp := Silhouette(100)
	if bmp.AlphaAt(50, 35).A != 255 {
		t.Error("head center should be filled")
	}
	if bmp.AlphaAt(50, 95).A != 255 {
		t.Error("shoulders should be filled")
	}
	if bmp.AlphaAt(2, 2).A != 0 {
		t.Error("corner should be empty")
	}
}
