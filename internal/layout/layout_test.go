package layout

import (
	"testing"

	"github.com/olivierh59500/linkhub-particles/internal/config"
	"github.com/olivierh59500/linkhub-particles/internal/sampler"
)

func TestCardWidth(t *testing.T) {
	cfg := config.Default()

	wide := Compute(1600, 900, &cfg)
	if wide.Card.Width() != 600 || wide.Card.MinX != 500 {
		t.Errorf("wide window: card %+v", wide.Card)
	}
	if wide.Card.MinY != 0 || wide.Card.MaxY != 900 {
		t.Errorf("card column should span the full height: %+v", wide.Card)
	}

	narrow := Compute(400, 800, &cfg)
	if narrow.Card.Width() != 380 || narrow.Card.MinX != 10 {
		t.Errorf("narrow window: card %+v", narrow.Card)
	}
}

func TestElementsInsideCard(t *testing.T) {
	cfg := config.Default()
	l := Compute(1280, 900, &cfg)

	want := 2 + len(cfg.Profile.Socials) + len(cfg.Profile.Links)
	if len(l.Elements) != want {
		t.Fatalf("expected %d elements, got %d", want, len(l.Elements))
	}
	for _, e := range l.Elements {
		if e.Rect.MinX < l.Card.MinX || e.Rect.MaxX > l.Card.MaxX {
			t.Errorf("element %+v leaves the card", e)
		}
	}
}

func TestHitTest(t *testing.T) {
	cfg := config.Default()
	l := Compute(1280, 900, &cfg)

	c := l.Avatar.Center()
	e, ok := l.HitTest(c.X, c.Y)
	if !ok || e.Target != TargetAvatar || e.Kind() != sampler.KindAvatar {
		t.Errorf("avatar center hit %+v ok=%v", e, ok)
	}

	c = l.Links[2].Center()
	e, ok = l.HitTest(c.X, c.Y)
	if !ok || e.Target != TargetLink || e.Index != 2 || e.Kind() != sampler.KindIcon {
		t.Errorf("third link hit %+v ok=%v", e, ok)
	}

	c = l.Name.Center()
	if e, ok = l.HitTest(c.X, c.Y); !ok || e.Kind() != sampler.KindText {
		t.Errorf("name hit %+v ok=%v", e, ok)
	}

	if _, ok := l.HitTest(5, 5); ok {
		t.Error("window corner should not hit anything")
	}
}

func TestProtectedAndRegion(t *testing.T) {
	cfg := config.Default()
	l := Compute(1600, 900, &cfg)

	prot := l.Protected()
	if len(prot) != 2 || prot[0] != l.Card || prot[1] != l.ThemeButton {
		t.Errorf("unexpected protected list %+v", prot)
	}
	r := l.Region()
	if r.CardLeft != 500 || r.CardRight != 1100 || r.Width != 1600 || r.Height != 900 {
		t.Errorf("unexpected region %+v", r)
	}
}
