package cellbloom

import (
	"image"
	"image/color"
	"testing"
)

func TestTextPoints(t *testing.T) {
	mask := image.NewAlpha(image.Rect(0, 0, 6, 6))
	mask.SetAlpha(0, 0, color.Alpha{255})
	mask.SetAlpha(3, 3, color.Alpha{200})
	mask.SetAlpha(3, 0, color.Alpha{100})
	mask.SetAlpha(1, 1, color.Alpha{255})

	pts := TextPoints(mask, 3, 128)
	want := []Vec2{{0, 0}, {3, 3}}
	if len(pts) != len(want) {
		t.Fatalf("points = %v, want %v", pts, want)
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("points = %v, want %v", pts, want)
		}
	}
	if TextPoints(nil, 3, 0) != nil || TextPoints(mask, 0, 0) != nil {
		t.Error("nil mask or zero stride should yield nothing")
	}
}

func TestFaceRasterizer(t *testing.T) {
	r, err := DefaultRasterizer(40)
	if err != nil {
		t.Fatal(err)
	}
	view := Size{200, 100}
	pts := TextPoints(r.Rasterize("H", view), 2, 128)
	if len(pts) == 0 {
		t.Fatal("no points rasterized")
	}
	var sx, sy float64
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	mx, my := sx/float64(len(pts)), sy/float64(len(pts))
	if mx < 85 || mx > 115 || my < 35 || my > 65 {
		t.Errorf("mean point (%.1f,%.1f) is not near the center", mx, my)
	}

	if n := len(TextPoints(r.Rasterize("", view), 2, 0)); n != 0 {
		t.Errorf("empty string produced %d points", n)
	}
	if b := r.Rasterize("H", Size{}).Bounds(); !b.Empty() {
		t.Errorf("empty view bounds = %v", b)
	}
}

func TestNewFaceRasterizerBadData(t *testing.T) {
	if _, err := NewFaceRasterizer([]byte("nope"), 12); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadTTFFont(t *testing.T) {
	f := captionFont(24)
	if f == nil {
		t.Fatal("caption font failed to load")
	}
	if f.LineHeight() <= 0 {
		t.Errorf("line height = %v", f.LineHeight())
	}
	if w, _ := f.MeasureString("wide text"); w <= 0 {
		t.Errorf("width = %v", w)
	}
	if captionFont(24) != f {
		t.Error("faces should be cached per size")
	}
}
