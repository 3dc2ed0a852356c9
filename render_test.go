package cellbloom

import "testing"

func TestAppendRect(t *testing.T) {
	var b quadBatch
	b.appendRect(10, 20, 4, 2, Color{1, 0.5, 0, 0.5})
	if len(b.verts) != 4 || len(b.inds) != 6 || b.quads() != 1 {
		t.Fatalf("verts=%d inds=%d, want 4 and 6", len(b.verts), len(b.inds))
	}
	br := b.verts[3]
	if br.DstX != 14 || br.DstY != 22 {
		t.Errorf("bottom-right = (%v,%v), want (14,22)", br.DstX, br.DstY)
	}
	if br.ColorR != 0.5 || br.ColorG != 0.25 || br.ColorB != 0 || br.ColorA != 0.5 {
		t.Errorf("color not premultiplied: %+v", br)
	}
	if br.SrcX != whiteSrc || br.SrcY != whiteSrc {
		t.Errorf("src = (%v,%v), want texel center", br.SrcX, br.SrcY)
	}

	b.appendRect(0, 0, 1, 1, ColorWhite)
	want := []uint32{0, 1, 2, 1, 3, 2, 4, 5, 6, 5, 7, 6}
	for i, v := range want {
		if b.inds[i] != v {
			t.Fatalf("inds = %v, want %v", b.inds, want)
		}
	}

	b.reset()
	if b.quads() != 0 || len(b.inds) != 0 {
		t.Error("reset should empty the batch")
	}
}

func TestRebase(t *testing.T) {
	got := rebase([]uint32{8, 9, 10, 9, 11, 10}, 8)
	want := []uint32{0, 1, 2, 1, 3, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rebase = %v, want %v", got, want)
		}
	}
}

func TestBuildFrameIdle(t *testing.T) {
	s := newTestScene(t, 30, 30)
	f := s.buildFrame()
	if f.body.quads() != 100 || f.halo.quads() != 100 {
		t.Errorf("body=%d halo=%d, want 100 each", f.body.quads(), f.halo.quads())
	}
	if f.halo.blend != BlendAdd || f.body.blend != BlendNormal {
		t.Error("halos should be additive and bodies source-over")
	}

	s.cfg.Glow = false
	f = s.buildFrame()
	if f.body.quads() != 100 || f.halo.quads() != 0 {
		t.Errorf("without glow: body=%d halo=%d, want 100 and 0", f.body.quads(), f.halo.quads())
	}
}

func TestBuildFrameSkipsHiddenParticles(t *testing.T) {
	s := newTestScene(t, 60, 60)
	s.SetTextRasterizer(gridRasterizer{points: 25})
	s.MorphToText("x")
	f := s.buildFrame()
	if f.body.quads() != 25 {
		t.Errorf("body = %d, want 25", f.body.quads())
	}
	if f.halo.quads() != 0 {
		t.Errorf("morph should draw no halos, got %d", f.halo.quads())
	}
}

func TestBuildFrameLife(t *testing.T) {
	s := newTestScene(t, 40, 40)
	s.BeginLifeDirect()
	live := s.Grid().LiveCount()
	f := s.buildFrame()
	if f.body.quads() != live || f.halo.quads() != live {
		t.Errorf("body=%d halo=%d, want %d each", f.body.quads(), f.halo.quads(), live)
	}
	// Cells are drawn one pixel short of the cell size.
	v := f.body.verts
	if w := v[1].DstX - v[0].DstX; w != 3 {
		t.Errorf("cell width = %v, want 3", w)
	}
}
