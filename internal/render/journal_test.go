package render

import (
	"path/filepath"
	"testing"

	"perspectiveview/internal/perspective"
)

func TestJournalRoundTrip(t *testing.T) {
	hm := perspective.MustHeightMap([][]int{
		{0, 2, 0},
		{1, 0, 0},
		{0, 0, 3},
	})
	cfg := perspective.DefaultConfig()
	cfg.VanishingPoint = perspective.Point{X: 60, Y: 90}
	pr, err := perspective.New(cfg, perspective.WithMap(hm))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	first, err := pr.Frame()
	if err != nil {
		t.Fatalf("frame: %v", err)
	}
	if err := pr.SetMode(perspective.Flat); err != nil {
		t.Fatalf("mode: %v", err)
	}
	second, err := pr.Frame()
	if err != nil {
		t.Fatalf("frame: %v", err)
	}

	path := filepath.Join(t.TempDir(), "rec", "frames.jsonl.zst")
	j, err := CreateJournal(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	for _, f := range [][]perspective.Command{first, second} {
		if err := j.WriteFrame(f); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if j.Frames() != 2 {
		t.Fatalf("frames = %d", j.Frames())
	}
	if err := j.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := j.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if err := j.WriteFrame(first); err == nil {
		t.Fatalf("write after close succeeded")
	}

	got, err := ReadJournal(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("read %d frames, want 2", len(got))
	}
	for fi, want := range [][]perspective.Command{first, second} {
		if got[fi].Index != fi {
			t.Fatalf("frame index %d, want %d", got[fi].Index, fi)
		}
		if len(got[fi].Commands) != len(want) {
			t.Fatalf("frame %d: %d commands, want %d", fi, len(got[fi].Commands), len(want))
		}
		for i, c := range want {
			g := got[fi].Commands[i]
			if g.Cell != c.Cell || g.Face != c.Face || g.Color != c.Color {
				t.Fatalf("frame %d cmd %d: got %+v want %+v", fi, i, g, c)
			}
			for k := range c.Points {
				if g.Points[k] != c.Points[k] {
					t.Fatalf("frame %d cmd %d point %d: %v != %v", fi, i, k, g.Points[k], c.Points[k])
				}
			}
		}
	}
}
