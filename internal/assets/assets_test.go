package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMissingDirectory(t *testing.T) {
	a := Load(t.TempDir(), nil)

	if a.HasPlayerSprite() {
		t.Error("expected no player sprite in empty directory")
	}
	if a.HasItemSprite() {
		t.Error("expected no item sprite in empty directory")
	}
	if a.FrameCount() != 0 {
		t.Errorf("FrameCount() = %d, expected 0", a.FrameCount())
	}
}

func TestLoadSpritesFromPrimaryDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "sprite_mouse", "mouse.txt"), "<:3\n\n<:o\n")
	writeFile(t, filepath.Join(dir, "sprite_mouse", "cheese.txt"), "[#]\n")

	a := Load(dir, nil)

	if !a.HasPlayerSprite() {
		t.Fatal("player sprite not loaded")
	}
	if a.FrameCount() != 2 {
		t.Errorf("FrameCount() = %d, expected 2", a.FrameCount())
	}
	if !a.HasItemSprite() {
		t.Fatal("item sprite not loaded")
	}
	if rows := a.ItemSprite().Rows(); len(rows) != 1 || rows[0] != "[#]" {
		t.Errorf("item rows = %v", rows)
	}
}

func TestLoadFallbackDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "sprites", "mouse.txt"), "<:3\n")

	a := Load(dir, nil)
	if !a.HasPlayerSprite() {
		t.Error("sprites/ fallback directory not probed")
	}
}

func TestPlayerFrameWraps(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "sprite_mouse", "mouse.txt"), "a\n\nb\n\nc\n")

	a := Load(dir, nil)
	if a.FrameCount() != 3 {
		t.Fatalf("FrameCount() = %d, expected 3", a.FrameCount())
	}
	if a.PlayerFrame(0).Rows()[0] != a.PlayerFrame(3).Rows()[0] {
		t.Error("PlayerFrame should wrap around the frame list")
	}
	if a.PlayerFrame(-1).Rows()[0] != a.PlayerFrame(0).Rows()[0] {
		t.Error("PlayerFrame should clamp negative indices")
	}
}

func TestSpriteRowsPaddedToEqualWidth(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "sprite_mouse", "cheese.txt"), "ab\nabcd\na\n")

	a := Load(dir, nil)
	s := a.ItemSprite()
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("sprite %dx%d, expected 4x3", s.Width(), s.Height())
	}
	for i, row := range s.Rows() {
		if len(row) != 4 {
			t.Errorf("row %d = %q, expected width 4", i, row)
		}
	}
}

func TestSpriteMirrored(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "sprite_mouse", "cheese.txt"), "<(ab]\n")

	m := Load(dir, nil).ItemSprite().Mirrored()
	if got := m.Rows()[0]; got != "[ba)>" {
		t.Errorf("Mirrored() row = %q, expected %q", got, "[ba)>")
	}
}
