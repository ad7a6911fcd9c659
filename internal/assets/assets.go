// Package assets loads optional text-art sprites for the game.
// Sprites are purely cosmetic: when no sprite files are found the renderer
// falls back to built-in glyph shapes with identical collision geometry.
package assets

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// File names probed inside each candidate sprite directory.
const (
	mouseFile  = "mouse.txt"
	cheeseFile = "cheese.txt"
)

// spriteDirNames are the candidate directory names probed under the base
// directory, in order.
var spriteDirNames = []string{"sprite_mouse", "sprites"}

// Sprite is a small block of text art. All rows have equal width.
type Sprite struct {
	rows []string
}

// Width returns the sprite width in cells.
func (s Sprite) Width() int {
	if len(s.rows) == 0 {
		return 0
	}
	return len([]rune(s.rows[0]))
}

// Height returns the sprite height in cells.
func (s Sprite) Height() int {
	return len(s.rows)
}

// Rows returns the sprite rows for drawing.
func (s Sprite) Rows() []string {
	return s.rows
}

// Mirrored returns a horizontally flipped copy, for facing direction.
func (s Sprite) Mirrored() Sprite {
	out := make([]string, len(s.rows))
	for i, row := range s.rows {
		runes := []rune(row)
		for l, r := 0, len(runes)-1; l <= r; l, r = l+1, r-1 {
			runes[l], runes[r] = mirrorRune(runes[r]), mirrorRune(runes[l])
		}
		out[i] = string(runes)
	}
	return Sprite{rows: out}
}

// mirrorRune swaps direction-sensitive glyphs when flipping a sprite.
func mirrorRune(r rune) rune {
	switch r {
	case '<':
		return '>'
	case '>':
		return '<'
	case '(':
		return ')'
	case ')':
		return '('
	case '/':
		return '\\'
	case '\\':
		return '/'
	case '[':
		return ']'
	case ']':
		return '['
	default:
		return r
	}
}

// Assets holds the optional sprites. Zero value means "no sprites": every
// accessor degrades gracefully.
type Assets struct {
	mouseFrames []Sprite
	cheese      *Sprite
}

// HasPlayerSprite reports whether animated player frames were loaded.
func (a *Assets) HasPlayerSprite() bool {
	return a != nil && len(a.mouseFrames) > 0
}

// HasItemSprite reports whether the item sprite was loaded.
func (a *Assets) HasItemSprite() bool {
	return a != nil && a.cheese != nil
}

// PlayerFrame returns the player frame for the given animation index,
// wrapping around the frame list. Returns a zero sprite when absent.
func (a *Assets) PlayerFrame(i int) Sprite {
	if !a.HasPlayerSprite() {
		return Sprite{}
	}
	if i < 0 {
		i = 0
	}
	return a.mouseFrames[i%len(a.mouseFrames)]
}

// FrameCount returns the number of player animation frames.
func (a *Assets) FrameCount() int {
	if a == nil {
		return 0
	}
	return len(a.mouseFrames)
}

// ItemSprite returns the item sprite. Returns a zero sprite when absent.
func (a *Assets) ItemSprite() Sprite {
	if !a.HasItemSprite() {
		return Sprite{}
	}
	return *a.cheese
}

// Load probes the candidate sprite directories under baseDir and loads
// whatever it finds. Missing files are not errors: the game plays with
// shape rendering and the absence is logged as informational status only.
func Load(baseDir string, logger *log.Logger) *Assets {
	if logger == nil {
		logger = log.Default()
	}

	a := &Assets{}

	for _, name := range spriteDirNames {
		dir := filepath.Join(baseDir, name)
		if a.cheese == nil {
			if s, ok := loadSprite(filepath.Join(dir, cheeseFile)); ok {
				a.cheese = &s
			}
		}
		if len(a.mouseFrames) == 0 {
			a.mouseFrames = loadFrames(filepath.Join(dir, mouseFile))
		}
	}

	if !a.HasPlayerSprite() {
		logger.Info("no player sprite found, using shape rendering", "base", baseDir)
	}
	if !a.HasItemSprite() {
		logger.Info("no item sprite found, using shape rendering", "base", baseDir)
	}

	return a
}

// loadSprite reads a single sprite from a file. Rows are padded to equal
// width; an empty or unreadable file yields no sprite.
func loadSprite(path string) (Sprite, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Sprite{}, false
	}
	rows := parseBlock(string(data))
	if len(rows) == 0 {
		return Sprite{}, false
	}
	return Sprite{rows: rows}, true
}

// loadFrames reads animation frames from a single file. Frames are
// separated by blank lines, mirroring a sprite sheet sliced into tiles.
func loadFrames(path string) []Sprite {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var frames []Sprite
	for _, block := range strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n\n") {
		rows := parseBlock(block)
		if len(rows) == 0 {
			continue
		}
		frames = append(frames, Sprite{rows: rows})
	}
	return frames
}

// parseBlock trims a text block into equal-width sprite rows.
func parseBlock(block string) []string {
	var rows []string
	width := 0
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" && len(rows) == 0 {
			continue
		}
		if line == "" {
			break
		}
		rows = append(rows, line)
		if w := len([]rune(line)); w > width {
			width = w
		}
	}
	if width == 0 {
		return nil
	}
	for i, row := range rows {
		if pad := width - len([]rune(row)); pad > 0 {
			rows[i] = row + strings.Repeat(" ", pad)
		}
	}
	return rows
}
