package dash

import "github.com/vovakirdan/mouse-dash/internal/core"

// transKey identifies one edge in the state machine.
type transKey struct {
	screen Screen
	action core.Action
}

// transitions is the full state machine, one entry per legal edge.
// An absent pair is a no-op; no action ever falls through to a default.
var transitions = map[transKey]func(*Game){
	{ScreenMenu, core.ActionUp}:          func(g *Game) { g.difficultyIdx = g.cfg.CyclePresetIndex(g.difficultyIdx, -1) },
	{ScreenMenu, core.ActionDown}:        func(g *Game) { g.difficultyIdx = g.cfg.CyclePresetIndex(g.difficultyIdx, 1) },
	{ScreenMenu, core.ActionDifficulty1}: func(g *Game) { g.selectAndStart(0) },
	{ScreenMenu, core.ActionDifficulty2}: func(g *Game) { g.selectAndStart(1) },
	{ScreenMenu, core.ActionDifficulty3}: func(g *Game) { g.selectAndStart(2) },
	{ScreenMenu, core.ActionConfirm}:     (*Game).startRun,
	{ScreenMenu, core.ActionQuit}:        func(g *Game) { g.quitRequested = true },

	{ScreenPlaying, core.ActionPause}:   func(g *Game) { g.screen = ScreenPaused },
	{ScreenPlaying, core.ActionRestart}: (*Game).startRun,
	{ScreenPlaying, core.ActionQuit}:    (*Game).toMenu,

	{ScreenPaused, core.ActionPause}:   func(g *Game) { g.screen = ScreenPlaying },
	{ScreenPaused, core.ActionRestart}: (*Game).startRun,
	{ScreenPaused, core.ActionMenu}:    (*Game).toMenu,
	{ScreenPaused, core.ActionQuit}:    (*Game).toMenu,

	{ScreenGameOver, core.ActionConfirm}: (*Game).startRun,
	{ScreenGameOver, core.ActionRestart}: (*Game).toMenu,
	{ScreenGameOver, core.ActionMenu}:    (*Game).toMenu,
	{ScreenGameOver, core.ActionQuit}:    (*Game).toMenu,
}

func (g *Game) selectAndStart(i int) {
	g.difficultyIdx = g.cfg.ClampPresetIndex(i)
	g.startRun()
}

// HandleAction applies one discrete input action to the state machine.
// Held movement directions do not come through here; they arrive as the
// DirectionSet passed to Step.
func (g *Game) HandleAction(a core.Action) {
	if fn, ok := transitions[transKey{g.screen, a}]; ok {
		fn(g)
	}
}
