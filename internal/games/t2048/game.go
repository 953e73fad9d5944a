package t2048

import (
	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Game adapts a Session to the frontend tick loop.
type Game struct {
	variant Variant
	session *Session
	tick    uint64

	// Last accepted move, for the HUD
	lastPoints int

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back to the config value.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficultyPreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// NewVariant creates a game for the given variant.
func NewVariant(v Variant) *Game {
	return &Game{variant: v}
}

// New creates the classic 4x4 game.
func New() *Game {
	return NewVariant(Variants[0])
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return NewVariant(v)
		})
	}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// LoadOptions reads config and the difficulty preset into session options.
// Config errors fall back to the built-in defaults; ResolveOptions reports them.
func LoadOptions() Options {
	opts, _ := ResolveOptions()
	return opts
}

// ResolveOptions is LoadOptions that also returns the config error, if any.
// The returned options are always usable.
func ResolveOptions() (Options, error) {
	cfg, err := config.LoadT2048(configPath)
	if err != nil {
		cfg = config.DefaultT2048Config()
	}
	if difficultyPreset != "" {
		config.ApplyT2048Preset(&cfg, difficultyPreset)
	}

	return Options{
		Size:           cfg.Board.Size,
		WinValue:       cfg.Rules.WinValue,
		TwoProbability: cfg.Rules.TwoProbability,
		StartTiles:     cfg.Board.StartTiles,
	}, err
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	opts := g.variant.Options(LoadOptions())
	opts.Seed = cfg.Seed

	s, err := NewSession(opts)
	if err != nil {
		// Variant overrides can only shrink StartTiles, so defaults always validate.
		opts = g.variant.Options(DefaultOptions())
		opts.Seed = cfg.Seed
		s, _ = NewSession(opts)
	}

	g.session = s
	g.tick = 0
	g.lastPoints = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.checkScreenSize()
}

// SetScreenSize adapts to a terminal resize without restarting the game.
func (g *Game) SetScreenSize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen fits the board, HUD and footer.
func (g *Game) checkScreenSize() {
	w, h := g.boardDims()
	g.tooSmall = g.screenW < w+4 || g.screenH < h+hudHeight+2
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.checkScreenSize()

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.session.Over() {
		g.paused = !g.paused
	}
	if g.paused || g.session.Over() {
		// Restart after game over is handled by the platform
		return core.StepResult{State: g.State()}
	}

	if dir, ok := directionFor(in); ok {
		// Direction is always valid and the session is live, so Move cannot fail.
		out, _ := g.session.Move(dir)
		if out.Moved {
			g.lastPoints = out.Points
		}
	}

	return core.StepResult{State: g.State()}
}

// directionFor picks at most one move per tick.
func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.Over(),
		Paused:   g.paused || g.tooSmall,
	}
}

// MaxTile returns the best tile on the board, stored alongside the score.
func (g *Game) MaxTile() int {
	if g.session == nil {
		return 0
	}
	return MaxTile(g.session.board)
}
