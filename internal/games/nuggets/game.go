// Package nuggets adapts the Nugget Hunt core to the terminal platform:
// it owns the random source, turns input frames into moves, keeps the
// run bookkeeping and draws the board into a screen buffer.
package nuggets

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/nugget-hunt/internal/config"
	"github.com/vovakirdan/nugget-hunt/internal/core"
	nc "github.com/vovakirdan/nugget-hunt/internal/games/nuggets/core"
)

// ID is the game identifier used in logs and screenshots.
const ID = "nuggets"

// Game is one Nugget Hunt session at a fixed difficulty.
type Game struct {
	cfg     config.NuggetsConfig
	preset  config.DifficultyPreset
	hazards int
	logger  *log.Logger

	runtime core.RuntimeConfig
	rng     *rand.Rand
	seed    int64
	state   *nc.State
	layout  layout

	// Per-map bookkeeping for the run history.
	runID uuid.UUID
	ticks uint64
	moves int
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. Games log nothing by default.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a game for the given preset. The configuration must already
// be validated.
func New(cfg config.NuggetsConfig, preset config.DifficultyPreset, opts ...Option) (*Game, error) {
	hazards, err := cfg.HazardsFor(preset)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg,
		preset:  preset,
		hazards: hazards,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Nugget Hunt" }

// Difficulty returns the preset this session plays.
func (g *Game) Difficulty() config.DifficultyPreset { return g.preset }

// Reset seeds the random source and generates the first map.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.seed = cfg.Seed
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(g.seed))
	g.state = nc.NewGame(g.cfg.Params(), g.hazards, g.rng)
	g.layout = computeLayout(g.state.Grid(), cfg.ScreenW, cfg.ScreenH)
	g.startRun()
}

// Resize adapts the layout to a new terminal size without touching the map.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	if g.state != nil {
		g.layout = computeLayout(g.state.Grid(), width, height)
	}
}

func (g *Game) startRun() {
	g.runID = uuid.New()
	g.ticks = 0
	g.moves = 0

	placed := g.state.Hazards().Len()
	g.logger.Info("map generated",
		"run", g.runID,
		"difficulty", g.preset,
		"hazards_requested", g.hazards,
		"hazards_placed", placed,
		"items", g.state.Items(),
	)
	if placed < g.hazards {
		g.logger.Warn("fewer hazards than requested", "run", g.runID, "requested", g.hazards, "placed", placed)
	}
}

// Step applies at most one move or confirm from the frame, then advances
// the timers by one tick. Nothing happens while the window is too small.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.layout.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions() {
		if a == core.ActionConfirm {
			if g.state.Confirm() {
				g.logger.Info("new map requested", "previous_run", g.runID)
				g.startRun()
				return core.StepResult{State: g.State()}
			}
			continue
		}
		if d, ok := actionDir(a); ok {
			g.move(d)
			break
		}
	}

	g.state.Tick()
	if !g.state.Won() {
		g.ticks++
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) move(d nc.Dir) {
	outcome := g.state.Move(d)
	switch outcome {
	case nc.MoveIgnored, nc.MoveBlocked:
		g.logger.Debug("move", "dir", d, "outcome", outcome)
		return
	}

	g.moves++
	switch outcome {
	case nc.MoveHazard:
		g.logger.Info("fell into a pit", "run", g.runID, "pitfalls", g.state.Deaths())
	case nc.MoveItem:
		g.logger.Info("piece found", "run", g.runID, "collected", g.state.Collected().Len(), "total", len(g.state.Items()))
	case nc.MoveWon:
		g.logger.Info("run won",
			"run", g.runID,
			"difficulty", g.preset,
			"pitfalls", g.state.Deaths(),
			"moves", g.moves,
			"duration", g.runtime.TickDuration(g.ticks),
		)
	default:
		g.logger.Debug("move", "dir", d, "to", g.state.Player())
	}
}

func actionDir(a core.Action) (nc.Dir, bool) {
	switch a {
	case core.ActionUp:
		return nc.DirUp, true
	case core.ActionDown:
		return nc.DirDown, true
	case core.ActionLeft:
		return nc.DirLeft, true
	case core.ActionRight:
		return nc.DirRight, true
	}
	return 0, false
}

// State returns the platform view of the game.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Phase:     string(g.state.Phase().Kind()),
		Pitfalls:  g.state.Deaths(),
		Collected: g.state.Collected().Len(),
		Total:     len(g.state.Items()),
		Won:       g.state.Won(),
	}
}

// RunID returns the identifier of the current map.
func (g *Game) RunID() string { return g.runID.String() }

// RunResult summarises the current map for the run history.
func (g *Game) RunResult() core.RunResult {
	return core.RunResult{
		RunID:            g.runID.String(),
		Difficulty:       string(g.preset),
		HazardsRequested: g.hazards,
		HazardsPlaced:    g.state.Hazards().Len(),
		Pitfalls:         g.state.Deaths(),
		Moves:            g.moves,
		Duration:         g.runtime.TickDuration(g.ticks),
		Seed:             g.seed,
	}
}
