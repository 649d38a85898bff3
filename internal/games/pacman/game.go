package pacman

import (
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

// SessionState is the top-level game session state. Only StatePlaying
// ticks the world simulation; every other state freezes it, timers
// included.
type SessionState int

const (
	StateStarting SessionState = iota
	StatePlaying
	StatePaused
	StatePlayerDeath
	StateGameOver
	StateVictory
)

// String returns a human-readable name for the session state.
func (s SessionState) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StatePlayerDeath:
		return "player_death"
	case StateGameOver:
		return "game_over"
	case StateVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// ghostRoles is the fixed set of adversary personalities, in spawn order.
var ghostRoles = [4]Role{RoleAggressive, RoleAmbush, RolePatrol, RoleMixed}

// Game implements the pacman simulation and the registry.Game interface.
// It owns the authoritative score/lives counters; subsystems report
// outcomes to it rather than mutating those directly.
type Game struct {
	rules config.PacmanConfig
	rt    core.RuntimeConfig
	dt    float64 // seconds per tick

	maze   *Maze
	col    *Collectibles
	player *Player
	ghosts []*Ghost

	state SessionState
	score int
	lives int

	// Global scatter/chase schedule shared by all ghosts.
	phase      Mode // ModeScatter or ModeChase
	phaseTimer float64

	startTimer float64
	deathTimer float64

	tick    uint64
	events  []core.Event
	loadErr error
}

// Package-level knobs set by the CLI before the game is created.
var (
	configPath       string
	mazePath         string
	difficultyPreset string
)

// SetConfigPath sets the rule config file path for the next game.
func SetConfigPath(path string) {
	configPath = path
}

// SetMazePath sets a custom maze file path for the next game.
// Empty means the embedded classic maze.
func SetMazePath(path string) {
	mazePath = path
}

// SetDifficultyPreset sets the difficulty preset for the next game.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new pacman game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("pacman", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "pacman"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pacman"
}

// Reset initializes/restarts the game: rules and maze are reloaded,
// counters return to their initial values and the session enters
// StateStarting. A malformed maze is a load-time failure: the session
// never reaches StatePlaying and the error is rendered instead.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	if g.rt.TickRate <= 0 {
		g.rt.TickRate = 60
	}
	g.dt = 1.0 / float64(g.rt.TickRate)
	g.tick = 0
	g.events = nil
	g.loadErr = nil

	rules, err := config.LoadPacman(configPath)
	if err != nil {
		g.loadErr = err
		return
	}
	config.ApplyPacmanPreset(&rules, config.DifficultyPreset(difficultyPreset))
	g.rules = rules

	level, err := g.loadLevel()
	if err != nil {
		g.loadErr = err
		return
	}

	maze, err := NewMaze(level)
	if err != nil {
		g.loadErr = err
		return
	}
	g.maze = maze
	g.col = NewCollectibles(maze)

	g.player = newPlayer(maze, rules.Speeds.Player)
	g.ghosts = g.spawnGhosts()

	g.score = 0
	g.lives = rules.Gameplay.Lives
	g.phase = ModeScatter
	g.phaseTimer = 0
	g.state = StateStarting
	g.startTimer = rules.Timers.Ready
}

func (g *Game) loadLevel() (levels.Level, error) {
	if mazePath == "" {
		return levels.Default(), nil
	}
	loader := levels.NewLoader(".")
	level, err := loader.LoadFile(mazePath)
	if err != nil {
		return levels.Level{}, fmt.Errorf("pacman: %w", err)
	}
	return level, nil
}

// spawnGhosts creates the four adversaries. Spawn tiles come from the
// maze in row-major order; scatter corners follow the classic
// assignment (one ghost per maze corner).
func (g *Game) spawnGhosts() []*Ghost {
	spawns := g.maze.GhostSpawns()
	w, h := g.maze.Width(), g.maze.Height()
	corners := [4]Tile{
		{Col: 1, Row: 1},
		{Col: w - 2, Row: 1},
		{Col: 1, Row: h - 2},
		{Col: w - 2, Row: h - 2},
	}

	ghosts := make([]*Ghost, 0, len(ghostRoles))
	for i, role := range ghostRoles {
		gh := &Ghost{
			Role:   role,
			Spawn:  spawns[i%len(spawns)],
			Corner: corners[i%len(corners)],
		}
		gh.Speed = g.rules.Speeds.Ghost
		gh.resetToSpawn(g.maze)
		ghosts = append(ghosts, gh)
	}
	return ghosts
}

// Step advances the session by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.events = g.events[:0]

	if g.loadErr != nil {
		return g.result()
	}

	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateVictory) {
		g.Reset(g.rt)
		return g.result()
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePlaying:
			g.state = StatePaused
		case StatePaused:
			g.state = StatePlaying
		}
	}

	switch g.state {
	case StateStarting:
		g.startTimer -= g.dt
		if g.startTimer <= 0 {
			g.state = StatePlaying
		}
	case StatePlaying:
		g.stepPlaying(in)
	case StatePlayerDeath:
		g.deathTimer -= g.dt
		if g.deathTimer <= 0 {
			g.respawn()
			g.state = StatePlaying
		}
	case StatePaused, StateGameOver, StateVictory:
		// Frozen: no timers advance.
	}

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{
		State:  g.State(),
		Events: append([]core.Event(nil), g.events...),
	}
}

// stepPlaying runs one world tick: player motion from input, ghost AI
// and motion, then collision resolution and session transitions.
func (g *Game) stepPlaying(in core.InputFrame) {
	g.applyInput(in)

	if g.player.Invincible > 0 {
		g.player.Invincible -= g.dt
		if g.player.Invincible < 0 {
			g.player.Invincible = 0
		}
	}

	g.player.Advance(g.maze, g.dt)
	if g.player.Dir != DirNone {
		g.player.Facing = g.player.Dir
	}

	g.stepSchedule()
	for _, gh := range g.ghosts {
		g.stepGhost(gh)
	}

	outcomes := resolveTick(
		g.col, g.player, g.ghosts,
		g.rules.Gameplay.DotPoints,
		g.rules.Gameplay.PelletPoints,
		g.rules.Gameplay.GhostPoints,
		g.rules.AI.ContactRange,
	)
	g.applyOutcomes(outcomes)
}

// applyInput turns direction intents into the player's desired direction.
// A direction blocked by a wall is not an error; it simply is not adopted
// until walkable.
func (g *Game) applyInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.player.Next = DirUp
	case in.Has(core.ActionDown):
		g.player.Next = DirDown
	case in.Has(core.ActionLeft):
		g.player.Next = DirLeft
	case in.Has(core.ActionRight):
		g.player.Next = DirRight
	}
}

// stepSchedule advances the global scatter/chase alternation. Ghosts in
// Vulnerable or Eaten mode keep their own state and rejoin the schedule
// at the next flip.
func (g *Game) stepSchedule() {
	g.phaseTimer += g.dt

	limit := g.rules.Timers.Scatter
	if g.phase == ModeChase {
		limit = g.rules.Timers.Chase
	}
	if g.phaseTimer < limit {
		return
	}

	g.phaseTimer = 0
	if g.phase == ModeScatter {
		g.phase = ModeChase
	} else {
		g.phase = ModeScatter
	}
	for _, gh := range g.ghosts {
		if gh.Mode == ModeScatter || gh.Mode == ModeChase {
			gh.Mode = g.phase
		}
	}
}

// stepGhost runs one ghost's timers, target selection and motion.
func (g *Game) stepGhost(gh *Ghost) {
	if gh.Mode == ModeVulnerable {
		gh.FrightTimer -= g.dt
		if gh.FrightTimer <= 0 {
			gh.FrightTimer = 0
			gh.Mode = ModeChase
		}
	}

	if gh.Role == RoleMixed && gh.Mode == ModeChase {
		gh.mixTimer += g.dt
		if gh.mixTimer >= g.rules.AI.MixedToggle {
			gh.mixTimer = 0
			gh.mixHunting = !gh.mixHunting
		}
	}

	if gh.Mode == ModeEaten && gh.Aligned() && gh.Tile() == gh.Spawn {
		gh.Mode = ModeScatter
	}

	speed := g.rules.Speeds.Ghost
	switch gh.Mode {
	case ModeVulnerable:
		speed *= g.rules.Speeds.VulnerableFactor
	case ModeEaten:
		speed *= g.rules.Speeds.EatenFactor
	}
	gh.Speed = speed

	target := g.ghostTarget(gh)
	gh.Next = NextDirection(g.maze, gh.Tile(), gh.Dir, target, gh.Mode == ModeVulnerable)
	gh.Advance(g.maze, g.dt)
}

// ghostTarget selects the tile a ghost steers toward, per (role, mode).
func (g *Game) ghostTarget(gh *Ghost) Tile {
	playerTile := g.player.Tile()

	switch gh.Mode {
	case ModeEaten:
		return gh.Spawn
	case ModeVulnerable:
		// Flee: the pathfinder maximizes distance to this target.
		return playerTile
	case ModeScatter:
		return gh.Corner
	}

	switch gh.Role {
	case RoleAggressive:
		return playerTile
	case RoleAmbush:
		// Aim ahead of the player; facing keeps the target projected
		// even while the player sits still at a wall.
		dc, dr := g.player.Facing.Delta()
		off := g.rules.AI.AmbushOffset
		return Tile{Col: playerTile.Col + dc*off, Row: playerTile.Row + dr*off}
	case RolePatrol:
		threshold := g.rules.AI.PatrolDistance
		if distanceSq(gh.Tile(), playerTile) > threshold*threshold {
			return playerTile
		}
		return gh.Corner
	case RoleMixed:
		if gh.mixHunting {
			return playerTile
		}
		return gh.Corner
	}
	return playerTile
}

// applyOutcomes consumes the resolver's event list in order. This is the
// only place score, lives and session state change during play.
func (g *Game) applyOutcomes(outcomes []Outcome) {
	caught := false
	for _, o := range outcomes {
		switch o.Kind {
		case OutcomeDot:
			g.score += o.Points
			g.events = append(g.events, core.EventDotEaten)
		case OutcomePellet:
			g.score += o.Points
			g.events = append(g.events, core.EventPelletEaten)
			for _, gh := range g.ghosts {
				gh.setVulnerable(g.rules.Timers.Vulnerable)
			}
		case OutcomeGhostEaten:
			g.score += o.Points
			gh := g.ghosts[o.Ghost]
			gh.Mode = ModeEaten
			gh.FrightTimer = 0
			g.events = append(g.events, core.EventGhostEaten)
		case OutcomePlayerCaught:
			caught = true
		}
	}

	// Death takes precedence over victory within the same tick.
	if caught {
		g.lives--
		g.events = append(g.events, core.EventPlayerCaught)
		if g.lives <= 0 {
			g.lives = 0
			g.state = StateGameOver
			g.events = append(g.events, core.EventGameOver)
		} else {
			g.state = StatePlayerDeath
			g.deathTimer = g.rules.Timers.Respawn
		}
		return
	}

	if g.col.AllCollected() {
		g.state = StateVictory
		g.events = append(g.events, core.EventVictory)
	}
}

// respawn brings the player back after a death: position and direction
// reset with a fresh invincibility window, ghosts return to their spawns
// and the scatter/chase schedule restarts. Score, lives and eaten
// collectibles persist.
func (g *Game) respawn() {
	g.player.respawn(g.maze, g.rules.Timers.Invincibility)
	for _, gh := range g.ghosts {
		gh.resetToSpawn(g.maze)
	}
	g.phase = ModeScatter
	g.phaseTimer = 0
}

// State returns the platform-facing game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		GameOver: g.state == StateGameOver || g.state == StateVictory || g.loadErr != nil,
		Paused:   g.state == StatePaused,
	}
}

// SessionStateNow returns the current session state. Exposed for the
// platform's HUD and for tests.
func (g *Game) SessionStateNow() SessionState {
	return g.state
}
