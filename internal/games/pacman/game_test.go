package pacman

import (
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
)

// scenarioRows is a small layout for direct state-machine tests. The
// pellet sits at (4,1), the ghost spawn at (4,3).
var scenarioRows = []string{
	"#########",
	"#P..o...#",
	"#.#####.#",
	"#...G...#",
	"#########",
}

// newScenarioGame builds a playing game on a custom layout with default
// rules, bypassing the ready countdown.
func newScenarioGame(t *testing.T, rows []string) *Game {
	t.Helper()
	m := buildMaze(t, rows)
	rules := config.DefaultPacmanConfig()

	g := New()
	g.rules = rules
	g.rt = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	g.dt = 1.0 / 60.0
	g.maze = m
	g.col = NewCollectibles(m)
	g.player = newPlayer(m, rules.Speeds.Player)
	g.ghosts = g.spawnGhosts()
	g.lives = rules.Gameplay.Lives
	g.phase = ModeScatter
	g.state = StatePlaying
	return g
}

// consumeAllExcept eats every collectible except the one at keep.
func consumeAllExcept(g *Game, keep Tile) {
	for tile := range g.col.kinds {
		if tile != keep {
			g.col.Consume(tile)
		}
	}
}

// parkGhosts moves every ghost to a tile and stops it there.
func parkGhosts(g *Game, t Tile) {
	for _, gh := range g.ghosts {
		gh.PlaceAt(g.maze, t)
	}
}

func hasEvent(events []core.Event, want core.Event) bool {
	for _, e := range events {
		if e == want {
			return true
		}
	}
	return false
}

func emptyInput() core.InputFrame {
	return core.NewInputFrame()
}

func TestDeterminism(t *testing.T) {
	// Two games stepped with the same input script must stay in
	// lockstep on the embedded classic maze.
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60}

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	if g1.loadErr != nil {
		t.Fatalf("load failed: %v", g1.loadErr)
	}

	input := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		input.Clear()
		switch i {
		case 130:
			input.Set(core.ActionRight)
		case 200:
			input.Set(core.ActionDown)
		case 320:
			input.Set(core.ActionLeft)
		case 450:
			input.Set(core.ActionUp)
		}
		g1.Step(input)
		g2.Step(input)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestReadyCountdown(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60})
	if g.loadErr != nil {
		t.Fatalf("load failed: %v", g.loadErr)
	}

	if g.SessionStateNow() != StateStarting {
		t.Fatalf("state after Reset: got %v, want StateStarting", g.SessionStateNow())
	}

	ticks := int(g.rules.Timers.Ready*60) + 1
	for i := 0; i < ticks; i++ {
		g.Step(emptyInput())
	}
	if g.SessionStateNow() != StatePlaying {
		t.Errorf("state after countdown: got %v, want StatePlaying", g.SessionStateNow())
	}
}

func TestPelletMakesGhostsVulnerableAndEdible(t *testing.T) {
	g := newScenarioGame(t, scenarioRows)
	g.ghosts = g.ghosts[:1]
	gh := g.ghosts[0]
	gh.Mode = ModeChase

	// Step 1: player sits on the pellet tile.
	g.player.PlaceAt(g.maze, Tile{Col: 4, Row: 1})
	res := g.Step(emptyInput())

	if g.score != g.rules.Gameplay.PelletPoints {
		t.Errorf("score after pellet: got %d, want %d", g.score, g.rules.Gameplay.PelletPoints)
	}
	if gh.Mode != ModeVulnerable {
		t.Errorf("ghost mode after pellet: got %v, want ModeVulnerable", gh.Mode)
	}
	if !hasEvent(res.Events, core.EventPelletEaten) {
		t.Error("expected EventPelletEaten")
	}

	// Step 2: contact with the vulnerable ghost eats it.
	gh.Pos = g.player.Pos
	res = g.Step(emptyInput())

	want := g.rules.Gameplay.PelletPoints + g.rules.Gameplay.GhostPoints
	if g.score != want {
		t.Errorf("score after eating ghost: got %d, want %d", g.score, want)
	}
	if gh.Mode != ModeEaten {
		t.Errorf("ghost mode after being eaten: got %v, want ModeEaten", gh.Mode)
	}
	if !hasEvent(res.Events, core.EventGhostEaten) {
		t.Error("expected EventGhostEaten")
	}
	if g.lives != g.rules.Gameplay.Lives {
		t.Errorf("eaten ghost must not cost a life, lives=%d", g.lives)
	}
}

func TestDeathTakesPrecedenceOverVictory(t *testing.T) {
	g := newScenarioGame(t, scenarioRows)
	g.ghosts = g.ghosts[:1]
	gh := g.ghosts[0]
	gh.Mode = ModeChase

	// Last collectible under the player, hunting ghost on the same tile.
	last := Tile{Col: 2, Row: 1}
	consumeAllExcept(g, last)
	g.player.PlaceAt(g.maze, last)
	gh.Pos = g.player.Pos

	res := g.Step(emptyInput())

	if !hasEvent(res.Events, core.EventDotEaten) {
		t.Error("the final dot is still scored")
	}
	if !hasEvent(res.Events, core.EventPlayerCaught) {
		t.Error("expected EventPlayerCaught")
	}
	if hasEvent(res.Events, core.EventVictory) {
		t.Error("victory must not fire on the tick the player is caught")
	}
	if g.SessionStateNow() != StatePlayerDeath {
		t.Errorf("state: got %v, want StatePlayerDeath", g.SessionStateNow())
	}
	if g.lives != g.rules.Gameplay.Lives-1 {
		t.Errorf("lives: got %d, want %d", g.lives, g.rules.Gameplay.Lives-1)
	}
	if !g.col.AllCollected() {
		t.Error("final dot should have been consumed")
	}
}

func TestPauseFreezesVulnerabilityTimer(t *testing.T) {
	g := newScenarioGame(t, scenarioRows)
	parkGhosts(g, Tile{Col: 7, Row: 3})
	gh := g.ghosts[0]
	gh.setVulnerable(5)

	g.Step(emptyInput())
	if gh.FrightTimer >= 5 {
		t.Fatalf("fright timer should tick down while playing, got %v", gh.FrightTimer)
	}
	frozen := gh.FrightTimer

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if g.SessionStateNow() != StatePaused {
		t.Fatalf("state: got %v, want StatePaused", g.SessionStateNow())
	}

	for i := 0; i < 120; i++ {
		g.Step(emptyInput())
	}
	if gh.FrightTimer != frozen {
		t.Errorf("fright timer moved while paused: %v -> %v", frozen, gh.FrightTimer)
	}

	pause.Clear()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if g.SessionStateNow() != StatePlaying {
		t.Fatalf("state after unpause: got %v, want StatePlaying", g.SessionStateNow())
	}
	if gh.FrightTimer >= frozen {
		t.Errorf("fright timer should resume after unpause, got %v", gh.FrightTimer)
	}
}

func TestRespawnInvincibility(t *testing.T) {
	g := newScenarioGame(t, scenarioRows)
	g.ghosts = g.ghosts[:1]
	gh := g.ghosts[0]
	gh.Mode = ModeChase
	gh.Pos = g.player.Pos

	g.Step(emptyInput())
	if g.SessionStateNow() != StatePlayerDeath {
		t.Fatalf("state: got %v, want StatePlayerDeath", g.SessionStateNow())
	}

	// Wait out the respawn pause.
	ticks := int(g.rules.Timers.Respawn*60) + 1
	for i := 0; i < ticks; i++ {
		g.Step(emptyInput())
	}
	if g.SessionStateNow() != StatePlaying {
		t.Fatalf("state after respawn: got %v, want StatePlaying", g.SessionStateNow())
	}
	if g.player.Invincible <= 0 {
		t.Fatal("player should respawn invincible")
	}
	if g.player.Tile() != g.player.Spawn {
		t.Errorf("player should respawn at spawn tile, got %+v", g.player.Tile())
	}

	// A hunting ghost touching the invincible player costs nothing.
	livesBefore := g.lives
	gh.Mode = ModeChase
	gh.Pos = g.player.Pos
	res := g.Step(emptyInput())

	if g.lives != livesBefore {
		t.Errorf("invincible contact lost a life: %d -> %d", livesBefore, g.lives)
	}
	if g.SessionStateNow() != StatePlaying {
		t.Errorf("state: got %v, want StatePlaying", g.SessionStateNow())
	}
	if hasEvent(res.Events, core.EventPlayerCaught) {
		t.Error("no catch event while invincible")
	}

	// A vulnerable ghost is still eaten during the window.
	gh.Mode = ModeVulnerable
	gh.FrightTimer = 5
	gh.Pos = g.player.Pos
	res = g.Step(emptyInput())

	if !hasEvent(res.Events, core.EventGhostEaten) {
		t.Error("vulnerable ghost should be eaten even while invincible")
	}
}

func TestVictory(t *testing.T) {
	g := newScenarioGame(t, scenarioRows)
	parkGhosts(g, Tile{Col: 7, Row: 3})

	last := Tile{Col: 2, Row: 1}
	consumeAllExcept(g, last)
	g.player.PlaceAt(g.maze, last)

	res := g.Step(emptyInput())

	if g.SessionStateNow() != StateVictory {
		t.Fatalf("state: got %v, want StateVictory", g.SessionStateNow())
	}
	if !hasEvent(res.Events, core.EventVictory) {
		t.Error("expected EventVictory")
	}
	if !g.State().GameOver {
		t.Error("GameState.GameOver should be set on victory")
	}

	// The terminal state is frozen.
	score := g.score
	g.Step(emptyInput())
	if g.score != score || g.SessionStateNow() != StateVictory {
		t.Error("victory state must freeze the simulation")
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newScenarioGame(t, scenarioRows)
	g.ghosts = g.ghosts[:1]
	gh := g.ghosts[0]
	gh.Mode = ModeChase
	g.lives = 1
	gh.Pos = g.player.Pos

	res := g.Step(emptyInput())

	if g.SessionStateNow() != StateGameOver {
		t.Fatalf("state: got %v, want StateGameOver", g.SessionStateNow())
	}
	if !hasEvent(res.Events, core.EventPlayerCaught) || !hasEvent(res.Events, core.EventGameOver) {
		t.Errorf("expected caught and game-over events, got %v", res.Events)
	}
	if g.lives != 0 {
		t.Errorf("lives: got %d, want 0", g.lives)
	}

	// Restart rebuilds the session from scratch.
	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.SessionStateNow() != StateStarting {
		t.Errorf("state after restart: got %v, want StateStarting", g.SessionStateNow())
	}
	if g.score != 0 {
		t.Errorf("score after restart: got %d, want 0", g.score)
	}
	if g.lives != g.rules.Gameplay.Lives {
		t.Errorf("lives after restart: got %d, want %d", g.lives, g.rules.Gameplay.Lives)
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := newScenarioGame(t, scenarioRows)
	parkGhosts(g, Tile{Col: 7, Row: 3})
	g.score = 120

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.SessionStateNow() != StatePlaying {
		t.Errorf("state: got %v, want StatePlaying", g.SessionStateNow())
	}
	if g.score != 120 {
		t.Errorf("restart during play must not reset the score, got %d", g.score)
	}
}

func TestScatterChaseSchedule(t *testing.T) {
	g := newScenarioGame(t, scenarioRows)
	scatter := g.ghosts[0]
	scatter.Mode = ModeScatter
	fright := g.ghosts[1]
	fright.Mode = ModeVulnerable
	fright.FrightTimer = 1000

	ticks := int(g.rules.Timers.Scatter*60) + 1
	for i := 0; i < ticks; i++ {
		g.stepSchedule()
	}

	if g.phase != ModeChase {
		t.Fatalf("phase after scatter window: got %v, want ModeChase", g.phase)
	}
	if scatter.Mode != ModeChase {
		t.Errorf("scheduled ghost should flip to chase, got %v", scatter.Mode)
	}
	if fright.Mode != ModeVulnerable {
		t.Errorf("vulnerable ghost must ignore the schedule flip, got %v", fright.Mode)
	}

	ticks = int(g.rules.Timers.Chase*60) + 1
	for i := 0; i < ticks; i++ {
		g.stepSchedule()
	}
	if g.phase != ModeScatter {
		t.Errorf("phase after chase window: got %v, want ModeScatter", g.phase)
	}
}

func TestVulnerabilityExpires(t *testing.T) {
	g := newScenarioGame(t, scenarioRows)
	parkGhosts(g, Tile{Col: 7, Row: 3})
	gh := g.ghosts[0]
	gh.setVulnerable(0.1)

	for i := 0; i < 10; i++ {
		g.Step(emptyInput())
	}
	if gh.Mode != ModeChase {
		t.Errorf("mode after fright expiry: got %v, want ModeChase", gh.Mode)
	}
	if gh.FrightTimer != 0 {
		t.Errorf("fright timer should clamp to zero, got %v", gh.FrightTimer)
	}
}

func TestEatenGhostRevivesAtSpawn(t *testing.T) {
	g := newScenarioGame(t, scenarioRows)
	gh := g.ghosts[0]
	gh.PlaceAt(g.maze, gh.Spawn)
	gh.Mode = ModeEaten

	g.stepGhost(gh)

	if gh.Mode != ModeScatter {
		t.Errorf("eaten ghost at spawn should revive to scatter, got %v", gh.Mode)
	}
}

func TestDotScoring(t *testing.T) {
	g := newScenarioGame(t, scenarioRows)
	parkGhosts(g, Tile{Col: 7, Row: 3})

	g.player.PlaceAt(g.maze, Tile{Col: 2, Row: 1})
	res := g.Step(emptyInput())

	if g.score != g.rules.Gameplay.DotPoints {
		t.Errorf("score: got %d, want %d", g.score, g.rules.Gameplay.DotPoints)
	}
	if !hasEvent(res.Events, core.EventDotEaten) {
		t.Error("expected EventDotEaten")
	}
	if g.State().Score != g.score {
		t.Errorf("GameState score mismatch: %d vs %d", g.State().Score, g.score)
	}
}

func TestRenderSmoke(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60})
	if g.loadErr != nil {
		t.Fatalf("load failed: %v", g.loadErr)
	}

	screen := core.NewScreen(80, 30)
	g.Render(screen)
	if got := screen.Row(0); len(got) == 0 {
		t.Fatal("HUD row is empty")
	}

	// A tiny window shows the resize hint instead of the maze.
	small := core.NewScreen(20, 10)
	g.Render(small)
}
