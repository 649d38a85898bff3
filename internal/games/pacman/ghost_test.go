package pacman

import "testing"

func openRoomMaze(t *testing.T) *Maze {
	t.Helper()
	return buildMaze(t, []string{
		"#######",
		"#P....#",
		"#.....#",
		"#..G..#",
		"#.....#",
		"#.....#",
		"#######",
	})
}

func TestNextDirectionChasesTarget(t *testing.T) {
	m := openRoomMaze(t)

	// Target above: Up wins strictly.
	got := NextDirection(m, Tile{Col: 3, Row: 3}, DirNone, Tile{Col: 3, Row: 1}, false)
	if got != DirUp {
		t.Errorf("target above: got %v, want DirUp", got)
	}

	got = NextDirection(m, Tile{Col: 3, Row: 3}, DirNone, Tile{Col: 5, Row: 3}, false)
	if got != DirRight {
		t.Errorf("target right: got %v, want DirRight", got)
	}
}

func TestNextDirectionExcludesReverse(t *testing.T) {
	m := openRoomMaze(t)

	// Moving right with the target directly behind: reverse is excluded,
	// so the ghost picks the best remaining option instead of Left.
	got := NextDirection(m, Tile{Col: 3, Row: 3}, DirRight, Tile{Col: 1, Row: 3}, false)
	if got == DirLeft {
		t.Error("reverse direction must be excluded while other options exist")
	}
}

func TestNextDirectionTieBreak(t *testing.T) {
	m := openRoomMaze(t)

	// Target on the ghost's own tile: all four neighbors are equidistant.
	// The fixed order makes Up the winner.
	got := NextDirection(m, Tile{Col: 3, Row: 3}, DirNone, Tile{Col: 3, Row: 3}, false)
	if got != DirUp {
		t.Errorf("four-way tie: got %v, want DirUp", got)
	}

	// With Up excluded as the reverse of Down, Left wins the tie.
	got = NextDirection(m, Tile{Col: 3, Row: 3}, DirDown, Tile{Col: 3, Row: 3}, false)
	if got != DirLeft {
		t.Errorf("three-way tie: got %v, want DirLeft", got)
	}
}

func TestNextDirectionFlee(t *testing.T) {
	m := openRoomMaze(t)

	// Fleeing maximizes distance: target above pushes the ghost down.
	got := NextDirection(m, Tile{Col: 3, Row: 3}, DirNone, Tile{Col: 3, Row: 1}, true)
	if got != DirDown {
		t.Errorf("flee from target above: got %v, want DirDown", got)
	}
}

func TestNextDirectionDeadEnd(t *testing.T) {
	m := buildMaze(t, []string{
		"#####",
		"#P.G#",
		"#####",
	})

	// At the dead end (3,1) while moving right, reversing is forced.
	got := NextDirection(m, Tile{Col: 3, Row: 1}, DirRight, Tile{Col: 1, Row: 1}, false)
	if got != DirLeft {
		t.Errorf("dead end: got %v, want forced reverse DirLeft", got)
	}
}

func TestSetVulnerableReversesDirection(t *testing.T) {
	m := openRoomMaze(t)
	gh := &Ghost{Spawn: Tile{Col: 3, Row: 3}}
	gh.resetToSpawn(m)
	gh.Mode = ModeChase
	gh.Dir = DirRight

	gh.setVulnerable(10)

	if gh.Mode != ModeVulnerable {
		t.Errorf("Mode: got %v, want ModeVulnerable", gh.Mode)
	}
	if gh.FrightTimer != 10 {
		t.Errorf("FrightTimer: got %v, want 10", gh.FrightTimer)
	}
	if gh.Dir != DirLeft {
		t.Errorf("Dir: got %v, want reversed DirLeft", gh.Dir)
	}

	// A second pellet refreshes the timer and reverses again.
	gh.FrightTimer = 3
	gh.setVulnerable(10)
	if gh.FrightTimer != 10 {
		t.Errorf("refresh FrightTimer: got %v, want 10", gh.FrightTimer)
	}
	if gh.Dir != DirRight {
		t.Errorf("refresh Dir: got %v, want DirRight", gh.Dir)
	}
}

func TestSetVulnerableIgnoresEaten(t *testing.T) {
	m := openRoomMaze(t)
	gh := &Ghost{Spawn: Tile{Col: 3, Row: 3}}
	gh.resetToSpawn(m)
	gh.Mode = ModeEaten

	gh.setVulnerable(10)

	if gh.Mode != ModeEaten {
		t.Errorf("eaten ghost must stay eaten, got %v", gh.Mode)
	}
	if gh.FrightTimer != 0 {
		t.Errorf("eaten ghost must not gain a fright timer, got %v", gh.FrightTimer)
	}
}
