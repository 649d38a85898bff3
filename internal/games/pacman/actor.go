package pacman

import "math"

// alignEps is the tolerance for tile-center alignment. Actors land
// exactly on centers, so this only needs to absorb float64 noise.
const alignEps = 1e-4

// Actor is anything that moves through the maze: the player or a ghost.
// Movement is continuous in tile units but decisions (turns, stops)
// happen only at tile centers, which is what prevents corner clipping.
type Actor struct {
	Pos   Position
	Dir   Direction // direction currently travelled
	Next  Direction // desired direction, adopted at the next tile center
	Speed float64   // tiles per second
}

// Tile returns the actor's current tile (nearest-tile rounding).
func (a *Actor) Tile() Tile {
	return Tile{
		Col: int(math.Round(a.Pos.X)),
		Row: int(math.Round(a.Pos.Y)),
	}
}

// Aligned reports whether the actor sits within alignEps of the center
// of its current tile.
func (a *Actor) Aligned() bool {
	return math.Abs(a.Pos.X-math.Round(a.Pos.X)) <= alignEps &&
		math.Abs(a.Pos.Y-math.Round(a.Pos.Y)) <= alignEps
}

// PlaceAt snaps the actor to the center of a tile and clears motion.
func (a *Actor) PlaceAt(m *Maze, t Tile) {
	a.Pos = m.TileCenter(t)
	a.Dir = DirNone
	a.Next = DirNone
}

// Advance moves the actor for one tick of dt seconds.
//
// At a tile center the actor first tries to adopt its desired direction
// (ignored while it leads into a wall), then stops dead if the current
// direction is blocked. Either decision snaps the position to the exact
// center so rounding error never accumulates. The actual move lands
// exactly on the next tile center whenever the step would reach it, so
// the next decision point is never skipped.
func (a *Actor) Advance(m *Maze, dt float64) {
	cur := a.Tile()
	if a.Aligned() {
		if a.Next != DirNone && a.Next != a.Dir {
			if _, ok := m.Step(cur, a.Next); ok {
				a.Pos = m.TileCenter(cur)
				a.Dir = a.Next
			}
		}
		if a.Dir != DirNone {
			if _, ok := m.Step(cur, a.Dir); !ok {
				a.Pos = m.TileCenter(cur)
				a.Dir = DirNone
			}
		}
	}
	if a.Dir == DirNone {
		return
	}

	step := a.Speed * dt
	dc, dr := a.Dir.Delta()
	if dc != 0 {
		a.Pos.X = advanceAxis(a.Pos.X, float64(dc), step)
	} else {
		a.Pos.Y = advanceAxis(a.Pos.Y, float64(dr), step)
	}
	a.wrap(m)
}

// advanceAxis moves p by step toward sign, landing exactly on the next
// tile center when the move would reach or cross it.
func advanceAxis(p, sign, step float64) float64 {
	next := math.Round(p)
	if (next-p)*sign <= alignEps {
		next += sign
	}
	if dist := (next - p) * sign; step >= dist-alignEps {
		return next
	}
	return p + sign*step
}

// wrap re-enters the actor on the opposite edge of a horizontal tunnel,
// preserving direction and sub-tile offset. Vertical edges are solid.
func (a *Actor) wrap(m *Maze) {
	w := float64(m.Width())
	if a.Pos.X < -0.5 {
		a.Pos.X += w
	} else if a.Pos.X >= w-0.5 {
		a.Pos.X -= w
	}
}
