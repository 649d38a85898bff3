package pacman

import "github.com/vovakirdan/tui-pacman/internal/games/pacman/levels"

// Pickup is the outcome of consuming a collectible tile.
type Pickup int

const (
	PickupNone Pickup = iota
	PickupDot
	PickupPellet
)

// Collectibles tracks per-tile collectible presence and consumption.
// It is the only writer of its consumed flags and remaining count;
// eating all of them is the win condition.
type Collectibles struct {
	kinds     map[Tile]Pickup
	eaten     map[Tile]bool
	remaining int
}

// NewCollectibles builds the registry from a maze's layout.
func NewCollectibles(m *Maze) *Collectibles {
	c := &Collectibles{
		kinds: make(map[Tile]Pickup),
		eaten: make(map[Tile]bool),
	}
	for r := 0; r < m.Height(); r++ {
		for col := 0; col < m.Width(); col++ {
			t := Tile{Col: col, Row: r}
			switch m.CellAt(t) {
			case levels.CellDot:
				c.kinds[t] = PickupDot
			case levels.CellPellet:
				c.kinds[t] = PickupPellet
			}
		}
	}
	c.remaining = len(c.kinds)
	return c
}

// At returns the live (unconsumed) collectible at a tile, if any.
func (c *Collectibles) At(t Tile) (Pickup, bool) {
	kind, ok := c.kinds[t]
	if !ok || c.eaten[t] {
		return PickupNone, false
	}
	return kind, true
}

// Consume marks the collectible at t as eaten and returns its kind.
// Returns PickupNone if the tile holds nothing or was already consumed;
// double consumption is silently a no-op.
func (c *Collectibles) Consume(t Tile) Pickup {
	kind, ok := c.kinds[t]
	if !ok || c.eaten[t] {
		return PickupNone
	}
	c.eaten[t] = true
	c.remaining--
	return kind
}

// Remaining returns the number of unconsumed collectibles.
func (c *Collectibles) Remaining() int {
	return c.remaining
}

// AllCollected reports whether every collectible has been consumed.
func (c *Collectibles) AllCollected() bool {
	return c.remaining == 0
}

// Reset restores every collectible to its unconsumed state.
func (c *Collectibles) Reset() {
	for t := range c.eaten {
		delete(c.eaten, t)
	}
	c.remaining = len(c.kinds)
}
