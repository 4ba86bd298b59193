// Package layouts loads predefined fleet placements from YAML files.
// This package depends on core but core does not depend on layouts.
package layouts

import (
	"fmt"

	"github.com/vovakirdan/tui-battleship/internal/games/battleship/core"
)

// Placement is one ship's position in a layout.
type Placement struct {
	Ship   core.ShipName
	Start  core.Coord
	Orient core.Orientation
}

// Layout is a complete fleet placement.
type Layout struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Ships    []Placement
	FilePath string // Empty for built-in layouts
}

// Fleet returns the ship names in the layout, in file order.
func (l *Layout) Fleet() []core.ShipName {
	out := make([]core.ShipName, len(l.Ships))
	for i, s := range l.Ships {
		out[i] = s.Ship
	}
	return out
}

// Validate checks that every ship fits and nothing overlaps.
func (l *Layout) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("layout %s: invalid size %dx%d", l.ID, l.Width, l.Height)
	}
	if len(l.Ships) == 0 {
		return fmt.Errorf("layout %s: no ships", l.ID)
	}
	g := core.NewGrid(l.Width, l.Height)
	for _, s := range l.Ships {
		if err := g.PlaceShip(s.Ship, s.Start, s.Orient); err != nil {
			return fmt.Errorf("layout %s: %w", l.ID, err)
		}
	}
	return nil
}

// NewPlayer creates a player whose fleet is exactly the layout's ships,
// already deployed.
func (l *Layout) NewPlayer(id core.PlayerID) (*core.Player, error) {
	p := core.NewPlayer(id, l.Width, l.Height, l.Fleet())
	if err := l.Apply(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Apply deploys the layout's ships onto p. The player's grid must have the
// layout's size and its fleet must contain every ship in the layout; ships
// of p's fleet that the layout does not mention stay undeployed.
func (l *Layout) Apply(p *core.Player) error {
	g := p.Grid()
	if g.Width() != l.Width || g.Height() != l.Height {
		return fmt.Errorf("layout %s is %dx%d, grid is %dx%d", l.ID, l.Width, l.Height, g.Width(), g.Height())
	}
	for _, s := range l.Ships {
		if g.Ship(s.Ship) != nil {
			p.Undeploy(s.Ship)
		}
		if err := p.Deploy(s.Ship, s.Start, s.Orient); err != nil {
			return fmt.Errorf("layout %s: %w", l.ID, err)
		}
	}
	return nil
}
