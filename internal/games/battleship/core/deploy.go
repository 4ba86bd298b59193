package core

import "sort"

// maxPlacementSteps bounds the placements tried by one fleet search.
const maxPlacementSteps = 20_000

type placement struct {
	start  Coord
	orient Orientation
}

// placements lists every position where name can go on g right now.
func (g *Grid) placements(name ShipName) []placement {
	var out []placement
	for _, orient := range []Orientation{Horizontal, Vertical} {
		for row := 0; row < g.h; row++ {
			for col := 0; col < g.w; col++ {
				if g.CanPlace(name, At(row, col), orient) {
					out = append(out, placement{At(row, col), orient})
				}
			}
		}
	}
	return out
}

// longestFirst returns a copy of ships ordered by decreasing length.
func longestFirst(ships []ShipName) []ShipName {
	out := make([]ShipName, len(ships))
	copy(out, ships)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Length() > out[j].Length() })
	return out
}

// fill places ships on g by depth-first search, backtracking when a ship has
// nowhere to go. shuffle, when set, orders each ship's candidates. On failure
// g is left as it was.
func fill(g *Grid, ships []ShipName, shuffle func([]placement), budget *int) bool {
	if len(ships) == 0 {
		return true
	}
	name := ships[0]
	candidates := g.placements(name)
	if shuffle != nil {
		shuffle(candidates)
	}
	for _, c := range candidates {
		if *budget <= 0 {
			return false
		}
		*budget--
		if g.PlaceShip(name, c.start, c.orient) != nil {
			continue
		}
		if fill(g, ships[1:], shuffle, budget) {
			return true
		}
		g.RemoveShip(name)
	}
	return false
}

// FleetFits reports whether every ship of fleet can be placed together on an
// empty width x height grid.
func FleetFits(width, height int, fleet []ShipName) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	budget := maxPlacementSteps
	return fill(NewGrid(width, height), longestFirst(fleet), nil, &budget)
}
