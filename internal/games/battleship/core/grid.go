package core

// Grid is a player's own board: a fixed W×H matrix of cells plus the ships
// placed on it. Cells are stored in row-major order: index = row*W + col.
type Grid struct {
	w, h  int
	cells []Cell
	ships map[ShipName]*Ship
	order []ShipName // Placement order, for deterministic iteration
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return &Grid{
		w:     w,
		h:     h,
		cells: make([]Cell, w*h),
		ships: make(map[ShipName]*Ship),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.w
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.h
}

func (g *Grid) index(c Coord) int {
	return c.Row*g.w + c.Col
}

// InBounds returns true if the coordinate lies on the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.h && c.Col >= 0 && c.Col < g.w
}

// Cell returns the cell at c. Out-of-bounds coordinates read as empty.
func (g *Grid) Cell(c Coord) Cell {
	if !g.InBounds(c) {
		return Cell{}
	}
	return g.cells[g.index(c)]
}

// CellState returns the state of the cell at (row, col).
func (g *Grid) CellState(row, col int) CellState {
	return g.Cell(At(row, col)).State
}

// PlaceShip validates and records a ship placement.
// On failure the grid is unchanged and the error is a *PlacementError.
func (g *Grid) PlaceShip(name ShipName, start Coord, orient Orientation) error {
	fail := func(err error) error {
		return &PlacementError{Ship: name, Start: start, Orient: orient, Err: err}
	}

	if !name.Valid() {
		return fail(ErrUnknownShip)
	}
	if _, placed := g.ships[name]; placed {
		return fail(ErrAlreadyPlaced)
	}

	ship := newShip(name, start, orient)
	for _, c := range ship.coords {
		if !g.InBounds(c) {
			return fail(ErrOutOfBounds)
		}
	}
	for _, c := range ship.coords {
		if g.cells[g.index(c)].State != CellEmpty {
			return fail(ErrOverlap)
		}
	}

	for _, c := range ship.coords {
		g.cells[g.index(c)] = Cell{State: CellShip, Ship: name}
	}
	g.ships[name] = ship
	g.order = append(g.order, name)
	return nil
}

// RemoveShip lifts an undamaged ship off the grid so it can be re-placed.
// Returns false if the ship is not placed or has been hit.
func (g *Grid) RemoveShip(name ShipName) bool {
	ship, ok := g.ships[name]
	if !ok || ship.hits > 0 {
		return false
	}
	for _, c := range ship.coords {
		g.cells[g.index(c)] = Cell{}
	}
	delete(g.ships, name)
	for i, n := range g.order {
		if n == name {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	return true
}

// Ship returns the placed ship with the given name, or nil.
func (g *Grid) Ship(name ShipName) *Ship {
	return g.ships[name]
}

// Ships returns the placed ships in placement order.
func (g *Grid) Ships() []*Ship {
	out := make([]*Ship, 0, len(g.order))
	for _, n := range g.order {
		out = append(out, g.ships[n])
	}
	return out
}

// CanPlace reports whether PlaceShip would succeed, without mutating the grid.
func (g *Grid) CanPlace(name ShipName, start Coord, orient Orientation) bool {
	if !name.Valid() {
		return false
	}
	if _, placed := g.ships[name]; placed {
		return false
	}
	dr, dc := orient.delta()
	for i := 0; i < name.Length(); i++ {
		c := start.Add(dr*i, dc*i)
		if !g.InBounds(c) || g.cells[g.index(c)].State != CellEmpty {
			return false
		}
	}
	return true
}

// strike applies an attack to an in-bounds, not-yet-attacked cell and returns
// the ship that was hit, if any.
func (g *Grid) strike(c Coord) *Ship {
	i := g.index(c)
	cell := g.cells[i]
	if cell.State == CellEmpty {
		g.cells[i].State = CellMiss
		return nil
	}
	g.cells[i].State = CellHit
	ship := g.ships[cell.Ship]
	ship.hit()
	return ship
}
