package core

// Ship is one deployed vessel and its damage.
type Ship struct {
	name   ShipName
	orient Orientation
	coords []Coord
	hits   int
}

func newShip(name ShipName, start Coord, orient Orientation) *Ship {
	dr, dc := orient.delta()
	coords := make([]Coord, name.Length())
	for i := range coords {
		coords[i] = start.Add(dr*i, dc*i)
	}
	return &Ship{
		name:   name,
		orient: orient,
		coords: coords,
	}
}

// Name returns the vessel type.
func (s *Ship) Name() ShipName {
	return s.name
}

// Length returns the number of cells the ship covers.
func (s *Ship) Length() int {
	return len(s.coords)
}

// Orientation returns how the ship was placed.
func (s *Ship) Orientation() Orientation {
	return s.orient
}

// Coords returns a copy of the occupied cells, start cell first.
func (s *Ship) Coords() []Coord {
	out := make([]Coord, len(s.coords))
	copy(out, s.coords)
	return out
}

// Hits returns the number of cells hit so far.
func (s *Ship) Hits() int {
	return s.hits
}

// IsDestroyed reports whether every cell has been hit.
func (s *Ship) IsDestroyed() bool {
	return s.hits == len(s.coords)
}

// hit records one hit. Hits never exceed the ship's length.
func (s *Ship) hit() {
	if s.hits < len(s.coords) {
		s.hits++
	}
}
