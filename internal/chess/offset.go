package chess

// Direction is one of the eight lines of sight from a square.
// Up is towards rank 8, Right towards file h.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	UpLeft
	UpRight
	DownLeft
	DownRight
)

// CardinalDirections are the pure horizontal and vertical directions.
var CardinalDirections = []Direction{Up, Down, Left, Right}

// DiagonalDirections combine a horizontal and a vertical step.
var DiagonalDirections = []Direction{UpLeft, UpRight, DownLeft, DownRight}

var directionSteps = [...]Offset{
	Up:        {Col: 0, Row: 1},
	Down:      {Col: 0, Row: -1},
	Left:      {Col: -1, Row: 0},
	Right:     {Col: 1, Row: 0},
	UpLeft:    {Col: -1, Row: 1},
	UpRight:   {Col: 1, Row: 1},
	DownLeft:  {Col: -1, Row: -1},
	DownRight: {Col: 1, Row: -1},
}

// Step returns the unit offset of the direction.
func (d Direction) Step() Offset {
	return directionSteps[d]
}

// IsDiagonal reports whether d belongs to the diagonal family.
func (d Direction) IsDiagonal() bool {
	return d >= UpLeft
}

// String returns the direction name.
func (d Direction) String() string {
	names := []string{"Up", "Down", "Left", "Right", "UpLeft", "UpRight", "DownLeft", "DownRight"}
	if int(d) >= 0 && int(d) < len(names) {
		return names[d]
	}
	return "Unknown"
}

// OffsetGenerator lazily yields offsets from an origin along one direction,
// nearest first, stopping at the board edge.
type OffsetGenerator struct {
	origin   Square
	step     Offset
	distance int
}

// NewOffsetGenerator creates a generator for the direction from origin.
func NewOffsetGenerator(origin Square, dir Direction) *OffsetGenerator {
	return &OffsetGenerator{origin: origin, step: dir.Step()}
}

// Next returns the next offset, or false once the edge is reached.
func (g *OffsetGenerator) Next() (Offset, bool) {
	next := g.step.Scale(g.distance + 1)
	if _, err := g.origin.Add(next); err != nil {
		return Offset{}, false
	}
	g.distance++
	return next, true
}

// Reset restarts the sequence from the nearest square.
func (g *OffsetGenerator) Reset() {
	g.distance = 0
}

// Offsets collects the full sequence for origin and dir. Each call computes
// a fresh sequence; it never has more than BoardSize-1 entries.
func Offsets(origin Square, dir Direction) []Offset {
	g := NewOffsetGenerator(origin, dir)
	offsets := make([]Offset, 0, BoardSize-1)
	for {
		o, ok := g.Next()
		if !ok {
			return offsets
		}
		offsets = append(offsets, o)
	}
}
