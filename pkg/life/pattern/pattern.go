package pattern

// Matrix is a rectangular 0/1 cell block, indexed [row][col].
type Matrix [][]uint8

// Dims returns the matrix width and height.
func (m Matrix) Dims() (w, h int) {
	if len(m) == 0 {
		return 0, 0
	}
	return len(m[0]), len(m)
}

// Clone returns a deep copy of the matrix.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = make([]uint8, len(row))
		copy(out[i], row)
	}
	return out
}

// Population counts the live cells in the matrix.
func (m Matrix) Population() int {
	n := 0
	for _, row := range m {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

// Equal reports whether two matrices hold identical cells.
func (m Matrix) Equal(o Matrix) bool {
	if len(m) != len(o) {
		return false
	}
	for i, row := range m {
		if len(row) != len(o[i]) {
			return false
		}
		for j, v := range row {
			if v != o[i][j] {
				return false
			}
		}
	}
	return true
}

// RotateCW returns the matrix rotated a quarter turn clockwise.
func (m Matrix) RotateCW() Matrix {
	w, h := m.Dims()
	out := make(Matrix, w)
	for y := 0; y < w; y++ {
		out[y] = make([]uint8, h)
		for x := 0; x < h; x++ {
			out[y][x] = m[h-1-x][y]
		}
	}
	return out
}

// MirrorH returns the matrix flipped left to right.
func (m Matrix) MirrorH() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = make([]uint8, len(row))
		for j, v := range row {
			out[i][len(row)-1-j] = v
		}
	}
	return out
}

// Pattern is a named canonical shape together with its declared oscillation
// period. Period 0 marks a still life; a negative period marks chaotic,
// long-lived patterns with no fixed cycle. Variants holds every distinct
// orientation under rotation and mirroring, canonical orientation first,
// enumerated once at package init.
type Pattern struct {
	Name     string
	Period   int
	Cells    Matrix
	Variants []Matrix
}

// Still reports whether the pattern is a still life.
func (p Pattern) Still() bool { return p.Period == 0 }

// Periodic reports whether the pattern repeats with a fixed cycle.
func (p Pattern) Periodic() bool { return p.Period > 0 }

// The canonical catalogue. Shapes are the textbook generation-zero forms.
var (
	Block = newPattern("block", 0,
		"##",
		"##",
	)
	Beehive = newPattern("beehive", 0,
		".##.",
		"#..#",
		".##.",
	)
	Loaf = newPattern("loaf", 0,
		".##.",
		"#..#",
		".#.#",
		"..#.",
	)
	Boat = newPattern("boat", 0,
		"##.",
		"#.#",
		".#.",
	)
	Tub = newPattern("tub", 0,
		".#.",
		"#.#",
		".#.",
	)
	Blinker = newPattern("blinker", 2,
		"###",
	)
	Toad = newPattern("toad", 2,
		".###",
		"###.",
	)
	Beacon = newPattern("beacon", 2,
		"##..",
		"##..",
		"..##",
		"..##",
	)
	Pulsar = newPattern("pulsar", 3,
		"..###...###..",
		".............",
		"#....#.#....#",
		"#....#.#....#",
		"#....#.#....#",
		"..###...###..",
		".............",
		"..###...###..",
		"#....#.#....#",
		"#....#.#....#",
		"#....#.#....#",
		".............",
		"..###...###..",
	)
	Glider = newPattern("glider", 4,
		".#.",
		"..#",
		"###",
	)
	RPentomino = newPattern("r-pentomino", -1,
		".##",
		"##.",
		".#.",
	)
)

var catalogue = []Pattern{
	Block, Beehive, Loaf, Boat, Tub,
	Blinker, Toad, Beacon, Pulsar,
	Glider, RPentomino,
}

var byName = map[string]Pattern{}

func init() {
	for _, p := range catalogue {
		byName[p.Name] = p
	}
}

// All returns the full catalogue in a stable order.
func All() []Pattern {
	out := make([]Pattern, len(catalogue))
	copy(out, catalogue)
	return out
}

// ByName looks a pattern up by its lowercase catalogue name.
func ByName(name string) (Pattern, bool) {
	p, ok := byName[name]
	return p, ok
}

func newPattern(name string, period int, rows ...string) Pattern {
	cells := parse(rows...)
	return Pattern{
		Name:     name,
		Period:   period,
		Cells:    cells,
		Variants: enumerate(cells),
	}
}

// parse converts "#"/"." row strings into a Matrix. All rows must share one
// width; the catalogue is static so a violation panics at init.
func parse(rows ...string) Matrix {
	m := make(Matrix, len(rows))
	for i, row := range rows {
		if len(row) != len(rows[0]) {
			panic("pattern: ragged rows in " + rows[0])
		}
		m[i] = make([]uint8, len(row))
		for j := 0; j < len(row); j++ {
			if row[j] == '#' {
				m[i][j] = 1
			}
		}
	}
	return m
}

// enumerate collects the distinct orientations of m under quarter turns and
// mirroring, keeping the canonical orientation first.
func enumerate(m Matrix) []Matrix {
	var out []Matrix
	add := func(c Matrix) {
		for _, have := range out {
			if have.Equal(c) {
				return
			}
		}
		out = append(out, c)
	}
	cur := m.Clone()
	for i := 0; i < 4; i++ {
		add(cur)
		add(cur.MirrorH())
		cur = cur.RotateCW()
	}
	return out
}
