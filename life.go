package cellbloom

import "math/rand/v2"

// LifeGrid is Conway's Game of Life on a toroidal grid. Cells are stored
// row-major; the next generation is built in a second buffer and swapped in
// so neighbor counts always read the previous generation.
type LifeGrid struct {
	cols, rows int
	cur, nxt   []bool
	running    bool
	generation int
}

// NewLifeGrid returns an all-dead, stopped grid. Non-positive dimensions
// produce an empty grid on which every operation is a no-op.
func NewLifeGrid(cols, rows int) *LifeGrid {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	if cols == 0 || rows == 0 {
		cols, rows = 0, 0
	}
	return &LifeGrid{
		cols: cols,
		rows: rows,
		cur:  make([]bool, cols*rows),
		nxt:  make([]bool, cols*rows),
	}
}

// GridSizeFor returns the grid dimensions covering view with square cells.
func GridSizeFor(view Size, cellSize int) (cols, rows int) {
	if cellSize <= 0 || view.Empty() {
		return 0, 0
	}
	return view.W / cellSize, view.H / cellSize
}

// Cols returns the number of columns.
func (g *LifeGrid) Cols() int { return g.cols }

// Rows returns the number of rows.
func (g *LifeGrid) Rows() int { return g.rows }

// Generation returns how many steps have been applied since the last seed.
func (g *LifeGrid) Generation() int { return g.generation }

// Running reports whether the grid advances when stepped by the scene.
func (g *LifeGrid) Running() bool { return g.running }

// SetRunning starts or pauses the automaton.
func (g *LifeGrid) SetRunning(running bool) { g.running = running }

// Alive reports whether the cell at (col, row) is alive. Out-of-range
// coordinates are dead.
func (g *LifeGrid) Alive(col, row int) bool {
	if !g.inBounds(col, row) {
		return false
	}
	return g.cur[row*g.cols+col]
}

// Set marks a cell alive or dead. Out-of-range coordinates are ignored.
func (g *LifeGrid) Set(col, row int, alive bool) {
	if !g.inBounds(col, row) {
		return
	}
	g.cur[row*g.cols+col] = alive
}

// LiveCount returns the number of live cells.
func (g *LifeGrid) LiveCount() int {
	n := 0
	for _, c := range g.cur {
		if c {
			n++
		}
	}
	return n
}

func (g *LifeGrid) inBounds(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// Seed clears the grid, marks every cell that contains one of the particles,
// then independently brings each remaining dead cell to life with the given
// probability. Seeded cells are never overwritten by the second pass. The
// grid starts running and the generation counter resets.
func (g *LifeGrid) Seed(ps []Particle, cellSize int, density float64, rng *rand.Rand) {
	clear(g.cur)
	g.generation = 0
	g.running = true
	if cellSize <= 0 {
		return
	}
	cs := float64(cellSize)
	for i := range ps {
		x, y := ps[i].X, ps[i].Y
		if x < 0 || y < 0 {
			continue
		}
		g.Set(int(x/cs), int(y/cs), true)
	}
	for i := range g.cur {
		if !g.cur[i] && rng.Float64() < density {
			g.cur[i] = true
		}
	}
}

// neighbors counts live cells among the eight toroidal neighbors.
func (g *LifeGrid) neighbors(col, row int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		r := (row + dy + g.rows) % g.rows
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			c := (col + dx + g.cols) % g.cols
			if g.cur[r*g.cols+c] {
				n++
			}
		}
	}
	return n
}

// Step applies one generation: a dead cell with exactly three live neighbors
// is born, a live cell with fewer than two or more than three dies, and every
// other cell keeps its state.
func (g *LifeGrid) Step() {
	if len(g.cur) == 0 {
		return
	}
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			idx := row*g.cols + col
			n := g.neighbors(col, row)
			alive := g.cur[idx]
			switch {
			case !alive && n == 3:
				g.nxt[idx] = true
			case alive && (n < 2 || n > 3):
				g.nxt[idx] = false
			default:
				g.nxt[idx] = alive
			}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.generation++
}

// Paint brings the cell under (x, y) to life along with its right and lower
// neighbors. Neighbors past the grid edge are clipped; a point outside the
// grid paints nothing. Returns whether the point hit the grid.
func (g *LifeGrid) Paint(x, y float64, cellSize int) bool {
	if cellSize <= 0 || x < 0 || y < 0 {
		return false
	}
	col := int(x / float64(cellSize))
	row := int(y / float64(cellSize))
	if !g.inBounds(col, row) {
		return false
	}
	g.Set(col, row, true)
	g.Set(col+1, row, true)
	g.Set(col, row+1, true)
	return true
}

// forEachAlive calls fn for every live cell in row-major order.
func (g *LifeGrid) forEachAlive(fn func(col, row int)) {
	for i, c := range g.cur {
		if c {
			fn(i%g.cols, i/g.cols)
		}
	}
}
