package gridfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/aqueduct/terrain"
)

// MaxCells bounds W×H so a corrupt header cannot trigger a huge allocation.
const MaxCells = 1 << 24

// ErrMalformed indicates input that does not follow the grid file format.
var ErrMalformed = errors.New("gridfile: malformed input")

// Problem is a parsed aqueduct input.
type Problem struct {
	Grid   *terrain.Grid
	Source terrain.Point
	Baths  []terrain.Point
}

// Load opens path and parses it with Parse.
func Load(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridfile: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// lineReader yields non-blank lines with their 1-based line numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func (lr *lineReader) next() (string, bool) {
	for lr.sc.Scan() {
		lr.line++
		if s := strings.TrimSpace(lr.sc.Text()); s != "" {
			return s, true
		}
	}

	return "", false
}

// Parse reads a problem from r. See the package documentation for the format.
func Parse(r io.Reader) (*Problem, error) {
	lr := &lineReader{sc: bufio.NewScanner(r)}

	// 1) Dimensions
	s, ok := lr.next()
	if !ok {
		return nil, lr.fail(fmt.Errorf("%w: missing dimension line", ErrMalformed))
	}
	dims, err := ints(s, 2)
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: dimensions: %v", ErrMalformed, lr.line, err)
	}
	w, h := dims[0], dims[1]
	if w < 1 || h < 1 || w > MaxCells/h {
		return nil, fmt.Errorf("%w: line %d: bad dimensions %dx%d", ErrMalformed, lr.line, w, h)
	}

	// 2) Cells
	heights, err := readCells(lr, w, h)
	if err != nil {
		return nil, err
	}
	g, err := terrain.NewGrid(heights)
	if err != nil {
		return nil, err
	}

	// 3) Source
	s, ok = lr.next()
	if !ok {
		return nil, lr.fail(fmt.Errorf("%w: missing source line", ErrMalformed))
	}
	src, err := point(g, s, lr.line)
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}

	// 4) Baths until EOF
	p := &Problem{Grid: g, Source: src}
	for {
		s, ok = lr.next()
		if !ok {
			break
		}
		b, err := point(g, s, lr.line)
		if err != nil {
			return nil, fmt.Errorf("bath: %w", err)
		}
		p.Baths = append(p.Baths, b)
	}
	if err := lr.sc.Err(); err != nil {
		return nil, fmt.Errorf("gridfile: read: %w", err)
	}

	return p, nil
}

// fail prefers a scanner error over the format error it caused.
func (lr *lineReader) fail(err error) error {
	if serr := lr.sc.Err(); serr != nil {
		return fmt.Errorf("gridfile: read: %w", serr)
	}

	return err
}

// readCells consumes W×H "h, x, y" lines and returns heights[y][x].
// Bad lines, out-of-range coordinates and repeated cells are reported
// together.
func readCells(lr *lineReader, w, h int) ([][]int, error) {
	heights := make([][]int, h)
	for y := range heights {
		heights[y] = make([]int, w)
	}
	seen := make([]bool, w*h)

	var merr *multierror.Error
	for n := 0; n < w*h; n++ {
		s, ok := lr.next()
		if !ok {
			return nil, lr.fail(fmt.Errorf("%w: line %d: expected %d cell lines, got %d", ErrMalformed, lr.line, w*h, n))
		}
		v, err := ints(s, 3)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%w: line %d: cell: %v", ErrMalformed, lr.line, err))
			continue
		}
		c := terrain.Point{X: v[1], Y: v[2]}
		if c.X < 0 || c.X >= w || c.Y < 0 || c.Y >= h {
			merr = multierror.Append(merr, fmt.Errorf("%w: line %d: cell %v not in %dx%d", terrain.ErrOutOfBounds, lr.line, c, w, h))
			continue
		}
		if seen[c.Y*w+c.X] {
			merr = multierror.Append(merr, fmt.Errorf("%w: line %d: cell %v given twice", ErrMalformed, lr.line, c))
			continue
		}
		seen[c.Y*w+c.X] = true
		heights[c.Y][c.X] = v[0]
	}
	// W×H lines each claiming a distinct cell leave none missing.
	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}

	return heights, nil
}

// point parses "x, y" and checks it against g.
func point(g *terrain.Grid, s string, line int) (terrain.Point, error) {
	v, err := ints(s, 2)
	if err != nil {
		return terrain.Point{}, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
	}
	p := terrain.Point{X: v[0], Y: v[1]}
	if err := g.Validate(p); err != nil {
		return terrain.Point{}, fmt.Errorf("line %d: %w", line, err)
	}

	return p, nil
}

// ints splits s on commas and parses exactly n integers.
func ints(s string, n int) ([]int, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("want %d comma-separated integers, got %q", n, s)
	}
	out := make([]int, n)
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i+1, err)
		}
		out[i] = v
	}

	return out, nil
}
