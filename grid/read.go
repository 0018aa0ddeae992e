package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Read loads a grid from text, one row per line. Carriage returns and
// trailing blank lines are dropped; the rows are then checked by Parse.
func Read(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return Parse(lines)
}

// Load reads the grid stored in the file at path. See Read.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: open %q: %w", path, err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("grid: load %q: %w", path, err)
	}
	return g, nil
}
