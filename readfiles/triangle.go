/*
Package readfiles parses the planar triangulation text formats produced by
the Triangle mesh generator: a .node file holding the vertex coordinates
and a .ele file holding the triangle connectivity.

Both files share one convention: lines beginning with '#' are comments, the
first non-comment line is a header, and every following non-comment line is
one record beginning with a 1-based record index. Node references in the
.ele file are converted to 0-based offsets exactly once, here at the parse
boundary, and are range-checked against the node set as they are read.
*/
package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// TriVertexDegree is the only supported vertex degree: every dual vertex
// is surrounded by exactly three primal cells.
const TriVertexDegree = 3

// Triangulation is a planar triangle mesh read from a .node/.ele pair.
// EToV holds, per triangle, the three node offsets (0-based).
type Triangulation struct {
	X, Y []float64
	EToV [][TriVertexDegree]int
}

// NumNodes returns the number of nodes in the triangulation.
func (tri *Triangulation) NumNodes() int { return len(tri.X) }

// NumTriangles returns the number of triangles in the triangulation.
func (tri *Triangulation) NumTriangles() int { return len(tri.EToV) }

// ReadTriangulation reads a .node/.ele file pair.
func ReadTriangulation(nodeFile, eleFile string) (tri *Triangulation, err error) {
	tri = &Triangulation{}
	if tri.X, tri.Y, err = ReadNodeFile(nodeFile); err != nil {
		return nil, err
	}
	if tri.EToV, err = ReadEleFile(eleFile, len(tri.X)); err != nil {
		return nil, err
	}
	return tri, nil
}

// ReadNodeFile reads a Triangle .node file from disk.
func ReadNodeFile(filename string) (x, y []float64, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("opening node file: %w", err)
	}
	defer file.Close()
	if x, y, err = ReadNodes(file); err != nil {
		return nil, nil, fmt.Errorf("node file %s: %w", filename, err)
	}
	return x, y, nil
}

// ReadEleFile reads a Triangle .ele file from disk. Node references are
// checked against nNodes.
func ReadEleFile(filename string, nNodes int) (eToV [][TriVertexDegree]int, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening element file: %w", err)
	}
	defer file.Close()
	if eToV, err = ReadElements(file, nNodes); err != nil {
		return nil, fmt.Errorf("element file %s: %w", filename, err)
	}
	return eToV, nil
}

// ReadNodes parses .node content: a header line, then one line per node
// holding the node index and its x, y coordinates. Attribute and boundary
// marker columns are ignored.
func ReadNodes(r io.Reader) (x, y []float64, err error) {
	scanner := newLineScanner(r)
	if _, err = scanner.header(); err != nil {
		return nil, nil, err
	}
	for scanner.next() {
		var (
			ind    int
			xv, yv float64
		)
		if n, errScan := fmt.Sscanf(scanner.line, "%d %f %f", &ind, &xv, &yv); errScan != nil || n < 3 {
			return nil, nil, fmt.Errorf("line %d: expected node index and two coordinates, got %q",
				scanner.lineNo, scanner.line)
		}
		x = append(x, xv)
		y = append(y, yv)
	}
	return x, y, scanner.err()
}

// ReadElements parses .ele content: a header line declaring the node count
// per triangle, then one line per triangle holding the triangle index and
// three 1-based node references. Attribute columns are ignored. A header
// declaring anything other than triangles is rejected.
func ReadElements(r io.Reader, nNodes int) (eToV [][TriVertexDegree]int, err error) {
	scanner := newLineScanner(r)
	header, err := scanner.header()
	if err != nil {
		return nil, err
	}
	var nTri, degree int
	if n, errScan := fmt.Sscanf(header, "%d %d", &nTri, &degree); errScan != nil || n < 2 {
		return nil, fmt.Errorf("line %d: malformed element header %q", scanner.lineNo, header)
	}
	if degree != TriVertexDegree {
		return nil, fmt.Errorf("unsupported vertex degree %d: only triangular dual meshes are supported", degree)
	}
	for scanner.next() {
		var ind, n1, n2, n3 int
		if n, errScan := fmt.Sscanf(scanner.line, "%d %d %d %d", &ind, &n1, &n2, &n3); errScan != nil || n < 4 {
			return nil, fmt.Errorf("line %d: expected triangle index and three node references, got %q",
				scanner.lineNo, scanner.line)
		}
		var tv [TriVertexDegree]int
		for j, ref := range [TriVertexDegree]int{n1, n2, n3} {
			if tv[j], err = NodeOffset(ref, nNodes); err != nil {
				return nil, fmt.Errorf("line %d: triangle %d: %w", scanner.lineNo, ind, err)
			}
		}
		eToV = append(eToV, tv)
	}
	return eToV, scanner.err()
}

// NodeOffset converts a 1-based node reference from the file convention to
// a 0-based array offset, rejecting references outside the node set.
func NodeOffset(ref, nNodes int) (int, error) {
	if ref < 1 || ref > nNodes {
		return 0, fmt.Errorf("node reference %d outside valid range [1,%d]", ref, nNodes)
	}
	return ref - 1, nil
}

// FileIndex converts a 0-based node offset back to the 1-based file
// convention used in the output dataset.
func FileIndex(offset int) int32 {
	return int32(offset) + 1
}

// lineScanner yields non-comment, non-blank lines with their 1-based line
// numbers for error reporting.
type lineScanner struct {
	s      *bufio.Scanner
	line   string
	lineNo int
}

func newLineScanner(r io.Reader) *lineScanner {
	return &lineScanner{s: bufio.NewScanner(r)}
}

func (ls *lineScanner) next() bool {
	for ls.s.Scan() {
		ls.lineNo++
		ls.line = strings.TrimSpace(ls.s.Text())
		if ls.line == "" || strings.HasPrefix(ls.line, "#") {
			continue
		}
		return true
	}
	return false
}

func (ls *lineScanner) header() (string, error) {
	if !ls.next() {
		if err := ls.err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("missing header line")
	}
	return ls.line, nil
}

func (ls *lineScanner) err() error {
	return ls.s.Err()
}
