package readfiles

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadNodes(t *testing.T) {
	x, y, err := ReadNodes(bytes.NewReader(nodeFile))
	require.NoError(t, err)
	require.Equal(t, 4, len(x))
	require.Equal(t, 4, len(y))
	assert.Equal(t, []float64{0., 1., 1., 0.}, x)
	assert.Equal(t, []float64{0., 0., 1., 1.}, y)
}

func TestReadNodesMalformed(t *testing.T) {
	bad := []byte("4 2 0 1\n1 0.0 oops\n")
	_, _, err := ReadNodes(bytes.NewReader(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, _, err = ReadNodes(bytes.NewReader([]byte("# only a comment\n")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header")
}

func TestReadElements(t *testing.T) {
	eToV, err := ReadElements(bytes.NewReader(eleFile), 4)
	require.NoError(t, err)
	require.Equal(t, 2, len(eToV))
	// Node references come back as 0-based offsets
	assert.Equal(t, [3]int{0, 1, 2}, eToV[0])
	assert.Equal(t, [3]int{0, 2, 3}, eToV[1])
}

func TestReadElementsRejectsNonTriangles(t *testing.T) {
	quads := []byte("1 4 0\n1 1 2 3 4\n")
	_, err := ReadElements(bytes.NewReader(quads), 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vertex degree 4")
}

func TestReadElementsRejectsBadReferences(t *testing.T) {
	outOfRange := []byte("1 3 0\n1 1 2 9\n")
	_, err := ReadElements(bytes.NewReader(outOfRange), 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "node reference 9")

	negative := []byte("1 3 0\n1 1 -2 3\n")
	_, err = ReadElements(bytes.NewReader(negative), 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "node reference -2")
}

func TestReadTriangulation(t *testing.T) {
	dir := t.TempDir()
	nodePath := filepath.Join(dir, "square.node")
	elePath := filepath.Join(dir, "square.ele")
	require.NoError(t, os.WriteFile(nodePath, nodeFile, 0644))
	require.NoError(t, os.WriteFile(elePath, eleFile, 0644))

	tri, err := ReadTriangulation(nodePath, elePath)
	require.NoError(t, err)
	assert.Equal(t, 4, tri.NumNodes())
	assert.Equal(t, 2, tri.NumTriangles())

	_, err = ReadTriangulation(filepath.Join(dir, "missing.node"), elePath)
	require.Error(t, err)
}

func TestIndexTranslation(t *testing.T) {
	off, err := NodeOffset(1, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, off)
	off, err = NodeOffset(4, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, off)

	_, err = NodeOffset(0, 4)
	require.Error(t, err)
	_, err = NodeOffset(5, 4)
	require.Error(t, err)

	// Round trip back to the file convention
	assert.Equal(t, int32(1), FileIndex(0))
	assert.Equal(t, int32(4), FileIndex(3))
}

var (
	// Unit square split along the diagonal, in Triangle format. Comment
	// lines and trailing marker columns exercise the skipping rules.
	nodeFile = []byte(`# Generated by: triangle -p square.poly
4  2  0  1
   1    0.0  0.0    1
   2    1.0  0.0    1
# interior comment
   3    1.0  1.0    1
   4    0.0  1.0    1
# end of file
`)
	eleFile = []byte(`2  3  0
   1      1  2  3
   2      1  3  4
`)
)
