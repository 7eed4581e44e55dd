package graphics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const triangleOBJ = `
# simple triangle
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1
`

func TestParseOBJTriangle(t *testing.T) {
	mesh, err := parseOBJ(strings.NewReader(triangleOBJ))
	require.NoError(t, err)

	assert.Len(t, mesh.Vertices, 3)
	assert.Equal(t, []uint32{0, 1, 2}, mesh.Indices)

	assert.Equal(t, float32(1), mesh.Vertices[1].Position.X)
	assert.Equal(t, float32(1), mesh.Vertices[2].UV.Y)
	assert.Equal(t, float32(1), mesh.Vertices[0].Normal.Z)
}

func TestParseOBJQuadTriangulation(t *testing.T) {
	const quad = `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	mesh, err := parseOBJ(strings.NewReader(quad))
	require.NoError(t, err)

	// A quad fan-triangulates into two triangles
	assert.Len(t, mesh.Indices, 6)
	assert.Len(t, mesh.Vertices, 4)
}

func TestParseOBJDeduplicatesVertices(t *testing.T) {
	const shared = `
v 0 0 0
v 1 0 0
v 0 1 0
v 1 1 0
f 1 2 3
f 2 4 3
`
	mesh, err := parseOBJ(strings.NewReader(shared))
	require.NoError(t, err)

	// Vertices 2 and 3 are shared between the faces
	assert.Len(t, mesh.Vertices, 4)
	assert.Len(t, mesh.Indices, 6)
}

func TestParseOBJGeneratesNormals(t *testing.T) {
	const noNormals = `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	mesh, err := parseOBJ(strings.NewReader(noNormals))
	require.NoError(t, err)

	// CCW triangle in the XY plane faces +Z
	for _, v := range mesh.Vertices {
		assert.InDelta(t, 1.0, v.Normal.Z, 0.0001)
	}
}

func TestParseOBJEmpty(t *testing.T) {
	_, err := parseOBJ(strings.NewReader("# nothing here\n"))
	assert.Error(t, err)
}

func TestInvertFaces(t *testing.T) {
	mesh, err := parseOBJ(strings.NewReader(triangleOBJ))
	require.NoError(t, err)

	mesh.InvertFaces()

	assert.Equal(t, []uint32{0, 2, 1}, mesh.Indices)
	assert.Equal(t, float32(-1), mesh.Vertices[0].Normal.Z)
}

func TestCreateSphereGeometry(t *testing.T) {
	mesh := CreateSphere(2, 8, 6)

	assert.Equal(t, (8+1)*(6+1), len(mesh.Vertices))
	assert.Equal(t, 8*6*6, len(mesh.Indices))

	// Every vertex sits on the sphere surface
	for _, v := range mesh.Vertices {
		assert.InDelta(t, 2.0, v.Position.Length(), 0.0001)
	}
}

func TestCreatePlaneUVTiling(t *testing.T) {
	mesh := CreatePlane(10, 10, 4)

	require.Len(t, mesh.Vertices, 4)
	assert.Equal(t, float32(4), mesh.Vertices[2].UV.X)
	assert.Equal(t, float32(4), mesh.Vertices[2].UV.Y)
}
