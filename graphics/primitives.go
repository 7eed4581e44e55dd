package graphics

import (
	"github.com/chewxy/math32"

	"playground/core"
	"playground/math"
)

// CreateSphere generates a UV-sphere mesh centred on the origin.
func CreateSphere(radius float32, segments, rings int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	var vertices []core.Vertex
	var indices []uint32

	for ring := 0; ring <= rings; ring++ {
		phi := float32(ring) * math32.Pi / float32(rings)
		sinPhi := math32.Sin(phi)
		cosPhi := math32.Cos(phi)

		for seg := 0; seg <= segments; seg++ {
			theta := float32(seg) * 2 * math32.Pi / float32(segments)
			sinTheta := math32.Sin(theta)
			cosTheta := math32.Cos(theta)

			normal := math.Vec3{X: sinPhi * cosTheta, Y: cosPhi, Z: sinPhi * sinTheta}
			vertices = append(vertices, core.Vertex{
				Position: normal.Mul(radius),
				Normal:   normal,
				UV:       math.Vec2{X: float32(seg) / float32(segments), Y: float32(ring) / float32(rings)},
				Color:    core.ColorWhite,
			})
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments+1)

			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}

	return NewMesh("Sphere", vertices, indices)
}

// CreatePlane generates a flat quad on the XZ plane facing up, with UVs
// tiled uvTiling times across it.
func CreatePlane(width, depth, uvTiling float32) *Mesh {
	hw := width / 2
	hd := depth / 2

	vertices := []core.Vertex{
		{Position: math.Vec3{X: -hw, Y: 0, Z: -hd}, Normal: math.Vec3Up, UV: math.Vec2{X: 0, Y: 0}, Color: core.ColorWhite},
		{Position: math.Vec3{X: hw, Y: 0, Z: -hd}, Normal: math.Vec3Up, UV: math.Vec2{X: uvTiling, Y: 0}, Color: core.ColorWhite},
		{Position: math.Vec3{X: hw, Y: 0, Z: hd}, Normal: math.Vec3Up, UV: math.Vec2{X: uvTiling, Y: uvTiling}, Color: core.ColorWhite},
		{Position: math.Vec3{X: -hw, Y: 0, Z: hd}, Normal: math.Vec3Up, UV: math.Vec2{X: 0, Y: uvTiling}, Color: core.ColorWhite},
	}
	indices := []uint32{0, 2, 1, 0, 3, 2}

	return NewMesh("Plane", vertices, indices)
}

// CreateCube generates an axis-aligned box with per-face normals.
func CreateCube(width, height, depth float32) *Mesh {
	hw, hh, hd := width/2, height/2, depth/2

	type face struct {
		normal math.Vec3
		// corner positions in quad order
		corners [4]math.Vec3
	}
	faces := []face{
		{math.Vec3{Z: 1}, [4]math.Vec3{{X: -hw, Y: -hh, Z: hd}, {X: hw, Y: -hh, Z: hd}, {X: hw, Y: hh, Z: hd}, {X: -hw, Y: hh, Z: hd}}},
		{math.Vec3{Z: -1}, [4]math.Vec3{{X: hw, Y: -hh, Z: -hd}, {X: -hw, Y: -hh, Z: -hd}, {X: -hw, Y: hh, Z: -hd}, {X: hw, Y: hh, Z: -hd}}},
		{math.Vec3{X: 1}, [4]math.Vec3{{X: hw, Y: -hh, Z: hd}, {X: hw, Y: -hh, Z: -hd}, {X: hw, Y: hh, Z: -hd}, {X: hw, Y: hh, Z: hd}}},
		{math.Vec3{X: -1}, [4]math.Vec3{{X: -hw, Y: -hh, Z: -hd}, {X: -hw, Y: -hh, Z: hd}, {X: -hw, Y: hh, Z: hd}, {X: -hw, Y: hh, Z: -hd}}},
		{math.Vec3{Y: 1}, [4]math.Vec3{{X: -hw, Y: hh, Z: hd}, {X: hw, Y: hh, Z: hd}, {X: hw, Y: hh, Z: -hd}, {X: -hw, Y: hh, Z: -hd}}},
		{math.Vec3{Y: -1}, [4]math.Vec3{{X: -hw, Y: -hh, Z: -hd}, {X: hw, Y: -hh, Z: -hd}, {X: hw, Y: -hh, Z: hd}, {X: -hw, Y: -hh, Z: hd}}},
	}

	uvs := [4]math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	var vertices []core.Vertex
	var indices []uint32
	for _, f := range faces {
		base := uint32(len(vertices))
		for i, corner := range f.corners {
			vertices = append(vertices, core.Vertex{
				Position: corner,
				Normal:   f.normal,
				UV:       uvs[i],
				Color:    core.ColorWhite,
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return NewMesh("Cube", vertices, indices)
}
