package mesh

import "math"

// Vertex layout: position(3) normal(3) texcoord(2), tightly interleaved.
const floatsPerVertex = 8

const (
	cylinderSectors = 36
	// Top radius of the tapered cylinder relative to its unit base.
	taperTopRadius  = 0.5
	torusRings      = 32
	torusSides      = 16
	torusTubeRadius = 0.25
)

// geometry is the CPU-side mesh representation handed to the GPU.
type geometry struct {
	vertices []float32
	indices  []uint32
}

func (g *geometry) vertexCount() int {
	return len(g.vertices) / floatsPerVertex
}

func (g *geometry) push(px, py, pz, nx, ny, nz, u, v float32) uint32 {
	idx := uint32(g.vertexCount())
	g.vertices = append(g.vertices, px, py, pz, nx, ny, nz, u, v)
	return idx
}

func (g *geometry) quad(a, b, c, d uint32) {
	g.indices = append(g.indices, a, b, c, a, c, d)
}

// buildGeometry generates the unit mesh for the given primitive kind.
func buildGeometry(kind Kind) geometry {
	switch kind {
	case Plane:
		return genPlane()
	case Box:
		return genBox()
	case Cylinder:
		return genCylinder(1.0)
	case TaperedCylinder:
		return genCylinder(taperTopRadius)
	case Torus:
		return genTorus()
	default:
		return geometry{}
	}
}

// genPlane builds a horizontal quad at y=0 spanning ±1 on X and Z with an
// upward normal.
func genPlane() geometry {
	var g geometry
	a := g.push(-1, 0, 1, 0, 1, 0, 0, 0)
	b := g.push(1, 0, 1, 0, 1, 0, 1, 0)
	c := g.push(1, 0, -1, 0, 1, 0, 1, 1)
	d := g.push(-1, 0, -1, 0, 1, 0, 0, 1)
	g.quad(a, b, c, d)
	return g
}

// genBox builds a unit cube centered at the origin with per-face normals.
func genBox() geometry {
	var g geometry
	const h = 0.5

	faces := []struct {
		n       [3]float32
		corners [4][3]float32
	}{
		{[3]float32{0, 0, 1}, [4][3]float32{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},     // front
		{[3]float32{0, 0, -1}, [4][3]float32{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}}, // back
		{[3]float32{-1, 0, 0}, [4][3]float32{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}}, // left
		{[3]float32{1, 0, 0}, [4][3]float32{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},     // right
		{[3]float32{0, 1, 0}, [4][3]float32{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},     // top
		{[3]float32{0, -1, 0}, [4][3]float32{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}}, // bottom
	}

	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	for _, f := range faces {
		var idx [4]uint32
		for i, c := range f.corners {
			idx[i] = g.push(c[0], c[1], c[2], f.n[0], f.n[1], f.n[2], uvs[i][0], uvs[i][1])
		}
		g.quad(idx[0], idx[1], idx[2], idx[3])
	}
	return g
}

// genCylinder builds a cylinder with base radius 1 at y=0, the given top
// radius at y=1, and both caps. topRadius 1 gives a straight cylinder; a
// smaller value tapers the shell.
func genCylinder(topRadius float32) geometry {
	var g geometry

	// Side shell. The side normal of a cone leans outward proportionally
	// to the radius change over the unit height.
	lean := 1.0 - topRadius
	for i := 0; i <= cylinderSectors; i++ {
		theta := 2 * math.Pi * float64(i) / cylinderSectors
		cos := float32(math.Cos(theta))
		sin := float32(math.Sin(theta))

		nx, ny, nz := normalize3(cos, lean, sin)
		u := float32(i) / cylinderSectors

		g.push(cos, 0, sin, nx, ny, nz, u, 0)
		g.push(topRadius*cos, 1, topRadius*sin, nx, ny, nz, u, 1)
	}
	for i := 0; i < cylinderSectors; i++ {
		base := uint32(i * 2)
		g.indices = append(g.indices,
			base, base+1, base+3,
			base, base+3, base+2,
		)
	}

	// Bottom cap.
	center := g.push(0, 0, 0, 0, -1, 0, 0.5, 0.5)
	for i := 0; i <= cylinderSectors; i++ {
		theta := 2 * math.Pi * float64(i) / cylinderSectors
		cos := float32(math.Cos(theta))
		sin := float32(math.Sin(theta))
		g.push(cos, 0, sin, 0, -1, 0, 0.5+cos/2, 0.5+sin/2)
	}
	for i := 0; i < cylinderSectors; i++ {
		g.indices = append(g.indices, center, center+1+uint32(i)+1, center+1+uint32(i))
	}

	// Top cap.
	center = g.push(0, 1, 0, 0, 1, 0, 0.5, 0.5)
	for i := 0; i <= cylinderSectors; i++ {
		theta := 2 * math.Pi * float64(i) / cylinderSectors
		cos := float32(math.Cos(theta))
		sin := float32(math.Sin(theta))
		g.push(topRadius*cos, 1, topRadius*sin, 0, 1, 0, 0.5+cos/2, 0.5+sin/2)
	}
	for i := 0; i < cylinderSectors; i++ {
		g.indices = append(g.indices, center, center+1+uint32(i), center+1+uint32(i)+1)
	}

	return g
}

// genTorus builds a torus in the XY plane (hole along Z) with major radius
// 1 and tube radius torusTubeRadius.
func genTorus() geometry {
	var g geometry

	for i := 0; i <= torusRings; i++ {
		u := 2 * math.Pi * float64(i) / torusRings
		cu := float32(math.Cos(u))
		su := float32(math.Sin(u))

		for j := 0; j <= torusSides; j++ {
			v := 2 * math.Pi * float64(j) / torusSides
			cv := float32(math.Cos(v))
			sv := float32(math.Sin(v))

			px := (1 + torusTubeRadius*cv) * cu
			py := (1 + torusTubeRadius*cv) * su
			pz := torusTubeRadius * sv

			g.push(px, py, pz,
				cv*cu, cv*su, sv,
				float32(i)/torusRings, float32(j)/torusSides)
		}
	}

	stride := uint32(torusSides + 1)
	for i := 0; i < torusRings; i++ {
		for j := 0; j < torusSides; j++ {
			a := uint32(i)*stride + uint32(j)
			b := a + stride
			g.indices = append(g.indices,
				a, b, a+1,
				b, b+1, a+1,
			)
		}
	}

	return g
}

func normalize3(x, y, z float32) (float32, float32, float32) {
	l := float32(math.Sqrt(float64(x*x + y*y + z*z)))
	if l == 0 {
		return 0, 0, 0
	}
	return x / l, y / l, z / l
}
