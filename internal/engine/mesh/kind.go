// Package mesh provides the primitive geometry vocabulary of the scene:
// unit-sized plane, box, cylinder, tapered cylinder, and torus meshes,
// generated on the CPU and drawn through OpenGL.
package mesh

// Kind identifies one of the fixed primitive shapes.
type Kind int

const (
	Plane Kind = iota
	Box
	Cylinder
	TaperedCylinder
	Torus

	kindCount
)

// String returns the primitive name.
func (k Kind) String() string {
	switch k {
	case Plane:
		return "plane"
	case Box:
		return "box"
	case Cylinder:
		return "cylinder"
	case TaperedCylinder:
		return "tapered-cylinder"
	case Torus:
		return "torus"
	default:
		return "unknown"
	}
}

// AllKinds returns every primitive kind, in declaration order.
func AllKinds() []Kind {
	return []Kind{Plane, Box, Cylinder, TaperedCylinder, Torus}
}

// Provider prepares primitive meshes and issues one draw per call. The
// scene layer holds a Provider so instruction execution can be tested
// without a GL context.
type Provider interface {
	// Load prepares the given primitive kinds for drawing.
	Load(kinds ...Kind) error
	// Draw renders one instance of the primitive with current GL state.
	Draw(kind Kind)
}
