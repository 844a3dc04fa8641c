// Package scene assembles the bottle-shelf still life: it owns the draw
// instruction vocabulary, the compound-object builders, the shader binding
// facade, and the per-frame render sequence.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/mwheeler/bottlerack/internal/engine/mesh"
)

// Draw is a single primitive draw: a local transform, the resource
// selection, and the primitive kind. Builders emit Draw lists as plain
// data; issuing GPU calls is the executor's job, so instruction sequences
// can be tested without a graphics context.
type Draw struct {
	Scale    mgl32.Vec3
	Rotation mgl32.Vec3 // degrees about X, Y, Z
	Position mgl32.Vec3

	// Texture selects a registered texture tag; empty means the flat
	// Color is used instead.
	Texture string
	Color   mgl32.Vec4

	// Material selects a registered material tag; empty skips the
	// material upload.
	Material string

	UVScale mgl32.Vec2
	Kind    mesh.Kind
}

var (
	uvOnce  = mgl32.Vec2{1, 1}
	// Sauce textures are tiled heavily so no macro detail survives at
	// close range; the liquid reads as a homogeneous blend.
	uvTiled = mgl32.Vec2{50, 50}
)
