package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/mwheeler/bottlerack/internal/engine/mesh"
)

// glassColor is the fixed semi-transparent tint for untextured glass parts.
var glassColor = mgl32.Vec4{0.7, 0.7, 0.8, 0.3}

// Bottle emits the baseline bottle: an inner liquid cylinder, a glass base
// cylinder, a tapered glass neck, a plastic lid, and a straight glass neck
// segment. x, y, z place the bottle; s scales the whole object; tex is the
// texture tag for the liquid. Vertical offsets are multiplied by s so the
// parts stay contiguous at any scale.
func Bottle(x, y, z, s float32, tex string) []Draw {
	return []Draw{
		{
			Scale:    mgl32.Vec3{s * 0.7, s * 2.8, s * 0.7},
			Position: mgl32.Vec3{x, s * (0.2 + y), z},
			Texture:  tex,
			UVScale:  uvTiled,
			Kind:     mesh.Cylinder,
		},
		{
			Scale:    mgl32.Vec3{s * 0.8, s * 3.0, s * 0.8},
			Position: mgl32.Vec3{x, s * y, z},
			Color:    glassColor,
			Material: "glass",
			UVScale:  uvOnce,
			Kind:     mesh.Cylinder,
		},
		{
			Scale:    mgl32.Vec3{s * 0.8, s * 1.0, s * 0.8},
			Position: mgl32.Vec3{x, s * (3.0 + y), z},
			Color:    glassColor,
			Material: "glass",
			UVScale:  uvOnce,
			Kind:     mesh.TaperedCylinder,
		},
		{
			Scale:    mgl32.Vec3{s * 0.5, s * 0.7, s * 0.5},
			Position: mgl32.Vec3{x, s * (4.8 + y), z},
			Texture:  "lid",
			Material: "plastic",
			UVScale:  uvOnce,
			Kind:     mesh.Cylinder,
		},
		{
			Scale:    mgl32.Vec3{s * 0.4, s * 1.0, s * 0.4},
			Position: mgl32.Vec3{x, s * (4.0 + y), z},
			Color:    glassColor,
			Material: "glass",
			UVScale:  uvOnce,
			Kind:     mesh.Cylinder,
		},
	}
}

// RingedBottle is the baseline bottle with a plastic cap ring: a torus
// tilted at the neck/shoulder junction.
func RingedBottle(x, y, z, s float32, tex string) []Draw {
	draws := Bottle(x, y, z, s, tex)
	return append(draws, Draw{
		Scale:    mgl32.Vec3{s * 0.6, s * 0.4, s * 0.6},
		Rotation: mgl32.Vec3{-67, 0, 13},
		Position: mgl32.Vec3{x, s * (y + 4.2), z},
		Texture:  "lid",
		Material: "plastic",
		UVScale:  uvOnce,
		Kind:     mesh.Torus,
	})
}

// NozzleBottle is the wide-bodied variant with a pointed red-plastic
// nozzle: liquid and glass base cylinders, two tapered neck segments, and
// a small tapered tip. No straight glass neck.
func NozzleBottle(x, y, z, s float32, tex string) []Draw {
	return []Draw{
		{
			Scale:    mgl32.Vec3{s * 1.0, s * 2.8, s * 1.0},
			Position: mgl32.Vec3{x, s * (0.2 + y), z},
			Texture:  tex,
			UVScale:  uvTiled,
			Kind:     mesh.Cylinder,
		},
		{
			Scale:    mgl32.Vec3{s * 1.1, s * 3.0, s * 1.1},
			Position: mgl32.Vec3{x, s * y, z},
			Color:    glassColor,
			Material: "glass",
			UVScale:  uvOnce,
			Kind:     mesh.Cylinder,
		},
		{
			Scale:    mgl32.Vec3{s * 1.0, s * 1.0, s * 1.0},
			Position: mgl32.Vec3{x, s * (3.0 + y), z},
			Texture:  "redplastic",
			Material: "plastic",
			UVScale:  uvTiled,
			Kind:     mesh.TaperedCylinder,
		},
		{
			Scale:    mgl32.Vec3{s * 0.4, s * 1.3, s * 0.4},
			Position: mgl32.Vec3{x, s * (4.0 + y), z},
			Texture:  "redplastic",
			Material: "plastic",
			UVScale:  uvTiled,
			Kind:     mesh.TaperedCylinder,
		},
		{
			Scale:    mgl32.Vec3{s * 0.1, s * 0.1, s * 0.1},
			Position: mgl32.Vec3{x, s * (5.33 + y), z},
			Texture:  "redplastic",
			Material: "plastic",
			UVScale:  uvTiled,
			Kind:     mesh.TaperedCylinder,
		},
	}
}

// Shelf emits the three-tier shelf: one box per tier at increasing height
// and decreasing recession, plus mirrored side supports per tier. The
// dimensions are the scene's fixed geometry, not derived values.
func Shelf() []Draw {
	tiers := []struct {
		scale mgl32.Vec3
		pos   mgl32.Vec3
	}{
		{mgl32.Vec3{10, 1, 2}, mgl32.Vec3{0, 0.5, 3}},
		{mgl32.Vec3{10, 2, 2}, mgl32.Vec3{0, 1.0, 1}},
		{mgl32.Vec3{10, 3, 2}, mgl32.Vec3{0, 1.5, -1}},
	}
	sides := []struct {
		scale mgl32.Vec3
		pos   mgl32.Vec3
	}{
		{mgl32.Vec3{0.3, 1.3, 2.2}, mgl32.Vec3{5, 0.65, 3}},
		{mgl32.Vec3{0.3, 1.3, 2.2}, mgl32.Vec3{-5, 0.65, 3}},
		{mgl32.Vec3{0.3, 2.3, 2.2}, mgl32.Vec3{5, 1.15, 1}},
		{mgl32.Vec3{0.3, 2.3, 2.2}, mgl32.Vec3{-5, 1.15, 1}},
		{mgl32.Vec3{0.3, 3.3, 2.2}, mgl32.Vec3{5, 1.65, -1}},
		{mgl32.Vec3{0.3, 3.3, 2.2}, mgl32.Vec3{-5, 1.65, -1}},
	}

	draws := make([]Draw, 0, len(tiers)+len(sides))
	for _, t := range tiers {
		draws = append(draws, Draw{
			Scale:    t.scale,
			Position: t.pos,
			Texture:  "shelf",
			Material: "shelf",
			UVScale:  uvOnce,
			Kind:     mesh.Box,
		})
	}
	for _, s := range sides {
		draws = append(draws, Draw{
			Scale:    s.scale,
			Position: s.pos,
			Texture:  "shelf",
			Material: "shelf",
			UVScale:  uvOnce,
			Kind:     mesh.Box,
		})
	}
	return draws
}

// Frame emits the complete still life in draw order: the wooden table
// plane, the back wall, the shelf, then every bottle in its hand-placed
// position across the three tiers.
func Frame() []Draw {
	draws := []Draw{
		{
			Scale:    mgl32.Vec3{20, 1, 10},
			Position: mgl32.Vec3{0, 0, 0},
			Texture:  "wood",
			Material: "wood",
			UVScale:  uvOnce,
			Kind:     mesh.Plane,
		},
		{
			Scale:    mgl32.Vec3{20, 1, 10},
			Rotation: mgl32.Vec3{90, 0, 0},
			Position: mgl32.Vec3{0, 10, -5},
			Texture:  "wall",
			Material: "wall",
			UVScale:  uvOnce,
			Kind:     mesh.Plane,
		},
	}

	draws = append(draws, Shelf()...)

	// Top shelf, left to right.
	draws = append(draws, Bottle(-4, 10, -1, 0.3, "sauce4")...)
	draws = append(draws, Bottle(-2.8, 5, -1, 0.6, "sauce1")...)
	draws = append(draws, Bottle(-1.5, 5, -1, 0.6, "sauce4")...)
	draws = append(draws, Bottle(3, 5, -1, 0.6, "sauce4")...)

	// Middle shelf, left to right.
	draws = append(draws, Bottle(-4, 6.7, 1, 0.3, "sauce4")...)
	draws = append(draws, Bottle(-3, 6.7, 1, 0.3, "sauce2")...)
	draws = append(draws, RingedBottle(2.0, 4.9, 1, 0.4, "sauce4")...)
	draws = append(draws, NozzleBottle(3.2, 4.9, 1, 0.4, "sauce2")...)
	draws = append(draws, Bottle(4.1, 3.35, 1, 0.6, "sauce1")...)

	// Bottom shelf, left to right.
	draws = append(draws, Bottle(-4, 3.4, 3, 0.3, "sauce1")...)
	draws = append(draws, Bottle(-3, 3.4, 3, 0.3, "sauce2")...)
	draws = append(draws, Bottle(-2, 3.4, 3, 0.3, "sauce3")...)
	draws = append(draws, Bottle(-1, 3.4, 3, 0.3, "sauce1")...)
	draws = append(draws, Bottle(2.5, 3.4, 3, 0.3, "sauce4")...)
	draws = append(draws, Bottle(3.5, 3.4, 3, 0.3, "sauce2")...)
	draws = append(draws, Bottle(4.5, 3.4, 3, 0.3, "sauce1")...)

	// Large bottle standing on the table to the right.
	draws = append(draws, Bottle(6.3, 0.0, 3.9, 0.8, "sauce1")...)

	return draws
}
