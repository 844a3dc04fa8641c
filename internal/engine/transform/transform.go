// Package transform builds model matrices from independent scale,
// rotation, and translation parameters.
package transform

import "github.com/go-gl/mathgl/mgl32"

// Compose builds a model matrix from the given scale, per-axis rotation
// (degrees), and translation.
//
// The composition order is fixed: Translate * Rz * Ry * Rx * Scale. Read
// right-to-left as applied to a point: scale first, then rotate about X,
// Y, Z, then translate. Changing this order moves every object in the
// scene, so it is part of the contract.
func Compose(scale mgl32.Vec3, rotXDeg, rotYDeg, rotZDeg float32, position mgl32.Vec3) mgl32.Mat4 {
	s := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(rotXDeg))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(rotYDeg))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotZDeg))
	t := mgl32.Translate3D(position.X(), position.Y(), position.Z())

	return t.Mul4(rz).Mul4(ry).Mul4(rx).Mul4(s)
}
