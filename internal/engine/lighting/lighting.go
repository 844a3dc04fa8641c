// Package lighting holds the light source types and the fixed lighting
// rig pushed into the shader during scene preparation.
package lighting

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/mwheeler/bottlerack/internal/engine/shader"
)

// DirectionalLight is a scene-wide light with a direction but no position.
type DirectionalLight struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Active    bool
}

// Apply uploads the light into the shader's directionalLight uniform block.
func (l DirectionalLight) Apply(u shader.Uniforms) {
	u.SetVec3("directionalLight.direction", l.Direction)
	u.SetVec3("directionalLight.ambient", l.Ambient)
	u.SetVec3("directionalLight.diffuse", l.Diffuse)
	u.SetVec3("directionalLight.specular", l.Specular)
	u.SetBool("directionalLight.bActive", l.Active)
}

// PointLight is a positioned light source.
type PointLight struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
	Active   bool
}

// Apply uploads the light into the shader's pointLights[index] block.
func (l PointLight) Apply(u shader.Uniforms, index int) {
	prefix := fmt.Sprintf("pointLights[%d]", index)
	u.SetVec3(prefix+".position", l.Position)
	u.SetVec3(prefix+".ambient", l.Ambient)
	u.SetVec3(prefix+".diffuse", l.Diffuse)
	u.SetVec3(prefix+".specular", l.Specular)
	u.SetBool(prefix+".bActive", l.Active)
}

// Rig is a complete lighting setup: one directional light plus point lights.
type Rig struct {
	Directional DirectionalLight
	Points      []PointLight
}

// Apply enables lighting and uploads every light in the rig.
func (r Rig) Apply(u shader.Uniforms) {
	u.SetBool("bUseLighting", true)
	r.Directional.Apply(u)
	for i, p := range r.Points {
		p.Apply(u, i)
	}
}

// StillLifeRig returns the fixed lighting for the bottle shelf scene: a
// reddish distant light (daylight through curtains) and three soft point
// lights across the front of the shelf.
func StillLifeRig() Rig {
	return Rig{
		Directional: DirectionalLight{
			Direction: mgl32.Vec3{-0.05, -0.3, -0.1},
			Ambient:   mgl32.Vec3{0.07, 0.05, 0.05},
			Diffuse:   mgl32.Vec3{0.8, 0.6, 0.6},
			Specular:  mgl32.Vec3{1.0, 0.8, 0.8},
			Active:    true,
		},
		Points: []PointLight{
			{
				Position: mgl32.Vec3{3.0, 2.0, 2.0},
				Ambient:  mgl32.Vec3{0.1, 0.1, 0.1},
				Diffuse:  mgl32.Vec3{0.15, 0.15, 0.15},
				Specular: mgl32.Vec3{0.35, 0.35, 0.35},
				Active:   true,
			},
			{
				Position: mgl32.Vec3{-3.0, 2.0, 2.0},
				Ambient:  mgl32.Vec3{0.1, 0.1, 0.1},
				Diffuse:  mgl32.Vec3{0.15, 0.15, 0.15},
				Specular: mgl32.Vec3{0.35, 0.35, 0.35},
				Active:   true,
			},
			{
				Position: mgl32.Vec3{0.0, 2.0, 2.0},
				Ambient:  mgl32.Vec3{0.2, 0.2, 0.2},
				Diffuse:  mgl32.Vec3{0.5, 0.5, 0.5},
				Specular: mgl32.Vec3{0.9, 0.9, 0.9},
				Active:   true,
			},
		},
	}
}
