package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/mwheeler/bottlerack/internal/engine/resource"
	"github.com/mwheeler/bottlerack/internal/engine/shader"
	"github.com/mwheeler/bottlerack/internal/logger"
)

// Uniform names baked into the GLSL sources. These are a contract with
// the shaders; renaming one here breaks rendering silently.
const (
	uniformModel      = "model"
	uniformColor      = "objectColor"
	uniformTexture    = "objectTexture"
	uniformUseTexture = "bUseTexture"
	uniformUVScale    = "UVscale"

	uniformMaterialDiffuse   = "material.diffuseColor"
	uniformMaterialSpecular  = "material.specularColor"
	uniformMaterialShininess = "material.shininess"
)

// Binder pushes transform, color, texture, and material state into the
// shader ahead of each primitive draw. It keeps no state of its own
// between calls; failures degrade to visibly-wrong-but-safe output and
// are reported only through the log.
type Binder struct {
	uniforms shader.Uniforms
	registry *resource.Registry
}

// NewBinder creates a binder over the given shader and registry.
func NewBinder(u shader.Uniforms, reg *resource.Registry) *Binder {
	return &Binder{uniforms: u, registry: reg}
}

// SetTransform uploads the model matrix for the next draw.
func (b *Binder) SetTransform(m mgl32.Mat4) {
	b.uniforms.SetMat4(uniformModel, m)
}

// SetColor disables texture sampling for the next draw and uploads a flat
// RGBA color.
func (b *Binder) SetColor(r, g, bl, a float32) {
	b.uniforms.SetBool(uniformUseTexture, false)
	b.uniforms.SetVec4(uniformColor, mgl32.Vec4{r, g, bl, a})
}

// SetTexture enables texture sampling and uploads the bind slot registered
// for tag. An unregistered tag uploads the -1 sentinel, which the shader
// treats as no valid sample.
func (b *Binder) SetTexture(tag string) {
	slot := b.registry.TextureSlot(tag)
	if slot == resource.SlotNotFound {
		logger.Warn("texture tag not registered", zap.String("tag", tag))
	}
	b.uniforms.SetBool(uniformUseTexture, true)
	b.uniforms.SetInt(uniformTexture, int32(slot))
}

// SetUVScale uploads the texture coordinate tiling factor. Values above 1
// tile the texture across the surface.
func (b *Binder) SetUVScale(u, v float32) {
	b.uniforms.SetVec2(uniformUVScale, mgl32.Vec2{u, v})
}

// SetMaterial resolves tag and uploads the material fields. A miss (or an
// empty registry) skips the upload entirely rather than rendering stale
// values.
func (b *Binder) SetMaterial(tag string) {
	if b.registry.MaterialCount() == 0 {
		return
	}
	m, ok := b.registry.Material(tag)
	if !ok {
		logger.Warn("material tag not registered", zap.String("tag", tag))
		return
	}
	b.uniforms.SetVec3(uniformMaterialDiffuse, m.Diffuse)
	b.uniforms.SetVec3(uniformMaterialSpecular, m.Specular)
	b.uniforms.SetFloat(uniformMaterialShininess, m.Shininess)
}
