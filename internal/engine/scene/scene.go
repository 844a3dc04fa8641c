package scene

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/mwheeler/bottlerack/internal/engine/lighting"
	"github.com/mwheeler/bottlerack/internal/engine/mesh"
	"github.com/mwheeler/bottlerack/internal/engine/resource"
	"github.com/mwheeler/bottlerack/internal/engine/shader"
	"github.com/mwheeler/bottlerack/internal/engine/transform"
	"github.com/mwheeler/bottlerack/internal/logger"
)

// sceneTextures is the fixed texture load list. Order is load-bearing:
// each texture's bind slot equals its position here.
var sceneTextures = []struct {
	file string
	tag  string
}{
	{"wood.jpg", "wood"},
	{"sauce1.jpg", "sauce1"},
	{"sauce2.jpg", "sauce2"},
	{"sauce3.jpg", "sauce3"},
	{"sauce4.jpg", "sauce4"},
	{"lid.jpg", "lid"},
	{"wall.jpg", "wall"},
	{"shelfwood.jpg", "shelf"},
	{"redplastic.jpg", "redplastic"},
}

// sceneMaterials returns the five material property sets used by the
// still life.
func sceneMaterials() []resource.Material {
	return []resource.Material{
		{
			Tag:       "glass",
			Diffuse:   mgl32.Vec3{0.2, 0.2, 0.2},
			Specular:  mgl32.Vec3{1.0, 1.0, 1.0},
			Shininess: 95.0,
		},
		{
			Tag:       "plastic",
			Diffuse:   mgl32.Vec3{0.1, 0.1, 0.1},
			Specular:  mgl32.Vec3{0.1, 0.1, 0.1},
			Shininess: 0.01,
		},
		{
			Tag:       "wood",
			Diffuse:   mgl32.Vec3{0.3, 0.3, 0.3},
			Specular:  mgl32.Vec3{0.7, 0.7, 0.7},
			Shininess: 80.0,
		},
		{
			Tag:       "wall",
			Diffuse:   mgl32.Vec3{0.3, 0.3, 0.3},
			Specular:  mgl32.Vec3{0.6, 0.6, 0.6},
			Shininess: 75.0,
		},
		{
			Tag:       "shelf",
			Diffuse:   mgl32.Vec3{0.6, 0.6, 0.6},
			Specular:  mgl32.Vec3{0.2, 0.2, 0.2},
			Shininess: 0.2,
		},
	}
}

// Scene orchestrates resource loading and per-frame rendering of the
// still life. Resources are loaded once in Prepare; Render replays the
// fixed arrangement every frame.
type Scene struct {
	uniforms shader.Uniforms
	binder   *Binder
	registry *resource.Registry
	meshes   mesh.Provider
}

// New creates a scene over the given shader, registry, and mesh provider.
func New(u shader.Uniforms, reg *resource.Registry, meshes mesh.Provider) *Scene {
	return &Scene{
		uniforms: u,
		binder:   NewBinder(u, reg),
		registry: reg,
		meshes:   meshes,
	}
}

// Prepare loads every scene resource: textures (in slot order), texture
// unit bindings, materials, the lighting rig, and all primitive meshes.
// A texture that fails to load is reported and skipped; the scene renders
// without it. Mesh preparation failure is fatal to setup.
func (s *Scene) Prepare(textureDir string) error {
	for _, t := range sceneTextures {
		path := filepath.Join(textureDir, t.file)
		if err := s.registry.RegisterTexture(path, t.tag); err != nil {
			logger.Warn("skipping texture", zap.String("tag", t.tag), zap.Error(err))
		}
	}
	s.registry.BindAll()

	for _, m := range sceneMaterials() {
		s.registry.AddMaterial(m)
	}

	lighting.StillLifeRig().Apply(s.uniforms)

	if err := s.meshes.Load(mesh.AllKinds()...); err != nil {
		return fmt.Errorf("preparing meshes: %w", err)
	}

	logger.Info("scene prepared",
		zap.Int("textures", s.registry.TextureCount()),
		zap.Int("materials", s.registry.MaterialCount()),
	)

	return nil
}

// Render draws one frame of the still life.
func (s *Scene) Render() {
	s.Execute(Frame())
}

// Execute issues the given draw instructions in order: compose the model
// matrix, push resource state, draw the primitive.
func (s *Scene) Execute(draws []Draw) {
	for _, d := range draws {
		m := transform.Compose(d.Scale, d.Rotation.X(), d.Rotation.Y(), d.Rotation.Z(), d.Position)
		s.binder.SetTransform(m)
		s.binder.SetUVScale(d.UVScale.X(), d.UVScale.Y())

		if d.Texture != "" {
			s.binder.SetTexture(d.Texture)
		} else {
			s.binder.SetColor(d.Color.X(), d.Color.Y(), d.Color.Z(), d.Color.W())
		}
		if d.Material != "" {
			s.binder.SetMaterial(d.Material)
		}

		s.meshes.Draw(d.Kind)
	}
}

// Destroy releases the scene's GPU textures.
func (s *Scene) Destroy() {
	s.registry.DestroyAll()
}
