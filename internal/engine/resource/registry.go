// Package resource maps symbolic tags to GPU textures and material
// property sets for the scene layer.
package resource

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/mwheeler/bottlerack/internal/logger"
)

// MaxTextures is the number of texture units the registry will fill.
const MaxTextures = 16

// SlotNotFound is returned by TextureSlot for unregistered tags. Callers
// must treat it as "no texture", never as unit 0.
const SlotNotFound = -1

// Material holds the lighting properties looked up by tag during rendering.
type Material struct {
	Tag       string
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32
}

// ImageLoader decodes an image file into raw pixels. Implementations flip
// the image vertically on load. Channels is 3 (RGB) or 4 (RGBA); any other
// layout is rejected by the registry.
type ImageLoader interface {
	Load(path string) (pixels []byte, width, height, channels int, err error)
}

// TextureUploader owns the GPU side of texture management. It exists as an
// interface so the registry can be exercised without a GL context.
type TextureUploader interface {
	// Upload creates a texture object from raw pixels, generates mipmaps,
	// and applies the fixed sampling policy (repeat wrap, linear filtering).
	Upload(pixels []byte, width, height, channels int) (uint32, error)
	// Bind binds the texture object to the given texture unit.
	Bind(unit int, id uint32)
	// Delete releases the given texture objects.
	Delete(ids []uint32)
}

type textureEntry struct {
	tag string
	id  uint32
}

// Registry owns the tag-to-texture and tag-to-material mappings. It is
// populated once during scene preparation and read-only afterwards; the
// render path performs no mutation, so no locking is needed.
type Registry struct {
	loader    ImageLoader
	gpu       TextureUploader
	textures  []textureEntry
	materials []Material
}

// NewRegistry creates an empty registry using the given collaborators.
func NewRegistry(loader ImageLoader, gpu TextureUploader) *Registry {
	return &Registry{
		loader: loader,
		gpu:    gpu,
	}
}

// RegisterTexture decodes the image at path and registers it under tag.
// The texture's bind slot equals its registration order, so call order is
// load-bearing. Images with a channel count other than 3 or 4 are rejected
// with no entry added.
func (r *Registry) RegisterTexture(path, tag string) error {
	if len(r.textures) >= MaxTextures {
		return fmt.Errorf("texture %q: all %d texture slots in use", tag, MaxTextures)
	}

	pixels, width, height, channels, err := r.loader.Load(path)
	if err != nil {
		return fmt.Errorf("texture %q: %w", tag, err)
	}

	if channels != 3 && channels != 4 {
		return fmt.Errorf("texture %q: unsupported channel count %d", tag, channels)
	}

	id, err := r.gpu.Upload(pixels, width, height, channels)
	if err != nil {
		return fmt.Errorf("texture %q: %w", tag, err)
	}

	r.textures = append(r.textures, textureEntry{tag: tag, id: id})

	logger.Debug("texture registered",
		zap.String("tag", tag),
		zap.String("path", path),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("channels", channels),
		zap.Int("slot", len(r.textures)-1),
	)

	return nil
}

// BindAll binds every registered texture to the texture unit matching its
// registration order. Call once after all textures are registered and
// before any draw that samples them.
func (r *Registry) BindAll() {
	for i, entry := range r.textures {
		r.gpu.Bind(i, entry.id)
	}
}

// TextureSlot returns the zero-based unit index for tag, or SlotNotFound.
// First match wins.
func (r *Registry) TextureSlot(tag string) int {
	for i, entry := range r.textures {
		if entry.tag == tag {
			return i
		}
	}
	return SlotNotFound
}

// TextureCount returns the number of registered textures.
func (r *Registry) TextureCount() int {
	return len(r.textures)
}

// AddMaterial appends a material. Duplicate tags are permitted; lookups
// return the first match, shadowing later duplicates.
func (r *Registry) AddMaterial(m Material) {
	r.materials = append(r.materials, m)
}

// Material returns a copy of the first material registered under tag.
// A miss returns ok=false and the caller skips the material upload; the
// miss never aborts the draw.
func (r *Registry) Material(tag string) (Material, bool) {
	for _, m := range r.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

// MaterialCount returns the number of registered materials.
func (r *Registry) MaterialCount() int {
	return len(r.materials)
}

// DestroyAll releases every registered GPU texture and clears the registry.
func (r *Registry) DestroyAll() {
	if len(r.textures) == 0 {
		return
	}
	ids := make([]uint32, len(r.textures))
	for i, entry := range r.textures {
		ids[i] = entry.id
	}
	r.gpu.Delete(ids)
	r.textures = nil
}
