package scene

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwheeler/bottlerack/internal/engine/mesh"
	"github.com/mwheeler/bottlerack/internal/engine/resource"
)

// uniformCall records one uniform upload in order.
type uniformCall struct {
	name  string
	value any
}

// fakeUniforms records every upload in call order.
type fakeUniforms struct {
	calls []uniformCall
}

func (f *fakeUniforms) SetMat4(n string, m mgl32.Mat4)  { f.calls = append(f.calls, uniformCall{n, m}) }
func (f *fakeUniforms) SetVec2(n string, v mgl32.Vec2)  { f.calls = append(f.calls, uniformCall{n, v}) }
func (f *fakeUniforms) SetVec3(n string, v mgl32.Vec3)  { f.calls = append(f.calls, uniformCall{n, v}) }
func (f *fakeUniforms) SetVec4(n string, v mgl32.Vec4)  { f.calls = append(f.calls, uniformCall{n, v}) }
func (f *fakeUniforms) SetFloat(n string, v float32)    { f.calls = append(f.calls, uniformCall{n, v}) }
func (f *fakeUniforms) SetInt(n string, v int32)        { f.calls = append(f.calls, uniformCall{n, v}) }
func (f *fakeUniforms) SetBool(n string, v bool)        { f.calls = append(f.calls, uniformCall{n, v}) }

func (f *fakeUniforms) last(name string) (any, bool) {
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].name == name {
			return f.calls[i].value, true
		}
	}
	return nil, false
}

// fakeProvider records draw calls by kind.
type fakeProvider struct {
	loaded []mesh.Kind
	drawn  []mesh.Kind
	fail   bool
}

func (p *fakeProvider) Load(kinds ...mesh.Kind) error {
	if p.fail {
		return errors.New("mesh upload failed")
	}
	p.loaded = append(p.loaded, kinds...)
	return nil
}

func (p *fakeProvider) Draw(kind mesh.Kind) {
	p.drawn = append(p.drawn, kind)
}

// fakeLoader serves 4-channel pixels for any known path.
type fakeLoader struct {
	known map[string]bool
}

func (l *fakeLoader) Load(path string) ([]byte, int, int, int, error) {
	if !l.known[path] {
		return nil, 0, 0, 0, errors.New("no such file")
	}
	return make([]byte, 2*2*4), 2, 2, 4, nil
}

// fakeUploader hands out sequential ids.
type fakeUploader struct {
	next uint32
}

func (u *fakeUploader) Upload([]byte, int, int, int) (uint32, error) {
	u.next++
	return u.next, nil
}
func (u *fakeUploader) Bind(int, uint32) {}
func (u *fakeUploader) Delete([]uint32)  {}

func newTestScene(t *testing.T, textureDir string, missing ...string) (*Scene, *fakeUniforms, *fakeProvider) {
	t.Helper()

	skip := make(map[string]bool, len(missing))
	for _, m := range missing {
		skip[m] = true
	}

	loader := &fakeLoader{known: make(map[string]bool)}
	for _, tex := range sceneTextures {
		if !skip[tex.tag] {
			loader.known[filepath.Join(textureDir, tex.file)] = true
		}
	}

	reg := resource.NewRegistry(loader, &fakeUploader{})
	u := &fakeUniforms{}
	p := &fakeProvider{}
	return New(u, reg, p), u, p
}

func TestPrepareLoadsEverything(t *testing.T) {
	s, u, p := newTestScene(t, "tex")

	require.NoError(t, s.Prepare("tex"))

	assert.Equal(t, 9, s.registry.TextureCount())
	assert.Equal(t, 5, s.registry.MaterialCount())
	assert.ElementsMatch(t, mesh.AllKinds(), p.loaded)

	// Registration order fixes the bind slots.
	assert.Equal(t, 0, s.registry.TextureSlot("wood"))
	assert.Equal(t, 5, s.registry.TextureSlot("lid"))
	assert.Equal(t, 8, s.registry.TextureSlot("redplastic"))

	// Lighting was pushed.
	v, ok := u.last("bUseLighting")
	require.True(t, ok)
	assert.Equal(t, true, v)
	_, ok = u.last("pointLights[2].position")
	assert.True(t, ok)
}

func TestPrepareSkipsFailedTexture(t *testing.T) {
	// A missing file shifts later slots but does not abort preparation.
	s, _, _ := newTestScene(t, "tex", "sauce2")

	require.NoError(t, s.Prepare("tex"))

	assert.Equal(t, 8, s.registry.TextureCount())
	assert.Equal(t, resource.SlotNotFound, s.registry.TextureSlot("sauce2"))
	assert.Equal(t, 2, s.registry.TextureSlot("sauce3"))
	assert.Equal(t, 4, s.registry.TextureSlot("lid"))
}

func TestPrepareMeshFailureIsFatal(t *testing.T) {
	s, _, p := newTestScene(t, "tex")
	p.fail = true

	assert.Error(t, s.Prepare("tex"))
}

func TestExecuteBottleInstructionStream(t *testing.T) {
	s, u, p := newTestScene(t, "tex")
	require.NoError(t, s.Prepare("tex"))
	u.calls = nil
	p.drawn = nil

	s.Execute(Bottle(0, 0, 0, 1, "sauce1"))

	// Five primitive draws in the fixed order.
	assert.Equal(t, []mesh.Kind{
		mesh.Cylinder, mesh.Cylinder, mesh.TaperedCylinder, mesh.Cylinder, mesh.Cylinder,
	}, p.drawn)

	// The liquid draw samples sauce1 at its registered slot, tiled 50x50.
	slot, ok := u.last(uniformTexture)
	// The last textured draw is the lid (slot 5); scan for sauce1's too.
	require.True(t, ok)
	assert.Equal(t, int32(5), slot)

	var sauceSlots []int32
	var useTexture []bool
	for _, c := range u.calls {
		switch c.name {
		case uniformTexture:
			sauceSlots = append(sauceSlots, c.value.(int32))
		case uniformUseTexture:
			useTexture = append(useTexture, c.value.(bool))
		}
	}
	// Two textured draws: liquid (sauce1, slot 1) then lid (slot 5).
	assert.Equal(t, []int32{1, 5}, sauceSlots)
	// Texture toggles per draw: on, off, off, on, off.
	assert.Equal(t, []bool{true, false, false, true, false}, useTexture)

	// Glass draws push the fixed semi-transparent color.
	color, ok := u.last(uniformColor)
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec4{0.7, 0.7, 0.8, 0.3}, color)

	// Glass material fields reach the shader.
	shin, ok := u.last(uniformMaterialShininess)
	require.True(t, ok)
	assert.Equal(t, float32(95), shin)
}

func TestExecuteUnregisteredTextureUploadsSentinel(t *testing.T) {
	s, u, p := newTestScene(t, "tex")
	require.NoError(t, s.Prepare("tex"))
	u.calls = nil

	s.Execute([]Draw{{
		Scale:   mgl32.Vec3{1, 1, 1},
		Texture: "nonexistent",
		UVScale: mgl32.Vec2{1, 1},
		Kind:    mesh.Box,
	}})

	slot, ok := u.last(uniformTexture)
	require.True(t, ok)
	assert.Equal(t, int32(resource.SlotNotFound), slot)

	// The draw is still issued; degradation is visual, not a crash.
	assert.Equal(t, mesh.Box, p.drawn[len(p.drawn)-1])
}

func TestRenderDrawCount(t *testing.T) {
	s, _, p := newTestScene(t, "tex")
	require.NoError(t, s.Prepare("tex"))
	p.drawn = nil

	s.Render()

	assert.Len(t, p.drawn, 97)

	// Rendering twice replays the identical sequence.
	first := append([]mesh.Kind(nil), p.drawn...)
	p.drawn = nil
	s.Render()
	assert.Equal(t, first, p.drawn)
}

func TestBinderMaterialMissSkipsUpload(t *testing.T) {
	s, u, _ := newTestScene(t, "tex")
	require.NoError(t, s.Prepare("tex"))
	u.calls = nil

	s.binder.SetMaterial("granite")
	for _, c := range u.calls {
		assert.NotEqual(t, uniformMaterialDiffuse, c.name)
		assert.NotEqual(t, uniformMaterialShininess, c.name)
	}
}

func TestBinderNoMaterialsRegisteredIsNoop(t *testing.T) {
	reg := resource.NewRegistry(&fakeLoader{}, &fakeUploader{})
	u := &fakeUniforms{}
	b := NewBinder(u, reg)

	b.SetMaterial("glass")
	assert.Empty(t, u.calls)
}
