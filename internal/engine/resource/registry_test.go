package resource

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLoader serves canned pixel buffers keyed by path.
type fakeLoader struct {
	images map[string]fakeImage
}

type fakeImage struct {
	pixels   []byte
	w, h     int
	channels int
}

func (l *fakeLoader) Load(path string) ([]byte, int, int, int, error) {
	img, ok := l.images[path]
	if !ok {
		return nil, 0, 0, 0, errors.New("file not found")
	}
	return img.pixels, img.w, img.h, img.channels, nil
}

// fakeUploader hands out sequential texture ids and records bindings.
type fakeUploader struct {
	nextID   uint32
	uploads  int
	bindings map[int]uint32
	deleted  []uint32
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{nextID: 100, bindings: make(map[int]uint32)}
}

func (u *fakeUploader) Upload(pixels []byte, w, h, channels int) (uint32, error) {
	u.nextID++
	u.uploads++
	return u.nextID, nil
}

func (u *fakeUploader) Bind(unit int, id uint32) {
	u.bindings[unit] = id
}

func (u *fakeUploader) Delete(ids []uint32) {
	u.deleted = append(u.deleted, ids...)
}

func rgb(w, h int) fakeImage {
	return fakeImage{pixels: make([]byte, w*h*3), w: w, h: h, channels: 3}
}

func newTestRegistry(paths ...string) (*Registry, *fakeUploader) {
	loader := &fakeLoader{images: make(map[string]fakeImage)}
	for _, p := range paths {
		loader.images[p] = rgb(4, 4)
	}
	gpu := newFakeUploader()
	return NewRegistry(loader, gpu), gpu
}

func TestTextureSlotMatchesRegistrationOrder(t *testing.T) {
	reg, _ := newTestRegistry("a.jpg", "b.jpg", "c.jpg")

	require.NoError(t, reg.RegisterTexture("a.jpg", "alpha"))
	require.NoError(t, reg.RegisterTexture("b.jpg", "beta"))
	require.NoError(t, reg.RegisterTexture("c.jpg", "gamma"))

	assert.Equal(t, 0, reg.TextureSlot("alpha"))
	assert.Equal(t, 1, reg.TextureSlot("beta"))
	assert.Equal(t, 2, reg.TextureSlot("gamma"))
}

func TestTextureSlotNotFound(t *testing.T) {
	reg, _ := newTestRegistry("a.jpg")
	require.NoError(t, reg.RegisterTexture("a.jpg", "alpha"))

	assert.Equal(t, SlotNotFound, reg.TextureSlot("missing"))
}

func TestRegisterTextureUnsupportedChannels(t *testing.T) {
	loader := &fakeLoader{images: map[string]fakeImage{
		"gray.png": {pixels: make([]byte, 16), w: 4, h: 4, channels: 1},
		"five.png": {pixels: make([]byte, 80), w: 4, h: 4, channels: 5},
	}}
	gpu := newFakeUploader()
	reg := NewRegistry(loader, gpu)

	assert.Error(t, reg.RegisterTexture("gray.png", "gray"))
	assert.Error(t, reg.RegisterTexture("five.png", "five"))
	assert.Equal(t, 0, reg.TextureCount())
	assert.Equal(t, 0, gpu.uploads)
}

func TestRegisterTextureLoadFailureSkipsSlot(t *testing.T) {
	// A failed registration shifts subsequent slots; order is preserved
	// among the successes.
	reg, _ := newTestRegistry("ok1.jpg", "ok2.jpg")

	require.NoError(t, reg.RegisterTexture("ok1.jpg", "first"))
	assert.Error(t, reg.RegisterTexture("missing.jpg", "broken"))
	require.NoError(t, reg.RegisterTexture("ok2.jpg", "second"))

	assert.Equal(t, 0, reg.TextureSlot("first"))
	assert.Equal(t, 1, reg.TextureSlot("second"))
	assert.Equal(t, SlotNotFound, reg.TextureSlot("broken"))
}

func TestRegisterTextureCap(t *testing.T) {
	loader := &fakeLoader{images: make(map[string]fakeImage)}
	for i := 0; i < MaxTextures+1; i++ {
		loader.images[fmt.Sprintf("t%d.jpg", i)] = rgb(2, 2)
	}
	reg := NewRegistry(loader, newFakeUploader())

	for i := 0; i < MaxTextures; i++ {
		require.NoError(t, reg.RegisterTexture(fmt.Sprintf("t%d.jpg", i), fmt.Sprintf("tex%d", i)))
	}
	assert.Error(t, reg.RegisterTexture(fmt.Sprintf("t%d.jpg", MaxTextures), "overflow"))
	assert.Equal(t, MaxTextures, reg.TextureCount())
}

func TestBindAllUsesRegistrationOrder(t *testing.T) {
	reg, gpu := newTestRegistry("a.jpg", "b.jpg")
	require.NoError(t, reg.RegisterTexture("a.jpg", "alpha"))
	require.NoError(t, reg.RegisterTexture("b.jpg", "beta"))

	reg.BindAll()

	require.Len(t, gpu.bindings, 2)
	assert.NotEqual(t, gpu.bindings[0], gpu.bindings[1])
	// Unit index equals registration order.
	assert.Contains(t, gpu.bindings, 0)
	assert.Contains(t, gpu.bindings, 1)
}

func TestSceneTextureOrder(t *testing.T) {
	// The fixed scene load order places "lid" at slot 5.
	tags := []string{"wood", "sauce1", "sauce2", "sauce3", "sauce4", "lid", "wall", "shelf", "redplastic"}
	loader := &fakeLoader{images: make(map[string]fakeImage)}
	for _, tag := range tags {
		loader.images[tag+".jpg"] = rgb(2, 2)
	}
	reg := NewRegistry(loader, newFakeUploader())

	for _, tag := range tags {
		require.NoError(t, reg.RegisterTexture(tag+".jpg", tag))
	}

	assert.Equal(t, 5, reg.TextureSlot("lid"))
	assert.Equal(t, 0, reg.TextureSlot("wood"))
	assert.Equal(t, 8, reg.TextureSlot("redplastic"))
}

func TestMaterialFirstMatchWins(t *testing.T) {
	reg, _ := newTestRegistry()

	reg.AddMaterial(Material{Tag: "glass", Shininess: 95, Diffuse: mgl32.Vec3{0.2, 0.2, 0.2}})
	reg.AddMaterial(Material{Tag: "glass", Shininess: 1}) // shadowed duplicate

	m, ok := reg.Material("glass")
	require.True(t, ok)
	assert.Equal(t, float32(95), m.Shininess)
	assert.Equal(t, mgl32.Vec3{0.2, 0.2, 0.2}, m.Diffuse)
}

func TestMaterialMissReportsNotFound(t *testing.T) {
	// A non-empty material list with no matching tag is a miss, not a
	// stale-output success.
	reg, _ := newTestRegistry()
	reg.AddMaterial(Material{Tag: "wood", Shininess: 80})

	_, ok := reg.Material("granite")
	assert.False(t, ok)

	_, ok = reg.Material("wood")
	assert.True(t, ok)
}

func TestMaterialEmptyRegistry(t *testing.T) {
	reg, _ := newTestRegistry()
	_, ok := reg.Material("anything")
	assert.False(t, ok)
}

func TestDestroyAll(t *testing.T) {
	reg, gpu := newTestRegistry("a.jpg", "b.jpg")
	require.NoError(t, reg.RegisterTexture("a.jpg", "alpha"))
	require.NoError(t, reg.RegisterTexture("b.jpg", "beta"))

	reg.DestroyAll()

	assert.Len(t, gpu.deleted, 2)
	assert.Equal(t, 0, reg.TextureCount())
	assert.Equal(t, SlotNotFound, reg.TextureSlot("alpha"))
}

func TestFileLoaderDecodesAndFlips(t *testing.T) {
	// A 1x2 NRGBA png: top pixel red, bottom pixel blue. After the flip,
	// the first row of the returned buffer is the bottom (blue) pixel.
	img := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	img.Pix = []byte{
		255, 0, 0, 255, // top: red
		0, 0, 255, 255, // bottom: blue
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "flip.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	pixels, w, h, channels, err := FileLoader{}.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, 4, channels)
	require.Len(t, pixels, 8)

	// First returned row is blue (the source bottom row).
	assert.Equal(t, byte(0), pixels[0])
	assert.Equal(t, byte(255), pixels[2])
	// Second returned row is red.
	assert.Equal(t, byte(255), pixels[4])
	assert.Equal(t, byte(0), pixels[6])
}

func TestFileLoaderMissingFile(t *testing.T) {
	_, _, _, _, err := FileLoader{}.Load("does/not/exist.png")
	assert.Error(t, err)
}
