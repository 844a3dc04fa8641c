package mesh

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/mwheeler/bottlerack/internal/logger"
)

// Meshes is the GL-backed Provider. One VAO per primitive kind, uploaded
// once; drawing binds the VAO and issues a single indexed draw.
type Meshes struct {
	vaos   [kindCount]uint32
	vbos   [kindCount]uint32
	ebos   [kindCount]uint32
	counts [kindCount]int32
	loaded [kindCount]bool
}

// NewMeshes creates an empty mesh set. Requires a current GL context
// before Load is called.
func NewMeshes() *Meshes {
	return &Meshes{}
}

// Load generates and uploads the given primitive kinds. Kinds already
// loaded are skipped; one VAO serves any number of draws.
func (m *Meshes) Load(kinds ...Kind) error {
	for _, kind := range kinds {
		if kind < 0 || kind >= kindCount {
			return fmt.Errorf("unknown primitive kind %d", kind)
		}
		if m.loaded[kind] {
			continue
		}

		geo := buildGeometry(kind)
		if len(geo.vertices) == 0 {
			return fmt.Errorf("no geometry generated for %s", kind)
		}

		gl.GenVertexArrays(1, &m.vaos[kind])
		gl.BindVertexArray(m.vaos[kind])

		gl.GenBuffers(1, &m.vbos[kind])
		gl.BindBuffer(gl.ARRAY_BUFFER, m.vbos[kind])
		gl.BufferData(gl.ARRAY_BUFFER, len(geo.vertices)*4, gl.Ptr(geo.vertices), gl.STATIC_DRAW)

		gl.GenBuffers(1, &m.ebos[kind])
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebos[kind])
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(geo.indices)*4, gl.Ptr(geo.indices), gl.STATIC_DRAW)

		stride := int32(floatsPerVertex * 4)
		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
		gl.EnableVertexAttribArray(1)
		gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
		gl.EnableVertexAttribArray(2)
		gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)

		gl.BindVertexArray(0)

		m.counts[kind] = int32(len(geo.indices))
		m.loaded[kind] = true

		logger.Debug("mesh loaded",
			zap.Stringer("kind", kind),
			zap.Int("vertices", geo.vertexCount()),
			zap.Int("indices", len(geo.indices)),
		)
	}
	return nil
}

// Draw renders one instance of the primitive. Drawing an unloaded kind is
// a logged no-op rather than a crash.
func (m *Meshes) Draw(kind Kind) {
	if kind < 0 || kind >= kindCount || !m.loaded[kind] {
		logger.Warn("draw of unloaded mesh", zap.Stringer("kind", kind))
		return
	}
	gl.BindVertexArray(m.vaos[kind])
	gl.DrawElements(gl.TRIANGLES, m.counts[kind], gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Destroy releases all GL buffers and vertex arrays.
func (m *Meshes) Destroy() {
	for kind := Kind(0); kind < kindCount; kind++ {
		if !m.loaded[kind] {
			continue
		}
		gl.DeleteBuffers(1, &m.vbos[kind])
		gl.DeleteBuffers(1, &m.ebos[kind])
		gl.DeleteVertexArrays(1, &m.vaos[kind])
		m.loaded[kind] = false
	}
}
