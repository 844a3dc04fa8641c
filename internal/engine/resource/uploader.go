package resource

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLUploader uploads textures through the OpenGL context on the calling
// thread. Requires an initialized GL context.
type GLUploader struct{}

// Upload creates a GL texture object from raw pixels with mipmaps, repeat
// wrapping on both axes, and linear min/mag filtering.
func (GLUploader) Upload(pixels []byte, width, height, channels int) (uint32, error) {
	var internalFormat int32
	var format uint32
	switch channels {
	case 3:
		internalFormat, format = gl.RGB8, gl.RGB
	case 4:
		internalFormat, format = gl.RGBA8, gl.RGBA
	default:
		return 0, fmt.Errorf("unsupported channel count %d", channels)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, int32(width), int32(height),
		0, format, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return id, nil
}

// Bind binds the texture object to the given texture unit.
func (GLUploader) Bind(unit int, id uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, id)
}

// Delete releases the given texture objects.
func (GLUploader) Delete(ids []uint32) {
	if len(ids) > 0 {
		gl.DeleteTextures(int32(len(ids)), &ids[0])
	}
}
