package resource

import (
	"fmt"
	"image"
	"os"

	// Decoders for the formats the texture directory may contain.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// FileLoader loads and decodes texture images from the filesystem.
// Images are flipped vertically during conversion so that the first pixel
// row handed to the GPU is the bottom of the image, matching GL texture
// coordinate conventions.
type FileLoader struct{}

// Load decodes the image at path into a tightly packed pixel buffer.
// Opaque source formats (JPEG YCbCr, grayscale) produce 3-channel RGB;
// everything else produces 4-channel RGBA.
func (FileLoader) Load(path string) ([]byte, int, int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, 0, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("decoding %s: %w", path, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	channels := 4
	switch img.(type) {
	case *image.YCbCr, *image.Gray, *image.CMYK:
		channels = 3
	}

	pixels := make([]byte, width*height*channels)
	for y := 0; y < height; y++ {
		// Flip: destination row 0 takes the bottom source row.
		dstRow := (height - 1 - y) * width * channels
		for x := 0; x < width; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			off := dstRow + x*channels
			pixels[off+0] = byte(r >> 8)
			pixels[off+1] = byte(g >> 8)
			pixels[off+2] = byte(b >> 8)
			if channels == 4 {
				pixels[off+3] = byte(a >> 8)
			}
		}
	}

	return pixels, width, height, channels, nil
}
