package opengl

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Capture reads the current framebuffer into an image with the top row first.
func (r *Renderer) Capture() *image.RGBA {
	pixels := make([]byte, r.width*r.height*4)
	gl.ReadPixels(0, 0, int32(r.width), int32(r.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// OpenGL origin is bottom-left
	flipRows(pixels, r.width*4, r.height)

	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	copy(img.Pix, pixels)
	return img
}

// flipRows reverses the order of height rows of rowLen bytes in place.
func flipRows(pixels []byte, rowLen, height int) {
	tmp := make([]byte, rowLen)
	for y := 0; y < height/2; y++ {
		top := y * rowLen
		bot := (height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}
}
