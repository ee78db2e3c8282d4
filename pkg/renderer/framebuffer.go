package renderer

import "github.com/df07/go-phong-raytracer/pkg/core"

// Framebuffer holds linear RGB colors, row-major with the origin at the top-left
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer allocates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color of pixel (i, j)
func (fb *Framebuffer) At(i, j int) core.Vec3 {
	return fb.Pixels[i+j*fb.Width]
}

// Set stores the color of pixel (i, j)
func (fb *Framebuffer) Set(i, j int, color core.Vec3) {
	fb.Pixels[i+j*fb.Width] = color
}

// Row returns the pixels of row j. Distinct rows never share memory.
func (fb *Framebuffer) Row(j int) []core.Vec3 {
	start := j * fb.Width
	return fb.Pixels[start : start+fb.Width : start+fb.Width]
}

// RGB8 returns the tone-mapped image as width*height*3 bytes, top row first, in R,G,B order
func (fb *Framebuffer) RGB8() []byte {
	out := make([]byte, 0, len(fb.Pixels)*3)
	for _, c := range fb.Pixels {
		q := Quantize(ToneMap(c))
		out = append(out, q[0], q[1], q[2])
	}
	return out
}

// ToneMap brings a color into [0,1]. Colors brighter than 1 are scaled down
// uniformly so the largest channel is 1, which keeps the hue; then every
// channel is clamped.
func ToneMap(c core.Vec3) core.Vec3 {
	if m := c.MaxComponent(); m > 1 {
		c = c.Multiply(1 / m)
	}
	return c.Clamp(0, 1)
}

// Quantize converts a [0,1] color to bytes by truncating 255*channel
func Quantize(c core.Vec3) [3]byte {
	return [3]byte{
		uint8(255 * c.X),
		uint8(255 * c.Y),
		uint8(255 * c.Z),
	}
}
