package loaders

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ImageData contains 8-bit RGB pixels, row-major with the top row first
type ImageData struct {
	Width  int
	Height int
	Pixels []byte // Width*Height*3 bytes in R,G,B order
}

// At returns the RGB bytes of pixel (x, y)
func (img *ImageData) At(x, y int) [3]byte {
	i := (y*img.Width + x) * 3
	return [3]byte{img.Pixels[i], img.Pixels[i+1], img.Pixels[i+2]}
}

// SaveImage writes an RGB byte buffer to path. Files ending in .png are
// PNG encoded; everything else is written as binary PPM.
func SaveImage(path string, width, height int, rgb []byte) error {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return SavePNG(path, width, height, rgb)
	}
	return SavePPM(path, width, height, rgb)
}

// EncodePNG writes an RGB byte buffer as an opaque PNG
func EncodePNG(w io.Writer, width, height int, rgb []byte) error {
	if width <= 0 || height <= 0 || len(rgb) != width*height*3 {
		return fmt.Errorf("cannot encode %d bytes as a %dx%d PNG", len(rgb), width, height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 3
			img.SetNRGBA(x, y, color.NRGBA{R: rgb[i], G: rgb[i+1], B: rgb[i+2], A: 255})
		}
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes a PNG file, replacing path only once the image is complete
func SavePNG(path string, width, height int, rgb []byte) error {
	return writeAtomically(path, func(w io.Writer) error {
		return EncodePNG(w, width, height, rgb)
	})
}

// LoadImage loads a PPM, PNG or JPEG image into an RGB byte buffer.
// Alpha is discarded.
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	r := bufio.NewReader(file)
	if magic, err := r.Peek(2); err == nil && string(magic) == "P6" {
		img, err := DecodePPM(r)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", filename, err)
		}
		return img, nil
	}

	// Decode image (auto-detects PNG/JPEG from file header)
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]byte, 0, width*height*3)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.NRGBA)
			pixels = append(pixels, c.R, c.G, c.B)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}

// writeAtomically writes to a temporary file next to path and renames it into
// place, so a failed write never leaves a partial image behind
func writeAtomically(path string, write func(w io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	tmpName := tmp.Name()

	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close image file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move image into place: %w", err)
	}
	return nil
}
