package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ErrInvalidPPM is returned for malformed or unsupported PPM data
var ErrInvalidPPM = errors.New("invalid PPM")

// MaxPPMDimension bounds the width and height accepted by DecodePPM
const MaxPPMDimension = 1 << 15

// initialPixelCapacity caps the up-front allocation so a lying header cannot
// reserve memory for pixels that never arrive
const initialPixelCapacity = 1 << 20

// EncodePPM writes a binary PPM (P6) image: an ASCII header followed by the raw RGB bytes
func EncodePPM(w io.Writer, width, height int, rgb []byte) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidPPM, width, height)
	}
	if len(rgb) != width*height*3 {
		return fmt.Errorf("%w: expected %d bytes for %dx%d, got %d", ErrInvalidPPM, width*height*3, width, height, len(rgb))
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", width, height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}
	if _, err := bw.Write(rgb); err != nil {
		return fmt.Errorf("failed to write PPM pixels: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write PPM pixels: %w", err)
	}
	return nil
}

// SavePPM writes a binary PPM file, replacing path only once the image is complete
func SavePPM(path string, width, height int, rgb []byte) error {
	return writeAtomically(path, func(w io.Writer) error {
		return EncodePPM(w, width, height, rgb)
	})
}

// LoadPPM loads a binary PPM (P6) image with a maximum value of 255
func LoadPPM(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, err := DecodePPM(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filename, err)
	}
	return img, nil
}

// DecodePPM reads a binary PPM (P6) image with a maximum value of 255.
// Header comments starting with '#' are skipped.
func DecodePPM(r io.ByteReader) (*ImageData, error) {
	magic, err := readHeaderToken(r)
	if err != nil {
		return nil, err
	}
	if magic != "P6" {
		return nil, fmt.Errorf("%w: unsupported magic %q", ErrInvalidPPM, magic)
	}

	var fields [3]int
	for i, name := range []string{"width", "height", "max value"} {
		token, err := readHeaderToken(r)
		if err != nil {
			return nil, err
		}
		value, err := strconv.Atoi(token)
		if err != nil || value <= 0 {
			return nil, fmt.Errorf("%w: bad %s %q", ErrInvalidPPM, name, token)
		}
		fields[i] = value
	}
	width, height, maxValue := fields[0], fields[1], fields[2]
	if maxValue != 255 {
		return nil, fmt.Errorf("%w: unsupported max value %d", ErrInvalidPPM, maxValue)
	}

	if width > MaxPPMDimension || height > MaxPPMDimension {
		return nil, fmt.Errorf("%w: dimensions %dx%d exceed %d", ErrInvalidPPM, width, height, MaxPPMDimension)
	}

	size := width * height * 3
	pixels := make([]byte, 0, min(size, initialPixelCapacity))
	for len(pixels) < size {
		b, err := r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("%w: truncated pixel data after %d of %d bytes", ErrInvalidPPM, len(pixels), size)
		}
		pixels = append(pixels, b)
	}

	return &ImageData{Width: width, Height: height, Pixels: pixels}, nil
}

// readHeaderToken reads one whitespace-delimited header token and consumes
// the single whitespace byte that terminates it
func readHeaderToken(r io.ByteReader) (string, error) {
	var token []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF && len(token) > 0 {
				return string(token), nil
			}
			return "", fmt.Errorf("%w: truncated header", ErrInvalidPPM)
		}

		switch {
		case b == '#' && len(token) == 0:
			// Comment runs to the end of the line
			for b != '\n' {
				if b, err = r.ReadByte(); err != nil {
					return "", fmt.Errorf("%w: truncated header", ErrInvalidPPM)
				}
			}
		case isSpace(b):
			if len(token) > 0 {
				return string(token), nil
			}
		default:
			token = append(token, b)
		}
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}
