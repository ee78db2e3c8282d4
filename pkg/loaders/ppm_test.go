package loaders

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEncodePPM_HeaderAndPayload(t *testing.T) {
	rgb := []byte{
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 51, 178, 204,
	}

	var buf bytes.Buffer
	if err := EncodePPM(&buf, 2, 2, rgb); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	header := "P6\n2 2\n255\n"
	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte(header)) {
		t.Fatalf("Expected header %q, got %q", header, out[:min(len(out), len(header))])
	}
	if !bytes.Equal(out[len(header):], rgb) {
		t.Errorf("Pixel payload mismatch: got %v", out[len(header):])
	}
	if len(out) != len(header)+2*2*3 {
		t.Errorf("Expected %d bytes total, got %d", len(header)+12, len(out))
	}
}

func TestEncodePPM_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		rgb           []byte
	}{
		{"short buffer", 2, 2, make([]byte, 11)},
		{"long buffer", 1, 1, make([]byte, 4)},
		{"zero width", 0, 2, nil},
		{"negative height", 2, -1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := EncodePPM(&buf, tt.width, tt.height, tt.rgb)
			if !errors.Is(err, ErrInvalidPPM) {
				t.Errorf("Expected ErrInvalidPPM, got %v", err)
			}
			if buf.Len() != 0 {
				t.Errorf("Expected nothing written, got %d bytes", buf.Len())
			}
		})
	}
}

func TestSaveAndLoadPPM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.ppm")

	rgb := make([]byte, 4*3*3)
	for i := range rgb {
		rgb[i] = byte(i * 7)
	}

	if err := SavePPM(path, 4, 3, rgb); err != nil {
		t.Fatalf("Unexpected error saving: %v", err)
	}

	img, err := LoadPPM(path)
	if err != nil {
		t.Fatalf("Unexpected error loading: %v", err)
	}
	if img.Width != 4 || img.Height != 3 {
		t.Errorf("Expected 4x3, got %dx%d", img.Width, img.Height)
	}
	if !bytes.Equal(img.Pixels, rgb) {
		t.Errorf("Pixel data changed on disk")
	}
	if got := img.At(1, 2); got != [3]byte{rgb[27], rgb[28], rgb[29]} {
		t.Errorf("At(1, 2) returned %v", got)
	}

	// No temporary files left behind
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected only the image in the directory, found %d entries", len(entries))
	}
}

func TestSavePPM_FailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.ppm")

	if err := SavePPM(path, 2, 2, []byte{1, 2, 3}); err == nil {
		t.Fatal("Expected error for mismatched buffer")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("Expected no files after a failed save, found %d", len(entries))
	}

	missingDir := filepath.Join(dir, "missing", "out.ppm")
	if err := SavePPM(missingDir, 1, 1, []byte{0, 0, 0}); err == nil {
		t.Error("Expected error when the directory does not exist")
	}
}

func TestDecodePPM(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectErr bool
		width     int
		height    int
	}{
		{"minimal", "P6\n1 1\n255\n\x01\x02\x03", false, 1, 1},
		{"comments and spacing", "P6 # made by hand\n2  1\t255\n\x00\x00\x00\xff\xff\xff", false, 2, 1},
		{"ascii variant", "P3\n1 1\n255\n1 2 3", true, 0, 0},
		{"sixteen bit", "P6\n1 1\n65535\n\x00\x00\x00\x00\x00\x00", true, 0, 0},
		{"truncated pixels", "P6\n2 2\n255\n\x00\x00", true, 0, 0},
		{"truncated header", "P6\n2", true, 0, 0},
		{"bad width", "P6\nx 2\n255\n", true, 0, 0},
		{"width overflows allocation", "P6\n4611686018427387904 1\n255\n", true, 0, 0},
		{"product wraps to zero", "P6\n4294967296 4294967296\n255\n", true, 0, 0},
		{"width above limit", "P6\n32769 1\n255\n", true, 0, 0},
		{"limit with no pixels", "P6\n32768 32768\n255\n\x00", true, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := DecodePPM(bufio.NewReader(strings.NewReader(tt.input)))
			if tt.expectErr {
				if !errors.Is(err, ErrInvalidPPM) {
					t.Errorf("Expected ErrInvalidPPM, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if img.Width != tt.width || img.Height != tt.height {
				t.Errorf("Expected %dx%d, got %dx%d", tt.width, tt.height, img.Width, img.Height)
			}
		})
	}
}

func TestLoadPPM_MissingFile(t *testing.T) {
	if _, err := LoadPPM(filepath.Join(t.TempDir(), "nope.ppm")); err == nil {
		t.Error("Expected error for missing file")
	}
}
