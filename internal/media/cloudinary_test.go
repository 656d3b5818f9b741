package media

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func TestNewCloudinaryUploaderRequiresURL(t *testing.T) {
	if _, err := NewCloudinaryUploader("", "folder"); err == nil {
		t.Fatalf("expected error for missing cloudinary url")
	}
}

func TestProbeDimensions(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 3, 2))); err != nil {
		t.Fatalf("failed to encode test png: %v", err)
	}

	width, height := probeDimensions(buf.Bytes())
	if width != 3 || height != 2 {
		t.Fatalf("expected 3x2, got %dx%d", width, height)
	}
}

func TestProbeDimensionsUnknownFormat(t *testing.T) {
	width, height := probeDimensions([]byte("not an image"))
	if width != 0 || height != 0 {
		t.Fatalf("expected zero dimensions for undecodable payload, got %dx%d", width, height)
	}
}
