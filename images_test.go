package trellis

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestLoadImage(t *testing.T) {
	img, err := LoadImage(bytes.NewReader(encodePNG(t, 3, 2)))
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("bounds = %v, want 3x2", b)
	}
}

func TestLoadImageErrors(t *testing.T) {
	if _, err := LoadImage(strings.NewReader("definitely not an image")); err == nil {
		t.Error("LoadImage should reject garbage")
	}
	if _, err := LoadImageFile(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("LoadImageFile should fail on a missing file")
	}
}

func TestLoadImageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := os.WriteFile(path, encodePNG(t, 9, 9), 0o644); err != nil {
		t.Fatal(err)
	}
	img, err := LoadImageFile(path)
	if err != nil {
		t.Fatalf("LoadImageFile: %v", err)
	}
	if img.Bounds().Dx() != 9 {
		t.Errorf("width = %d, want 9", img.Bounds().Dx())
	}
}

func TestLoadStylesheetResolvesImagesRelative(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tile.png"), encodePNG(t, 4, 4), 0o644); err != nil {
		t.Fatal(err)
	}
	doc := "Group:\n  default:\n    background: {type: tiled-image, image: tile.png}\n"
	path := filepath.Join(dir, "ui.yml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	sheet, err := LoadStylesheet(path)
	if err != nil {
		t.Fatalf("LoadStylesheet: %v", err)
	}
	bg, ok := Get(sheet.Styles("Group"), BackgroundStyle, ModeDefault)
	if !ok || bg.kind() != "tiled-image" {
		t.Errorf("background = %v, want tiled-image", bg.kind())
	}
}
