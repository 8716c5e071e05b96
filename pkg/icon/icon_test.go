package icon

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func solid(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode failed: %v", err)
	}
	return buf.Bytes()
}

func TestFitSize(t *testing.T) {
	tests := []struct {
		w, h, size int
		wantW      int
		wantH      int
	}{
		{30, 20, 15, 15, 10},
		{20, 30, 15, 10, 15},
		{15, 15, 15, 15, 15},
		{5, 5, 15, 15, 15},
		{300, 1, 15, 15, 1},
		{0, 10, 15, 0, 0},
	}
	for _, tt := range tests {
		w, h := FitSize(tt.w, tt.h, tt.size)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("FitSize(%d, %d, %d) = %dx%d, want %dx%d", tt.w, tt.h, tt.size, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestLoaderBundled(t *testing.T) {
	bundle := fstest.MapFS{
		"icons/open.png": {Data: encodePNG(t, solid(30, 20))},
		"icons/bad.png":  {Data: []byte("not an image")},
	}
	l := NewLoader(WithBundle(bundle))

	ic, err := l.Resolve("@icons/open.png", true)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if ic.Width != 15 || ic.Height != 10 {
		t.Errorf("Expected 15x10, got %dx%d", ic.Width, ic.Height)
	}
	if ic.Ref != "@icons/open.png" {
		t.Errorf("Unexpected ref %q", ic.Ref)
	}

	ic, err = l.Resolve("@icons/open.png", false)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if ic.Width != 30 || ic.Height != 20 {
		t.Errorf("Expected original 30x20, got %dx%d", ic.Width, ic.Height)
	}

	if _, err := l.Resolve("@icons/missing.png", true); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if _, err := l.Resolve("@icons/bad.png", true); !errors.Is(err, ErrDecode) {
		t.Errorf("Expected ErrDecode, got %v", err)
	}
	if _, err := l.Resolve("@../escape.png", true); !errors.Is(err, ErrMalformedRef) {
		t.Errorf("Expected ErrMalformedRef, got %v", err)
	}
	if _, err := NewLoader().Resolve("@icons/open.png", true); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound without bundle, got %v", err)
	}
}

func TestLoaderLocalFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "my icon.png")
	if err := os.WriteFile(path, encodePNG(t, solid(8, 8)), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	l := NewLoader(WithSize(4))
	ic, err := l.Resolve(path, true)
	if err != nil {
		t.Fatalf("Resolve with spaces failed: %v", err)
	}
	if ic.Width != 4 || ic.Height != 4 {
		t.Errorf("Expected 4x4, got %dx%d", ic.Width, ic.Height)
	}

	if _, err := l.Resolve("file://"+filepath.ToSlash(path), false); err != nil {
		t.Errorf("file URL failed: %v", err)
	}
	if _, err := l.Resolve(filepath.Join(dir, "nope.png"), false); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if _, err := l.Resolve("https://example.com/a.png", false); !errors.Is(err, ErrUnsupportedScheme) {
		t.Errorf("Expected ErrUnsupportedScheme, got %v", err)
	}
	if _, err := l.Resolve("  ", false); !errors.Is(err, ErrMalformedRef) {
		t.Errorf("Expected ErrMalformedRef, got %v", err)
	}
}

func TestLoaderMaterial(t *testing.T) {
	l := NewLoader()
	ic, err := l.Resolve("icons:ContentSave", true)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if ic.Width != DefaultSize || ic.Height != DefaultSize {
		t.Errorf("Expected %dx%d, got %dx%d", DefaultSize, DefaultSize, ic.Width, ic.Height)
	}

	ic, err = l.Resolve("icons:ContentSave", false)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if ic.Width != MaterialSize {
		t.Errorf("Expected %d, got %d", MaterialSize, ic.Width)
	}

	if _, err := l.Resolve("icons:NoSuchIcon", true); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	names := Names()
	if len(names) == 0 {
		t.Fatal("Expected material icon names")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Names not sorted at %d: %s >= %s", i, names[i-1], names[i])
		}
	}
}

func TestMemoryResolver(t *testing.T) {
	r := NewMemoryResolver()
	r.Add("open", solid(20, 40))
	boom := errors.New("boom")
	r.Fail("broken", boom)

	ic, err := r.Resolve("open", true)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if ic.Width != 8 || ic.Height != 15 {
		t.Errorf("Expected 8x15, got %dx%d", ic.Width, ic.Height)
	}
	if _, err := r.Resolve("broken", true); !errors.Is(err, boom) {
		t.Errorf("Expected boom, got %v", err)
	}
	if _, err := r.Resolve("unknown", true); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestNewNormalisesBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 14, 12))
	ic := New("x", src)
	if ic.Image.Rect.Min != (image.Point{}) {
		t.Errorf("Expected zero origin, got %v", ic.Image.Rect.Min)
	}
	if ic.Width != 4 || ic.Height != 2 {
		t.Errorf("Expected 4x2, got %dx%d", ic.Width, ic.Height)
	}
}

func TestDecodeReportsContentType(t *testing.T) {
	_, err := decode("doc.pdf", []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n1 0 obj\n"))
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("Expected ErrDecode, got %v", err)
	}
	if !strings.Contains(err.Error(), "application/pdf") {
		t.Errorf("Expected content type in error, got %v", err)
	}

	// PNG magic with a broken body still goes through the image decoder.
	_, err = decode("broken.png", []byte("\x89PNG\r\n\x1a\n\x00\x00"))
	if !errors.Is(err, ErrDecode) {
		t.Errorf("Expected ErrDecode, got %v", err)
	}
}
