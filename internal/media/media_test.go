package media

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

func TestAllowedExtension(t *testing.T) {
	cases := map[string]bool{
		"dress.PNG":        true,
		"a.b.jpeg":         true,
		"photo.webp":       true,
		"anim.gif":         true,
		"doc.pdf":          false,
		"noextension":      false,
		"trailingdot.":     false,
		"evil.jpg.exe":     false,
		"UPPER.JPG":        true,
		".hidden.jpg":      true,
		"archive.tar.gz":   false,
		"spaces in it.png": true,
	}
	for name, want := range cases {
		if got := AllowedExtension(name); got != want {
			t.Errorf("%q: got %v want %v", name, got, want)
		}
	}
}

func TestSecureFilename(t *testing.T) {
	cases := map[string]string{
		"../../etc/passwd":   "passwd",
		"my dress photo.jpg": "my_dress_photo.jpg",
		`C:\tmp\x.png`:       "x.png",
		"فستان.jpg":          "jpg",
		"..hidden.png":       "hidden.png",
	}
	for in, want := range cases {
		if got := SecureFilename(in); got != want {
			t.Errorf("%q: got %q want %q", in, got, want)
		}
	}
}

func encodePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestCompressShrinksAndReencodes(t *testing.T) {
	data := encodePNG(t, 1600, 1000, color.NRGBA{R: 200, A: 255})

	out := Compress(data)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output not decodable: %v", err)
	}
	if format != "jpeg" {
		t.Fatalf("expected jpeg, got %s", format)
	}
	if cfg.Width != 800 || cfg.Height != 500 {
		t.Fatalf("expected 800x500, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestCompressFlattensTransparencyOntoWhite(t *testing.T) {
	data := encodePNG(t, 10, 10, color.NRGBA{})

	img, err := jpeg.Decode(bytes.NewReader(Compress(data)))
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, _ := img.At(5, 5).RGBA()
	if r>>8 < 245 || g>>8 < 245 || b>>8 < 245 {
		t.Fatalf("expected white background, got %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestCompressKeepsUndecodablePayload(t *testing.T) {
	raw := []byte("definitely not an image")
	if out := Compress(raw); !bytes.Equal(out, raw) {
		t.Fatal("undecodable payload should be returned unchanged")
	}
}

// hugePNG is a valid 1x1 PNG whose header claims width x height.
func hugePNG(t *testing.T, width, height uint32) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()

	// signature (8) + length (4) + "IHDR" (4), then width and height
	binary.BigEndian.PutUint32(data[16:20], width)
	binary.BigEndian.PutUint32(data[20:24], height)
	binary.BigEndian.PutUint32(data[29:33], crc32.ChecksumIEEE(data[12:29]))
	return data
}

func TestCompressRefusesOversizedDimensions(t *testing.T) {
	raw := hugePNG(t, 100_000, 100_000)

	cfg, err := decodeConfig(raw)
	if err != nil || cfg.Width != 100_000 {
		t.Fatalf("header should still parse: %+v %v", cfg, err)
	}

	if out := Compress(raw); !bytes.Equal(out, raw) {
		t.Fatal("oversized image should be stored as uploaded")
	}
}

func TestFitNeverEnlarges(t *testing.T) {
	if w, h := fit(300, 200, 800, 800); w != 300 || h != 200 {
		t.Fatalf("got %dx%d", w, h)
	}
	if w, h := fit(1000, 4000, 800, 800); w != 200 || h != 800 {
		t.Fatalf("got %dx%d", w, h)
	}
}

func TestPlaceholder(t *testing.T) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(Placeholder()))
	if err != nil {
		t.Fatal(err)
	}
	if format != "jpeg" || cfg.Width != 300 || cfg.Height != 400 {
		t.Fatalf("unexpected placeholder %s %dx%d", format, cfg.Width, cfg.Height)
	}
}

func TestNewObjectKey(t *testing.T) {
	k := NewObjectKey()
	if !strings.HasPrefix(k, "dresses/") || !strings.HasSuffix(k, ".jpg") {
		t.Fatalf("unexpected key %s", k)
	}
	if k == NewObjectKey() {
		t.Fatal("keys should be unique")
	}
}
