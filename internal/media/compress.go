package media

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"log"

	// decoders
	_ "image/gif"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	MaxWidth  = 800
	MaxHeight = 800

	// MaxPixels bounds what an upload may declare before it is decoded.
	MaxPixels = 40_000_000

	jpegQuality        = 85
	placeholderQuality = 70
)

const ContentTypeJPEG = "image/jpeg"

// Compress shrinks the image to fit MaxWidth x MaxHeight, flattens any
// transparency onto white and re-encodes it as JPEG. Payloads that cannot be
// decoded are returned unchanged.
func Compress(data []byte) []byte {
	img, err := decode(data)
	if err != nil {
		log.Printf("image not decodable, storing as uploaded: %v", err)
		return data
	}

	src := img.Bounds()
	w, h := fit(src.Dx(), src.Dy(), MaxWidth, MaxHeight)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, src, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		log.Printf("jpeg encode failed, storing as uploaded: %v", err)
		return data
	}
	return buf.Bytes()
}

func decode(data []byte) (image.Image, error) {
	cfg, err := decodeConfig(data)
	if err != nil {
		return nil, err
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return nil, fmt.Errorf("image is %dx%d, over %d pixels", cfg.Width, cfg.Height, MaxPixels)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err == nil {
		return img, nil
	}
	if wimg, werr := webp.Decode(bytes.NewReader(data)); werr == nil {
		return wimg, nil
	}
	return nil, err
}

// decodeConfig reads only the header, so the size can be checked before any
// pixel buffer is allocated.
func decodeConfig(data []byte) (image.Config, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err == nil {
		return cfg, nil
	}
	if wcfg, werr := webp.DecodeConfig(bytes.NewReader(data)); werr == nil {
		return wcfg, nil
	}
	return image.Config{}, err
}

// fit keeps the aspect ratio and never enlarges.
func fit(w, h, maxW, maxH int) (int, int) {
	if w <= maxW && h <= maxH {
		return w, h
	}
	if w*maxH > h*maxW {
		return maxW, max(1, h*maxW/w)
	}
	return max(1, w*maxH/h), maxH
}

var placeholderColor = color.RGBA{R: 211, G: 211, B: 211, A: 255}

// Placeholder is the 300x400 light gray JPEG shown for dresses without a photo.
func Placeholder() []byte {
	img := image.NewRGBA(image.Rect(0, 0, 300, 400))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: placeholderColor}, image.Point{}, draw.Src)

	var buf bytes.Buffer
	_ = jpeg.Encode(&buf, img, &jpeg.Options{Quality: placeholderQuality})
	return buf.Bytes()
}
