package ggrenderer

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/user/memecanvas/pkg/ports"
)

func TestRenderer_CreateSurface(t *testing.T) {
	r := New()

	surface := r.CreateSurface(100, 80, color.White)
	if surface == nil {
		t.Fatal("expected surface to be created")
	}

	w, h := surface.Size()
	if w != 100 || h != 80 {
		t.Errorf("expected 100x80, got %dx%d", w, h)
	}

	red, _, _, _ := surface.ToImage().At(50, 40).RGBA()
	if red != 0xffff {
		t.Error("expected surface to be filled with background")
	}
}

func TestRenderer_EncodeDecodePNG(t *testing.T) {
	r := New()

	img := image.NewRGBA(image.Rect(0, 0, 30, 20))

	data, err := r.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}

	decoded, err := r.DecodeImage(data, ports.FormatAuto)
	if err != nil {
		t.Fatalf("DecodeImage failed: %v", err)
	}

	bounds := decoded.Bounds()
	if bounds.Dx() != 30 || bounds.Dy() != 20 {
		t.Errorf("expected 30x20, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderer_DecodeGarbage(t *testing.T) {
	r := New()

	if _, err := r.DecodeImage([]byte("not an image"), ports.FormatAuto); err == nil {
		t.Error("expected error for garbage data")
	}
}

func TestRenderer_ResizeImage(t *testing.T) {
	r := New()

	resized := r.ResizeImage(image.NewRGBA(image.Rect(0, 0, 100, 100)), 50, 25)

	bounds := resized.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 25 {
		t.Errorf("expected 50x25, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestSurface_Resize(t *testing.T) {
	s := NewSurface(10, 10)
	s.Resize(0, -5)

	w, h := s.Size()
	if w != 1 || h != 1 {
		t.Errorf("expected sizes to be raised to 1x1, got %dx%d", w, h)
	}
}

func TestSurface_DrawImageScaled(t *testing.T) {
	s := NewSurface(100, 100)

	small := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			small.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	s.DrawImageScaled(small, 0, 0, 100, 100)

	img := s.ToImage()
	for _, p := range []image.Point{{5, 5}, {50, 50}, {95, 95}} {
		r, g, _, a := img.At(p.X, p.Y).RGBA()
		if r < 0xf000 || g > 0x1000 || a < 0xf000 {
			t.Errorf("expected red pixel at %v after stretch", p)
		}
	}
}

func TestSurface_DrawString(t *testing.T) {
	s := NewSurface(200, 50)
	s.Fill(color.White)

	s.DrawString("HELLO", 100, 25, basicfont.Face7x13, color.Black)

	img := s.ToImage()
	dark := 0
	for y := 0; y < 50; y++ {
		for x := 0; x < 200; x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			if r < 0x8000 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("expected text pixels to be drawn")
	}
}
