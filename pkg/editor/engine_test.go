package editor

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/user/memecanvas/pkg/adapters/ggrenderer"
	"github.com/user/memecanvas/pkg/adapters/logger"
	"github.com/user/memecanvas/pkg/adapters/placeholder"
	"github.com/user/memecanvas/pkg/assets"
	"github.com/user/memecanvas/pkg/caption"
	"github.com/user/memecanvas/pkg/meme"
	"github.com/user/memecanvas/pkg/mocks"
)

// newPixelEditor returns an editor drawing onto a real canvas.
func newPixelEditor(t *testing.T, loader *mocks.ImageLoader) *Editor {
	t.Helper()
	gen := placeholder.New(placeholder.DefaultTheme(), caption.DefaultFonts())
	return New(assets.Default(), loader, gen, ggrenderer.NewSurface(1, 1), ggrenderer.New(),
		mocks.NewDebugSink(false), logger.NewNoop(), DefaultOptions())
}

func pixels(t *testing.T, img image.Image) *image.RGBA {
	t.Helper()
	rgba, ok := img.(*image.RGBA)
	if !ok {
		t.Fatalf("expected *image.RGBA, got %T", img)
	}
	return rgba
}

func rgbaAt(img *image.RGBA, x, y int) color.RGBA {
	return img.RGBAAt(x, y)
}

func TestEngine_IdleScreen(t *testing.T) {
	ed := newPixelEditor(t, mocks.NewImageLoader())

	img := pixels(t, ed.Image())
	if b := img.Bounds(); b.Dx() != 600 || b.Dy() != 600 {
		t.Fatalf("expected 600x600 idle canvas, got %v", b)
	}
	want := color.RGBA{R: 0x2a, G: 0x2a, B: 0x2a, A: 0xff}
	if got := rgbaAt(img, 5, 5); got != want {
		t.Errorf("expected idle background %v, got %v", want, got)
	}
}

func TestEngine_ClassicTextDoesNotAccumulate(t *testing.T) {
	newLoaded := func() *Editor {
		loader := mocks.NewImageLoader()
		loader.Images["templates/drake.jpeg"] = mocks.SolidImage(600, 600, color.RGBA{R: 0x30, G: 0x60, B: 0x90, A: 0xff})
		ed := newPixelEditor(t, loader)
		done, err := ed.SelectTemplate(context.Background(), "drake")
		if err != nil {
			t.Fatal(err)
		}
		<-done
		return ed
	}

	typed := newLoaded()
	for _, s := range []string{"w", "wa", "wait", "wait what"} {
		typed.SetTopText(s)
	}
	direct := newLoaded()
	direct.SetTopText("wait what")

	a := pixels(t, typed.Image())
	b := pixels(t, direct.Image())
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("expected typing to produce the same pixels as setting the final text")
	}

	blank := newLoaded()
	typed.SetTopText("")
	if !bytes.Equal(pixels(t, typed.Image()).Pix, pixels(t, blank.Image()).Pix) {
		t.Error("expected clearing the text to restore the bare background")
	}
}

func TestEngine_CaptionHasFillAndOutline(t *testing.T) {
	loader := mocks.NewImageLoader()
	loader.Images["templates/drake.jpeg"] = mocks.SolidImage(600, 600, color.RGBA{R: 0x80, A: 0xff})
	ed := newPixelEditor(t, loader)
	done, _ := ed.SelectTemplate(context.Background(), "drake")
	<-done

	ed.SetTopText("MMMM")

	img := pixels(t, ed.Image())
	var white, black bool
	for y := 0; y < 96; y++ {
		for x := 0; x < 600; x++ {
			switch rgbaAt(img, x, y) {
			case color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}:
				white = true
			case color.RGBA{A: 0xff}:
				black = true
			}
		}
	}
	if !white || !black {
		t.Errorf("expected white fill and black outline in the top band (white %v, black %v)", white, black)
	}
	if got := rgbaAt(img, 5, 595); got != (color.RGBA{R: 0x80, A: 0xff}) {
		t.Errorf("expected untouched background away from text, got %v", got)
	}
}

func TestEngine_PlaceholderOnDecodeFailure(t *testing.T) {
	ed := newPixelEditor(t, mocks.NewImageLoader())

	done, err := ed.SelectTemplate(context.Background(), "drake")
	if err != nil {
		t.Fatal(err)
	}
	<-done

	snap := ed.Snapshot()
	if snap.Display != (meme.Size{Width: 600, Height: 600}) {
		t.Fatalf("expected 600x600 placeholder, got %v", snap.Display)
	}

	ed.SetTopText("still works")
	img := pixels(t, ed.Image())
	if b := img.Bounds(); b.Dx() != 600 || b.Dy() != 600 {
		t.Errorf("expected 600x600 canvas, got %v", b)
	}
	idle := color.RGBA{R: 0x2a, G: 0x2a, B: 0x2a, A: 0xff}
	if got := rgbaAt(img, 5, 300); got == idle {
		t.Error("expected the placeholder gradient instead of the idle background")
	}
}
