package imgcap

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"testing"
)

func testGIF(frames int) *gif.GIF {
	pal := color.Palette{
		color.RGBA{0x00, 0x00, 0x00, 0xff},
		color.RGBA{0xff, 0x00, 0x00, 0xff},
	}
	g := &gif.GIF{Config: image.Config{Width: 120, Height: 80}}
	for i := 0; i < frames; i++ {
		frame := image.NewPaletted(image.Rect(0, 0, 120, 80), pal)
		for p := range frame.Pix {
			frame.Pix[p] = uint8(i % len(pal))
		}
		g.Image = append(g.Image, frame)
		g.Delay = append(g.Delay, 10*(i+1))
		g.Disposal = append(g.Disposal, gif.DisposalNone)
	}
	return g
}

func TestCaptionGIF(t *testing.T) {
	g := testGIF(2)
	style := Style{Region: Bottom, PadX: 5, PadY: 5, FontData: testFont}

	out, err := CaptionGIF(g, style, "hi")
	if err != nil {
		t.Fatalf("CaptionGIF failed: %v", err)
	}
	if len(out.Image) != 2 {
		t.Fatalf("got %d frames, want 2", len(out.Image))
	}
	for i, frame := range out.Image {
		b := frame.Bounds()
		if b.Dx() != 120 {
			t.Errorf("frame %d width = %d, want 120", i, b.Dx())
		}
		if b.Dy() <= 80 {
			t.Errorf("frame %d height = %d, caption strip missing", i, b.Dy())
		}
	}
	if out.Delay[0] != 10 || out.Delay[1] != 20 {
		t.Errorf("delays = %v, want [10 20]", out.Delay)
	}
	if out.Config.Height != out.Image[0].Bounds().Dy() {
		t.Errorf("config height %d does not match frames", out.Config.Height)
	}
}

func TestCaptionGIFEmpty(t *testing.T) {
	if _, err := CaptionGIF(&gif.GIF{}, Style{FontData: testFont}, "hi"); err == nil {
		t.Fatal("empty animation accepted")
	}
}

func TestCaptionGIFPropagatesFrameError(t *testing.T) {
	g := testGIF(2)
	style := Style{Region: Bottom, Balloon: true, FontData: testFont}

	out, err := CaptionGIF(g, style, "hi")
	if !errors.Is(err, ErrBalloonPlacement) {
		t.Fatalf("err = %v, want ErrBalloonPlacement", err)
	}
	if out != nil {
		t.Error("partial animation returned alongside an error")
	}
}

func TestPalettedFrameAddsCaptionColors(t *testing.T) {
	pal := color.Palette{color.RGBA{0xff, 0x00, 0x00, 0xff}}
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	white := color.RGBA{0xff, 0xff, 0xff, 0xff}

	frame := palettedFrame(img, pal, white, color.RGBA{0xff, 0x00, 0x00, 0xff})
	if len(frame.Palette) != 2 {
		t.Errorf("palette size = %d, want 2 (new color added, duplicate skipped)", len(frame.Palette))
	}
	if !paletteHas(frame.Palette, white) {
		t.Error("caption color missing from palette")
	}
}
