package imgcap

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"runtime"

	"github.com/creachadair/taskgroup"
	"golang.org/x/image/draw"
)

// CaptionGIF applies the caption pipeline to every frame of an animated
// image and returns a new animation. Frames carry no state between one
// another beyond the shared style and text, so they are captioned
// concurrently; the first failure aborts the whole sequence and no
// partial animation is returned.
func CaptionGIF(g *gif.GIF, style Style, text string) (*gif.GIF, error) {
	if len(g.Image) == 0 {
		return nil, errors.New("imgcap: animation has no frames")
	}

	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		bounds = g.Image[0].Bounds()
	}

	// Coalesce each frame over a running backdrop that honors the
	// previous frame's disposal, so every captioner sees a full image.
	coalesced := make([]*image.RGBA, len(g.Image))
	backdrop := image.NewRGBA(bounds)
	for i, frame := range g.Image {
		full := image.NewRGBA(bounds)
		draw.Draw(full, bounds, backdrop, bounds.Min, draw.Src)
		fb := frame.Bounds()
		draw.Draw(full, fb, frame, fb.Min, draw.Over)
		coalesced[i] = full

		if i == len(g.Image)-1 {
			break
		}
		disposal := byte(gif.DisposalNone)
		if i < len(g.Disposal) && g.Disposal[i] != 0 {
			disposal = g.Disposal[i]
		}
		switch disposal {
		case gif.DisposalBackground:
			backdrop = image.NewRGBA(bounds)
		case gif.DisposalPrevious:
			// Discard whatever this frame drew.
		default:
			backdrop = full
		}
	}

	out := &gif.GIF{
		Image:     make([]*image.Paletted, len(g.Image)),
		Delay:     append([]int(nil), g.Delay...),
		Disposal:  make([]byte, len(g.Image)),
		LoopCount: g.LoopCount,
	}

	errs := make([]error, len(g.Image))
	grp, run := taskgroup.New(nil).Limit(runtime.NumCPU())
	for i := range coalesced {
		i := i
		run.Run(func() {
			cp, err := New(coalesced[i], style)
			if err != nil {
				errs[i] = err
				return
			}
			cp.AddText(text)
			img, err := cp.Finish()
			if err != nil {
				errs[i] = err
				return
			}
			out.Image[i] = palettedFrame(img, g.Image[i].Palette,
				cp.style.TextColor, cp.style.Background)
		})
	}
	grp.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	first := out.Image[0].Bounds()
	out.Config = image.Config{Width: first.Dx(), Height: first.Dy()}
	return out, nil
}

// palettedFrame re-palettizes a captioned frame, making room for the
// caption colors when the source palette has space left.
func palettedFrame(img image.Image, pal color.Palette, extra ...color.Color) *image.Paletted {
	pal = append(color.Palette(nil), pal...)
	for _, c := range extra {
		if len(pal) >= 256 {
			break
		}
		if !paletteHas(pal, c) {
			pal = append(pal, c)
		}
	}
	b := img.Bounds()
	dst := image.NewPaletted(b, pal)
	draw.FloydSteinberg.Draw(dst, b, img, b.Min)
	return dst
}

func paletteHas(pal color.Palette, c color.Color) bool {
	cr, cg, cb, ca := c.RGBA()
	for _, p := range pal {
		pr, pg, pb, pa := p.RGBA()
		if cr == pr && cg == pg && cb == pb && ca == pa {
			return true
		}
	}
	return false
}
