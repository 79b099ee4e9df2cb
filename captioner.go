// Package imgcap captions still and animated images: it wraps caption
// text to fit a region of the image, optionally draws a speech balloon
// with a tail, and composites the result onto a new canvas.
package imgcap

import (
	"fmt"
	"image"
	"strings"

	"github.com/llgcode/draw2d/draw2dimg"
	"golang.org/x/image/draw"
)

// balloonMargin inflates the text box before the balloon border is
// planned around it.
const balloonMargin = 5

// A Captioner accumulates caption text and composites it onto one base
// image. Construct with New, append text with AddText, then call Finish
// once. Instances are single-use and not safe for concurrent use.
//
//	img, _ := png.Decode(f)
//	cap, err := imgcap.New(img, imgcap.Style{Region: imgcap.Bottom, PadX: 5, PadY: 5})
//	cap.AddText("Hello darkness,")
//	cap.AddText("my old friend...")
//	out, err := cap.Finish()
type Captioner struct {
	base    image.Image
	style   Style
	metrics *metrics
	text    []string
}

// New prepares a captioner for one image, resolving the font and
// validating the configuration. A balloon requested for an outer region
// is rejected rather than silently dropped.
func New(img image.Image, style Style) (*Captioner, error) {
	if !style.Region.known() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRegion, int(style.Region))
	}
	if style.Balloon && !style.Region.Inner() {
		return nil, fmt.Errorf("%w: region %s", ErrBalloonPlacement, style.Region)
	}
	if style.FontSize <= 0 {
		style.FontSize = DefaultFontSize
	}
	if style.Font == "" {
		style.Font = DefaultFont
	}
	if style.TextColor == nil {
		style.TextColor = DefaultTextColor
	}
	if style.Background == nil {
		style.Background = DefaultBackground
	}

	fnt := style.FontData
	if fnt == nil {
		dirs := style.FontDirs
		if dirs == nil {
			dirs = DefaultFontDirs()
		}
		finder := &FontFinder{Dirs: dirs}
		var err error
		if fnt, err = finder.Load(style.Font); err != nil {
			return nil, err
		}
	}

	return &Captioner{
		base:    img,
		style:   style,
		metrics: newMetrics(fnt, style.FontSize, style.LineSpacing),
	}, nil
}

// AddText appends a caption fragment. Fragments are joined with single
// spaces and trimmed when the image is finished.
func (c *Captioner) AddText(text string) {
	c.text = append(c.text, text)
}

// placement is the geometry resolved for one region: where the text box
// sits in the new canvas and how large the canvas starts out. A zero
// text width or height means that dimension is unconstrained and the
// canvas auto-sizes to the wrapped text.
type placement struct {
	textX, textY     int
	textW, textH     int
	canvasW, canvasH int
}

// resolvePlacement computes the text box and canvas size for a region.
// Each region has its own disjoint formula; an unknown value is an error,
// never a silent default.
func resolvePlacement(r Region, baseW, baseH int, s Style) (placement, error) {
	var p placement
	switch r {
	case Top, Bottom:
		p.textW = baseW - 2*s.PadX
		if s.Space != 0 {
			p.textH = s.Space - 2*s.PadY
		}
		p.canvasW, p.canvasH = baseW, baseH+s.Space
		p.textX = s.PadX
		if r == Top {
			p.textY = s.PadY
		} else {
			p.textY = baseH + s.PadY
		}
	case Left, Right:
		if s.Space != 0 {
			p.textW = s.Space - 2*s.PadX
		}
		p.textH = baseH - 2*s.PadY
		p.canvasW, p.canvasH = baseW+s.Space, baseH
		p.textY = s.PadY
		if r == Left {
			p.textX = s.PadX
		} else {
			p.textX = baseW + s.PadX
		}
	case NorthWest, NorthEast, SouthEast, SouthWest:
		p.canvasW, p.canvasH = baseW, baseH
		p.textW = baseW/2 - 2*s.PadX
		p.textH = baseH / 2
		switch r {
		case NorthWest:
			p.textX, p.textY = s.PadX, s.PadY
		case NorthEast:
			p.textX, p.textY = baseW/2+s.PadX, s.PadY
		case SouthEast:
			p.textX, p.textY = s.PadX+baseW/2, baseH-s.PadY-p.textH
		case SouthWest:
			p.textX, p.textY = s.PadX, s.PadY+baseH/2
		}
	case North, South:
		p.canvasW, p.canvasH = baseW, baseH
		p.textX = s.PadX
		p.textW = baseW - 2*s.PadX
		p.textH = baseH/2 - 2*s.PadY
		if r == North {
			p.textY = s.PadY
		} else {
			p.textY = baseH/2 + s.PadY
		}
	case East, West:
		p.canvasW, p.canvasH = baseW, baseH
		p.textY = s.PadY
		p.textW = baseW/2 - 2*s.PadX
		p.textH = baseH - 2*s.PadY
		if r == West {
			p.textX = s.PadX
		} else {
			p.textX = s.PadX + baseW/2
		}
	default:
		return p, fmt.Errorf("%w: %d", ErrUnknownRegion, int(r))
	}
	p.textX += s.ShiftX
	p.textY += s.ShiftY
	if p.textW < 0 || p.textH < 0 {
		return p, fmt.Errorf("%w: %dx%d box for region %s", ErrBadBox, p.textW, p.textH, r)
	}
	return p, nil
}

// Finish composites the caption onto a new canvas and returns it. The
// result is deterministic: the same captioner state always yields the
// same wrapped text and geometry.
func (c *Captioner) Finish() (image.Image, error) {
	baseW := c.base.Bounds().Dx()
	baseH := c.base.Bounds().Dy()

	p, err := resolvePlacement(c.style.Region, baseW, baseH, c.style)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(strings.Join(c.text, " "))
	wrapped, textW, textH, err := wrapToFit(text, float64(p.textW), float64(p.textH), c.metrics.measure)
	if err != nil {
		return nil, err
	}

	// Auto-size the canvas for edge placements with no reserved strip.
	if c.style.Space == 0 {
		switch c.style.Region {
		case Top, Bottom:
			p.canvasH += int(textH) + 2*c.style.PadY
		case Left, Right:
			p.canvasW += int(textW) + 2*c.style.PadX
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, p.canvasW, p.canvasH))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(c.style.Background), image.Point{}, draw.Src)

	var paste image.Point
	switch c.style.Region {
	case Top:
		paste = image.Pt(0, p.canvasH-baseH)
	case Left:
		paste = image.Pt(p.canvasW-baseW, 0)
	}
	draw.Draw(dst, image.Rectangle{paste, paste.Add(image.Pt(baseW, baseH))},
		c.base, c.base.Bounds().Min, draw.Over)

	textX, textY := float64(p.textX), float64(p.textY)
	// Southern placements sit on the bottom of their half, not the top.
	switch c.style.Region {
	case South, SouthEast, SouthWest:
		textY += float64(baseH)/2 - textH - float64(2*c.style.PadY)
	}

	gc := draw2dimg.NewGraphicContext(dst)
	gc.SetDPI(72)

	if c.style.Balloon {
		plan := planBalloon(
			textX-balloonMargin, textY-balloonMargin,
			textW+2*balloonMargin, textH+2*balloonMargin,
			float64(c.style.TailX), float64(c.style.TailY),
			c.style.BalloonFill)
		plan.render(gc, c.style.TextColor, c.style.Background)
	}

	c.metrics.drawText(gc, wrapped, textX, textY, c.style.TextColor)
	return dst, nil
}
