package imgcap

import (
	"image/color"
	"math"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// MultiBounds is a struct containing bounds information for multiple lines of text.
type MultiBounds struct {
	AllBounds  [][]float64
	LineHeight float64
}

// Length returns the number of lines contained in the MultiBounds.
func (m *MultiBounds) Length() int {
	return len(m.AllBounds)
}

// Bounds returns the total bounds of all lines.
func (m *MultiBounds) Bounds() (l, t, r, b float64) {
	for _, bound := range m.AllBounds {
		if bound[0] < l {
			l = bound[0]
		}
		if bound[1] < t {
			t = bound[1]
		}
		if bound[2] > r {
			r = bound[2]
		}
		if bound[3] > b {
			b = bound[3]
		}
	}
	return
}

// AddBound will add a new bound.
func (m *MultiBounds) AddBound(l, t, r, b float64) {
	m.AllBounds = append(m.AllBounds, []float64{l, t, r, b})
}

// AddStringBounds will add a new bound, positioned on the next line.
func (m *MultiBounds) AddStringBounds(l, t, r, b float64) {
	y := float64(m.Length()) * m.LineHeight
	m.AddBound(l, t+y, r, b+y)
}

// GetBound returns the bound at the desired line.
func (m *MultiBounds) GetBound(i int) (float64, float64, float64, float64) {
	b := m.AllBounds[i]
	return b[0], b[1], b[2], b[3]
}

// metrics measures and draws text in one font at one size. It is the
// measurement oracle behind wrapping: glyph ink bounds give widths, the
// font's vertical advance plus the configured pixel spacing gives the
// line height.
type metrics struct {
	font    *truetype.Font
	scale   fixed.Int26_6
	spacing float64
	buf     truetype.GlyphBuf
}

func newMetrics(f *truetype.Font, size, spacing float64) *metrics {
	return &metrics{
		font:    f,
		scale:   fixed.Int26_6(size * 64),
		spacing: spacing,
	}
}

func fUnitsToFloat64(x fixed.Int26_6) float64 {
	scaled := x << 2
	return float64(scaled/256) + float64(scaled%256)/256.0
}

func pointToF64Point(p truetype.Point) (x, y float64) {
	return fUnitsToFloat64(p.X), -fUnitsToFloat64(p.Y)
}

// lineHeight is the baseline-to-baseline distance, spacing included.
func (m *metrics) lineHeight() float64 {
	return fUnitsToFloat64(m.font.VMetric(m.scale, 0).AdvanceHeight) + m.spacing
}

// stringBounds returns the ink bounds of a single line relative to its
// baseline origin.
func (m *metrics) stringBounds(s string) (left, top, right, bottom float64) {
	cursor := 0.0
	prev, hasPrev := truetype.Index(0), false
	for _, r := range s {
		index := m.font.Index(r)
		if hasPrev {
			cursor += fUnitsToFloat64(m.font.Kern(m.scale, prev, index))
		}
		if err := m.buf.Load(m.font, m.scale, index, font.HintingNone); err != nil {
			return 0, 0, 0, 0
		}
		e0 := 0
		for _, e1 := range m.buf.Ends {
			for _, p := range m.buf.Points[e0:e1] {
				x, y := pointToF64Point(p)
				top = math.Min(top, y)
				bottom = math.Max(bottom, y)
				left = math.Min(left, x+cursor)
				right = math.Max(right, x+cursor)
			}
			e0 = e1
		}
		cursor += fUnitsToFloat64(m.font.HMetric(m.scale, index).AdvanceWidth)
		prev, hasPrev = index, true
	}
	return
}

func (m *metrics) textBounds(text string) *MultiBounds {
	mb := &MultiBounds{LineHeight: m.lineHeight()}
	for _, line := range strings.Split(text, "\n") {
		mb.AddStringBounds(m.stringBounds(line))
	}
	return mb
}

// measure reports the rendered pixel size of a possibly multi-line string.
func (m *metrics) measure(text string) (width, height float64) {
	l, t, r, b := m.textBounds(text).Bounds()
	return r - l, b - t
}

// drawText fills text with its bounding box anchored at (x, y).
func (m *metrics) drawText(gc *draw2dimg.GraphicContext, text string, x, y float64, col color.Color) {
	gc.Save()
	defer gc.Restore()

	gc.SetStrokeColor(col)
	gc.SetFillColor(col)

	mb := m.textBounds(text)
	ox, oy, _, _ := mb.Bounds()
	gc.ComposeMatrixTransform(draw2d.NewTranslationMatrix(x-ox, y-oy))

	for i, line := range strings.Split(text, "\n") {
		m.lineToPath(gc, line, 0, float64(i)*mb.LineHeight)
		gc.Fill()
	}
}

// lineToPath appends the glyph contours of one line to the current path,
// with the baseline origin at (x, y).
func (m *metrics) lineToPath(gc *draw2dimg.GraphicContext, line string, x, y float64) {
	prev, hasPrev := truetype.Index(0), false
	for _, r := range line {
		index := m.font.Index(r)
		if hasPrev {
			x += fUnitsToFloat64(m.font.Kern(m.scale, prev, index))
		}
		if err := m.buf.Load(m.font, m.scale, index, font.HintingNone); err != nil {
			return
		}
		e0 := 0
		for _, e1 := range m.buf.Ends {
			draw2dimg.DrawContour(gc, m.buf.Points[e0:e1], x, y)
			e0 = e1
		}
		x += fUnitsToFloat64(m.font.HMetric(m.scale, index).AdvanceWidth)
		prev, hasPrev = index, true
	}
}
