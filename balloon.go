package imgcap

import (
	"image/color"
	"math"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
)

// An Edge identifies the balloon side the tail emerges from.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeTop
	EdgeRight
	EdgeBottom
	EdgeLeft
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	}
	return "none"
}

// tailMargin inflates the balloon rectangle when deciding whether the
// tail point is far enough outside to have a direction at all.
const tailMargin = 20

// A Point is a position on the canvas.
type Point struct {
	X, Y float64
}

// A Shape is one border primitive of a balloon plan.
type Shape interface {
	draw(gc *draw2dimg.GraphicContext)
}

// A Line is a stroked segment.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// An Arc is an unfilled quarter-corner sweep. Angles are in degrees,
// measured from three o'clock, increasing clockwise (y-down).
type Arc struct {
	CX, CY, RX, RY float64
	Start, Sweep   float64
}

// A Pie is a filled slice with the same angle convention as Arc.
type Pie struct {
	CX, CY, RX, RY float64
	Start, Sweep   float64
}

// A FillRect is a filled axis-aligned rectangle.
type FillRect struct {
	X, Y, W, H float64
}

// A Polygon is a filled closed shape.
type Polygon struct {
	Pts []Point
}

// A BalloonPlan is the computed outline of one speech balloon: the edge
// the tail leaves from, the gap segment left open for it, the corner
// radius, and the ordered primitives to draw. Filled plans paint in the
// background color so the tail merges with the bubble body; outline
// plans stroke in the text color.
type BalloonPlan struct {
	Filled bool
	Edge   Edge
	Gap    [2]Point
	Radius float64
	Shapes []Shape
}

// planBalloon computes the border plan for the rectangle (x, y, w, h)
// with a tail aimed at (tx, ty). It never fails: a tail point inside the
// inflated rectangle yields a closed bubble with no tail, and degenerate
// rectangles degrade to zero-length gaps and skipped arcs.
func planBalloon(x, y, w, h, tx, ty float64, filled bool) *BalloonPlan {
	p := &BalloonPlan{Filled: filled}
	p.Edge, p.Gap = tailGap(x, y, w, h, tx, ty)

	// Tail first, so the bubble border paints over its base.
	if p.Edge != EdgeNone {
		if filled {
			p.Shapes = append(p.Shapes, Polygon{Pts: []Point{p.Gap[0], p.Gap[1], {tx, ty}}})
		} else {
			p.Shapes = append(p.Shapes,
				Line{p.Gap[0].X, p.Gap[0].Y, tx, ty},
				Line{p.Gap[1].X, p.Gap[1].Y, tx, ty})
		}
	}

	switch {
	case w > 50 && h > 50:
		p.Radius = 10
	case w > 20 && h > 20:
		p.Radius = 5
	}
	r2 := p.Radius / 2

	if filled {
		// Two overlapping rectangles leave no hole behind the corner
		// insets.
		p.Shapes = append(p.Shapes,
			FillRect{x, y + r2, w, h - p.Radius},
			FillRect{x + r2, y, w - p.Radius, h})
	} else {
		for _, xo := range []float64{0, w} {
			ex := x + xo
			if (p.Edge == EdgeLeft && xo == 0) || (p.Edge == EdgeRight && xo == w) {
				p.Shapes = append(p.Shapes,
					Line{ex, y + r2, ex, p.Gap[0].Y},
					Line{ex, p.Gap[1].Y, ex, y + h - r2})
			} else {
				p.Shapes = append(p.Shapes, Line{ex, y + r2, ex, y + h - r2})
			}
		}
		for _, yo := range []float64{0, h} {
			ey := y + yo
			if (p.Edge == EdgeTop && yo == 0) || (p.Edge == EdgeBottom && yo == h) {
				p.Shapes = append(p.Shapes,
					Line{x + r2, ey, p.Gap[0].X, ey},
					Line{p.Gap[1].X, ey, x + w - r2, ey})
			} else {
				p.Shapes = append(p.Shapes, Line{x + r2, ey, x + w - r2, ey})
			}
		}
	}

	if p.Radius > 0 {
		corners := []struct{ xo, yo, start float64 }{
			{0, 0, 180},
			{w - p.Radius, 0, 270},
			{w - p.Radius, h - p.Radius, 0},
			{0, h - p.Radius, 90},
		}
		for _, c := range corners {
			cx := x + c.xo + r2
			cy := y + c.yo + r2
			if filled {
				p.Shapes = append(p.Shapes, Pie{cx, cy, r2, r2, c.start, 90})
			} else {
				p.Shapes = append(p.Shapes, Arc{cx, cy, r2, r2, c.start, 90})
			}
		}
	}
	return p
}

// tailGap picks the edge the tail emerges from and the gap segment on it.
// The tail point is classified against the rectangle's two corner-to-
// corner diagonals; the half-plane tests are kept in multiplied-out form
// so a degenerate rectangle never divides by zero.
func tailGap(x, y, w, h, tx, ty float64) (Edge, [2]Point) {
	if tx >= x-tailMargin && tx <= x+w+tailMargin &&
		ty >= y-tailMargin && ty <= y+h+tailMargin {
		return EdgeNone, [2]Point{}
	}

	tw, th := w/8, h/8
	// Diagonal 1 runs through (x, y) with slope h/w, diagonal 2 through
	// (x, y+h) with slope -h/w.
	above1 := (ty-y)*w <= (tx-x)*h
	above2 := (ty-y-h)*w <= -(tx-x)*h
	switch {
	case above1 && above2:
		mid := x + w/2
		return EdgeTop, [2]Point{{mid - tw, y}, {mid + tw, y}}
	case above1:
		mid := y + h/2
		return EdgeRight, [2]Point{{x + w, mid - th}, {x + w, mid + th}}
	case above2:
		mid := y + h/2
		return EdgeLeft, [2]Point{{x, mid - th}, {x, mid + th}}
	default:
		mid := x + w/2
		return EdgeBottom, [2]Point{{mid - tw, y + h}, {mid + tw, y + h}}
	}
}

// render issues the plan's primitives on a graphic context.
func (p *BalloonPlan) render(gc *draw2dimg.GraphicContext, fg, bg color.Color) {
	gc.Save()
	defer gc.Restore()

	col := fg
	if p.Filled {
		col = bg
	}
	gc.SetLineCap(draw2d.RoundCap)
	gc.SetLineJoin(draw2d.RoundJoin)
	gc.SetLineWidth(2)
	gc.SetStrokeColor(col)
	gc.SetFillColor(col)

	for _, s := range p.Shapes {
		s.draw(gc)
	}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func (s Line) draw(gc *draw2dimg.GraphicContext) {
	gc.MoveTo(s.X1, s.Y1)
	gc.LineTo(s.X2, s.Y2)
	gc.Stroke()
}

func (s Arc) draw(gc *draw2dimg.GraphicContext) {
	gc.ArcTo(s.CX, s.CY, s.RX, s.RY, radians(s.Start), radians(s.Sweep))
	gc.Stroke()
}

func (s Pie) draw(gc *draw2dimg.GraphicContext) {
	gc.MoveTo(s.CX, s.CY)
	gc.ArcTo(s.CX, s.CY, s.RX, s.RY, radians(s.Start), radians(s.Sweep))
	gc.Close()
	gc.FillStroke()
}

func (s FillRect) draw(gc *draw2dimg.GraphicContext) {
	draw2dkit.Rectangle(gc, s.X, s.Y, s.X+s.W, s.Y+s.H)
	gc.Fill()
}

func (s Polygon) draw(gc *draw2dimg.GraphicContext) {
	if len(s.Pts) == 0 {
		return
	}
	gc.MoveTo(s.Pts[0].X, s.Pts[0].Y)
	for _, pt := range s.Pts[1:] {
		gc.LineTo(pt.X, pt.Y)
	}
	gc.Close()
	gc.FillStroke()
}
