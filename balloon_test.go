package imgcap

import (
	"testing"
)

func TestTailEdgeClassification(t *testing.T) {
	// Rectangle at the origin, 100x100, inflated by 20 for the inside
	// test.
	tests := []struct {
		name   string
		tx, ty float64
		edge   Edge
	}{
		{"due south", 50, 200, EdgeBottom},
		{"due west", -200, 50, EdgeLeft},
		{"due north", 50, -100, EdgeTop},
		{"due east", 300, 50, EdgeRight},
		{"inside rect", 50, 50, EdgeNone},
		{"inside inflation", 110, 50, EdgeNone},
		{"corner-ish northeast", 200, -50, EdgeRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edge, _ := tailGap(0, 0, 100, 100, tt.tx, tt.ty)
			if edge != tt.edge {
				t.Errorf("tailGap(%g, %g) edge = %s, want %s", tt.tx, tt.ty, edge, tt.edge)
			}
		})
	}
}

func TestTailGapGeometry(t *testing.T) {
	edge, gap := tailGap(0, 0, 100, 100, 50, 200)
	if edge != EdgeBottom {
		t.Fatalf("edge = %s, want bottom", edge)
	}
	// Gap is centered on the edge with half-length edge/8.
	want := [2]Point{{37.5, 100}, {62.5, 100}}
	if gap != want {
		t.Errorf("gap = %v, want %v", gap, want)
	}
}

func TestBalloonRadiusTiers(t *testing.T) {
	tests := []struct {
		w, h   float64
		radius float64
	}{
		{100, 100, 10},
		{60, 40, 5},
		{40, 60, 5},
		{15, 15, 0},
		{100, 15, 0},
	}
	for _, tt := range tests {
		p := planBalloon(0, 0, tt.w, tt.h, -1000, -1000, false)
		if p.Radius != tt.radius {
			t.Errorf("planBalloon(%gx%g) radius = %g, want %g", tt.w, tt.h, p.Radius, tt.radius)
		}
	}
}

func TestBalloonNoTailInsideInflation(t *testing.T) {
	p := planBalloon(0, 0, 100, 100, 50, 50, false)
	if p.Edge != EdgeNone {
		t.Fatalf("edge = %s, want none", p.Edge)
	}
	// Closed rounded rectangle only: 4 edges + 4 corner arcs.
	var lines, arcs int
	for _, s := range p.Shapes {
		switch s.(type) {
		case Line:
			lines++
		case Arc:
			arcs++
		}
	}
	if lines != 4 || arcs != 4 {
		t.Errorf("got %d lines and %d arcs, want 4 and 4", lines, arcs)
	}
}

func TestBalloonOutlineSplitsTailEdge(t *testing.T) {
	p := planBalloon(0, 0, 100, 100, 50, 300, false)
	if p.Edge != EdgeBottom {
		t.Fatalf("edge = %s, want bottom", p.Edge)
	}
	// 2 tail lines + 3 whole edges + 2 segments around the gap.
	var lines, arcs int
	for _, s := range p.Shapes {
		switch s.(type) {
		case Line:
			lines++
		case Arc:
			arcs++
		}
	}
	if lines != 7 {
		t.Errorf("got %d lines, want 7", lines)
	}
	if arcs != 4 {
		t.Errorf("got %d arcs, want 4", arcs)
	}
	// The bottom-edge segments stop at the gap endpoints.
	var touchGap int
	for _, s := range p.Shapes {
		if l, ok := s.(Line); ok && l.Y1 == 100 && l.Y2 == 100 {
			if l.X2 == p.Gap[0].X || l.X1 == p.Gap[1].X {
				touchGap++
			}
		}
	}
	if touchGap != 2 {
		t.Errorf("gap-adjacent bottom segments = %d, want 2", touchGap)
	}
}

func TestBalloonFilledShapes(t *testing.T) {
	p := planBalloon(0, 0, 100, 100, 50, 300, true)
	var polys, rects, pies int
	for _, s := range p.Shapes {
		switch s.(type) {
		case Polygon:
			polys++
		case FillRect:
			rects++
		case Pie:
			pies++
		}
	}
	if polys != 1 {
		t.Errorf("tail polygons = %d, want 1", polys)
	}
	if rects != 2 {
		t.Errorf("fill rects = %d, want 2", rects)
	}
	if pies != 4 {
		t.Errorf("corner pies = %d, want 4", pies)
	}
	// Tail polygon connects both gap endpoints to the tail point.
	poly := p.Shapes[0].(Polygon)
	if len(poly.Pts) != 3 || poly.Pts[2] != (Point{50, 300}) {
		t.Errorf("tail polygon = %v", poly.Pts)
	}
}

func TestBalloonDegenerateRect(t *testing.T) {
	// Zero-size rectangles must still produce a plan.
	p := planBalloon(0, 0, 0, 0, 0, -100, false)
	if p == nil {
		t.Fatal("no plan for degenerate rect")
	}
	if p.Edge != EdgeTop {
		t.Errorf("edge = %s, want top", p.Edge)
	}
	if p.Radius != 0 {
		t.Errorf("radius = %g, want 0", p.Radius)
	}

	// Tail point exactly on the rectangle.
	p = planBalloon(10, 10, 0, 0, 10, 10, false)
	if p.Edge != EdgeNone {
		t.Errorf("edge = %s, want none", p.Edge)
	}
}

func TestBalloonSquareCornersHaveNoArcs(t *testing.T) {
	p := planBalloon(0, 0, 15, 15, 200, 7, false)
	for _, s := range p.Shapes {
		switch s.(type) {
		case Arc, Pie:
			t.Fatalf("zero radius plan contains %T", s)
		}
	}
}
