package imgcap

import (
	"math"
	"testing"
)

func TestMeasureEmpty(t *testing.T) {
	m := newMetrics(testFont, DefaultFontSize, 0)
	w, _ := m.measure("")
	if w != 0 {
		t.Errorf("empty string width = %g, want 0", w)
	}
}

func TestMeasureGrowsWithText(t *testing.T) {
	m := newMetrics(testFont, DefaultFontSize, 0)
	w1, _ := m.measure("hi")
	w2, _ := m.measure("hi there")
	if w2 <= w1 {
		t.Errorf("longer line not wider: %g vs %g", w1, w2)
	}
}

func TestMeasureMultiLineTaller(t *testing.T) {
	m := newMetrics(testFont, DefaultFontSize, 0)
	_, h1 := m.measure("hello")
	_, h2 := m.measure("hello\nworld")
	if h2 <= h1 {
		t.Errorf("two lines not taller than one: %g vs %g", h1, h2)
	}
}

func TestLineSpacingAddsPixels(t *testing.T) {
	tight := newMetrics(testFont, DefaultFontSize, 0)
	loose := newMetrics(testFont, DefaultFontSize, 10)
	_, ht := tight.measure("hello\nworld")
	_, hl := loose.measure("hello\nworld")
	if got := hl - ht; math.Abs(got-10) > 1e-9 {
		t.Errorf("spacing added %g pixels between two lines, want 10", got)
	}
}

func TestMultiBoundsStacksLines(t *testing.T) {
	mb := &MultiBounds{LineHeight: 20}
	mb.AddStringBounds(0, -10, 50, 2)
	mb.AddStringBounds(0, -10, 30, 2)
	if mb.Length() != 2 {
		t.Fatalf("length = %d, want 2", mb.Length())
	}
	_, top, _, bottom := mb.GetBound(1)
	if top != 10 || bottom != 22 {
		t.Errorf("second line bounds = (%g, %g), want (10, 22)", top, bottom)
	}
	l, t0, r, b := mb.Bounds()
	if l != 0 || t0 != -10 || r != 50 || b != 22 {
		t.Errorf("total bounds = (%g, %g, %g, %g)", l, t0, r, b)
	}
}
