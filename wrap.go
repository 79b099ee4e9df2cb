package imgcap

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/exp/slices"
)

// ParagraphMarker forces a hard line break wherever it appears in caption
// text, independent of width-based wrapping.
const ParagraphMarker = "//"

// calibration is measured once per wrap call to estimate the average
// character width of the configured font.
const calibration = "The quick 'fox' jumps over the lazy dog."

var wordPattern = regexp.MustCompile(`\w+`)

// A measureFunc reports the rendered pixel size of a possibly multi-line
// string.
type measureFunc func(text string) (width, height float64)

// wrapper wraps one text for one target box. The token list of the
// original text is memoized across iterations of the widening search.
type wrapper struct {
	measure measureFunc
	words   []string
}

// wrapToFit wraps text to fit a box and returns the wrapped string with
// its measured pixel size.
//
// With widthPx > 0 the wrap width is fixed by the average character width
// and wrapping happens once; overflow past heightPx is the caller's
// concern (the canvas auto-sizes for edge placements). With widthPx == 0
// the height is the binding constraint: the wrap width starts near a
// perfect distribution over the line budget and widens one character at a
// time until the lines fit without breaking any word, or the width
// reaches the whole text length, whose candidate is accepted as-is.
func wrapToFit(text string, widthPx, heightPx float64, measure measureFunc) (string, float64, float64, error) {
	w := &wrapper{measure: measure}

	calW, lineH := measure(calibration)
	avgCharW := calW / 37

	var lines []string
	if widthPx > 0 {
		lines = w.wrap(text, int(widthPx/avgCharW))
	} else {
		if heightPx < lineH {
			return "", 0, 0, fmt.Errorf("%w: need %.0fpx, have %.0fpx",
				ErrTargetTooSmall, lineH, heightPx)
		}
		maxLines := int(heightPx / lineH)
		n := len(text)
		width := n / maxLines
		if width < 8 {
			width = 8
		}
		for ; ; width++ {
			lines = w.wrap(text, width)
			if width >= n {
				break
			}
			if len(lines) <= maxLines && !w.broken(text, lines) {
				break
			}
		}
	}

	wrapped := strings.Join(lines, "\n")
	mw, mh := measure(wrapped)
	return wrapped, mw, mh, nil
}

// wrap word-wraps text at a character-count width, honoring paragraph
// markers. An empty segment between markers becomes one literal blank
// line.
func (w *wrapper) wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	if !strings.Contains(text, ParagraphMarker) {
		return wrapPlain(text, width)
	}
	var lines []string
	for _, para := range strings.Split(text, ParagraphMarker) {
		if para == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, wrapPlain(para, width)...)
	}
	return lines
}

// wrapPlain greedily packs words into lines of at most width characters.
// A single token wider than the box is hard-split into width-sized chunks
// rather than failing.
func wrapPlain(text string, width int) []string {
	var lines []string
	var cur string
	for _, word := range strings.Fields(text) {
		for len(word) > width {
			if cur != "" {
				lines = append(lines, cur)
				cur = ""
			}
			lines = append(lines, word[:width])
			word = word[width:]
		}
		switch {
		case word == "":
		case cur == "":
			cur = word
		case len(cur)+1+len(word) <= width:
			cur += " " + word
		default:
			lines = append(lines, cur)
			cur = word
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// broken reports whether the wrapped lines moved a token boundary: the
// word tokens implied by the candidate lines must match the original
// text's tokens position by position. Extra tokens past the original
// sequence are ignored, as is a shorter matching prefix.
func (w *wrapper) broken(text string, lines []string) bool {
	if w.words == nil {
		w.words = wordPattern.FindAllString(text, -1)
	}
	var got []string
	for _, line := range lines {
		got = append(got, wordPattern.FindAllString(line, -1)...)
	}
	if len(got) > len(w.words) {
		got = got[:len(w.words)]
	}
	return !slices.Equal(w.words[:len(got)], got)
}
