package imgcap

import (
	"errors"
	"image/color"

	"github.com/golang/freetype/truetype"
)

// Defaults applied by New when the corresponding Style field is zero.
const (
	DefaultPadding     = 5
	DefaultFontSize    = 16.0
	DefaultLineSpacing = 4.0
	DefaultFont        = "DroidSansMono"
)

var (
	DefaultTextColor  = color.RGBA{0x00, 0x00, 0x00, 0xff}
	DefaultBackground = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// Configuration errors are reported by New or ParseRegion; layout errors
// by Finish. Both families are fatal for the call that produced them.
var (
	ErrUnknownRegion    = errors.New("imgcap: unknown region")
	ErrFontNotFound     = errors.New("imgcap: font not found")
	ErrBalloonPlacement = errors.New("imgcap: balloon requires an inner region")
	ErrBadBox           = errors.New("imgcap: padding and shift leave no room for text")
	ErrTargetTooSmall   = errors.New("imgcap: target too small for one line of text")
)

// Style holds every caption option. It is supplied once to New and never
// mutated afterwards.
type Style struct {
	Region Region

	// Font is resolved by name through a FontFinder over FontDirs
	// (DefaultFontDirs when nil). FontData, when set, bypasses the
	// search entirely.
	Font     string
	FontDirs []string
	FontData *truetype.Font

	FontSize    float64
	LineSpacing float64 // extra pixels between lines

	TextColor  color.Color
	Background color.Color

	PadX, PadY     int
	ShiftX, ShiftY int

	// Space reserves a fixed strip (outer regions) in pixels. Zero means
	// auto-size the canvas to fit the wrapped text.
	Space int

	// Balloon draws a speech-bubble outline around the text box, with a
	// tail aimed at (TailX, TailY). Only valid for inner regions.
	Balloon     bool
	BalloonFill bool
	TailX       int
	TailY       int
}
