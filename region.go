package imgcap

import (
	"fmt"
	"strings"
)

// A Region names the placement of a caption relative to the base image.
// The four edge regions attach a caption strip outside the image; the
// quadrant and half-side regions place the caption inside it.
type Region int

const (
	// Outer edges. The canvas grows to hold the caption strip.
	Top Region = iota
	Right
	Bottom
	Left
	// Inner quadrants.
	NorthWest
	NorthEast
	SouthEast
	SouthWest
	// Inner half-sides.
	North
	East
	West
	South
)

// Inner reports whether the region places text inside the image bounds.
func (r Region) Inner() bool {
	switch r {
	case NorthWest, NorthEast, SouthEast, SouthWest, North, East, West, South:
		return true
	}
	return false
}

// known reports whether r is one of the declared regions.
func (r Region) known() bool {
	switch r {
	case Top, Right, Bottom, Left,
		NorthWest, NorthEast, SouthEast, SouthWest,
		North, East, West, South:
		return true
	}
	return false
}

func (r Region) String() string {
	switch r {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case NorthWest:
		return "nw"
	case NorthEast:
		return "ne"
	case SouthEast:
		return "se"
	case SouthWest:
		return "sw"
	case North:
		return "n"
	case East:
		return "e"
	case West:
		return "w"
	case South:
		return "s"
	}
	return fmt.Sprintf("region(%d)", int(r))
}

var regionNames = map[string]Region{
	"top": Top, "t": Top,
	"right": Right, "r": Right,
	"bottom": Bottom, "b": Bottom,
	"left": Left, "l": Left,
	"nw": NorthWest, "northwest": NorthWest,
	"ne": NorthEast, "northeast": NorthEast,
	"se": SouthEast, "southeast": SouthEast,
	"sw": SouthWest, "southwest": SouthWest,
	"n": North, "north": North,
	"e": East, "east": East,
	"w": West, "west": West,
	"s": South, "south": South,
}

// ParseRegion maps a command-line region name to its Region. Names are
// case-insensitive; the outer edges also accept their one-letter forms.
func ParseRegion(name string) (Region, error) {
	if r, ok := regionNames[strings.ToLower(name)]; ok {
		return r, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRegion, name)
}
