// Command imgcap adds a caption to an image.
//
//	imgcap [flags] input output "caption text"
//
// Pass '-' as the caption to read it from standard input. The output
// format follows the output file extension (png, jpg, gif).
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dangunter/imgcap"
)

var (
	side        = flag.String("side", "bottom", "side or inner region for the caption: top, bottom, left, right, nw, ne, se, sw, n, e, w, s")
	hpad        = flag.Int("hpad", imgcap.DefaultPadding, "horizontal padding in pixels")
	vpad        = flag.Int("vpad", imgcap.DefaultPadding, "vertical padding in pixels")
	shiftX      = flag.Int("shiftx", 0, "shift the text box right by this many pixels")
	shiftY      = flag.Int("shifty", 0, "shift the text box down by this many pixels")
	space       = flag.Int("space", 0, "reserved caption strip size in pixels (0 = auto-size)")
	fontName    = flag.String("font", "", "font name to search for (default $IMGCAP_FONT or DroidSansMono)")
	fontSize    = flag.Float64("size", imgcap.DefaultFontSize, "font size in points")
	spacing     = flag.Float64("spacing", imgcap.DefaultLineSpacing, "extra pixels between lines")
	reverse     = flag.Bool("reverse", false, "white text on black background")
	fgName      = flag.String("fg", "", "text color (#rgb, #rrggbb, or a basic name)")
	bgName      = flag.String("bg", "", "background color")
	balloon     = flag.String("balloon", "", "draw a speech balloon with its tail at \"x,y\"")
	balloonFill = flag.Bool("balloon-fill", false, "fill the balloon tail instead of outlining it")
	anim        = flag.Bool("anim", false, "caption every frame of an animated GIF")
	update      = flag.Bool("update", false, "check for a newer release and self-update")
	version     = flag.Bool("version", false, "print the version and exit")
)

func main() {
	loadEnv()
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] input output \"caption text\"\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Use '-' as the caption to read it from standard input.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		fmt.Printf("imgcap %s\n", Version)
		return
	}
	if *update {
		if err := checkForUpdate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(1)
	}
	if err := run(flag.Arg(0), flag.Arg(1), flag.Arg(2)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(input, output, text string) error {
	style, err := buildStyle()
	if err != nil {
		return err
	}

	if text == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading caption from stdin: %w", err)
		}
		text = string(b)
	}

	in, err := os.Open(input)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if *anim {
		g, err := gif.DecodeAll(in)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", input, err)
		}
		captioned, err := imgcap.CaptionGIF(g, style, text)
		if err != nil {
			return err
		}
		return gif.EncodeAll(out, captioned)
	}

	img, _, err := image.Decode(in)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", input, err)
	}
	cp, err := imgcap.New(img, style)
	if err != nil {
		return err
	}
	cp.AddText(text)
	captioned, err := cp.Finish()
	if err != nil {
		return err
	}
	return encode(out, output, captioned)
}

func buildStyle() (imgcap.Style, error) {
	var style imgcap.Style

	region, err := imgcap.ParseRegion(*side)
	if err != nil {
		return style, err
	}
	style.Region = region
	style.Font = *fontName
	if style.Font == "" {
		style.Font = envFont()
	}
	style.FontDirs = envFontDirs()
	style.FontSize = *fontSize
	style.LineSpacing = *spacing
	style.PadX = *hpad
	style.PadY = *vpad
	style.ShiftX = *shiftX
	style.ShiftY = *shiftY
	style.Space = *space

	if *reverse {
		style.TextColor = color.RGBA{0xff, 0xff, 0xff, 0xff}
		style.Background = color.RGBA{0x00, 0x00, 0x00, 0xff}
	}
	if *fgName != "" {
		if style.TextColor, err = parseColor(*fgName); err != nil {
			return style, err
		}
	}
	if *bgName != "" {
		if style.Background, err = parseColor(*bgName); err != nil {
			return style, err
		}
	}

	if *balloon != "" {
		var tx, ty int
		if _, err := fmt.Sscanf(*balloon, "%d,%d", &tx, &ty); err != nil {
			return style, fmt.Errorf("-balloon must be \"x,y\": %w", err)
		}
		style.Balloon = true
		style.BalloonFill = *balloonFill
		style.TailX = tx
		style.TailY = ty
	}
	return style, nil
}

var namedColors = map[string]color.RGBA{
	"black":   {0x00, 0x00, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0xff, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"gray":    {0x80, 0x80, 0x80, 0xff},
}

func parseColor(s string) (color.Color, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	var r, g, b uint8
	switch len(s) {
	case 4: // #rgb
		if _, err := fmt.Sscanf(s, "#%1x%1x%1x", &r, &g, &b); err == nil {
			return color.RGBA{r * 0x11, g * 0x11, b * 0x11, 0xff}, nil
		}
	case 7: // #rrggbb
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err == nil {
			return color.RGBA{r, g, b, 0xff}, nil
		}
	}
	return nil, fmt.Errorf("cannot parse color %q", s)
}

func encode(w io.Writer, path string, img image.Image) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, nil)
	case ".gif":
		return gif.Encode(w, img, nil)
	default:
		return png.Encode(w, img)
	}
}
