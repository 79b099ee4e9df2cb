package imgcap

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
)

var fontExtensions = []string{"ttf", "otf", "TTF", "OTF"}

// A FontFinder locates TrueType/OpenType font files by name. The search
// directories are explicit so font resolution is deterministic and
// testable; nothing is read from process-wide state.
type FontFinder struct {
	Dirs []string
}

// DefaultFontDirs returns the conventional system and per-user font
// directories.
func DefaultFontDirs() []string {
	dirs := []string{"/usr/share/fonts"}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".fonts"))
	}
	return dirs
}

func (f *FontFinder) String() string {
	return fmt.Sprintf("fonts with extensions (%s) in paths: %s",
		strings.Join(fontExtensions, ", "), strings.Join(f.Dirs, ", "))
}

// Find returns the path of the first font file matching name, checking
// each directory and one level of subdirectories.
func (f *FontFinder) Find(name string) (string, error) {
	for _, dir := range f.Dirs {
		if path := findFontIn(dir, name); path != "" {
			return path, nil
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if !e.IsDir() {
				continue
			}
			if path := findFontIn(filepath.Join(dir, e.Name()), name); path != "" {
				return path, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %q in %s", ErrFontNotFound, name, f)
}

func findFontIn(dir, name string) string {
	for _, ext := range fontExtensions {
		target := filepath.Join(dir, name+"."+ext)
		if _, err := os.Stat(target); err == nil {
			return target
		}
	}
	return ""
}

// Load finds and parses the named font.
func (f *FontFinder) Load(name string) (*truetype.Font, error) {
	path, err := f.Find(name)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font %s: %w", path, err)
	}
	fnt, err := freetype.ParseFont(b)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", path, err)
	}
	return fnt, nil
}
