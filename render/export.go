package render

import (
	"bufio"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format is an image encoding supported by Save.
type Format int32

// The supported image encoding formats.
const (
	None Format = iota
	PNG
	JPEG
)

// DefaultExt is used when a file name has no extension and no valid
// format was chosen.
const DefaultExt = ".png"

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	default:
		return "none"
	}
}

// FormatForExt returns the Format for a file name extension, which may
// start with a dot or not. Matching ignores case.
func FormatForExt(ext string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	}
	return None, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// ResolveFilename returns the name to save under. A name with a supported
// extension is kept as is; a name with any other extension is rejected.
// A name without an extension gets choice appended when FormatForChoice
// accepts it, and DefaultExt otherwise.
func ResolveFilename(name, choice string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNoFilename
	}
	if ext := filepath.Ext(name); ext != "" {
		if _, err := FormatForExt(ext); err != nil {
			return "", err
		}
		return name, nil
	}
	if _, err := FormatForChoice(choice); err != nil {
		return name + DefaultExt, nil
	}
	return name + strings.ToLower(strings.TrimSpace(choice)), nil
}

// FormatForChoice is FormatForExt for an answer to the format question:
// the leading dot is required, so "jpg" is not a choice but ".jpg" is.
func FormatForChoice(choice string) (Format, error) {
	choice = strings.TrimSpace(choice)
	if !strings.HasPrefix(choice, ".") {
		return None, fmt.Errorf("%w: %q", ErrUnsupportedFormat, choice)
	}
	return FormatForExt(choice)
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
}

// Save writes img to filename, choosing the format from its extension.
func Save(img image.Image, filename string) error {
	f, err := FormatForExt(filepath.Ext(filename))
	if err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(file)
	if err := Encode(bw, img, f); err != nil {
		file.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
