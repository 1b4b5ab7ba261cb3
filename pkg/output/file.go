// Package output writes rendered pictures to files and object storage.
package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/disintegration/imaging"
)

var ErrUnsupportedFormat = errors.New("output: unsupported image format")

// SaveFile writes the picture in the format named by the file extension.
// PNG, JPEG, GIF, TIFF and BMP go through imaging; .ppm writes a plain P3 file.
func SaveFile(pic *core.Picture, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".ppm") {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		if err := WritePPM(f, pic); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
		return f.Close()
	}

	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err := imaging.Save(pic.ToRGBA(), path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// WritePPM writes the picture as an ASCII P3 pixmap, clamped to 8 bits per channel
func WritePPM(w io.Writer, pic *core.Picture) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", pic.Width, pic.Height)

	img := pic.ToRGBA()
	for y := 0; y < pic.Height; y++ {
		for x := 0; x < pic.Width; x++ {
			c := img.RGBAAt(x, y)
			fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B)
		}
	}
	return bw.Flush()
}
