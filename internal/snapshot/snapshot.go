// Package snapshot writes composed mandalas to image files.
package snapshot

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// Format is an output image encoding.
type Format string

// Supported formats.
const (
	FormatBMP Format = "bmp"
	FormatPNG Format = "png"
)

// ParseFormat parses "bmp" or "png" case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatBMP, FormatPNG:
		return f, nil
	}
	return "", fmt.Errorf("unsupported image format %q", s)
}

// Writer saves images as <dir>/<name>.<format>.
type Writer struct {
	outputDir string
	format    Format
}

// NewWriter creates a writer. An empty dir writes to the working directory.
func NewWriter(outputDir string, format Format) *Writer {
	if format == "" {
		format = FormatBMP
	}
	return &Writer{
		outputDir: outputDir,
		format:    format,
	}
}

// Filename returns the path an image with the given name is written to.
func (w *Writer) Filename(name string) string {
	filename := name + "." + string(w.format)
	if w.outputDir != "" {
		filename = filepath.Join(w.outputDir, filename)
	}
	return filename
}

// Save encodes img and returns the written path.
func (w *Writer) Save(name string, img image.Image) (string, error) {
	// Create output directory if needed
	if w.outputDir != "" {
		if err := os.MkdirAll(w.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := w.Filename(name)
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := Encode(file, img, w.format); err != nil {
		return "", err
	}

	return filename, nil
}

// Encode writes img to out in the given format.
func Encode(out io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatBMP:
		if err := bmp.Encode(out, img); err != nil {
			return fmt.Errorf("encoding BMP: %w", err)
		}
	case FormatPNG:
		if err := png.Encode(out, img); err != nil {
			return fmt.Errorf("encoding PNG: %w", err)
		}
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
	return nil
}
