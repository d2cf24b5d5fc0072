/*
Package carray renders packed plane data as C source text: a comment
header describing the geometry followed by one const byte array per
plane, sixteen hex values per line.
*/
package carray

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// BytesPerLine is how many hex values are written per line of output.
const BytesPerLine = 16

// Writer emits C array source text to an underlying io.Writer.
type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Preamble writes the file banner and the PROGMEM guard. leaf is the
// unsanitized source file name, kept readable in the comment.
func (cw *Writer) Preamble(leaf string) error {
	fmt.Fprintf(cw.w, "//\n// Created with epd_image\n// https://github.com/bitbank2/epd_image\n")
	fmt.Fprintf(cw.w, "//\n// %s\n//\n", leaf)
	fmt.Fprintf(cw.w, "// for non-Arduino builds...\n")
	_, err := fmt.Fprintf(cw.w, "#ifndef PROGMEM\n#define PROGMEM\n#endif\n")
	return err
}

// Header writes the size comments. packed selects the single packed plane
// wording used by the 2-bit BWYR format.
func (cw *Writer) Header(width, height, pitch, total int, packed bool) error {
	fmt.Fprintf(cw.w, "// Image size: width %d, height %d\n", width, height)
	fmt.Fprintf(cw.w, "// %d bytes per line\n", pitch)
	unit := "per plane"
	if packed {
		unit = "total"
	}
	_, err := fmt.Fprintf(cw.w, "// %d bytes %s\n", total, unit)
	return err
}

// PlaneComment marks the start of plane n's data in multi-plane output.
func (cw *Writer) PlaneComment(n int) error {
	_, err := fmt.Fprintf(cw.w, "// Plane %d data\n", n)
	return err
}

// Array writes one named const byte array. No newline is forced before
// the closing brace when the byte count is not a multiple of the line
// width, matching the original tool's output byte-for-byte.
func (cw *Writer) Array(name string, data []byte) error {
	fmt.Fprintf(cw.w, "const uint8_t %s[] PROGMEM = {\n", name)
	line := 0
	for i, b := range data {
		fmt.Fprintf(cw.w, "0x%02x", b)
		if i != len(data)-1 {
			cw.w.WriteByte(',')
		}
		line++
		if line == BytesPerLine {
			cw.w.WriteByte('\n')
			line = 0
		}
	}
	_, err := cw.w.WriteString("};\n")
	return err
}

// Flush writes any buffered output to the underlying writer.
func (cw *Writer) Flush() error {
	return cw.w.Flush()
}

// SanitizeName makes a name usable as a C identifier: a leading digit
// gains an underscore prefix and every byte outside [0-9A-Za-z_] becomes
// an underscore.
func SanitizeName(name string) string {
	var sb strings.Builder
	if len(name) > 0 && name[0] >= '0' && name[0] <= '9' {
		sb.WriteByte('_')
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= '0' && c <= '9', c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c == '_':
		default:
			c = '_'
		}
		sb.WriteByte(c)
	}
	if sb.Len() == 0 {
		return "_"
	}
	return sb.String()
}

// LeafName returns the file name portion of path with its extension
// removed; it becomes the array name after sanitizing.
func LeafName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
