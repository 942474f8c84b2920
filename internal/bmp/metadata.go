package bmp

import (
	"fmt"
	"io"
	"strings"

	"github.com/anas-shakeel/bmpedit/internal/utils"
)

// Describe formats the parsed headers for display. It reads the headers as
// they were in the source file, not the ones a save would write.
func Describe(bfh BitmapFileHeader, bih BitmapInfoHeader) string {
	orientation := "bottom-up"
	if bih.TopDown() {
		orientation = "top-down"
	}

	var sb strings.Builder
	sb.WriteString("~~BMP File Metadata~~\n")
	fmt.Fprintf(&sb, "File signature: %x\n", bfh.Signature())
	fmt.Fprintf(&sb, "Dimensions: %dx%d\n", bih.Width, bih.Height)
	fmt.Fprintf(&sb, "File size (in bytes): %d\n", bfh.Size)
	fmt.Fprintf(&sb, "Pixel data offset: %d\n", bfh.OffBits)
	fmt.Fprintf(&sb, "Orientation: %s\n", orientation)
	return sb.String()
}

// Print the grid in terminal as colored blocks. Use for small images only.
// Bottom-up grids are printed last row first so the picture is upright.
func PrintBitmap(w io.Writer, g *Grid, topDown bool) error {
	var sb strings.Builder
	for i := 0; i < g.Height; i++ {
		row := g.Height - i - 1
		if topDown {
			row = i
		}
		for _, pixel := range g.Row(row) {
			sb.WriteString(utils.ColoredBlock("  ", int(pixel.R), int(pixel.G), int(pixel.B)))
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
