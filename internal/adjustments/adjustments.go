// Adjusts image orientation.
package adjustments

import (
	"github.com/samber/lo/mutable"

	"github.com/anas-shakeel/bmpedit/internal/bmp"
)

// Flips the grid vertically (upside down) in-place by swapping rows
func VerticalFlip(g *bmp.Grid) {
	tmp := make([]bmp.Pixel, g.Width)
	for top := 0; top < g.Height/2; top++ {
		bottom := g.Height - top - 1
		copy(tmp, g.Row(top))
		copy(g.Row(top), g.Row(bottom))
		copy(g.Row(bottom), tmp)
	}
}

// Flips the grid horizontally (mirror) in-place
func HorizontalFlip(g *bmp.Grid) {
	for row := 0; row < g.Height; row++ {
		mutable.Reverse(g.Row(row))
	}
}
