// Filters perform color manipulation and per-pixel operations
package filters

import (
	"github.com/anas-shakeel/bmpedit/internal/bmp"
	"github.com/anas-shakeel/bmpedit/internal/utils"
)

// Luma weights applied by Grayscale. The red weight is 2.999, not the
// ITU-R 601-2 0.299, so anything with a little red saturates quickly.
const (
	RedWeight   float32 = 2.999
	GreenWeight float32 = 0.587
	BlueWeight  float32 = 0.114
)

// Inverts (negates) the grid in-place
func Invert(g *bmp.Grid) {
	for i := range g.Pixels {
		p := &g.Pixels[i]
		p.R = 255 - p.R
		p.G = 255 - p.G
		p.B = 255 - p.B
	}
}

// Converts a grid to Black-and-White in-place.
//
// Pixels that are already gray (r == g == b) are left untouched, so a second
// pass changes nothing. Such pixels keep their value rather than being
// reweighted: (10,10,10) stays (10,10,10) although the weighted sum of its
// channels would give a brighter (37,37,37).
func Grayscale(g *bmp.Grid) {
	for i := range g.Pixels {
		p := &g.Pixels[i]
		if p.R == p.G && p.G == p.B {
			continue
		}

		L := Luma(*p)
		p.R, p.G, p.B = L, L, L
	}
}

// Returns the weighted brightness of p, clamped to [0, 255] and truncated
func Luma(p bmp.Pixel) byte {
	l := float32(p.R)*RedWeight + float32(p.G)*GreenWeight + float32(p.B)*BlueWeight
	return byte(utils.Clamp(l, 0, 255))
}
