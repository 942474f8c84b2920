package filters

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/anas-shakeel/bmpedit/internal/bmp"
)

func randomGrid(width, height int) *bmp.Grid {
	rng := rand.New(rand.NewPCG(7, uint64(width*31+height)))
	g := bmp.NewGrid(width, height)
	for i := range g.Pixels {
		g.Pixels[i] = bmp.Pixel{B: byte(rng.IntN(256)), G: byte(rng.IntN(256)), R: byte(rng.IntN(256))}
	}
	return g
}

func TestInvert(t *testing.T) {
	g := &bmp.Grid{Width: 2, Height: 1, Pixels: []bmp.Pixel{{B: 0, G: 128, R: 255}, {B: 10, G: 20, R: 30}}}
	Invert(g)
	assert.Equal(t, []bmp.Pixel{{B: 255, G: 127, R: 0}, {B: 245, G: 235, R: 225}}, g.Pixels)
}

func TestInvertTwiceRestores(t *testing.T) {
	g := randomGrid(9, 4)
	want := g.Clone()

	Invert(g)
	Invert(g)
	if diff := cmp.Diff(want, g); diff != "" {
		t.Errorf("Invert twice mismatch (-want +got):\n%s", diff)
	}
}

func TestLuma(t *testing.T) {
	tests := []struct {
		name string
		p    bmp.Pixel
		want byte
	}{
		{"black", bmp.Pixel{}, 0},
		{"pure red saturates", bmp.Pixel{R: 255}, 255},
		{"dark red", bmp.Pixel{R: 50}, 149},
		{"pure green", bmp.Pixel{G: 100}, 58},
		{"pure blue", bmp.Pixel{B: 200}, 22},
		{"mixed", bmp.Pixel{R: 10, G: 20, B: 30}, 45},
		{"white", bmp.Pixel{R: 255, G: 255, B: 255}, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Luma(tt.p))
		})
	}
}

func TestGrayscale(t *testing.T) {
	g := &bmp.Grid{Width: 3, Height: 1, Pixels: []bmp.Pixel{{R: 255}, {G: 100}, {R: 10, G: 20, B: 30}}}
	Grayscale(g)
	assert.Equal(t, []bmp.Pixel{
		{R: 255, G: 255, B: 255},
		{R: 58, G: 58, B: 58},
		{R: 45, G: 45, B: 45},
	}, g.Pixels)
}

func TestGrayscaleLeavesGrayPixels(t *testing.T) {
	g := &bmp.Grid{Width: 2, Height: 1, Pixels: []bmp.Pixel{{R: 10, G: 10, B: 10}, {R: 200, G: 200, B: 200}}}
	Grayscale(g)
	assert.Equal(t, []bmp.Pixel{{R: 10, G: 10, B: 10}, {R: 200, G: 200, B: 200}}, g.Pixels)
}

func TestGrayscaleIdempotent(t *testing.T) {
	g := randomGrid(11, 6)
	Grayscale(g)
	once := g.Clone()

	Grayscale(g)
	if diff := cmp.Diff(once, g); diff != "" {
		t.Errorf("second Grayscale changed the grid (-want +got):\n%s", diff)
	}
	for _, p := range g.Pixels {
		assert.True(t, p.R == p.G && p.G == p.B, "pixel %+v is not gray", p)
	}
}

func TestFiltersOnEmptyGrid(t *testing.T) {
	for _, g := range []*bmp.Grid{bmp.NewGrid(0, 0), bmp.NewGrid(0, 3), bmp.NewGrid(3, 0)} {
		Invert(g)
		Grayscale(g)
		assert.Empty(t, g.Pixels)
	}
}
