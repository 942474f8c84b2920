package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anas-shakeel/bmpedit/internal/bmp"
)

func TestApplyCommand(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    []bmp.Pixel
	}{
		{"vertical_flip", "Image flipped vertically!", []bmp.Pixel{green, white, red, blue}},
		{"horiz_flip", "Image flipped horizontally!", []bmp.Pixel{blue, red, white, green}},
		{"invert", "Image inverted!", []bmp.Pixel{{G: 255, B: 255}, {R: 255, G: 255}, {R: 255, B: 255}, {}}},
		{"grayscale", "Image grayscaled!", []bmp.Pixel{white, {R: 29, G: 29, B: 29}, {R: 149, G: 149, B: 149}, white}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &bmp.Grid{Width: 2, Height: 2, Pixels: []bmp.Pixel{red, blue, green, white}}

			msg, err := ApplyCommand(g, tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.message, msg)
			assert.Equal(t, tt.want, g.Pixels)
		})
	}
}

func TestApplyCommandUnknown(t *testing.T) {
	g := &bmp.Grid{Width: 1, Height: 1, Pixels: []bmp.Pixel{red}}

	_, err := ApplyCommand(g, "blur")
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Equal(t, []bmp.Pixel{red}, g.Pixels)
}

func TestTransformNames(t *testing.T) {
	assert.Equal(t, []string{"grayscale", "horiz_flip", "invert", "vertical_flip"}, TransformNames())
}
