package shell

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/anas-shakeel/bmpedit/internal/adjustments"
	"github.com/anas-shakeel/bmpedit/internal/bmp"
	"github.com/anas-shakeel/bmpedit/internal/filters"
)

// ErrUnknownCommand is returned by ApplyCommand for names it has no transform for.
var ErrUnknownCommand = errors.New("not a valid command")

type transform struct {
	apply   func(*bmp.Grid)
	message string
}

var transforms = map[string]transform{
	"vertical_flip": {adjustments.VerticalFlip, "Image flipped vertically!"},
	"horiz_flip":    {adjustments.HorizontalFlip, "Image flipped horizontally!"},
	"invert":        {filters.Invert, "Image inverted!"},
	"grayscale":     {filters.Grayscale, "Image grayscaled!"},
}

// ApplyCommand runs the named transform on g in place and returns the
// confirmation to show the user.
func ApplyCommand(g *bmp.Grid, name string) (string, error) {
	t, ok := transforms[name]
	if !ok {
		return "", fmt.Errorf("%q: %w", name, ErrUnknownCommand)
	}
	t.apply(g)
	return t.message, nil
}

// TransformNames lists the names ApplyCommand accepts, sorted.
func TransformNames() []string {
	names := lo.Keys(transforms)
	slices.Sort(names)
	return names
}
