// bmp package implements a 24-bit uncompressed bitmap reader and writer
package bmp

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

type Pixel struct {
	B, G, R byte
}

// Grid is a rectangular pixel array stored row-major in one flat buffer.
// Row 0 is the first row in file storage order.
type Grid struct {
	Width  int
	Height int
	Pixels []Pixel
}

// A bitmap opened from disk: the headers as parsed plus the decoded grid
type BitmapImage struct {
	Filename string
	BFHeader BitmapFileHeader
	BIHeader BitmapInfoHeader
	Grid     *Grid
}

// Creates a zeroed (black) grid
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Pixels: make([]Pixel, width*height),
	}
}

func (g *Grid) At(x, y int) Pixel {
	return g.Pixels[y*g.Width+x]
}

func (g *Grid) Set(x, y int, p Pixel) {
	g.Pixels[y*g.Width+x] = p
}

// Row returns row y as a slice aliasing the grid's buffer.
func (g *Grid) Row(y int) []Pixel {
	return g.Pixels[y*g.Width : (y+1)*g.Width]
}

// Returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := &Grid{Width: g.Width, Height: g.Height, Pixels: make([]Pixel, len(g.Pixels))}
	copy(c.Pixels, g.Pixels)
	return c
}

func (g *Grid) Equal(o *Grid) bool {
	if g.Width != o.Width || g.Height != o.Height {
		return false
	}
	for i := range g.Pixels {
		if g.Pixels[i] != o.Pixels[i] {
			return false
		}
	}
	return true
}

// MaxPixels bounds the grid Decode will allocate.
const MaxPixels = 1 << 28

// Stride is the byte length of one stored row, padded to a 4-byte boundary:
// ceil(bitCount*width/32) * 4.
func Stride(bitCount, width int) int {
	return ((bitCount*width + 31) / 32) * 4
}

// Decode reads the pixel array described by the headers. Row i is read from
// OffBits + i*stride; rows keep their storage order whatever the sign of the
// height. Headers must already have passed Validate.
func Decode(r io.ReaderAt, bfh BitmapFileHeader, bih BitmapInfoHeader) (*Grid, error) {
	width := int(bih.Width)
	height := int(bih.Height)
	if height < 0 {
		height = -height // Abs(olute) Height
	}
	if width < 0 {
		return nil, fmt.Errorf("%w: negative width %d", ErrUnsupportedFormat, width)
	}

	bytesPerPixel := int(bih.BitCount) / 8
	stride := Stride(int(bih.BitCount), width) // Total bytes in a row (incl. padding)
	rowLen := width * bytesPerPixel            // bytes of pixels in a row (excl. padding)
	offset := int64(bfh.OffBits)

	if width > 0 && height > 0 {
		// Refuse to allocate for geometry the source cannot possibly hold.
		// Written as a division so huge dimensions cannot overflow.
		if sized, ok := r.(interface{ Size() int64 }); ok {
			size := sized.Size()
			if offset+int64(rowLen) > size || int64(height-1) > (size-offset-int64(rowLen))/int64(stride) {
				return nil, fmt.Errorf("%w: %dx%d pixel array at offset %d does not fit in %d bytes", ErrTruncatedData, width, height, offset, size)
			}
		}
		if int64(width)*int64(height) > MaxPixels {
			return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrUnsupportedFormat, width, height, MaxPixels)
		}
	}

	grid := NewGrid(width, height)
	if rowLen == 0 {
		return grid, nil
	}

	buf := make([]byte, rowLen)
	for row := 0; row < height; row++ {
		n, err := r.ReadAt(buf, offset+int64(row)*int64(stride))
		if n < rowLen {
			if err == nil || err == io.EOF {
				err = ErrTruncatedData
			}
			return nil, fmt.Errorf("reading row %d: %w", row, err)
		}

		pixels := grid.Row(row)
		for col := range pixels {
			pixels[col] = Pixel{B: buf[col*3], G: buf[col*3+1], R: buf[col*3+2]}
		}
	}

	return grid, nil
}

// Encode writes fresh headers followed by every grid row, in grid order,
// each padded with zero bytes to the row stride.
func Encode(w io.Writer, g *Grid) error {
	bfh, bih := BuildHeaders(g)

	header, err := bfh.MarshalBinary()
	if err != nil {
		return err
	}
	if _, err := w.Write(header); err != nil {
		return err
	}
	header, err = bih.MarshalBinary()
	if err != nil {
		return err
	}
	if _, err := w.Write(header); err != nil {
		return err
	}

	// Padding bytes stay zero; only the pixel part is overwritten per row
	rowBuf := make([]byte, Stride(BitCount, g.Width))
	for row := 0; row < g.Height; row++ {
		for col, p := range g.Row(row) {
			rowBuf[col*3] = p.B
			rowBuf[col*3+1] = p.G
			rowBuf[col*3+2] = p.R
		}
		if _, err := w.Write(rowBuf); err != nil {
			return err
		}
	}

	return nil
}

// Reads a Bitmap file. The file is closed before returning.
func ReadBitmap(filename string) (*BitmapImage, error) {
	// Open the file
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	src := io.NewSectionReader(file, 0, info.Size())

	bfHeader, biHeader, err := ReadHeaders(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	grid, err := Decode(src, bfHeader, biHeader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return &BitmapImage{
		Filename: filename,
		BFHeader: bfHeader,
		BIHeader: biHeader,
		Grid:     grid,
	}, nil
}

// Saves the grid onto local disk with freshly built headers.
// A failed write may leave a truncated file behind.
func Save(filename string, g *Grid) error {
	newBitmap, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer newBitmap.Close()

	// Create a buffer (to reduce syscalls)
	w := bufio.NewWriter(newBitmap)
	if err := Encode(w, g); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}

	return newBitmap.Close()
}
