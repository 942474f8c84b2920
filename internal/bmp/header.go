package bmp

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrInvalidSignature means the file does not start with "BM".
	ErrInvalidSignature = errors.New("invalid file: provided file is not a bitmap")

	// ErrUnsupportedFormat means a valid bitmap that is not 24-bit uncompressed
	// with a 40-byte info header.
	ErrUnsupportedFormat = errors.New("unsupported BMP format: only 24-bit uncompressed is supported")

	// ErrTruncatedData means the stream ended before the headers or pixel rows did.
	ErrTruncatedData = errors.New("truncated bitmap data")
)

// Parses the file header from the first 14 bytes of b
func ParseFileHeader(b []byte) (BitmapFileHeader, error) {
	var h BitmapFileHeader
	err := h.UnmarshalBinary(b)
	return h, err
}

// Parses the info header from b, which must start at file offset 14
func ParseInfoHeader(b []byte) (BitmapInfoHeader, error) {
	var h BitmapInfoHeader
	err := h.UnmarshalBinary(b)
	return h, err
}

// Validate checks that the headers describe a bitmap this package can decode.
// It runs before any pixel is read.
func Validate(bfh BitmapFileHeader, bih BitmapInfoHeader) error {
	if bfh.Signature() != Signature {
		return fmt.Errorf("%w: signature %#04x", ErrInvalidSignature, bfh.Signature())
	}

	// BITMAPV4HEADER (108), BITMAPV5HEADER (124) and OS/2 headers are rejected
	if bih.Size != InfoHeaderLen {
		return fmt.Errorf("%w: info header size %d", ErrUnsupportedFormat, bih.Size)
	}
	if bih.BitCount != BitCount {
		return fmt.Errorf("%w: %d bits per pixel", ErrUnsupportedFormat, bih.BitCount)
	}
	if bih.Compression != 0 {
		return fmt.Errorf("%w: compression method %d", ErrUnsupportedFormat, bih.Compression)
	}
	if bfh.OffBits < HeadersLen {
		return fmt.Errorf("%w: pixel offset %d overlaps the headers", ErrUnsupportedFormat, bfh.OffBits)
	}
	if bih.Width < 0 {
		return fmt.Errorf("%w: negative width %d", ErrUnsupportedFormat, bih.Width)
	}

	return nil
}

// ReadHeaders reads, parses and validates both headers from the start of r.
func ReadHeaders(r io.ReaderAt) (BitmapFileHeader, BitmapInfoHeader, error) {
	var buf [HeadersLen]byte
	n, err := r.ReadAt(buf[:], 0)
	if err != nil && err != io.EOF {
		return BitmapFileHeader{}, BitmapInfoHeader{}, err
	}

	// A short non-bitmap file should report the signature, not the length
	if n >= 2 && (buf[0] != 0x42 || buf[1] != 0x4d) {
		return BitmapFileHeader{}, BitmapInfoHeader{}, fmt.Errorf("%w: signature %#02x %#02x", ErrInvalidSignature, buf[0], buf[1])
	}

	bfh, err := ParseFileHeader(buf[:n])
	if err != nil {
		return BitmapFileHeader{}, BitmapInfoHeader{}, err
	}

	bih, err := ParseInfoHeader(buf[FileHeaderLen:n])
	if err != nil {
		return bfh, BitmapInfoHeader{}, err
	}

	return bfh, bih, Validate(bfh, bih)
}

// BuildHeaders synthesizes fresh headers for writing g.
// Rows are always written bottom-up (positive height) right after the headers.
func BuildHeaders(g *Grid) (BitmapFileHeader, BitmapInfoHeader) {
	sizeImage := uint32(Stride(BitCount, g.Width) * g.Height)

	bfh := BitmapFileHeader{
		Type:    [2]byte{0x42, 0x4d},
		Size:    HeadersLen + sizeImage, // Size of the whole bitmap file
		OffBits: HeadersLen,
	}
	bih := BitmapInfoHeader{
		Size:      InfoHeaderLen,
		Width:     int32(g.Width),
		Height:    int32(g.Height),
		Planes:    1,
		BitCount:  BitCount,
		SizeImage: sizeImage,
	}
	return bfh, bih
}
