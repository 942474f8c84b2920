// BMP-specific structs and types
package bmp

import (
	"encoding/binary"
	"fmt"
)

const (
	FileHeaderLen = 14
	InfoHeaderLen = 40
	HeadersLen    = FileHeaderLen + InfoHeaderLen // Pixel offset of every bitmap we write

	BitCount = 24 // The only supported bits-per-pixel
)

// Signature is "BM" read as a little-endian uint16.
const Signature uint16 = 0x4d42

// The BitmapFileHeader structure contains information about the type, size,
// and layout of a file that contains a DIB [device-independent bitmap].
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapfileheader
type BitmapFileHeader struct {
	Type      [2]byte // The file type: must be 0x4d42 (ASCII string "BM").
	Size      uint32  // The size, in bytes, of the bitmap file.
	Reserved1 uint16  // Reserved; must be zero.
	Reserved2 uint16  // Reserved; must be zero.
	OffBits   uint32  // Bitmap File Offset (In bytes) to Pixel Arrays
}

// The BitmapInfoHeader structure contains information about the
// dimensions and color format of DIB [device-independent bitmap].
type BitmapInfoHeader struct {
	Size            uint32 // The number of bytes required by the structure.
	Width           int32  // The width of the bitmap, in pixels.
	Height          int32  // The height of the bitmap, in pixels. Negative means top-down rows.
	Planes          uint16 // The number of planes for the target device.
	BitCount        uint16 // The number of bits-per-pixel.
	Compression     uint32 // The type of compression
	SizeImage       uint32 // The size of the image (in bytes).
	XPixelsPerM     int32  // The horizontal resolution, in pixels-per-meter.
	YPixelsPerM     int32  // The vertical resolution, in pixels-per-meter.
	ColorsUsed      uint32 // Number of color indexes that are actually used by bitmap.
	ColorsImportant uint32 // Number of color indexes required for displaying the bitmap.
}

// Returns the signature as a little-endian number (0x4d42 for "BM")
func (h *BitmapFileHeader) Signature() uint16 {
	return binary.LittleEndian.Uint16(h.Type[:])
}

// MarshalBinary encodes the header into its 14-byte on-disk layout.
func (h *BitmapFileHeader) MarshalBinary() ([]byte, error) {
	b := make([]byte, FileHeaderLen)
	copy(b[0:2], h.Type[:])
	binary.LittleEndian.PutUint32(b[2:6], h.Size)
	binary.LittleEndian.PutUint16(b[6:8], h.Reserved1)
	binary.LittleEndian.PutUint16(b[8:10], h.Reserved2)
	binary.LittleEndian.PutUint32(b[10:14], h.OffBits)
	return b, nil
}

// UnmarshalBinary decodes the first 14 bytes of b.
func (h *BitmapFileHeader) UnmarshalBinary(b []byte) error {
	if len(b) < FileHeaderLen {
		return fmt.Errorf("%w: file header needs %d bytes, got %d", ErrTruncatedData, FileHeaderLen, len(b))
	}
	copy(h.Type[:], b[0:2])
	h.Size = binary.LittleEndian.Uint32(b[2:6])
	h.Reserved1 = binary.LittleEndian.Uint16(b[6:8])
	h.Reserved2 = binary.LittleEndian.Uint16(b[8:10])
	h.OffBits = binary.LittleEndian.Uint32(b[10:14])
	return nil
}

// MarshalBinary encodes the header into its 40-byte on-disk layout.
func (h *BitmapInfoHeader) MarshalBinary() ([]byte, error) {
	b := make([]byte, InfoHeaderLen)
	binary.LittleEndian.PutUint32(b[0:4], h.Size)
	binary.LittleEndian.PutUint32(b[4:8], uint32(h.Width))
	binary.LittleEndian.PutUint32(b[8:12], uint32(h.Height))
	binary.LittleEndian.PutUint16(b[12:14], h.Planes)
	binary.LittleEndian.PutUint16(b[14:16], h.BitCount)
	binary.LittleEndian.PutUint32(b[16:20], h.Compression)
	binary.LittleEndian.PutUint32(b[20:24], h.SizeImage)
	binary.LittleEndian.PutUint32(b[24:28], uint32(h.XPixelsPerM))
	binary.LittleEndian.PutUint32(b[28:32], uint32(h.YPixelsPerM))
	binary.LittleEndian.PutUint32(b[32:36], h.ColorsUsed)
	binary.LittleEndian.PutUint32(b[36:40], h.ColorsImportant)
	return b, nil
}

// UnmarshalBinary decodes the first 40 bytes of b. b starts at file offset 14.
func (h *BitmapInfoHeader) UnmarshalBinary(b []byte) error {
	if len(b) < InfoHeaderLen {
		return fmt.Errorf("%w: info header needs %d bytes, got %d", ErrTruncatedData, InfoHeaderLen, len(b))
	}
	h.Size = binary.LittleEndian.Uint32(b[0:4])
	h.Width = int32(binary.LittleEndian.Uint32(b[4:8]))
	h.Height = int32(binary.LittleEndian.Uint32(b[8:12]))
	h.Planes = binary.LittleEndian.Uint16(b[12:14])
	h.BitCount = binary.LittleEndian.Uint16(b[14:16])
	h.Compression = binary.LittleEndian.Uint32(b[16:20])
	h.SizeImage = binary.LittleEndian.Uint32(b[20:24])
	h.XPixelsPerM = int32(binary.LittleEndian.Uint32(b[24:28]))
	h.YPixelsPerM = int32(binary.LittleEndian.Uint32(b[28:32]))
	h.ColorsUsed = binary.LittleEndian.Uint32(b[32:36])
	h.ColorsImportant = binary.LittleEndian.Uint32(b[36:40])
	return nil
}

// Pixels are stored top-down when height is negative
func (h *BitmapInfoHeader) TopDown() bool {
	return h.Height < 0
}
