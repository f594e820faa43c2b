package bindict

import "fmt"

// boundsError reports an out-of-range read against an Image. Per the
// format contract, a malformed image is undefined behavior beyond this
// point, so this implementation fails fast instead of reading garbage.
type boundsError struct {
	offset, width, size int
}

func (e *boundsError) Error() string {
	return fmt.Sprintf("bindict: read of %d byte(s) at offset %d exceeds image size %d", e.width, e.offset, e.size)
}

// readUint decodes a big-endian unsigned integer of width 1 or 3 bytes
// starting at offset. It panics with a *boundsError on an out-of-range
// read: callers operate on offsets derived from the image's own header
// and child-count fields, so an out-of-range read means a corrupt image,
// not a recoverable condition, and failing fast beats quietly returning
// garbage bytes as a decoded offset.
func (img *Image) readUint(offset, width int) int {
	if offset < 0 || width < 1 || offset+width > len(img.bytes) {
		panic(&boundsError{offset: offset, width: width, size: len(img.bytes)})
	}
	value := 0
	for i := 0; i < width; i++ {
		value = value<<8 | int(img.bytes[offset+i])
	}
	return value
}

// readByte decodes a single unsigned byte at offset.
func (img *Image) readByte(offset int) int {
	return img.readUint(offset, 1)
}

// readUint24 decodes a 3-byte big-endian unsigned integer at offset.
func (img *Image) readUint24(offset int) int {
	return img.readUint(offset, 3)
}
