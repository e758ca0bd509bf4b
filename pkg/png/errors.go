package png

import "fmt"

// FormatError reports a buffer that is not structurally a PNG: a missing
// signature or terminator, or a chunk that runs past the end of the buffer.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid png structure: %s", e.Reason)
}

// UnknownChunkError reports a chunk tag that belongs to neither the critical
// nor the ancillary tag set. Offset is the byte position of the tag field.
type UnknownChunkError struct {
	Tag    Tag
	Offset int
}

func (e *UnknownChunkError) Error() string {
	return fmt.Sprintf("unknown chunk type %q at offset %#x", string(e.Tag), e.Offset)
}

// DuplicateChunkError reports a second occurrence of a critical chunk type
// that may not repeat (every critical type except IDAT).
type DuplicateChunkError struct {
	Tag Tag
}

func (e *DuplicateChunkError) Error() string {
	return fmt.Sprintf("chunk of type %q already exists", string(e.Tag))
}

// MissingChunkError reports an absent mandatory chunk: IHDR, IDAT or IEND,
// or PLTE when the color type requires a palette.
type MissingChunkError struct {
	Tag Tag
}

func (e *MissingChunkError) Error() string {
	return fmt.Sprintf("no %q chunk detected", string(e.Tag))
}

// UnsupportedFeatureError reports a recognized but deliberately unsupported
// encoding feature, such as the grayscale color types.
type UnsupportedFeatureError struct {
	Feature string
}

func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("unsupported feature: %s", e.Feature)
}

// BoundsError reports a byte-range edit whose window falls outside the
// target chunk's payload, or a chunk index outside the sequence. A
// PayloadLen of -1 means the index itself was out of range.
type BoundsError struct {
	Index      int
	Offset     int
	Width      int
	PayloadLen int
}

func (e *BoundsError) Error() string {
	if e.PayloadLen < 0 {
		return fmt.Sprintf("chunk index %d out of range", e.Index)
	}
	return fmt.Sprintf("edit window [%d:%d) exceeds %d byte payload of chunk %d",
		e.Offset, e.Offset+e.Width, e.PayloadLen, e.Index)
}
