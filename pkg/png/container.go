package png

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// signature is the 8-byte magic number every PNG buffer starts with.
var signature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// terminator is the complete encoded IEND chunk every PNG buffer ends with.
var terminator = []byte{0x00, 0x00, 0x00, 0x00, 'I', 'E', 'N', 'D', 0xAE, 0x42, 0x60, 0x82}

// Color types from the IHDR color type field.
const (
	ColorGrayscale      = 0
	ColorTruecolor      = 2
	ColorPalette        = 3
	ColorGrayscaleAlpha = 4
	ColorTruecolorAlpha = 6
)

// headerPayloadSize is the fixed length of the IHDR payload.
const headerPayloadSize = 13

var criticalTags = map[Tag]struct{}{
	TagHeader:    {},
	TagPalette:   {},
	TagImageData: {},
	TagEnd:       {},
}

var ancillaryTags = map[Tag]struct{}{
	"bKGD": {}, "cHRM": {}, "dSIG": {}, "eXIF": {}, "gAMA": {}, "hIST": {},
	"iCCP": {}, "iTXt": {}, "pHYs": {}, "sBIT": {}, "sPLT": {}, "sRGB": {},
	"sTER": {}, "tEXt": {}, "tIME": {}, "tRNS": {}, "zTXt": {},
}

// Container owns an ordered sequence of chunks parsed from a PNG buffer.
// Chunk order reflects on-disk position and round-trips exactly through
// Export. The metadata fields are decoded once from the IHDR payload at
// parse time.
//
// Chunks is exported for advanced use (appending or removing chunks by
// direct sequence manipulation); byte-level payload edits must go through
// SetBytesAt.
type Container struct {
	Chunks []Chunk

	Width             uint32
	Height            uint32
	BitDepth          uint8
	ColorType         uint8
	CompressionMethod uint8
	FilterMethod      uint8
	InterlaceMethod   uint8
}

// Parse splits a complete PNG buffer into a Container. It either fully
// succeeds or returns only a typed error; no partially built Container is
// ever returned.
func Parse(data []byte) (*Container, error) {
	if !bytes.HasPrefix(data, signature) || !bytes.HasSuffix(data, terminator) {
		return nil, &FormatError{Reason: "valid signature and/or terminator not found"}
	}

	c := &Container{}
	if err := c.splitChunks(data); err != nil {
		return nil, err
	}

	header, ok := c.FindByTag(TagHeader).Single()
	if !ok {
		return nil, &MissingChunkError{Tag: TagHeader}
	}
	meta := header.Chunk.Payload
	if len(meta) < headerPayloadSize {
		return nil, &FormatError{Reason: fmt.Sprintf("header payload is %d bytes, need %d", len(meta), headerPayloadSize)}
	}
	c.Width = binary.BigEndian.Uint32(meta[0:4])
	c.Height = binary.BigEndian.Uint32(meta[4:8])
	c.BitDepth = meta[8]
	c.ColorType = meta[9]
	c.CompressionMethod = meta[10]
	c.FilterMethod = meta[11]
	c.InterlaceMethod = meta[12]

	if err := c.Validate(); err != nil {
		return nil, err
	}

	if c.ColorType == ColorGrayscale || c.ColorType == ColorGrayscaleAlpha {
		return nil, &UnsupportedFeatureError{Feature: "grayscale color types"}
	}

	return c, nil
}

// splitChunks walks the buffer after the signature, cutting it into chunks.
// The stored CRC of each chunk is kept as parsed and never verified here;
// reads are permissive, writes are strict.
func (c *Container) splitChunks(data []byte) error {
	seen := make(map[Tag]bool)

	i := len(signature)
	for i < len(data) {
		if len(data)-i < 8 {
			return &FormatError{Reason: fmt.Sprintf("truncated chunk header at offset %#x", i)}
		}
		length := int(binary.BigEndian.Uint32(data[i : i+4]))
		tag := Tag(data[i+4 : i+8])
		tagOffset := i + 4
		i += 8

		if !tag.Known() {
			return &UnknownChunkError{Tag: tag, Offset: tagOffset}
		}
		if seen[tag] && tag.Critical() && tag != TagImageData {
			return &DuplicateChunkError{Tag: tag}
		}

		if len(data)-i < length+4 {
			return &FormatError{Reason: fmt.Sprintf("chunk %q at offset %#x runs past end of buffer", string(tag), tagOffset)}
		}
		payload := make([]byte, length)
		copy(payload, data[i:i+length])
		i += length

		stored := binary.BigEndian.Uint32(data[i : i+4])
		i += 4

		c.Chunks = append(c.Chunks, Chunk{Tag: tag, Payload: payload, Checksum: stored})
		seen[tag] = true
	}

	return nil
}

// Validate confirms the structural invariants: IHDR, at least one IDAT and
// IEND must be present, and a palette-color image must carry a PLTE chunk.
// It runs after parsing and again before every Export.
func (c *Container) Validate() error {
	for _, tag := range []Tag{TagHeader, TagImageData, TagEnd} {
		if c.FindByTag(tag).NotFound() {
			return &MissingChunkError{Tag: tag}
		}
	}
	if c.ColorType == ColorPalette && c.FindByTag(TagPalette).NotFound() {
		return &MissingChunkError{Tag: TagPalette}
	}
	return nil
}

// Match pairs a chunk with its position in the container sequence.
type Match struct {
	Index int
	Chunk *Chunk
}

// LookupResult is the outcome of FindByTag. A tag legitimately occurs
// zero times, once, or (IDAT only) many times, so the result makes the
// three arities explicit instead of leaving callers to guess.
type LookupResult struct {
	matches []Match
}

// NotFound reports that the tag did not occur at all.
func (r LookupResult) NotFound() bool {
	return len(r.matches) == 0
}

// Single returns the match when the tag occurred exactly once.
func (r LookupResult) Single() (Match, bool) {
	if len(r.matches) == 1 {
		return r.matches[0], true
	}
	return Match{}, false
}

// Multiple returns the ordered matches when the tag occurred more than once.
func (r LookupResult) Multiple() ([]Match, bool) {
	if len(r.matches) > 1 {
		return r.matches, true
	}
	return nil, false
}

// All returns every match in sequence order, whatever the arity.
func (r LookupResult) All() []Match {
	return r.matches
}

// Len returns the number of matches.
func (r LookupResult) Len() int {
	return len(r.matches)
}

// FindByTag collects every chunk with the given tag, in sequence order.
func (c *Container) FindByTag(tag Tag) LookupResult {
	var r LookupResult
	for i := range c.Chunks {
		if c.Chunks[i].Tag == tag {
			r.matches = append(r.matches, Match{Index: i, Chunk: &c.Chunks[i]})
		}
	}
	return r
}

// SetBytesAt replaces width bytes of the payload of the chunk at index,
// starting at offset, with the big-endian encoding of value. The payload
// is replaced wholesale with a new byte sequence assembled from prefix,
// encoded value and suffix, and the chunk checksum is recomputed. On a
// BoundsError the container is left unchanged.
func (c *Container) SetBytesAt(index, offset int, value uint64, width int) error {
	if index < 0 || index >= len(c.Chunks) {
		return &BoundsError{Index: index, Offset: offset, Width: width, PayloadLen: -1}
	}
	chunk := &c.Chunks[index]
	if offset < 0 || width < 1 || width > 8 || offset+width > len(chunk.Payload) {
		return &BoundsError{Index: index, Offset: offset, Width: width, PayloadLen: len(chunk.Payload)}
	}

	var enc [8]byte
	binary.BigEndian.PutUint64(enc[:], value)

	next := make([]byte, 0, len(chunk.Payload))
	next = append(next, chunk.Payload[:offset]...)
	next = append(next, enc[8-width:]...)
	next = append(next, chunk.Payload[offset+width:]...)

	chunk.Payload = next
	chunk.RecomputeChecksum()
	return nil
}

// Export serializes the container back to a complete PNG buffer: the
// signature followed by every chunk in sequence order, each with a freshly
// computed checksum. Validate runs first and its failure fails the export.
// For a buffer that parsed successfully and was not mutated, Export is the
// exact byte-for-byte inverse of Parse.
func (c *Container) Export() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	size := len(signature)
	for i := range c.Chunks {
		size += c.Chunks[i].Size()
	}

	out := make([]byte, 0, size)
	out = append(out, signature...)
	for i := range c.Chunks {
		out = append(out, c.Chunks[i].Encode()...)
	}
	return out, nil
}
