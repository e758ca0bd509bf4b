package png

import (
	"encoding/binary"
	"hash/crc32"
)

// Tag is the 4-byte ASCII type code of a chunk.
type Tag string

// Critical chunk types.
const (
	TagHeader    Tag = "IHDR"
	TagPalette   Tag = "PLTE"
	TagImageData Tag = "IDAT"
	TagEnd       Tag = "IEND"
)

// Critical reports whether t is one of the four critical chunk types.
func (t Tag) Critical() bool {
	_, ok := criticalTags[t]
	return ok
}

// Ancillary reports whether t is a recognized optional chunk type.
func (t Tag) Ancillary() bool {
	_, ok := ancillaryTags[t]
	return ok
}

// Known reports whether a parser may accept t at all.
func (t Tag) Known() bool {
	return t.Critical() || t.Ancillary()
}

// Chunk is a single record inside the container: a type tag, an opaque
// payload, and a CRC32 over tag and payload. The payload is exclusively
// owned by the Chunk; Parse copies it out of the source buffer.
type Chunk struct {
	Tag      Tag
	Payload  []byte
	Checksum uint32
}

// NewChunk builds a chunk and computes its checksum immediately. Any tag
// and any payload are accepted; tag validity is enforced by the Container,
// not here.
func NewChunk(tag Tag, payload []byte) Chunk {
	c := Chunk{Tag: tag, Payload: payload}
	c.RecomputeChecksum()
	return c
}

// RecomputeChecksum overwrites the stored checksum with the CRC32 of the
// current tag and payload.
func (c *Chunk) RecomputeChecksum() {
	c.Checksum = c.calculateCRC32()
}

// VerifyChecksum reports whether the stored checksum matches the current
// tag and payload. Parse never rejects a mismatch; this is a diagnostic
// for callers that want to detect corruption in the source buffer.
func (c *Chunk) VerifyChecksum() bool {
	return c.Checksum == c.calculateCRC32()
}

// Length returns the declared payload length in bytes.
func (c *Chunk) Length() int {
	return len(c.Payload)
}

// Size returns the total encoded size of the chunk:
// 12 bytes of framing (length, tag, CRC) plus the payload.
func (c *Chunk) Size() int {
	return 12 + len(c.Payload)
}

// Encode serializes the chunk in the PNG wire layout:
//
//	[Length(4)][Tag(4)][Payload][CRC32(4)]
//
// The checksum is recomputed first, so the output always reflects the
// current payload even if the caller mutated it directly.
func (c *Chunk) Encode() []byte {
	c.RecomputeChecksum()

	buf := make([]byte, c.Size())
	binary.BigEndian.PutUint32(buf[0:], uint32(len(c.Payload)))
	copy(buf[4:], c.Tag)
	copy(buf[8:], c.Payload)
	binary.BigEndian.PutUint32(buf[8+len(c.Payload):], c.Checksum)

	return buf
}

// calculateCRC32 computes the IEEE CRC32 over tag and payload, the value
// the PNG format stores in the trailing field of every chunk.
func (c *Chunk) calculateCRC32() uint32 {
	crc := crc32.NewIEEE()
	crc.Write([]byte(c.Tag))
	crc.Write(c.Payload)
	return crc.Sum32()
}
