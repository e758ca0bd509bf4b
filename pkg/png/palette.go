package png

import "fmt"

// Palette channel indices within each 3-byte PLTE entry.
const (
	ChannelRed   = 0
	ChannelGreen = 1
	ChannelBlue  = 2
)

// ParseChannel maps "r", "g" or "b" to its palette channel index.
func ParseChannel(s string) (int, error) {
	switch s {
	case "r":
		return ChannelRed, nil
	case "g":
		return ChannelGreen, nil
	case "b":
		return ChannelBlue, nil
	}
	return 0, fmt.Errorf("unknown palette channel %q (want r, g or b)", s)
}

// ShiftPalette adds delta to one channel of every palette entry, clamping
// the result to [0, 255]. The PLTE payload is a sequence of 3-byte RGB
// entries; each edit goes through SetBytesAt so the chunk payload is
// replaced rather than mutated in place.
func ShiftPalette(c *Container, channel, delta int) error {
	if channel < ChannelRed || channel > ChannelBlue {
		return fmt.Errorf("palette channel must be 0, 1 or 2, got %d", channel)
	}

	m, ok := c.FindByTag(TagPalette).Single()
	if !ok {
		return &MissingChunkError{Tag: TagPalette}
	}

	for off := channel; off < m.Chunk.Length(); off += 3 {
		cur := int(m.Chunk.Payload[off])
		next := cur + delta
		if next > 255 {
			next = 255
		}
		if next < 0 {
			next = 0
		}
		if next == cur {
			continue
		}
		if err := c.SetBytesAt(m.Index, off, uint64(next), 1); err != nil {
			return err
		}
	}
	return nil
}
