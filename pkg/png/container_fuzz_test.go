//go:build fuzz
// +build fuzz

package png

import (
	"bytes"
	"testing"
)

// FuzzParse_RoundTrip checks the core property: any buffer that parses
// without error exports back byte-for-byte.
func FuzzParse_RoundTrip(f *testing.F) {
	// Seed corpus: a couple of valid buffers and some junk.
	f.Add(buildImage(ColorTruecolor, NewChunk(TagImageData, []byte{1, 2, 3})))
	f.Add(buildImage(ColorPalette,
		NewChunk(TagPalette, []byte{1, 2, 3, 4, 5, 6}),
		NewChunk(TagImageData, []byte{9}),
	))
	f.Add([]byte{})
	f.Add(signature)
	f.Add(bytes.Repeat([]byte{0xAA}, 64))

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 1<<20 {
			t.Skip("input too large for fuzz test")
		}

		img, err := Parse(data)
		if err != nil {
			// Rejection is fine; the parser just must not panic and
			// must not hand back a container alongside the error.
			if img != nil {
				t.Error("Parse returned a container alongside an error")
			}
			return
		}

		// Reads are lenient about stored checksums; Export rewrites them.
		// Byte-exact round-trip is only promised when the source buffer
		// was already checksum-consistent, so check before exporting.
		for i := range img.Chunks {
			if !img.Chunks[i].VerifyChecksum() {
				return
			}
		}

		out, err := img.Export()
		if err != nil {
			t.Fatalf("Export failed after successful Parse: %v", err)
		}
		if !bytes.Equal(out, data) {
			t.Errorf("round-trip mismatch:\n got %x\nwant %x", out, data)
		}
	})
}

// FuzzSetBytesAt_BoundsSafety checks that arbitrary edit windows either
// apply cleanly or fail with BoundsError, never panicking.
func FuzzSetBytesAt_BoundsSafety(f *testing.F) {
	f.Add(0, 0, uint64(1), 1)
	f.Add(1, 2, uint64(0xABCD), 2)
	f.Add(-1, 0, uint64(0), 8)
	f.Add(99, -5, uint64(1), 9)

	f.Fuzz(func(t *testing.T, index, offset int, value uint64, width int) {
		img, err := Parse(buildImage(ColorTruecolor, NewChunk(TagImageData, make([]byte, 16))))
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}

		if err := img.SetBytesAt(index, offset, value, width); err != nil {
			return
		}

		// A successful edit must keep the container exportable and
		// checksum-consistent.
		out, err := img.Export()
		if err != nil {
			t.Fatalf("Export failed after successful edit: %v", err)
		}
		if _, err := Parse(out); err != nil {
			t.Fatalf("exported buffer does not re-parse: %v", err)
		}
	})
}
