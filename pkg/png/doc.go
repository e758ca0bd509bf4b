// Package png provides a reader/writer for the chunk-based PNG container
// structure. It splits a byte buffer into typed, length-prefixed, checksummed
// chunks, validates structural invariants, exposes lookup and mutation over
// those chunks, and serializes them back into a byte-exact buffer.
//
// The package deliberately treats chunk payloads as opaque byte sequences.
// It does not inflate IDAT data, de-interlace, or touch color handling in
// any way; the only payload it interprets is the fixed 13-byte IHDR layout,
// from which it extracts image geometry and encoding parameters.
//
// # Chunk Format
//
// Every chunk is serialized in the standard PNG wire layout:
//
//	[Length(4)][Tag(4)][Payload][CRC32(4)]
//
// Fields:
//   - Length: 32-bit unsigned payload length in bytes (big-endian)
//   - Tag: 4-byte ASCII chunk type code (e.g. "IHDR", "IDAT")
//   - Payload: Variable-length chunk data
//   - CRC32: 32-bit CRC (IEEE polynomial) over Tag and Payload (big-endian)
//
// A complete file is the 8-byte PNG signature followed by chunks, the last
// of which must be the empty IEND terminator.
//
// # Integrity Model
//
// Checksums are permissive on read and strict on write. Parse records the
// stored CRC of each chunk without rejecting a mismatch; Chunk.Encode always
// recomputes the CRC from the current tag and payload, so exported buffers
// are self-consistent even after payload mutation.
//
// # Usage
//
// Parse a buffer, inspect it, and write it back:
//
//	img, err := png.Parse(data)
//	if err != nil {
//	    return err
//	}
//
//	res := img.FindByTag(png.TagPalette)
//	if m, ok := res.Single(); ok {
//	    // bump the green channel of the first palette entry
//	    if err := img.SetBytesAt(m.Index, 1, 0xFF, 1); err != nil {
//	        return err
//	    }
//	}
//
//	out, err := img.Export()
//	if err != nil {
//	    return err
//	}
//
// # Error Handling
//
// All failures are typed and matchable with errors.As: FormatError,
// UnknownChunkError, DuplicateChunkError, MissingChunkError,
// UnsupportedFeatureError, and BoundsError. Parse never returns a partially
// built Container; it either fully succeeds or returns only an error.
//
// # Thread Safety
//
// A Container performs no internal locking. Treat it as immutable after
// Parse for concurrent readers; mutation requires exclusive access.
package png
