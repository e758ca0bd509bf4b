package png_test

import (
	"encoding/binary"
	"fmt"
	"log"

	"github.com/avekoi/pngbox/pkg/png"
)

// Example assembles a minimal image in memory, exports it, and parses the
// result back.
func Example() {
	header := make([]byte, 13)
	binary.BigEndian.PutUint32(header[0:4], 2) // width
	binary.BigEndian.PutUint32(header[4:8], 1) // height
	header[8] = 8                              // bit depth
	header[9] = png.ColorTruecolor

	img := &png.Container{Chunks: []png.Chunk{
		png.NewChunk(png.TagHeader, header),
		png.NewChunk(png.TagImageData, []byte{0x01, 0x02, 0x03}),
		png.NewChunk(png.TagEnd, nil),
	}}

	data, err := img.Export()
	if err != nil {
		log.Fatal(err)
	}

	parsed, err := png.Parse(data)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%dx%d image, %d chunks, %d bytes\n",
		parsed.Width, parsed.Height, len(parsed.Chunks), len(data))

	// Output:
	// 2x1 image, 3 chunks, 60 bytes
}

// ExampleContainer_FindByTag demonstrates the three-way lookup contract.
func ExampleContainer_FindByTag() {
	header := make([]byte, 13)
	binary.BigEndian.PutUint32(header[0:4], 1)
	binary.BigEndian.PutUint32(header[4:8], 1)
	header[8] = 8
	header[9] = png.ColorTruecolor

	img := &png.Container{Chunks: []png.Chunk{
		png.NewChunk(png.TagHeader, header),
		png.NewChunk(png.TagImageData, []byte{1}),
		png.NewChunk(png.TagImageData, []byte{2}),
		png.NewChunk(png.TagEnd, nil),
	}}

	fmt.Println("tRNS not found:", img.FindByTag("tRNS").NotFound())

	if m, ok := img.FindByTag(png.TagHeader).Single(); ok {
		fmt.Println("IHDR at index:", m.Index)
	}

	if matches, ok := img.FindByTag(png.TagImageData).Multiple(); ok {
		fmt.Println("IDAT occurrences:", len(matches))
	}

	// Output:
	// tRNS not found: true
	// IHDR at index: 0
	// IDAT occurrences: 2
}

// ExampleContainer_SetBytesAt demonstrates the sanctioned byte-range edit.
func ExampleContainer_SetBytesAt() {
	header := make([]byte, 13)
	binary.BigEndian.PutUint32(header[0:4], 1)
	binary.BigEndian.PutUint32(header[4:8], 1)
	header[8] = 8
	header[9] = png.ColorPalette

	img := &png.Container{Chunks: []png.Chunk{
		png.NewChunk(png.TagHeader, header),
		png.NewChunk(png.TagPalette, []byte{10, 20, 30}),
		png.NewChunk(png.TagImageData, []byte{0}),
		png.NewChunk(png.TagEnd, nil),
	}}
	img.ColorType = png.ColorPalette

	plte, _ := img.FindByTag(png.TagPalette).Single()
	if err := img.SetBytesAt(plte.Index, 1, 0xFF, 1); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("palette entry: %v\n", plte.Chunk.Payload)
	fmt.Println("checksum consistent:", plte.Chunk.VerifyChecksum())

	// Output:
	// palette entry: [10 255 30]
	// checksum consistent: true
}
