package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// chunksCmd represents the chunks command
var chunksCmd = &cobra.Command{
	Use:   "chunks <file>",
	Short: "List every chunk with its size, class and checksum state",
	Long: `Walk the chunk sequence and print each chunk's index, tag,
payload size, critical/ancillary class and whether its stored checksum
matches the payload.

Example:
  pngbox chunks image.png`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		img, err := loadImage(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		// Offsets mirror the on-disk layout: 8 signature bytes, then
		// 12 bytes of framing around each payload.
		offset := 8
		for i := range img.Chunks {
			c := &img.Chunks[i]

			class := "ancillary"
			if c.Tag.Critical() {
				class = "critical"
			}
			crcState := "ok"
			if !c.VerifyChecksum() {
				crcState = "MISMATCH"
			}

			fmt.Printf("%3d  %s chunk %q of size %dB at offset %#x (crc %s)\n",
				i, class, string(c.Tag), c.Length(), offset+4, crcState)

			offset += c.Size()
		}
		fmt.Printf("Split into %d chunks (counting header and terminator)\n", len(img.Chunks))
	},
}

func init() {
	rootCmd.AddCommand(chunksCmd)
}
