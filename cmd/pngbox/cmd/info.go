package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Print image metadata and chunk order",
	Long: `Print the geometry and encoding parameters decoded from the IHDR
chunk, plus the on-disk order of all chunks.

Example:
  pngbox info image.png`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		img, err := loadImage(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Image width: %dpx\n", img.Width)
		fmt.Printf("Image height: %dpx\n", img.Height)
		fmt.Printf("Image bit depth: %d-bit\n", img.BitDepth)
		fmt.Printf("Image color type: %d\n", img.ColorType)
		fmt.Printf("Image compression method: %d\n", img.CompressionMethod)
		fmt.Printf("Image filter method: %d\n", img.FilterMethod)
		fmt.Printf("Image interlace method: %d\n", img.InterlaceMethod)

		order := make([]string, len(img.Chunks))
		for i := range img.Chunks {
			order[i] = string(img.Chunks[i].Tag)
		}
		fmt.Printf("Order of chunks: %s\n", strings.Join(order, " "))
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
