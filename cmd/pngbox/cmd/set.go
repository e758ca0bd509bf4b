package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// setCmd represents the set command
var setCmd = &cobra.Command{
	Use:   "set <input> <output>",
	Short: "Replace a byte range inside one chunk's payload",
	Long: `Replace a byte window inside the payload of the chunk at the
given sequence index with the big-endian encoding of a value, then write
the re-exported image.

Example:
  pngbox set in.png out.png --index 1 --offset 4 --value 255 --width 1`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		index, _ := cmd.Flags().GetInt("index")
		offset, _ := cmd.Flags().GetInt("offset")
		value, _ := cmd.Flags().GetUint64("value")
		width, _ := cmd.Flags().GetInt("width")

		if err := setBytesFile(args[0], args[1], index, offset, value, width); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Wrote %d byte(s) at offset %d of chunk %d, wrote %s\n", width, offset, index, args[1])
	},
}

// setBytesFile loads a file, applies one SetBytesAt edit and writes the
// result to a new file.
func setBytesFile(inPath, outPath string, index, offset int, value uint64, width int) error {
	img, err := loadImage(inPath)
	if err != nil {
		return err
	}
	if err := img.SetBytesAt(index, offset, value, width); err != nil {
		return err
	}
	return saveImage(img, outPath)
}

func init() {
	setCmd.Flags().Int("index", 0, "Sequence index of the chunk to edit")
	setCmd.Flags().Int("offset", 0, "Byte offset inside the chunk payload")
	setCmd.Flags().Uint64("value", 0, "Value to encode big-endian into the window")
	setCmd.Flags().Int("width", 1, "Window width in bytes (1-8)")

	rootCmd.AddCommand(setCmd)
}
