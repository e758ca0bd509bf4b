package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avekoi/pngbox/pkg/png"
)

// paletteCmd groups palette operations
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Palette chunk operations",
}

// paletteShiftCmd represents the palette shift command
var paletteShiftCmd = &cobra.Command{
	Use:   "shift <input> <output>",
	Short: "Shift one color channel of every palette entry",
	Long: `Add a delta to one channel of every PLTE entry, clamping the
result to [0, 255], and write the re-exported image.

Example:
  pngbox palette shift in.png out.png --channel g --delta 18`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		channel, _ := cmd.Flags().GetString("channel")
		delta, _ := cmd.Flags().GetInt("delta")

		if err := shiftPaletteFile(args[0], args[1], channel, delta); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Shifted %s channel by %d, wrote %s\n", channel, delta, args[1])
	},
}

// shiftPaletteFile loads a file, shifts one palette channel and writes the
// result to a new file.
func shiftPaletteFile(inPath, outPath, channel string, delta int) error {
	ch, err := png.ParseChannel(channel)
	if err != nil {
		return err
	}

	img, err := loadImage(inPath)
	if err != nil {
		return err
	}
	if err := png.ShiftPalette(img, ch, delta); err != nil {
		return err
	}
	return saveImage(img, outPath)
}

func init() {
	paletteShiftCmd.Flags().StringP("channel", "c", "g", "Palette channel to shift (r, g or b)")
	paletteShiftCmd.Flags().IntP("delta", "n", 18, "Amount to add to the channel (may be negative)")

	paletteCmd.AddCommand(paletteShiftCmd)
	rootCmd.AddCommand(paletteCmd)
}
