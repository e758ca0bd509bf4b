/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avekoi/pngbox/pkg/png"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pngbox",
	Short: "pngbox - PNG chunk container toolbox",
	Long: `pngbox reads, inspects, edits and rewrites the chunk structure of
PNG files without touching the compressed pixel data.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// loadImage reads a file and parses it into a container.
func loadImage(path string) (*png.Container, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	img, err := png.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return img, nil
}

// saveImage exports a container and writes it to a file.
func saveImage(img *png.Container, path string) error {
	out, err := img.Export()
	if err != nil {
		return fmt.Errorf("failed to export image: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
