/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/avekoi/pngbox/cmd/pngbox/cmd"
)

func main() {
	cmd.Execute()
}
