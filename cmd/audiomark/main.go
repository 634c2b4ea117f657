// Package main provides the audiomark CLI tool.
//
// Usage:
//
//	audiomark [flags] <command> [args]
//
// Commands:
//
//	embed    - write a text watermark into a 16-bit PCM WAV file
//	extract  - read a text watermark back from a WAV file
//	inspect  - show format and watermark capacity of a WAV file
//
// Configuration:
//
//	Settings are read from --config (YAML), a .env file in the working
//	directory, and AUDIOMARK_* environment variables, in that order.
package main

import (
	"fmt"
	"os"

	"github.com/yyyoichi/audiomark/cmd/audiomark/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
