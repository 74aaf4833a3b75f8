package main

import (
	"fmt"
	"os"
)

var version = "dev"

func main() {
	rootCmd := NewRootCmd()
	rootCmd.Version = version
	rootCmd.AddCommand(newBrowseCmd())
	rootCmd.AddCommand(newKeysCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sortpictures:", err)
		os.Exit(1)
	}
}
