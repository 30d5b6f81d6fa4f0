package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints errors
		os.Exit(1)
	}
}
