// Package main is the entry point for the shotdiff CLI.
package main

import "shotdiff.dev/pkg/shotdiff/cmd"

func main() {
	cmd.Execute()
}
