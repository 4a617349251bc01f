// Package main is the entry point of the inlay CLI.
package main

import "github.com/mouse-blink/inlay/cmd"

func main() {
	cmd.Execute()
}
