package main

import (
	"github.com/slotlabs/slotpass"
)

// main is the entry point for the slotpass CLI application.
func main() {
	slotpass.Execute()
}
