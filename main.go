package main

import (
	"crate/cmd"
)

func main() {
	// If Execute() had a problem, Cobra has already called os.Exit.
	cmd.Execute()
}
