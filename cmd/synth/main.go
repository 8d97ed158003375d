package main

import "github.com/pflow-xyz/go-synthesis/cmd/synth/cmd"

func main() {
	cmd.Execute()
}
