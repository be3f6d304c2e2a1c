package main

import (
	"os"

	"github.com/arthur-debert/tint/cmd/tint"
)

func main() {
	tint.IgnoreBrokenPipeSignal()
	os.Exit(tint.Run(os.Args[1:], tint.OSStreams()))
}
