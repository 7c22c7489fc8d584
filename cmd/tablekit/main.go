package main

import (
	"runtime"

	"github.com/BrandonKowalski/tablekit/cmd/tablekit/cli"
)

// SDL has to be driven from the main OS thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	cli.Execute()
}
