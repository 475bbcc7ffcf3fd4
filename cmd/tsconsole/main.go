package main

import (
	"log"
	"os"

	"github.com/ar4ie13/tsconsole/internal/cli"
	"github.com/mattn/go-colorable"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	root := cli.NewRootCmd()
	root.SetIn(os.Stdin)
	// On Windows the colorable writers hide the file, so clear is a no-op there
	root.SetOut(colorable.NewColorableStdout())
	root.SetErr(colorable.NewColorableStderr())

	return root.Execute()
}
