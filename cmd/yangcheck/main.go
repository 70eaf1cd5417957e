// Command yangcheck parses and compiles YANG modules from the command
// line, reporting diagnostics the way the core library produces them.
package main

import (
	"os"

	"github.com/jacoelho/yang/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
