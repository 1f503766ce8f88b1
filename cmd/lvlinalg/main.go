// Command lvlinalg is the command-line shell of the lvlinalg engine.
//
//	lvlinalg [--mode exact|float] [--format text|json] [--session file.yaml] <command> ...
//
// Exit codes: 0 success, 1 engine failure, 2 usage or parse error.
package main

import (
	"os"

	"github.com/katalvlaran/lvlinalg/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
