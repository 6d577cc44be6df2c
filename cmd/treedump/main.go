package main

import (
	"os"

	"github.com/bethropolis/treedump/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout))
}
