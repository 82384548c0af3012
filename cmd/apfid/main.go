package main

import (
	"os"

	"github.com/hashicorp-forge/apfid/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
