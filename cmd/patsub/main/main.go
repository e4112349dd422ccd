package main

import (
	"os"

	"github.com/arthur-debert/patsub/cmd/patsub"
)

func main() {
	os.Exit(patsub.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
