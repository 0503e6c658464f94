package main

import (
	"os"

	"github.com/testvibe/testvibe/pkg/testvibe"
)

var version = "dev"

func main() {
	testvibe.Version = version
	os.Exit(testvibe.Run(os.Args))
}
