package main

import (
	"os"

	"github.com/terraincognita07/healthlog/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
