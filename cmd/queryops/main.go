package main

import (
	"os"

	"github.com/queryops/queryops-golang/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
