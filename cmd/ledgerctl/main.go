package main

import (
	"os"

	"github.com/cubos-banking-ledger/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
