package main

import (
	"context"
	"fmt"
	"os"

	"vefa/internal/cli"
)

func main() {
	cli.LoadEnvFile()

	if err := NewRootCmd(os.Stdout, os.Stderr).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
