package main

import (
	"context"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/primesum/pkg/primesum"
)

func main() {
	cli.Main(context.Background(), primesum.Command{})
}
