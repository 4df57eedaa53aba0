package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sumpierrezf/star-wars-api-with-token/cmd"
)

func main() {
	if err := cmd.Execute(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
