package main

import (
	"context"
	"os"

	"github.com/tphakala/go-expander/internal/cli"
)

func main() {
	os.Exit(cli.NewApp().RunAuth(context.Background(), os.Args[1:]))
}
