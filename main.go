package main

import (
	"fmt"
	"os"

	"github.com/Asamis999/seo-article-generator/internal/bootstrap"
)

func main() {
	if err := bootstrap.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
