// Command keyframe samples, validates and renders keyframe animation tracks.
package main

import (
	"fmt"
	"os"

	"github.com/tphakala/go-keyframe/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
