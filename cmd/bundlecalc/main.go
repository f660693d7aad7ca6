// Command bundlecalc computes bundle breakdowns offline, against a catalog
// file or an ad-hoc list of bundle sizes.
package main

import (
	"os"

	"github.com/AJLandry1000000000/flower-shop/cmd/bundlecalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
