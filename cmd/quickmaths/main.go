// SPDX-License-Identifier: MIT

// Command quickmaths evaluates erf, erfc and the normal CDF from the shell.
package main

import (
	"os"

	"github.com/katalvlaran/quickmaths/cmd/quickmaths/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
