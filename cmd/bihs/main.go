// Command bihs runs the bidirectional heuristic search benchmarks.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/bihs/driver"
)

func main() {
	params, err := driver.ParseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, driver.ErrHelp) {
			fmt.Print(driver.Usage)
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if err := driver.Run(params, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
