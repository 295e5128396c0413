// Command tdcontrol trains and evaluates temporal-difference control
// agents on the domains of the tdcontrol module.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
