// Command inferdtd reads one or more XML files and prints an inferred DTD
// to stdout: one <!ELEMENT ...> declaration per distinct element name
// observed across the inputs.
package main

import (
	"fmt"
	"os"

	"github.com/mvaled/inferdtd/cmd/inferdtd/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
