// Command gluedemo prints the glue value types and exercises StringName
// interning through the in-process native runtime.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
