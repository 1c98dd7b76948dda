// Command algoviz serves and prints instrumented algorithm traces.
//
//	algoviz serve [--config file]
//	algoviz trace <family> <variant> [--data ...] [--json | --plot]
//	algoviz list
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp().Root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
