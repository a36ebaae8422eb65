// Command graphwalk drives YAML-defined state graphs from the command line.
//
//	graphwalk walk machine.yaml TIMER TIMER --dot walk.dot
//	graphwalk export machine.yaml --pretty
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
