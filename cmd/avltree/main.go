// Command avltree builds AVL trees from the command line or from YAML
// scenario files and prints their contents and shape.
//
//	avltree build 10 20 3 7 8 9 1 --delete 8 --dump
//	avltree init demo.yaml
//	avltree run demo.yaml --dump --metrics
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
