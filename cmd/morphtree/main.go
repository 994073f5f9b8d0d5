// Command morphtree inspects and transforms neuron morphologies stored as
// SWC or CBOR morphology documents.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
