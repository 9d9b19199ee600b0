// Command bargo generates linear barcode images from the command line
// and serves the encode API over HTTP.
package main

import "github.com/MeKo-Tech/bargo/cmd/bargo/cmd"

func main() {
	cmd.Execute()
}
