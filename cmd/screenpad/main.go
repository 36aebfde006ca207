// Package main starts the screenpad server.
package main

import "flag"

// main is the entrypoint for the screenpad server.
func main() {
	verbose := flag.Bool("verbose", false, "Enable control trace logging")
	flag.Parse()

	if err := run(*verbose); err != nil {
		logFatal(err)
	}
}
