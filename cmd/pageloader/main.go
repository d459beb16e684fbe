// Package main provides the CLI entrypoint for pageloader.
//
// pageloader loads XML documents into page objects declared by a YAML page
// library:
//   - load parses documents and dumps the loaded pages
//   - check validates a page library and reports every document that fails
//     to load
//   - gen writes Go page types for a page library
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
