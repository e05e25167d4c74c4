/*
Command webcore parses a document and stylesheets, resolves the cascade and
prints the result.

Usage:

	webcore [flags] [file.html]

Without a file argument, a built-in sample document is used. Stylesheets are
given with --css (repeatable); <style> elements of the document are applied
after them. Output formats are

	tree   the styled tree with its properties (default)
	dot    a GraphViz digraph of the styled tree
	html   the parsed document, serialized
	css    the combined stylesheet, serialized

Flags may also be given in a YAML file (--config); flags on the command line
take precedence:

	css:
	  - base.css
	engine: douceur
	format: tree
	trace: info

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
