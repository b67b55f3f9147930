package main

import (
	"dotinstall/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// dotinstall copies dotfiles into place. Each package under the dotfiles root carries a
// YAML descriptor (any *install*.yaml file) listing source files and, per platform, where
// they belong:
//
//	name: vim
//	platform:
//	  Linux:
//	    src: [vimrc]
//	    dest: ["~/.vimrc"]
//
// Descriptors are processed one at a time in directory order. A destination that already
// exists is only overwritten after the user answers "y". Any error (a malformed descriptor,
// a missing field, an unsupported platform, an invalid answer, a failed copy) stops the run
// with a single [ERROR] line and a non-zero exit status, unless --continue-on-error is set.
func main() {
	cmd.Execute()
}
