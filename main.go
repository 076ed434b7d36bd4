// main package for the javasphinx command-line tool
// Package main is the entry point for the javasphinx CLI.
package main

import "github.com/mbarton/javasphinx/cmd"

func main() {
	cmd.Execute()
}
