// Package main is the entry point for the zoo CLI.
package main

import "github.com/mesh-intelligence/zoo/internal/cli"

func main() {
	cli.Execute()
}
