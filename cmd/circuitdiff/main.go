// cmd/circuitdiff/main.go
package main

import (
	cmd "github.com/mwiater/circuitdiff/internal/cli"
)

// main starts the circuitdiff CLI by delegating to the cobra root command
// defined in the cli package.
func main() {
	cmd.Execute()
}
