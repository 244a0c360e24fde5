// Command stepper navigates ordered step sequences: wizards, tab sets and
// carousels, linear or circular.
package main

import "stepper/internal/cli"

func main() {
	cli.Execute()
}
