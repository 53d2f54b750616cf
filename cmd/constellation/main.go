package main

import "github.com/philipparndt/constellation/cmd"

func main() {
	cmd.Execute()
}
