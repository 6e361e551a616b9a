package main

import "github.com/nexcard/nexcard/cmd/nexcard-cli/cmd"

func main() {
	cmd.Execute()
}
