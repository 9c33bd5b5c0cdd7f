package main

import "github.com/nfrund/pinboard/cmd/pinboard-cli/cmd"

func main() {
	cmd.Execute()
}
