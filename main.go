package main

import "github.com/chillibeats/chilli/internal/cli"

func main() {
	cli.Execute()
}
