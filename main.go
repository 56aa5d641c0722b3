package main

import "github.com/they4kman/gobattle/cmd"

func main() {
	cmd.Execute()
}
