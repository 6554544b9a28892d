package main

import "github.com/they4kman/remotesweep/cmd"

func main() {
	cmd.Execute()
}
