package main

import "github.com/modpacker/modcheck/cmd"

func main() {
	cmd.Execute()
}
