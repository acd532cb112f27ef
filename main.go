package main

import "github.com/Chenjox/Decision-Processes-Sandbox/cmd"

func main() {
	cmd.Execute()
}
