package main

import "ratehub/internal/cli/command"

func main() {
	command.Execute()
}
