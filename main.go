package main

import "squire/cmd"

func main() {
	cmd.Execute()
}
