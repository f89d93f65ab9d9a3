package main

import "stubgen/cmd"

func main() {
	cmd.Execute()
}
