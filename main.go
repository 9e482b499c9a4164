package main

import "deploytk/cmd"

func main() {
	cmd.Execute()
}
