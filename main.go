package main

import "github.com/tranvictor/basewatch/cmd"

func main() {
	cmd.Execute()
}
