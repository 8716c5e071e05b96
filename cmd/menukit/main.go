package main

import "github.com/OpenTraceLab/menukit/cmd/menukit/cmd"

func main() {
	cmd.Execute()
}
