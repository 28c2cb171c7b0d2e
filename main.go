package main

import "github.com/simonbystrom/commandcenter/cmd"

func main() {
	cmd.Execute()
}
