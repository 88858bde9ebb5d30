package main

import "github.com/seventv/yargs/cmd"

func main() {
	cmd.Execute()
}
