package main

import "github.com/kamal-hamza/hb-cli/cmd"

func main() {
	cmd.Execute()
}
