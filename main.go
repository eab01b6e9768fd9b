package main

import "omd-cli/cmd"

func main() {
	cmd.Execute()
}
