package main

import "mobius-kb/cmd"

func main() {
	cmd.Execute()
}
