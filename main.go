package main

import "github.com/fortelabs/pcsets/cmd"

func main() {
	cmd.Execute()
}
