package main

import "github.com/notargets/meshfix/cmd"

func main() {
	cmd.Execute()
}
