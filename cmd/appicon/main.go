package main

import "github.com/stevemurr/appicon/cmd"

func main() {
	cmd.Execute()
}
