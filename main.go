package main

import "github.com/sarchlab/netsim/cmd"

func main() {
	cmd.Execute()
}
