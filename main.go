package main

import "netflixgraph/cmd"

func main() {
	cmd.Execute()
}
