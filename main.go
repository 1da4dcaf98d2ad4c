package main

import "github.com/oceanmesh/meshprep/cmd"

func main() {
	cmd.Execute()
}
