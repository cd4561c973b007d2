package main

import "github.com/dineflow/backoffice/cmd"

func main() {
	cmd.Execute()
}
