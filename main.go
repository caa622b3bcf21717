package main

import "github.com/rpgo/card-optimizer/cmd"

func main() {
	cmd.Execute()
}
