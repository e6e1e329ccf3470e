package main

import "github.com/hvaceng/ductloss/cmd"

func main() {
	cmd.Execute()
}
