package main

import "fincalc/cmd"

func main() {
	cmd.Execute()
}
