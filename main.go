package main

import "golang-netsweep/cmd"

func main() {
	cmd.Execute()
}
